package lzss

// tokenGroup collects up to FlagBits tokens under one flag byte.
// Bit n of the flag is set when token n is a literal.
type tokenGroup struct {
	flags   byte
	payload [2 * FlagBits]byte
	size    int // payload bytes in use
	count   int // tokens in use
}

// literal appends a one-byte literal token.
func (g *tokenGroup) literal(c byte) {
	g.flags |= 1 << g.count
	g.payload[g.size] = c
	g.size++
	g.count++
}

// reference appends a back-reference token.
// Pointer: LE 16-bit = [offset_lo8, (offset_hi4<<4)|(length-MinMatch)].
func (g *tokenGroup) reference(offset, length int) {
	g.payload[g.size] = byte(offset & 0xFF)
	g.payload[g.size+1] = byte((offset>>4)&0xF0 | (length-MinMatch)&0x0F)
	g.size += 2
	g.count++
}

func (g *tokenGroup) full() bool {
	return g.count == FlagBits
}

// flush appends the group to dst when it holds any token and clears it.
func (g *tokenGroup) flush(dst []byte) []byte {
	if g.count == 0 {
		return dst
	}

	dst = append(dst, g.flags)
	dst = append(dst, g.payload[:g.size]...)
	*g = tokenGroup{}

	return dst
}
