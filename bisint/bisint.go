// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/biscodec

/*
Package bisint implements the BIS variable-length unsigned integer format.

Each byte carries 7 payload bits, least significant group first; the high bit (0x80)
is set on every byte except the last. Encoding is always minimal, so a uint32 takes 1..5 bytes.

Decoding does not limit the number of continuation bytes. Payload bits that would land
at bit 32 or above are discarded, and the value is complete once a byte without the
continuation bit is read.

	buf := bisint.Append(nil, 300) // 0xAC 0x02
	v, n, err := bisint.DecodeBytes(buf)
*/
package bisint

import (
	"errors"
	"io"
)

// MaxLen is the encoded length of the largest uint32.
const MaxLen = 5

const (
	payloadMask  = 0x7F
	continuation = 0x80
)

// ErrTruncated is returned when input ends before the terminating byte.
var ErrTruncated = errors.New("bis int: truncated input")

// Len returns the number of bytes Append writes for v.
func Len(v uint32) int {
	n := 1
	for v > payloadMask {
		v >>= 7
		n++
	}

	return n
}

// Append appends the encoding of v to dst.
func Append(dst []byte, v uint32) []byte {
	for v > payloadMask {
		dst = append(dst, continuation|byte(v&payloadMask))
		v >>= 7
	}

	return append(dst, byte(v))
}

// Encode returns the encoding of v.
func Encode(v uint32) []byte {
	return Append(make([]byte, 0, Len(v)), v)
}

// Write writes the encoding of v to w and returns the number of bytes written.
func Write(w io.Writer, v uint32) (int, error) {
	var buf [MaxLen]byte
	return w.Write(Append(buf[:0], v))
}

// Read decodes one value from r. Errors from r other than io.EOF are returned unchanged.
func Read(r io.ByteReader) (uint32, error) {
	var v uint32
	var shift uint

	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, ErrTruncated
			}
			return 0, err
		}

		if shift < 32 {
			v |= uint32(b&payloadMask) << shift
			shift += 7
		}

		if b&continuation == 0 {
			return v, nil
		}
	}
}

// DecodeBytes decodes one value from the start of src and returns it with the number of bytes used.
func DecodeBytes(src []byte) (uint32, int, error) {
	r := &sliceReader{data: src}
	v, err := Read(r)

	return v, r.pos, err
}

// sliceReader reads bytes from a slice and tracks how many were consumed.
type sliceReader struct {
	data []byte
	pos  int
}

func (r *sliceReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}
