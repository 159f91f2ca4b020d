// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/biscodec

package lzss

import "encoding/binary"

// checksum is the running additive sum stored in the block trailer.
type checksum struct {
	signed bool
	sum    uint32
}

func newChecksum(mode ChecksumMode) checksum {
	return checksum{signed: mode == ChecksumSigned}
}

// add folds one byte into the sum, sign-extended in signed mode.
func (c *checksum) add(b byte) {
	if c.signed {
		c.sum += uint32(int32(int8(b))) // #nosec G115 -- intentional two's complement wrap
	} else {
		c.sum += uint32(b)
	}
}

func (c *checksum) addBytes(p []byte) {
	for _, b := range p {
		c.add(b)
	}
}

// appendTo appends the little-endian trailer.
func (c *checksum) appendTo(dst []byte) []byte {
	return binary.LittleEndian.AppendUint32(dst, c.sum)
}

// Sum returns the checksum of data as it is stored in the trailer.
// Unknown modes are summed as unsigned.
func Sum(data []byte, mode ChecksumMode) uint32 {
	c := newChecksum(mode)
	c.addBytes(data)

	return c.sum
}
