// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/biscodec

package lzss

// LZSS:8bit format constants.
const (
	WindowSize     = 4096               // Sliding window size (ring buffer).
	MaxMatch       = 18                 // Maximum back-reference length (encoded as 3..18).
	MatchThreshold = 2                  // References must be longer than this to pay off.
	MinMatch       = MatchThreshold + 1 // Shortest encodable back-reference.
	MaxOffset      = WindowSize - 1     // Largest backward offset a token can carry.
	Filler         = 0x20               // Initial window content; offsets before start of output read it.
	FlagBits       = 8                  // Bits per flag byte (one flag byte per 8 slots: literal or pointer).
	ChecksumSize   = 4                  // Trailing little-endian checksum.
)

const (
	windowMask = WindowSize - 1
	bufferSize = WindowSize + MaxMatch - 1 // window plus mirrored lookahead for key comparison
	startPos   = WindowSize - MaxMatch     // initial cursor
)

// node is an index into the window or into the tree arrays.
// Values WindowSize+1..WindowSize+256 are the per-byte roots.
type node uint16

// nilNode marks an absent child or parent.
const nilNode node = WindowSize

// rootOf returns the synthetic root anchoring keys that start with c.
func rootOf(c byte) node {
	return node(WindowSize + 1 + int(c))
}
