// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/biscodec

package lzss

import "github.com/andybalholm/brotli/matchfinder"

// A TokenEncoder implements the matchfinder.Encoder interface, writing
// LZSS:8bit token groups and the checksum trailer. It lets any
// matchfinder.MatchFinder drive the LZSS format instead of the binary tree.
//
// Blocks passed to Encode form one LZSS block; the trailer is written
// after the block marked lastBlock.
type TokenEncoder struct {
	mode  ChecksumMode
	sum   checksum
	group tokenGroup
}

// NewTokenEncoder returns a TokenEncoder using the given checksum mode.
func NewTokenEncoder(mode ChecksumMode) (*TokenEncoder, error) {
	if !mode.valid() {
		return nil, ErrInvalidChecksumMode
	}

	return &TokenEncoder{mode: mode, sum: newChecksum(mode)}, nil
}

// Reset clears the pending token group and checksum.
func (e *TokenEncoder) Reset() {
	e.group = tokenGroup{}
	e.sum = newChecksum(e.mode)
}

// Encode appends the token stream for src to dst.
func (e *TokenEncoder) Encode(dst []byte, src []byte, matches []matchfinder.Match, lastBlock bool) []byte {
	e.sum.addBytes(src)

	pos := 0
	for _, m := range matches {
		for _, c := range src[pos : pos+m.Unmatched] {
			dst = e.literal(dst, c)
		}
		pos += m.Unmatched

		if m.Length > 0 {
			dst = e.match(dst, src[pos:pos+m.Length], m.Distance)
			pos += m.Length
		}
	}

	for _, c := range src[pos:] {
		dst = e.literal(dst, c)
	}

	if lastBlock {
		dst = e.group.flush(dst)
		dst = e.sum.appendTo(dst)
		e.Reset()
	}

	return dst
}

func (e *TokenEncoder) literal(dst []byte, c byte) []byte {
	e.group.literal(c)
	if e.group.full() {
		dst = e.group.flush(dst)
	}

	return dst
}

// match writes a copy of b from distance bytes back, split into pieces of MinMatch..MaxMatch.
func (e *TokenEncoder) match(dst []byte, b []byte, distance int) []byte {
	if distance < 1 || distance > MaxOffset {
		for _, c := range b {
			dst = e.literal(dst, c)
		}
		return dst
	}

	for len(b) > 0 {
		n := len(b)
		if n < MinMatch {
			for _, c := range b {
				dst = e.literal(dst, c)
			}
			break
		}

		if n > MaxMatch {
			n = MaxMatch
			// Keep the tail long enough to stay a reference.
			if rest := len(b) - n; rest < MinMatch {
				n -= MinMatch - rest
			}
		}

		e.group.reference(distance, n)
		if e.group.full() {
			dst = e.group.flush(dst)
		}
		b = b[n:]
	}

	return dst
}
