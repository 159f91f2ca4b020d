// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/biscodec

package lzss

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli/matchfinder"
)

// Compress compresses src into one block (tokens + checksum trailer).
// Options nil means DefaultCompressOptions(). Empty src yields the trailer alone.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if !opts.Checksum.valid() {
		return nil, ErrInvalidChecksumMode
	}

	// Worst case is all literals + flag bytes + checksum.
	out := make([]byte, 0, len(src)+(len(src)+FlagBits-1)/FlagBits+ChecksumSize)

	if opts.NewMatchFinder != nil {
		return compressWithMatchFinder(out, src, opts)
	}

	enc := acquireEncoder(opts.Checksum)
	defer releaseEncoder(enc)

	out = enc.encode(out, src)
	return enc.sum.appendTo(out), nil
}

// matchFinderBlockSize bounds each FindMatches call; some finders reject larger blocks.
const matchFinderBlockSize = 1 << 16

// compressWithMatchFinder drives a fresh finder block by block through matchfinder.Writer.
func compressWithMatchFinder(out []byte, src []byte, opts *CompressOptions) ([]byte, error) {
	enc, err := NewTokenEncoder(opts.Checksum)
	if err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(out)
	w := &matchfinder.Writer{
		Dest:        buf,
		MatchFinder: opts.NewMatchFinder(),
		Encoder:     enc,
		BlockSize:   matchFinderBlockSize,
	}
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// CompressTo compresses src and writes the whole block to w with a single Write.
// It returns the number of bytes written.
func CompressTo(w io.Writer, src []byte, opts *CompressOptions) (int, error) {
	if w == nil {
		return 0, ErrNilWriter
	}

	out, err := Compress(src, opts)
	if err != nil {
		return 0, err
	}

	return w.Write(out)
}

// encoder is the per-call state of the tree compressor: window and match tree.
type encoder struct {
	text [bufferSize]byte
	tree matchTree
	sum  checksum
}

// reset prepares the encoder for a new block.
func (e *encoder) reset(mode ChecksumMode) {
	for i := range e.text {
		e.text[i] = Filler
	}
	e.tree.reset(&e.text)
	e.sum = newChecksum(mode)
}

// encode appends the token groups for src to dst. The checksum is accumulated in e.sum.
func (e *encoder) encode(dst []byte, src []byte) []byte {
	var group tokenGroup

	s := node(0)
	r := node(startPos)
	in := 0

	// Fill the lookahead.
	n := 0
	for n < MaxMatch && in < len(src) {
		e.text[int(r)+n] = src[in]
		e.sum.add(src[in])
		in++
		n++
	}
	if n == 0 {
		return dst
	}

	// Positions before r hold the filler and are valid reference sources.
	for i := node(1); i <= MaxMatch; i++ {
		e.tree.insert(r - i)
	}
	e.tree.insert(r)

	for n > 0 {
		length := min(e.tree.matchLen, n)

		if length <= MatchThreshold {
			length = 1
			group.literal(e.text[r])
		} else {
			offset := (int(r) - int(e.tree.matchPos)) & windowMask
			group.reference(offset, length)
		}

		if group.full() {
			dst = group.flush(dst)
		}

		// Slide the window over the encoded bytes.
		i := 0
		for ; i < length && in < len(src); i++ {
			c := src[in]
			in++
			e.sum.add(c)

			e.tree.remove(s)
			e.text[s] = c
			if s < MaxMatch-1 {
				e.text[int(s)+WindowSize] = c
			}
			s = (s + 1) & windowMask
			r = (r + 1) & windowMask
			e.tree.insert(r)
		}

		// Input exhausted: drain the lookahead.
		for ; i < length; i++ {
			e.tree.remove(s)
			s = (s + 1) & windowMask
			r = (r + 1) & windowMask
			n--
			if n > 0 {
				e.tree.insert(r)
			}
		}
	}

	return group.flush(dst)
}
