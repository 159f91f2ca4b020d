// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/biscodec

package lzss

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Decompress decompresses src into a new buffer of length outLen.
// Options nil means DefaultOptions (unsigned checksum, strict verification).
func Decompress(src []byte, outLen int, opts *Options) ([]byte, error) {
	if len(src) < ChecksumSize {
		return nil, ErrInputTooShort
	}

	out, consumed, err := DecompressBlock(src, outLen, opts)
	if err != nil {
		return nil, err
	}

	if consumed != len(src) {
		return nil, fmt.Errorf("%w: consumed=%d input=%d", ErrTrailingData, consumed, len(src))
	}

	return out, nil
}

// DecompressBlock decompresses one LZSS block from the beginning of src.
// It returns decompressed bytes and the number of consumed bytes (data + checksum).
// Unlike Decompress, this function ignores trailing bytes after the first block.
func DecompressBlock(src []byte, outLen int, opts *Options) ([]byte, int, error) {
	if len(src) < ChecksumSize {
		return nil, 0, ErrInputTooShort
	}

	reader := &sliceByteReader{data: src}
	out, err := decompressFromByteReader(reader, outLen, opts)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decompresses one LZSS block from r and returns consumed bytes.
// Decoding stops exactly after outLen output bytes and trailing 4-byte checksum are read.
// Readers without io.ByteReader are wrapped in a bufio.Reader, which may read ahead.
func DecompressFromReader(r io.Reader, outLen int, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	countingReader := &countingByteReader{base: asByteReader(r)}
	out, err := decompressFromByteReader(countingReader, outLen, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// decoder is the per-call state of the decompressor.
type decoder struct {
	window [WindowSize]byte
	r      int
	sum    checksum
	out    []byte
}

func newDecoder(outLen int, mode ChecksumMode) *decoder {
	d := &decoder{
		r:   startPos,
		sum: newChecksum(mode),
		out: make([]byte, 0, outLen),
	}
	for i := range d.window {
		d.window[i] = Filler
	}

	return d
}

// emit appends b to the output, the checksum and the window.
func (d *decoder) emit(b byte) {
	d.out = append(d.out, b)
	d.sum.add(b)
	d.window[d.r] = b
	d.r = (d.r + 1) & windowMask
}

// decompressFromByteReader decompresses from a byte reader.
func decompressFromByteReader(r io.ByteReader, outLen int, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	if !opts.Checksum.valid() {
		return nil, ErrInvalidChecksumMode
	}

	// Read a byte from the reader.
	// If the reader returns an EOF error, return the error passed as eofErr.
	// Otherwise, return the error from the reader.
	readByte := func(eofErr error) (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, eofErr
			}

			return 0, err
		}

		return b, nil
	}

	d := newDecoder(outLen, opts.Checksum)
	left := outLen

	// Iterate over flag groups until outLen bytes are produced.
	for left > 0 {
		flagByte, err := readByte(ErrUnexpectedEOF)
		if err != nil {
			return nil, err
		}

		// If bit is 1, it's a literal: 1 bit, 1 byte otherwise it's a pointer.
		for bit := 0; bit < FlagBits && left > 0; bit++ {
			if (flagByte>>bit)&1 == 1 {
				b, err := readByte(ErrUnexpectedEOFBit)
				if err != nil {
					return nil, err
				}

				d.emit(b)
				left--
				continue
			}

			lo, err := readByte(ErrUnexpectedEOFBit)
			if err != nil {
				return nil, err
			}
			hi, err := readByte(ErrUnexpectedEOFBit)
			if err != nil {
				return nil, err
			}

			// Pointer: [offset_lo8, (offset_hi4<<4)|(length-MinMatch)]; offset is backward from the cursor.
			offset := int(lo) | int(hi&0xF0)<<4
			length := int(hi&0x0F) + MinMatch
			if length > left {
				return nil, fmt.Errorf("%w: length=%d remaining=%d", ErrOverflow, length, left)
			}

			// Copy byte by byte: an offset shorter than length repeats freshly written bytes.
			src := d.r - offset
			for k := 0; k < length; k++ {
				d.emit(d.window[(src+k)&windowMask])
			}
			left -= length
		}
	}

	var trailer [ChecksumSize]byte
	for i := range trailer {
		b, err := readByte(ErrInputTooShort)
		if err != nil {
			return nil, err
		}
		trailer[i] = b
	}
	readSum := binary.LittleEndian.Uint32(trailer[:])

	if opts.VerifyChecksum && d.sum.sum != readSum {
		return nil, fmt.Errorf("%w (%s): got=0x%x expected=0x%x", ErrMalformedStream, opts.Checksum, d.sum.sum, readSum)
	}

	return d.out, nil
}
