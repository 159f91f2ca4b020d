package lzss

import (
	"bufio"
	"errors"
	"io"
)

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// countingByteReader reads from a byte reader and counts the number of bytes read.
type countingByteReader struct {
	base  io.ByteReader // The byte reader to read from.
	count int64         // The number of bytes read.
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

// asByteReader returns r itself when it reads bytes, a buffered wrapper otherwise.
func asByteReader(r io.Reader) io.ByteReader {
	if existing, ok := r.(io.ByteReader); ok {
		return existing
	}

	return bufio.NewReader(r)
}

// pushbackByteReader can look one byte ahead without consuming it.
type pushbackByteReader struct {
	base    io.ByteReader
	pending byte
	has     bool
}

// ReadByte returns the pending byte first, then reads from base.
func (r *pushbackByteReader) ReadByte() (byte, error) {
	if r.has {
		r.has = false
		return r.pending, nil
	}

	return r.base.ReadByte()
}

// more reports whether another byte is available.
func (r *pushbackByteReader) more() (bool, error) {
	if r.has {
		return true, nil
	}

	b, err := r.base.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	r.pending, r.has = b, true
	return true, nil
}
