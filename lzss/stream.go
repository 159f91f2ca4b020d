package lzss

import (
	"fmt"
	"io"
)

// DecompressNFromReader decodes len(outLens) consecutive blocks from r.
// It returns the blocks in order and the total number of consumed bytes.
func DecompressNFromReader(r io.Reader, outLens []int, opts *Options) ([][]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	countingReader := &countingByteReader{base: asByteReader(r)}
	out := make([][]byte, 0, len(outLens))

	for i, outLen := range outLens {
		block, err := decompressFromByteReader(countingReader, outLen, opts)
		if err != nil {
			return nil, countingReader.count, fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, block)
	}

	return out, countingReader.count, nil
}

// DecompressUntilEOF decodes consecutive blocks from r until it ends cleanly at a block boundary.
// nextOutLen is called with the block index before each block to obtain its decompressed size.
// End of input inside a block is reported as ErrTruncated.
func DecompressUntilEOF(r io.Reader, nextOutLen func(index int) (int, error), opts *Options) ([][]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}
	if nextOutLen == nil {
		return nil, 0, ErrNilOutLenProvider
	}

	peeker := &pushbackByteReader{base: asByteReader(r)}
	countingReader := &countingByteReader{base: peeker}
	var out [][]byte

	for i := 0; ; i++ {
		more, err := peeker.more()
		if err != nil {
			return nil, countingReader.count, err
		}
		if !more {
			return out, countingReader.count, nil
		}

		outLen, err := nextOutLen(i)
		if err != nil {
			return nil, countingReader.count, fmt.Errorf("block %d: %w", i, err)
		}

		block, err := decompressFromByteReader(countingReader, outLen, opts)
		if err != nil {
			return nil, countingReader.count, fmt.Errorf("block %d: %w", i, err)
		}
		out = append(out, block)
	}
}
