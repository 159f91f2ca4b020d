/*
Package lzss implements LZSS:8bit compression and decompression.

Format: one flag byte per 8 slots, consumed LSB first; bit 1 = literal (1 byte), bit 0 = pointer (2 bytes).
Pointer: 12-bit backward offset from the window cursor, 4-bit length nibble; length = nibble+3 -> 3..18 bytes.
Sliding window: 4096 bytes, initially filled with 0x20 so offsets before start of output read the filler.
Trailing 4-byte little-endian checksum: sum of all output bytes as uint8 (unsigned) or int8 (signed).
The trailer is present on every block, an empty block is the trailer alone.

The decompressed size is not stored in the stream; callers pass it as outLen.
Errors are classified by ErrTruncated, ErrOverflow and ErrMalformedStream (use errors.Is).

Compress uses a binary search tree over window positions to find the longest match.
Set CompressOptions.NewMatchFinder to drive the same format from any matchfinder.MatchFinder
(github.com/andybalholm/brotli/matchfinder); TokenEncoder is the matching matchfinder.Encoder.

Use Decompress(src, outLen, opts) with nil for default (unsigned, strict checksum).
Use DecompressBlock(src, outLen, opts) to decode from the beginning of src and get consumed bytes.
Use DecompressFromReader(r, outLen, opts) to decode one block from a stream without reading to EOF.
Use DecompressNFromReader(r, outLens, opts) to decode multiple blocks with known output sizes.
Use DecompressUntilEOF(r, nextOutLen, opts) when output size is provided by a callback.
Use SignedLenientOptions() for formats that use signed checksum and ignore mismatch.

# Examples

Decompress with default options (unsigned checksum, strict):

	out, err := lzss.Decompress(encoded, expectedLen, nil)
	if err != nil {
		return err
	}

Decompress one block from a byte stream and continue from current stream position:

	out, consumed, err := lzss.DecompressFromReader(r, expectedLen, nil)
	if err != nil {
		return err
	}
	_ = consumed

Decompress multiple blocks from a stream with known output sizes:

	out, consumed, err := lzss.DecompressNFromReader(r, []int{lenA, lenB}, nil)
	if err != nil {
		return err
	}
	_ = consumed
	_ = out

Round-trip compress and decompress:

	enc, err := lzss.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzss.Decompress(enc, len(data), nil)
	if err != nil {
		return err
	}
	// dec equals data

Compress with a hash-chain match finder instead of the tree:

	copts := &lzss.CompressOptions{
		NewMatchFinder: func() matchfinder.MatchFinder {
			return &matchfinder.M4{MaxDistance: lzss.MaxOffset}
		},
	}
	enc, err := lzss.Compress(data, copts)

Decompress with signed checksum and skip verification (lenient):

	opts := lzss.SignedLenientOptions()
	out, err := lzss.Decompress(src, outLen, opts)
*/
package lzss
