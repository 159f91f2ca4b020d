// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/biscodec

package lzss

import "github.com/andybalholm/brotli/matchfinder"

// ChecksumMode defines how the 4-byte checksum is computed.
type ChecksumMode int

// Checksum mode constants.
const (
	ChecksumUnsigned ChecksumMode = iota // Sum bytes as uint8 (default for archives).
	ChecksumSigned                       // Sum bytes as int8 (used by some texture formats).
)

// String returns the mode name.
func (m ChecksumMode) String() string {
	switch m {
	case ChecksumUnsigned:
		return "unsigned"
	case ChecksumSigned:
		return "signed"
	default:
		return "invalid"
	}
}

func (m ChecksumMode) valid() bool {
	return m == ChecksumUnsigned || m == ChecksumSigned
}

// Options configures Decompress behavior.
type Options struct {
	// Checksum sets unsigned vs signed checksum.
	Checksum ChecksumMode
	// VerifyChecksum: if true, Decompress returns an error on checksum mismatch.
	// If false, mismatch is ignored (lenient mode for formats with often-bad checksums).
	// The trailer is read in both cases.
	VerifyChecksum bool
}

// DefaultOptions returns options for default behavior: unsigned checksum, strict verification.
func DefaultOptions() *Options {
	return &Options{
		Checksum:       ChecksumUnsigned,
		VerifyChecksum: true,
	}
}

// SignedLenientOptions returns options: signed checksum, do not return error on mismatch.
func SignedLenientOptions() *Options {
	return &Options{
		Checksum:       ChecksumSigned,
		VerifyChecksum: false,
	}
}

// CompressOptions configures compression.
type CompressOptions struct {
	Checksum ChecksumMode

	// NewMatchFinder replaces the built-in binary tree search when set.
	// It is called once per Compress call, so one CompressOptions value can
	// be shared between goroutines. Matches farther than MaxOffset are written
	// as literals, so finders should be limited accordingly
	// (e.g. &matchfinder.M4{MaxDistance: MaxOffset}).
	NewMatchFinder func() matchfinder.MatchFinder
}

// DefaultCompressOptions returns options for default compression (unsigned checksum, tree search).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		Checksum: ChecksumUnsigned,
	}
}
