// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/biscodec

package lzss

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to classify; the specialised errors below wrap them.
var (
	// ErrTruncated is returned when input ends before a flag, token or trailer is complete.
	ErrTruncated = errors.New("truncated input")
	// ErrOverflow is returned when a token would produce more bytes than outLen allows.
	ErrOverflow = errors.New("back-reference overruns expected output length")
	// ErrMalformedStream is returned when the computed checksum differs from the trailer.
	ErrMalformedStream = errors.New("malformed stream: checksum mismatch")
)

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrInputTooShort       = fmt.Errorf("%w: not enough data for checksum", ErrTruncated)
	ErrUnexpectedEOF       = fmt.Errorf("%w: unexpected end of input while reading flags", ErrTruncated)
	ErrUnexpectedEOFBit    = fmt.Errorf("%w: unexpected end of input inside flags block", ErrTruncated)
	ErrTrailingData        = errors.New("trailing bytes after lzss block")
	ErrNilReader           = errors.New("reader is nil")
	ErrNilWriter           = errors.New("writer is nil")
	ErrNilOutLenProvider   = errors.New("outLen provider is nil")
	ErrNegativeOutLen      = errors.New("output length must be non-negative")
	ErrInvalidChecksumMode = errors.New("invalid checksum mode")
)
