package lzss

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 10000)
	rng.Read(random)

	smallAlphabet := make([]byte, 20000)
	for i := range smallAlphabet {
		smallAlphabet[i] = "ab "[rng.Intn(3)]
	}

	longDistance := append(append(append([]byte{}, random[:3000]...), random[5000:6500]...), random[:3000]...)

	allBytes := make([]byte, 0, 512)
	for i := 0; i < 512; i++ {
		allBytes = append(allBytes, byte(i))
	}

	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lzss test")},
		{name: "leading-spaces", data: []byte("      spaces reference the filler")},
		{name: "exact-lookahead", data: []byte("0123456789abcdefgh")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "all-bytes", data: allBytes},
		{name: "random", data: random},
		{name: "small-alphabet", data: smallAlphabet},
		{name: "long-distance", data: longDistance},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	modes := []ChecksumMode{ChecksumUnsigned, ChecksumSigned}

	for _, in := range testInputSet() {
		for _, mode := range modes {
			name := fmt.Sprintf("%s/%s", in.name, mode)
			t.Run(name, func(t *testing.T) {
				enc, err := Compress(in.data, &CompressOptions{Checksum: mode})
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}
				if len(enc) < ChecksumSize {
					t.Fatalf("compressed data too short: %d", len(enc))
				}

				dec, err := Decompress(enc, len(in.data), &Options{Checksum: mode, VerifyChecksum: true})
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}
				if !bytes.Equal(dec, in.data) {
					t.Fatalf("round-trip mismatch: got=%d want=%d", len(dec), len(in.data))
				}
			})
		}
	}
}

func TestDecompressNilOptions(t *testing.T) {
	// Nil opts => default (unsigned, strict)
	raw := []byte("hello world")
	enc, err := Compress(raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, len(raw), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw, dec) {
		t.Fatalf("got %q", dec)
	}
}

func TestRoundTripSignedLenient(t *testing.T) {
	input := []byte("signed lenient round trip data here \xff\xfe\x80")
	enc, err := Compress(input, &CompressOptions{Checksum: ChecksumSigned})
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, len(input), SignedLenientOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, dec) {
		t.Fatalf("got %q", dec)
	}
}

func TestOverlappingBackReference(t *testing.T) {
	input := bytes.Repeat([]byte("a"), 128)
	enc, err := Compress(input, nil)
	if err != nil {
		t.Fatal(err)
	}
	// One literal, then runs of 18: far fewer bytes than the input.
	if len(enc) >= len(input)/4 {
		t.Fatalf("run did not compress: %d bytes", len(enc))
	}
	dec, err := Decompress(enc, len(input), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, dec) {
		t.Fatalf("overlap: got %d bytes, want %d; first 16 = %x", len(dec), len(input), dec[:min(16, len(dec))])
	}
}

func TestEmptyInputCompress(t *testing.T) {
	enc, err := Compress(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, []byte{0, 0, 0, 0}) {
		t.Fatalf("want bare trailer, got % x", enc)
	}

	dec, err := Decompress(enc, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(dec) != 0 {
		t.Fatalf("want empty output, got %d bytes", len(dec))
	}
}

func TestCompressKnownStreams(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		mode ChecksumMode
		want []byte
	}{
		{"single-literal", []byte("x"), ChecksumUnsigned, []byte{0x01, 'x', 0x78, 0, 0, 0}},
		{"signed-high-byte", []byte{0xFF}, ChecksumSigned, []byte{0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"unsigned-high-byte", []byte{0xFF}, ChecksumUnsigned, []byte{0x01, 0xFF, 0xFF, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compress(tt.in, &CompressOptions{Checksum: tt.mode})
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got % x, want % x", got, tt.want)
			}
		})
	}
}

// incompressible returns every byte value once except the filler: no 3-byte repeats anywhere.
func incompressible() []byte {
	input := make([]byte, 0, 255)
	for i := 0; i < 256; i++ {
		if i != Filler {
			input = append(input, byte(i))
		}
	}

	return input
}

func TestIncompressibleLayout(t *testing.T) {
	input := incompressible()

	enc, err := Compress(input, nil)
	if err != nil {
		t.Fatal(err)
	}

	groups := (len(input) + FlagBits - 1) / FlagBits
	if want := len(input) + groups + ChecksumSize; len(enc) != want {
		t.Fatalf("compressed size = %d, want %d", len(enc), want)
	}
	for g := 0; g < groups-1; g++ {
		if flag := enc[g*(FlagBits+1)]; flag != 0xFF {
			t.Fatalf("group %d flag = %#x, want all literals", g, flag)
		}
	}

	dec, err := Decompress(enc, len(input), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, dec) {
		t.Fatal("round-trip mismatch")
	}
}

func TestTrailerIsChecksum(t *testing.T) {
	input := bytes.Repeat([]byte("checksum \x90\xa0 trailer "), 50)
	for _, mode := range []ChecksumMode{ChecksumUnsigned, ChecksumSigned} {
		enc, err := Compress(input, &CompressOptions{Checksum: mode})
		if err != nil {
			t.Fatal(err)
		}
		trailer := enc[len(enc)-ChecksumSize:]
		want := Sum(input, mode)
		got := uint32(trailer[0]) | uint32(trailer[1])<<8 | uint32(trailer[2])<<16 | uint32(trailer[3])<<24
		if got != want {
			t.Fatalf("%s: trailer 0x%x, want 0x%x", mode, got, want)
		}
	}
}

func TestInputTooShortDecompress(t *testing.T) {
	_, err := Decompress([]byte{1, 2}, 10, nil)
	if err != ErrInputTooShort {
		t.Fatalf("want ErrInputTooShort, got %v", err)
	}
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("ErrInputTooShort must be a truncation: %v", err)
	}
}

func TestChecksumStrictMismatch(t *testing.T) {
	raw := []byte("x")
	enc, err := Compress(raw, nil)
	if err != nil {
		t.Fatal(err)
	}
	enc[len(enc)-1] ^= 0xFF
	_, err = Decompress(enc, len(raw), DefaultOptions())
	if !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("expected checksum error, got %v", err)
	}
}

func TestChecksumLenientNoError(t *testing.T) {
	raw := []byte("y")
	enc, err := Compress(raw, &CompressOptions{Checksum: ChecksumSigned})
	if err != nil {
		t.Fatal(err)
	}
	enc[len(enc)-1] ^= 0xFF
	dec, err := Decompress(enc, len(raw), SignedLenientOptions())
	if err != nil {
		t.Fatalf("lenient should not error: %v", err)
	}
	if !bytes.Equal(raw, dec) {
		t.Fatalf("got %q", dec)
	}
}

func TestChecksumModeMismatch(t *testing.T) {
	raw := []byte{0x80, 0x81, 0x82}
	enc, err := Compress(raw, &CompressOptions{Checksum: ChecksumSigned})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decompress(enc, len(raw), nil); !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("unsigned decode of signed block: want ErrMalformedStream, got %v", err)
	}
}

func TestFlippedLiteralIsMalformed(t *testing.T) {
	input := incompressible()
	enc, err := Compress(input, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(enc)-ChecksumSize; i++ {
		if i%(FlagBits+1) == 0 {
			continue // flag byte
		}
		bad := append([]byte{}, enc...)
		bad[i] ^= 0x01
		if _, err := Decompress(bad, len(input), nil); !errors.Is(err, ErrMalformedStream) {
			t.Fatalf("flip at %d: want ErrMalformedStream, got %v", i, err)
		}
	}
}

func TestInvalidChecksumMode(t *testing.T) {
	if _, err := Compress([]byte("a"), &CompressOptions{Checksum: ChecksumMode(7)}); !errors.Is(err, ErrInvalidChecksumMode) {
		t.Fatalf("Compress: want ErrInvalidChecksumMode, got %v", err)
	}
	if _, err := Decompress([]byte{0, 0, 0, 0}, 0, &Options{Checksum: ChecksumMode(-1)}); !errors.Is(err, ErrInvalidChecksumMode) {
		t.Fatalf("Decompress: want ErrInvalidChecksumMode, got %v", err)
	}
}

func TestCompressTo(t *testing.T) {
	input := bytes.Repeat([]byte("write me "), 100)
	var buf bytes.Buffer
	n, err := CompressTo(&buf, input, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != buf.Len() {
		t.Fatalf("reported %d bytes, wrote %d", n, buf.Len())
	}

	want, err := Compress(input, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatal("CompressTo output differs from Compress")
	}

	if _, err := CompressTo(nil, input, nil); err != ErrNilWriter {
		t.Fatalf("want ErrNilWriter, got %v", err)
	}
}

func TestCompressDeterministicAcrossPoolReuse(t *testing.T) {
	a := bytes.Repeat([]byte("pool reuse "), 700)
	b := []byte("something else entirely")

	first, err := Compress(a, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Compress(b, &CompressOptions{Checksum: ChecksumSigned}); err != nil {
		t.Fatal(err)
	}
	second, err := Compress(a, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("same input compressed differently after pool reuse")
	}
}

func TestSum(t *testing.T) {
	data := []byte{0x01, 0xFF, 0x80}
	if got := Sum(data, ChecksumUnsigned); got != 0x180 {
		t.Fatalf("unsigned sum = 0x%x", got)
	}
	// 1 - 1 - 128
	if got := Sum(data, ChecksumSigned); got != 0xFFFFFF80 {
		t.Fatalf("signed sum = 0x%x", got)
	}
}
