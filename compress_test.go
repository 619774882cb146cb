// SPDX-License-Identifier: MIT
// Source: github.com/go-zx0/zx0

package zx0

import (
	"bytes"
	"errors"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, zx0 test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "two-zeros", data: []byte{0x00, 0x00}},
	}
}

func TestCompressDecompress_RoundTripAcrossFlags(t *testing.T) {
	flagSets := []struct {
		name      string
		classic   bool
		backwards bool
	}{
		{name: "v2", classic: false, backwards: false},
		{name: "classic", classic: true, backwards: false},
		{name: "v2-backwards", classic: false, backwards: true},
		{name: "classic-backwards", classic: true, backwards: true},
	}

	for _, in := range testInputSet() {
		for _, fs := range flagSets {
			t.Run(in.name+"/"+fs.name, func(t *testing.T) {
				cmp, _, err := Compress(in.data, &CompressOptions{
					OffsetLimit: OffsetLimitFull,
					Threads:     1,
					Classic:     fs.classic,
					Backwards:   fs.backwards,
				})
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}

				out, err := Decompress(cmp, &DecompressOptions{Classic: fs.classic, Backwards: fs.backwards})
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%q want=%q", out, in.data)
				}
			})
		}
	}
}

func TestCompressDecompress_SkipPassthrough(t *testing.T) {
	data := append([]byte("HEADER--"), bytes.Repeat([]byte("payload"), 200)...)

	cmp, _, err := Compress(data, &CompressOptions{Skip: 8, OffsetLimit: OffsetLimitFull, Threads: 1})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(cmp, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data[8:]) {
		t.Fatalf("skip round-trip mismatch: got=%q want=%q", out, data[8:])
	}
}

func TestCompress_ThreadsDeterminism(t *testing.T) {
	data := bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, 4096)

	single, _, err := Compress(data, &CompressOptions{OffsetLimit: OffsetLimitFull, Threads: 1})
	if err != nil {
		t.Fatalf("Compress threads=1 failed: %v", err)
	}

	for _, threads := range []int{2, 3, 4, 8} {
		multi, _, err := Compress(data, &CompressOptions{OffsetLimit: OffsetLimitFull, Threads: threads})
		if err != nil {
			t.Fatalf("Compress threads=%d failed: %v", threads, err)
		}
		if !bytes.Equal(single, multi) {
			t.Fatalf("threads=%d output differs from single-threaded output", threads)
		}
	}
}

func TestCompress_QuickVsFullOffsetLimit(t *testing.T) {
	data := bytes.Repeat([]byte("needle-in-a-haystack-of-redundant-bytes"), 300)

	quick, _, err := Compress(data, &CompressOptions{OffsetLimit: OffsetLimitQuick, Threads: 1})
	if err != nil {
		t.Fatalf("Compress quick failed: %v", err)
	}
	full, _, err := Compress(data, &CompressOptions{OffsetLimit: OffsetLimitFull, Threads: 1})
	if err != nil {
		t.Fatalf("Compress full failed: %v", err)
	}

	if len(full) > len(quick) {
		t.Fatalf("full offset range should never compress worse than quick: full=%d quick=%d", len(full), len(quick))
	}
}

func TestCompress_SelfOverlappingRun(t *testing.T) {
	data := bytes.Repeat([]byte{0x00}, 1000)

	cmp, _, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(cmp, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch for 1000 zero bytes")
	}
}

func TestCompress_ZerosOutputSizeBound(t *testing.T) {
	data := bytes.Repeat([]byte{0x00}, 1024)

	cmp, _, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if len(cmp) > 10 {
		t.Fatalf("expected compressed size <= 10 bytes for 1024 zeros, got %d", len(cmp))
	}

	out, err := Decompress(cmp, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch for 1024 zeros")
	}
}

func TestCompress_SingleByteScenario(t *testing.T) {
	cmp, _, err := Compress([]byte("A"), &CompressOptions{OffsetLimit: OffsetLimitFull, Threads: 1, Classic: true})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// A single literal byte has no indicator bit on the wire at all: emit
	// primes backtrack=true before the first token, so its leading bit is
	// absorbed rather than physically written. The stream's first bit is
	// the literal-length Elias-gamma code's own terminator bit (1, since
	// length=1 needs no continuation), immediately followed by the
	// end-marker's indicator bit and its 17-bit code.
	want := []byte{0xC0, 0x41, 0x00, 0x20}
	if !bytes.Equal(cmp, want) {
		t.Fatalf("unexpected compressed bytes: got=%08b want=%08b", cmp, want)
	}

	out, err := Decompress(cmp, &DecompressOptions{Classic: true})
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if string(out) != "A" {
		t.Fatalf("round-trip mismatch: got=%q want=%q", out, "A")
	}
}

func TestCompress_ErrorCases(t *testing.T) {
	if _, _, err := Compress(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if _, _, err := Compress([]byte("ab"), &CompressOptions{Skip: -1}); !errors.Is(err, ErrInvalidSkip) {
		t.Fatalf("expected ErrInvalidSkip for negative skip, got %v", err)
	}
	if _, _, err := Compress([]byte("ab"), &CompressOptions{Skip: 2}); !errors.Is(err, ErrInvalidSkip) {
		t.Fatalf("expected ErrInvalidSkip for skip == len, got %v", err)
	}
	if _, _, err := Compress([]byte("ab"), &CompressOptions{Threads: -1}); !errors.Is(err, ErrInvalidThreads) {
		t.Fatalf("expected ErrInvalidThreads, got %v", err)
	}
	if _, err := Decompress(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput from Decompress, got %v", err)
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte("hello world"), uint8(1), false, false)
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(4), true, false)
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(2), false, true)
	f.Add([]byte{0x00, 0x00}, uint8(1), true, true)

	f.Fuzz(func(t *testing.T, data []byte, threads uint8, classic, backwards bool) {
		if len(data) == 0 {
			return
		}
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, _, err := Compress(data, &CompressOptions{
			Threads:   int(threads%8) + 1,
			Classic:   classic,
			Backwards: backwards,
		})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp, &DecompressOptions{Classic: classic, Backwards: backwards})
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d bytes want=%d bytes", len(out), len(data))
		}
	})
}
