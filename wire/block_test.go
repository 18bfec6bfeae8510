package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hupe1980/ieee754/testutil"
)

func TestCompressBlockRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(8)

	// A compressible payload (repeated runs) and an incompressible one
	// (random bit patterns).
	compressible := bytes.Repeat([]byte("binary64binary64"), 512)
	random := AppendFloat64Slice(nil, rng.BitPatterns64(1024), LittleEndian)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		for _, data := range [][]byte{compressible, random, nil, {0x42}} {
			block, err := CompressBlock(data, c)
			if err != nil {
				t.Fatalf("%v: %v", c, err)
			}

			got, err := DecompressBlock(block)
			if err != nil {
				t.Fatalf("%v: %v", c, err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("%v: payload not preserved (%d bytes in, %d out)", c, len(data), len(got))
			}
		}
	}
}

func TestCompressBlockShrinksRuns(t *testing.T) {
	data := bytes.Repeat([]byte{0}, 1<<16)

	for _, c := range []Compression{CompressionLZ4, CompressionZSTD} {
		block, err := CompressBlock(data, c)
		if err != nil {
			t.Fatal(err)
		}
		if len(block) >= len(data) {
			t.Fatalf("%v: %d-byte zero run compressed to %d bytes", c, len(data), len(block))
		}
	}
}

func TestDecompressBlockCorrupt(t *testing.T) {
	cases := map[string][]byte{
		"empty":       {},
		"short":       {byte(CompressionZSTD), 0x00, 0x01},
		"unknown tag": {0xFF, 0x00, 0x00, 0x00, 0x00},
	}
	for name, block := range cases {
		if _, err := DecompressBlock(block); !errors.Is(err, ErrCorruptBlock) {
			t.Fatalf("%s: err = %v", name, err)
		}
	}

	// A valid block with its compressed payload truncated.
	block, err := CompressBlock(bytes.Repeat([]byte("abc"), 1000), CompressionZSTD)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecompressBlock(block[:len(block)-3]); err == nil {
		t.Fatal("truncated payload must not decompress")
	}
}

func TestCompressBlockUnknown(t *testing.T) {
	if _, err := CompressBlock([]byte("x"), Compression(99)); err == nil {
		t.Fatal("unknown compression must fail")
	}
}

func TestCompressionString(t *testing.T) {
	if CompressionNone.String() != "none" ||
		CompressionLZ4.String() != "lz4" ||
		CompressionZSTD.String() != "zstd" {
		t.Fatal("compression names")
	}
}
