package wire

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression of CompressBlock.
type Compression uint8

const (
	// CompressionNone stores blocks raw.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, lighter ratio).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

// String returns "none", "lz4" or "zstd".
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

// ErrCorruptBlock is returned by DecompressBlock for a truncated or
// inconsistent block.
var ErrCorruptBlock = errors.New("wire: corrupt block")

// Block layout: [tag uint8][uncompressedSize uint32 LE][data...].
// The tag records the compression actually applied; an incompressible block
// is stored with tag CompressionNone regardless of what was requested, so
// DecompressBlock never needs out-of-band information.
const blockHeaderSize = 5

// ZSTD coder pools; the coders are expensive to construct.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// CompressBlock frames data as a self-describing block, compressing with c.
// If compression does not shrink the data it is stored raw under tag
// CompressionNone.
func CompressBlock(data []byte, c Compression) ([]byte, error) {
	var compressed []byte

	switch c {
	case CompressionNone:
		// Stored raw below.
	case CompressionLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}
		if n > 0 && n < len(data) {
			compressed = buf[:n]
		}
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
		if len(compressed) >= len(data) {
			compressed = nil
		}
	default:
		return nil, errors.New("wire: unknown compression")
	}

	tag := c
	payload := compressed
	if payload == nil {
		tag = CompressionNone
		payload = data
	}

	out := make([]byte, blockHeaderSize+len(payload))
	out[0] = byte(tag)
	binary.LittleEndian.PutUint32(out[1:], uint32(len(data)))
	copy(out[blockHeaderSize:], payload)
	return out, nil
}

// DecompressBlock reverses CompressBlock.
func DecompressBlock(block []byte) ([]byte, error) {
	if len(block) < blockHeaderSize {
		return nil, ErrCorruptBlock
	}
	tag := Compression(block[0])
	size := binary.LittleEndian.Uint32(block[1:])
	payload := block[blockHeaderSize:]

	switch tag {
	case CompressionNone:
		if uint32(len(payload)) != size {
			return nil, ErrCorruptBlock
		}
		out := make([]byte, size)
		copy(out, payload)
		return out, nil
	case CompressionLZ4:
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil || uint32(n) != size {
			return nil, ErrCorruptBlock
		}
		return out, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		out, err := dec.DecodeAll(payload, nil)
		zstdDecoderPool.Put(dec)
		if err != nil || uint32(len(out)) != size {
			return nil, ErrCorruptBlock
		}
		return out, nil
	default:
		return nil, ErrCorruptBlock
	}
}
