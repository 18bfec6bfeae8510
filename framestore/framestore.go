// Package framestore persists encoded float arrays as named, immutable
// frames on a blobstore.BlobStore. A frame is self-describing: a fixed
// header records the interchange format, byte order and element count, and
// the payload is the wire slice encoding, optionally block-compressed.
// Batch writes and reads fan out over a bounded errgroup and can be
// rate-limited for shared object stores.
package framestore

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/ieee754"
	"github.com/hupe1980/ieee754/blobstore"
	"github.com/hupe1980/ieee754/wire"
)

var (
	// ErrCorruptFrame is returned when a blob is not a valid frame.
	ErrCorruptFrame = errors.New("framestore: corrupt frame")
	// ErrFormatMismatch is returned when a frame holds a different
	// interchange format than the read call expects.
	ErrFormatMismatch = errors.New("framestore: format mismatch")
)

// Frame header layout:
//
//	magic   [4]byte "IEFR"
//	version uint8
//	format  uint8 (frameBinary64 | frameBinary32)
//	order   uint8 (wire.ByteOrder)
//	count   uint64 LE
//
// followed by a wire block (see wire.CompressBlock) holding the slice
// encoding.
const (
	frameMagic   = "IEFR"
	frameVersion = 1
	headerSize   = 4 + 1 + 1 + 1 + 8

	frameBinary64 = 0
	frameBinary32 = 1
)

// Option configures an Archive.
type Option func(*Archive)

// WithByteOrder sets the byte order of written frames. Default little.
func WithByteOrder(o wire.ByteOrder) Option {
	return func(a *Archive) { a.order = o }
}

// WithCompression sets the block compression of written frames. Default
// none.
func WithCompression(c wire.Compression) Option {
	return func(a *Archive) { a.compression = c }
}

// WithConcurrency bounds the goroutines used by WriteFrames and ReadFrames.
// Default 4.
func WithConcurrency(n int) Option {
	return func(a *Archive) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithRateLimit caps batch operations at roughly framesPerSecond store
// calls. Zero (the default) means unlimited.
func WithRateLimit(framesPerSecond float64) Option {
	return func(a *Archive) {
		if framesPerSecond > 0 {
			a.limiter = rate.NewLimiter(rate.Limit(framesPerSecond), 1)
		}
	}
}

// WithLogger sets the logger for batch operations. Default discards.
func WithLogger(l *ieee754.Logger) Option {
	return func(a *Archive) {
		if l != nil {
			a.logger = l
		}
	}
}

// Archive reads and writes frames on a blob store.
type Archive struct {
	store       blobstore.BlobStore
	order       wire.ByteOrder
	compression wire.Compression
	concurrency int
	limiter     *rate.Limiter
	logger      *ieee754.Logger
}

// New creates an Archive on store.
func New(store blobstore.BlobStore, opts ...Option) *Archive {
	a := &Archive{
		store:       store,
		order:       wire.LittleEndian,
		compression: wire.CompressionNone,
		concurrency: 4,
		logger:      ieee754.NoopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Archive) encodeFrame(format byte, count int, payload []byte) ([]byte, error) {
	block, err := wire.CompressBlock(payload, a.compression)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, headerSize+len(block))
	buf = append(buf, frameMagic...)
	buf = append(buf, frameVersion, format, byte(a.order))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(count))
	return append(buf, block...), nil
}

// parseFrame validates the header and returns the decompressed payload, the
// frame's byte order and its element count.
func parseFrame(data []byte, wantFormat byte) ([]byte, wire.ByteOrder, int, error) {
	if len(data) < headerSize || string(data[:4]) != frameMagic {
		return nil, 0, 0, ErrCorruptFrame
	}
	if data[4] != frameVersion {
		return nil, 0, 0, fmt.Errorf("%w: unsupported version %d", ErrCorruptFrame, data[4])
	}
	if data[5] != wantFormat {
		return nil, 0, 0, ErrFormatMismatch
	}
	order := wire.ByteOrder(data[6])
	if order != wire.LittleEndian && order != wire.BigEndian {
		return nil, 0, 0, ErrCorruptFrame
	}
	count := binary.LittleEndian.Uint64(data[7:])

	payload, err := wire.DecompressBlock(data[headerSize:])
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: %v", ErrCorruptFrame, err)
	}
	return payload, order, int(count), nil
}

// WriteFrame writes values as a binary64 frame under name.
func (a *Archive) WriteFrame(ctx context.Context, name string, values []float64) error {
	payload, err := wire.EncodeFloat64SliceParallel(values, a.order, a.concurrency)
	if err != nil {
		return err
	}
	frame, err := a.encodeFrame(frameBinary64, len(values), payload)
	if err != nil {
		return err
	}
	return a.store.Put(ctx, name, frame)
}

// ReadFrame reads the binary64 frame under name.
func (a *Archive) ReadFrame(ctx context.Context, name string) ([]float64, error) {
	data, err := a.readBlob(ctx, name)
	if err != nil {
		return nil, err
	}
	payload, order, count, err := parseFrame(data, frameBinary64)
	if err != nil {
		return nil, fmt.Errorf("frame %q: %w", name, err)
	}
	values, err := wire.DecodeFloat64SliceParallel(payload, order, a.concurrency)
	if err != nil {
		return nil, fmt.Errorf("frame %q: %w", name, err)
	}
	if len(values) != count {
		return nil, fmt.Errorf("frame %q: %w: header says %d values, payload holds %d",
			name, ErrCorruptFrame, count, len(values))
	}
	return values, nil
}

// WriteFrame32 writes values as a binary32 frame under name.
func (a *Archive) WriteFrame32(ctx context.Context, name string, values []float32) error {
	payload, err := wire.EncodeFloat32SliceParallel(values, a.order, a.concurrency)
	if err != nil {
		return err
	}
	frame, err := a.encodeFrame(frameBinary32, len(values), payload)
	if err != nil {
		return err
	}
	return a.store.Put(ctx, name, frame)
}

// ReadFrame32 reads the binary32 frame under name.
func (a *Archive) ReadFrame32(ctx context.Context, name string) ([]float32, error) {
	data, err := a.readBlob(ctx, name)
	if err != nil {
		return nil, err
	}
	payload, order, count, err := parseFrame(data, frameBinary32)
	if err != nil {
		return nil, fmt.Errorf("frame %q: %w", name, err)
	}
	values, err := wire.DecodeFloat32SliceParallel(payload, order, a.concurrency)
	if err != nil {
		return nil, fmt.Errorf("frame %q: %w", name, err)
	}
	if len(values) != count {
		return nil, fmt.Errorf("frame %q: %w: header says %d values, payload holds %d",
			name, ErrCorruptFrame, count, len(values))
	}
	return values, nil
}

func (a *Archive) readBlob(ctx context.Context, name string) ([]byte, error) {
	blob, err := a.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()
	return blobstore.ReadAll(blob)
}

func (a *Archive) wait(ctx context.Context) error {
	if a.limiter == nil {
		return nil
	}
	return a.limiter.Wait(ctx)
}

// WriteFrames writes all frames concurrently. It stops at the first error;
// frames already written are not rolled back.
func (a *Archive) WriteFrames(ctx context.Context, frames map[string][]float64) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for name, values := range frames {
		g.Go(func() error {
			if err := a.wait(ctx); err != nil {
				return err
			}
			if err := a.WriteFrame(ctx, name, values); err != nil {
				return fmt.Errorf("write frame %q: %w", name, err)
			}
			a.logger.Debug("frame written", "name", name, "values", len(values))
			return nil
		})
	}
	return g.Wait()
}

// ReadFrames reads the named binary64 frames concurrently.
func (a *Archive) ReadFrames(ctx context.Context, names []string) (map[string][]float64, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	results := make([]([]float64), len(names))
	for i, name := range names {
		g.Go(func() error {
			if err := a.wait(ctx); err != nil {
				return err
			}
			values, err := a.ReadFrame(ctx, name)
			if err != nil {
				return err
			}
			results[i] = values
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]float64, len(names))
	for i, name := range names {
		out[name] = results[i]
	}
	return out, nil
}

// List returns the sorted frame names with the given prefix.
func (a *Archive) List(ctx context.Context, prefix string) ([]string, error) {
	return a.store.List(ctx, prefix)
}

// Delete removes the frame under name.
func (a *Archive) Delete(ctx context.Context, name string) error {
	return a.store.Delete(ctx, name)
}
