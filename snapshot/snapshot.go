package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/blobstore"
	"github.com/hupe1980/bitvec/codec"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/resource"
	"github.com/hupe1980/bitvec/store"
)

// Save writes the bits of s to key. The region is compacted first, so any
// head offset is dropped.
func Save[O order.Cursor, T store.Word](ctx context.Context, bs blobstore.BlobStore, key string, s bitvec.Slice[O, T], opts ...Option) (err error) {
	o := apply(opts)
	start := time.Now()
	var size int
	defer func() {
		o.metrics.RecordSnapshotSave(size, time.Since(start), err)
		o.logger.LogSnapshot(ctx, "save", key, uint64(s.Len()), err)
	}()

	payload, err := o.codec.Marshal(bitvec.ToRecord(s))
	if err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", key, err)
	}

	size = envelopeSize(o.codec.Name(), payload)
	mem := int64(size)
	if err := o.controller.AcquireMemory(ctx, mem); err != nil {
		return err
	}
	defer o.controller.ReleaseMemory(mem)

	// The envelope is staged through the IO limiter before the upload.
	var buf bytes.Buffer
	buf.Grow(size)
	w := resource.NewRateLimitedWriter(ctx, &buf, o.controller)
	if err := writeEnvelope(w, store.Bits[T](), o.codec.Name(), payload); err != nil {
		return err
	}
	if err := bs.Put(ctx, key, buf.Bytes()); err != nil {
		return fmt.Errorf("snapshot: put %s: %w", key, err)
	}
	return nil
}

// Load reads the region saved under key. The returned region owns a fresh
// cell buffer.
//
// Load fails with blobstore.ErrNotFound if key does not exist, and with
// *ErrCellWidth if it was saved with a different cell type.
func Load[O order.Cursor, T store.Word](ctx context.Context, bs blobstore.BlobStore, key string, opts ...Option) (s bitvec.Slice[O, T], err error) {
	o := apply(opts)
	start := time.Now()
	var size int
	defer func() {
		o.metrics.RecordSnapshotLoad(size, time.Since(start), err)
		o.logger.LogSnapshot(ctx, "load", key, uint64(s.Len()), err)
	}()

	data, err := read(ctx, bs, key, o)
	if err != nil {
		return bitvec.Slice[O, T]{}, err
	}
	size = len(data)

	h, payload, err := decode(data)
	if err != nil {
		return bitvec.Slice[O, T]{}, fmt.Errorf("snapshot: %s: %w", key, err)
	}
	if want := store.Bits[T](); h.CellBits != want {
		return bitvec.Slice[O, T]{}, &ErrCellWidth{Want: want, Got: h.CellBits}
	}

	c, ok := codec.ByName(h.Codec)
	if !ok {
		return bitvec.Slice[O, T]{}, &ErrUnknownCodec{Name: h.Codec}
	}

	var rec bitvec.Record[T]
	if err := c.Unmarshal(payload, &rec); err != nil {
		return bitvec.Slice[O, T]{}, fmt.Errorf("snapshot: decode %s: %w", key, err)
	}
	return bitvec.FromRecord[O](rec, bitvec.WithAccess(o.mode))
}

func read(ctx context.Context, bs blobstore.BlobStore, key string, o options) ([]byte, error) {
	blob, err := bs.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer func() { _ = blob.Close() }()

	mem := blob.Size()
	if err := o.controller.AcquireMemory(ctx, mem); err != nil {
		return nil, err
	}
	defer o.controller.ReleaseMemory(mem)

	if o.controller == nil {
		return blobstore.ReadAll(ctx, blob)
	}

	buf := make([]byte, mem)
	r := resource.NewRateLimitedReader(ctx, blobstore.NewReader(ctx, blob), o.controller)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", key, err)
	}
	return buf, nil
}

// Stat reads the envelope header of key without fetching the payload.
func Stat(ctx context.Context, bs blobstore.BlobStore, key string) (Header, error) {
	blob, err := bs.Open(ctx, key)
	if err != nil {
		return Header{}, err
	}
	defer func() { _ = blob.Close() }()

	buf := make([]byte, min(blob.Size(), headerSize+255))
	n, err := blob.ReadAt(ctx, buf, 0)
	if err != nil && !(errors.Is(err, io.EOF) && n == len(buf)) {
		return Header{}, err
	}
	h, _, err := parseHeader(buf[:n])
	if err != nil {
		return h, fmt.Errorf("snapshot: %s: %w", key, err)
	}
	return h, nil
}
