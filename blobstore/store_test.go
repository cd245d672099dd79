package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader caps every read so the sequential reader has to loop.
type chunkReader struct {
	r io.Reader
}

func (c chunkReader) Read(p []byte) (int, error) {
	return c.r.Read(p[:min(len(p), 3)])
}

func TestReader(t *testing.T) {
	ctx := context.Background()
	for name, store := range map[string]BlobStore{
		"memory": NewMemoryStore(),
		"local":  NewLocalStore(t.TempDir()),
	} {
		t.Run(name, func(t *testing.T) {
			data := []byte("sequential blob reader")
			require.NoError(t, store.Put(ctx, "r", data))
			require.NoError(t, store.Put(ctx, "empty", nil))

			blob, err := store.Open(ctx, "r")
			require.NoError(t, err)
			defer blob.Close()

			got, err := io.ReadAll(chunkReader{NewReader(ctx, blob)})
			require.NoError(t, err)
			assert.Equal(t, data, got)

			empty, err := store.Open(ctx, "empty")
			require.NoError(t, err)
			defer empty.Close()

			n, err := NewReader(ctx, empty).Read(make([]byte, 4))
			assert.Zero(t, n)
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}
