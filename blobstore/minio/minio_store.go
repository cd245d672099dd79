package minio

import (
	"bytes"
	"context"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/bitvec/blobstore"
)

// Store implements blobstore.BlobStore for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

var _ blobstore.BlobStore = (*Store)(nil)

// NewStore creates a new MinIO blob store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "regions/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

type dialOptions struct {
	creds  *credentials.Credentials
	secure bool
	region string
}

// DialOption configures Dial.
type DialOption func(*dialOptions)

// WithStaticCredentials authenticates with a fixed access key pair.
func WithStaticCredentials(accessKey, secretKey string) DialOption {
	return func(o *dialOptions) {
		o.creds = credentials.NewStaticV4(accessKey, secretKey, "")
	}
}

// WithEnvCredentials reads MINIO_ACCESS_KEY/MINIO_SECRET_KEY (or the AWS
// equivalents) from the environment.
func WithEnvCredentials() DialOption {
	return func(o *dialOptions) {
		o.creds = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvMinio{},
			&credentials.EnvAWS{},
		})
	}
}

// WithTLS enables HTTPS.
func WithTLS() DialOption {
	return func(o *dialOptions) {
		o.secure = true
	}
}

// WithRegion sets the bucket region.
func WithRegion(region string) DialOption {
	return func(o *dialOptions) {
		o.region = region
	}
}

// Dial creates a client for endpoint and wraps it in a Store. No request is
// made until the store is used.
func Dial(endpoint, bucket, rootPrefix string, opts ...DialOption) (*Store, error) {
	o := dialOptions{creds: credentials.NewStaticV4("", "", "")}
	for _, opt := range opts {
		opt(&o)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  o.creds,
		Secure: o.secure,
		Region: o.region,
	})
	if err != nil {
		return nil, err
	}
	return NewStore(client, bucket, rootPrefix), nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens an existing blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	// Get object info to verify existence and get size
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, mapNotFound(err)
	}

	return &minioBlob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		size:   info.Size,
	}, nil
}

// Put writes a blob atomically.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:    "application/octet-stream",
		SendContentMd5: true,
	})
	return err
}

// Delete removes a blob.
func (s *Store) Delete(ctx context.Context, name string) error {
	key := s.key(name)
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if mapNotFound(err) == blobstore.ErrNotFound {
			return nil // Already gone
		}
		return err
	}
	return nil
}

// List returns all blob names with the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)

	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    fullPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if name, ok := relativeName(s.prefix, prefix, obj.Key); ok {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// relativeName strips the root prefix from key and keeps it only if it
// falls under prefix.
func relativeName(root, prefix, key string) (string, bool) {
	name := strings.TrimPrefix(key, root)
	name = strings.TrimPrefix(name, "/")
	if name == "" || !strings.HasPrefix(name, prefix) {
		return "", false
	}
	return name, true
}

func mapNotFound(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound":
		return blobstore.ErrNotFound
	}
	return err
}

// minioBlob implements blobstore.Blob for MinIO.
type minioBlob struct {
	client *minio.Client
	bucket string
	key    string
	size   int64
}

func (b *minioBlob) Size() int64 {
	return b.size
}

func (b *minioBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off < 0 || off >= b.size {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	opts := minio.GetObjectOptions{}
	end := off + int64(len(p)) - 1
	if end >= b.size {
		end = b.size - 1
	}
	if err := opts.SetRange(off, end); err != nil {
		return 0, err
	}

	obj, err := b.client.GetObject(ctx, b.bucket, b.key, opts)
	if err != nil {
		return 0, mapNotFound(err)
	}
	defer func() { _ = obj.Close() }()

	want := int(end - off + 1)
	n, err := io.ReadFull(obj, p[:want])
	if err != nil {
		return n, mapNotFound(err)
	}
	if want < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *minioBlob) Close() error {
	return nil
}
