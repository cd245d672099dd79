package s3

import (
	"context"
	"errors"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/hupe1980/bitvec/blobstore"
)

// ErrConflict is returned by PutIfNotExists when the object already exists.
var ErrConflict = errors.New("s3: object already exists")

type options struct {
	prefix   string
	region   string
	endpoint string
	upload   UploadConfig
}

// Option configures a Store.
type Option func(*options)

// WithPrefix sets the key prefix prepended to every blob name (New only).
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithRegion overrides the region from the shared AWS config (New only).
func WithRegion(region string) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithEndpoint points the client at an S3-compatible endpoint and switches
// to path-style addressing (New only).
func WithEndpoint(url string) Option {
	return func(o *options) {
		o.endpoint = url
	}
}

// WithUploadConfig replaces DefaultUploadConfig.
func WithUploadConfig(cfg UploadConfig) Option {
	return func(o *options) {
		o.upload = cfg
	}
}

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client   Client
	bucket   string
	prefix   string
	upload   UploadConfig
	uploader *manager.Uploader
}

var _ blobstore.BlobStore = (*Store)(nil)

// New creates a Store from the default AWS configuration chain
// (environment, shared config files, instance roles).
func New(ctx context.Context, bucket string, optFns ...Option) (*Store, error) {
	opts := options{upload: DefaultUploadConfig()}
	for _, fn := range optFns {
		fn(&opts)
	}

	var loadOpts []func(*config.LoadOptions) error
	if opts.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.endpoint != "" {
			o.BaseEndpoint = aws.String(opts.endpoint)
			o.UsePathStyle = true
		}
	})
	return NewStore(client, bucket, opts.prefix, WithUploadConfig(opts.upload)), nil
}

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "regions/").
func NewStore(client Client, bucket, rootPrefix string, optFns ...Option) *Store {
	opts := options{upload: DefaultUploadConfig()}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{
		client:   client,
		bucket:   bucket,
		prefix:   rootPrefix,
		upload:   opts.upload,
		uploader: newUploader(client, opts.upload),
	}
}

func joinKey(prefix, name string) string {
	return path.Join(prefix, name)
}

func (s *Store) key(name string) string {
	return joinKey(s.prefix, name)
}

// Open opens a blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	return openBlob(ctx, s.client, s.bucket, s.key(name))
}

// Put writes a blob. Blobs larger than the part size go through a multipart
// upload; S3 makes the object visible only once the upload completes.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	if s.upload.PartSize > 0 && int64(len(data)) > s.upload.PartSize {
		return putMultipart(ctx, s.uploader, s.bucket, s.key(name), data, s.upload.EnableChecksum)
	}
	return putSingle(ctx, s.client, s.bucket, s.key(name), data, s.upload.EnableChecksum, false)
}

// PutIfNotExists writes a blob only if it doesn't already exist, using a
// conditional write. Returns ErrConflict if the key already exists.
func (s *Store) PutIfNotExists(ctx context.Context, name string, data []byte) error {
	err := putSingle(ctx, s.client, s.bucket, s.key(name), data, s.upload.EnableChecksum, true)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			code := apiErr.ErrorCode()
			if code == "PreconditionFailed" || code == "ConditionalRequestConflict" {
				return ErrConflict
			}
		}
		return err
	}
	return nil
}

// Delete removes a blob.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	return mapNotFoundToNil(err)
}

// List returns all blob names with the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	return listObjects(ctx, s.client, s.bucket, s.prefix, prefix)
}

func mapNotFoundToNil(err error) error {
	if err == nil || errors.Is(mapNotFound(err), blobstore.ErrNotFound) {
		return nil
	}
	return err
}
