// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("regions/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	err = snapshot.Save(ctx, store, "flags", bits)
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Managed multipart uploads for large records
//   - CRC32C integrity checksums on upload
//   - Conditional create (PutIfNotExists)
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
