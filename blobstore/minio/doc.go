// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library for compatibility with MinIO and
// other S3-compatible storage systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	store, err := minioblob.Dial("localhost:9000", "my-bucket", "regions/",
//	    minioblob.WithStaticCredentials("minioadmin", "minioadmin"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := store.EnsureBucket(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	err = snapshot.Save(ctx, store, "flags", bits)
//
// An existing *minio.Client can be wrapped with NewStore.
//
// # Features
//
//   - Works with any S3-compatible storage (Ceph, Garage, SeaweedFS)
//   - Range reads for partial fetches
//   - Air-gap friendly (no AWS dependencies required)
package minio
