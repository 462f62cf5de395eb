// Package s3 provides an S3 implementation of the blobstore.Store
// interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("letterbox/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
// # Features
//
//   - Multipart uploads for large word lists
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
