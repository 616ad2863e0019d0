// Package storage uploads synced assets to S3-compatible object storage.
//
// It wraps the MinIO Go client behind the small Client interface (mocked in
// core/storage/mocks) and adds an Uploader that turns local files into opaque
// references. The reference of an upload is its object key; PublicURL turns it into
// a download URL. Objects are written with the public-read canned ACL when the
// storage is configured as public.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	uploader := storage.NewUploader(client, cfg.Storage)
//	ref, err := uploader.UploadFile(ctx, "public/infographics/Title.png",
//	    storage.ObjectName("assets", "v1", "infographic", "Title.png"))
package storage
