package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
)

const publicReadACL = "public-read"

// Uploader stores asset content and returns opaque references to it.
// The reference of an object is its key in the bucket.
type Uploader struct {
	client        Client
	bucket        string
	public        bool
	publicBaseURL string
}

// NewUploader creates an uploader for the configured bucket.
func NewUploader(client Client, cfg Config) *Uploader {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, strings.TrimRight(trimScheme(cfg.Endpoint), "/"), cfg.Bucket)
	}
	return &Uploader{
		client:        client,
		bucket:        cfg.Bucket,
		public:        cfg.Public,
		publicBaseURL: base,
	}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (u *Uploader) EnsureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", u.bucket, err)
	}
	if exists {
		return nil
	}
	if err := u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", u.bucket, err)
	}
	return nil
}

// UploadFile stores the local file under objectName and returns its reference.
func (u *Uploader) UploadFile(ctx context.Context, localPath, objectName string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", localPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", localPath, err)
	}

	uploaded, err := u.client.PutObject(ctx, u.bucket, objectName, f, info.Size(), u.putOptions(contentType(localPath)))
	if err != nil {
		return "", fmt.Errorf("upload %s as %s: %w", localPath, objectName, err)
	}
	return referenceOf(uploaded, objectName), nil
}

// UploadBytes stores data under objectName and returns its reference.
func (u *Uploader) UploadBytes(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	uploaded, err := u.client.PutObject(ctx, u.bucket, objectName, bytes.NewReader(data), int64(len(data)), u.putOptions(contentType))
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", objectName, err)
	}
	return referenceOf(uploaded, objectName), nil
}

// PublicURL returns the public download URL of a reference.
func (u *Uploader) PublicURL(ref string) string {
	return u.publicBaseURL + "/" + strings.TrimLeft(ref, "/")
}

func (u *Uploader) putOptions(contentType string) minio.PutObjectOptions {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if u.public {
		opts.UserMetadata = map[string]string{"x-amz-acl": publicReadACL}
	}
	return opts
}

// ObjectName builds "<prefix>/<videoID>_<kind><ext>" with a lowercase extension.
func ObjectName(prefix, videoID, kind, sourcePath string) string {
	name := fmt.Sprintf("%s_%s%s", videoID, kind, strings.ToLower(filepath.Ext(sourcePath)))
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func referenceOf(info minio.UploadInfo, objectName string) string {
	if info.Key != "" {
		return info.Key
	}
	return objectName
}

func contentType(localPath string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(localPath))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
