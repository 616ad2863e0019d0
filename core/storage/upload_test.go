package storage_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"asset-sync/core/storage"
	"asset-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() storage.Config {
	return storage.Config{
		Endpoint: "http://localhost:9000",
		Bucket:   "assets",
		Public:   true,
	}
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "assets/v1_infographic.png", storage.ObjectName("assets", "v1", "infographic", "dir/Title.PNG"))
	assert.Equal(t, "v1_mindmap.jpg", storage.ObjectName("", "v1", "mindmap", "Title.jpg"))
	assert.Equal(t, "a/b/v1_mindmap.jpeg", storage.ObjectName("/a/b/", "v1", "mindmap", "x.jpeg"))
}

func TestUploader_UploadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "The Five Pillars of Stoicism.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "assets", "assets/v1_infographic.png", mock.Anything, int64(9),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "image/png" && opts.UserMetadata["x-amz-acl"] == "public-read"
		})).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			assert.NoError(t, err)
			assert.Equal(t, "png-bytes", string(data))
		}).
		Return(minio.UploadInfo{Bucket: "assets", Key: "assets/v1_infographic.png"}, nil)

	uploader := storage.NewUploader(client, testConfig())
	ref, err := uploader.UploadFile(context.Background(), path, "assets/v1_infographic.png")
	require.NoError(t, err)
	assert.Equal(t, "assets/v1_infographic.png", ref)
	client.AssertExpectations(t)
}

func TestUploader_UploadFilePrivate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpg"), 0o644))

	cfg := testConfig()
	cfg.Public = false

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "assets", "k.jpg", mock.Anything, int64(3),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			_, acl := opts.UserMetadata["x-amz-acl"]
			return opts.ContentType == "image/jpeg" && !acl
		})).
		Return(minio.UploadInfo{}, nil)

	ref, err := storage.NewUploader(client, cfg).UploadFile(context.Background(), path, "k.jpg")
	require.NoError(t, err)
	assert.Equal(t, "k.jpg", ref, "object name is the fallback reference")
}

func TestUploader_UploadFileErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		client := new(mocks.Client)
		_, err := storage.NewUploader(client, testConfig()).UploadFile(context.Background(), "/nonexistent/x.png", "x.png")
		assert.Error(t, err)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("PutFails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a.png")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "assets", "a.png", mock.Anything, int64(1), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("access denied"))

		_, err := storage.NewUploader(client, testConfig()).UploadFile(context.Background(), path, "a.png")
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestUploader_UploadBytes(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "assets", "assets_mapping.json", mock.Anything, int64(2),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
		Return(minio.UploadInfo{Key: "assets_mapping.json"}, nil)

	ref, err := storage.NewUploader(client, testConfig()).UploadBytes(context.Background(), "assets_mapping.json", []byte("{}"), "application/json")
	require.NoError(t, err)
	assert.Equal(t, "assets_mapping.json", ref)
}

func TestUploader_EnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(true, nil)

		assert.NoError(t, storage.NewUploader(client, testConfig()).EnsureBucket(context.Background()))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "assets", mock.Anything).Return(nil)

		assert.NoError(t, storage.NewUploader(client, testConfig()).EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "assets").Return(false, errors.New("dial tcp"))

		assert.ErrorContains(t, storage.NewUploader(client, testConfig()).EnsureBucket(context.Background()), "dial tcp")
	})
}

func TestUploader_PublicURL(t *testing.T) {
	uploader := storage.NewUploader(new(mocks.Client), testConfig())
	assert.Equal(t, "http://localhost:9000/assets/assets/v1_infographic.png", uploader.PublicURL("assets/v1_infographic.png"))

	cfg := testConfig()
	cfg.UseSSL = true
	cfg.Endpoint = "s3.amazonaws.com"
	assert.Equal(t, "https://s3.amazonaws.com/assets/x.png", storage.NewUploader(new(mocks.Client), cfg).PublicURL("x.png"))

	cfg.PublicBaseURL = "https://cdn.example.com/"
	assert.Equal(t, "https://cdn.example.com/x.png", storage.NewUploader(new(mocks.Client), cfg).PublicURL("/x.png"))
}
