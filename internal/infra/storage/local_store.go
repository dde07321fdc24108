// Package storage implements file persistence for uploaded pictures and
// permit scans on top of the gocloud.dev blob API. The default bucket is a
// local directory, which keeps single-node deployments self-contained while
// leaving the door open to cloud buckets.
package storage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"palengke/config"
	"palengke/internal/domain/service"
	"palengke/internal/errors"
)

// localStore writes uploads into a file-backed blob bucket. Files are grouped
// by category and renamed with a random stem so concurrent uploads with the
// same original name never collide.
type localStore struct {
	bucket *blob.Bucket
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewLocalStore is the constructor for localStore. The bucket is closed on
// application shutdown.
func NewLocalStore(params Params) (service.FileStore, error) {
	basePath := "uploads"
	if params.Config.Storage != nil && params.Config.Storage.BasePath != "" {
		basePath = params.Config.Storage.BasePath
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create storage base path")
	}

	bucket, err := fileblob.OpenBucket(basePath, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &localStore{bucket: bucket}, nil
}

// Store writes content under the category prefix and returns the blob key.
func (s *localStore) Store(ctx context.Context, category string, filename string, content []byte) (string, error) {
	key := path.Join(path.Clean(category), randomizeName(filename))
	if err := s.bucket.WriteAll(ctx, key, content, nil); err != nil {
		return "", errors.Wrap(err, "failed to write file")
	}

	return key, nil
}

// randomizeName keeps the original extension but replaces the stem with a
// fresh UUID.
func randomizeName(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	return uuid.NewString() + ext
}
