// Package storage implements the object-storage uploader on a portable
// gocloud.dev bucket (S3, local filesystem or in-memory for tests).
package storage

import (
	"context"
	"log/slog"
	"strings"

	"gocloud.dev/blob"

	// Bucket drivers selectable through the storage.bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	"go.uber.org/fx"

	"warta/config"
	"warta/internal/domain/lifecycle"
	"warta/internal/errors"
	"warta/internal/domain/service"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (service.ObjectStorage, error) {
	if params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl must be configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return newBucketStorage(bucket, params.Config.Storage.PublicBaseURL, params.Logger), nil
}

func newBucketStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) *bucketStorage {
	return &bucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes the buffer once under folder/filename. IfNotExist makes the
// driver reject a second write to the same key, so a generated-name
// collision fails the upload instead of silently replacing the object.
func (s *bucketStorage) Upload(ctx context.Context, data []byte, filename, contentType, folder string) (*service.StoredObject, error) {
	key := folder + "/" + filename

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
		IfNotExist:  true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return nil, errors.Wrap(err, "failed to write object")
	}

	// The write is committed on Close; precondition failures surface here.
	if err := w.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to store object %s", key)
	}

	return &service.StoredObject{
		URL:  s.publicBaseURL + "/" + key,
		Path: key,
	}, nil
}

// Delete removes an object by storage path. Failures are logged and reported
// as false; callers decide whether that is fatal.
func (s *bucketStorage) Delete(ctx context.Context, path string) bool {
	if err := s.bucket.Delete(ctx, path); err != nil {
		s.logger.Warn("Failed to delete stored object",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return false
	}

	return true
}
