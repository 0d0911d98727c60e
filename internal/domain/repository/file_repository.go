package repository

import (
	"context"

	"warta/internal/domain/entity"
	"warta/internal/errors"
)

// ErrFileNotFound is returned when no file record matches the lookup.
var ErrFileNotFound = errors.New("file not found")

// FileRepository provides access to stored-file metadata records.
type FileRepository interface {
	// Create persists one metadata record after a successful upload.
	Create(ctx context.Context, file *entity.File) error

	// FindByID retrieves a single file record.
	FindByID(ctx context.Context, id int64) (*entity.File, error)

	// FindByPost returns every file record attached to a post.
	FindByPost(ctx context.Context, postID int64) ([]*entity.File, error)

	// Delete removes a single file record.
	Delete(ctx context.Context, id int64) error

	// DeleteByPost removes all file records attached to a post.
	DeleteByPost(ctx context.Context, postID int64) error
}
