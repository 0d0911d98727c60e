package repository

import (
	"context"

	"warta/internal/domain/entity"
	"warta/internal/errors"
)

// ErrPostNotFound is returned when no post matches the lookup.
var ErrPostNotFound = errors.New("post not found")

// PostRepository provides access to blog posts.
type PostRepository interface {
	// Create persists a new post and fills in its generated ID and timestamps.
	Create(ctx context.Context, post *entity.Post) error

	// Merge applies a partial column update to a post. Keys may be entity
	// field names or column names; they are normalized to column names.
	// Every supplied key is written - callers own whitelisting, if any.
	Merge(ctx context.Context, id int64, fields map[string]any) error

	// Delete removes a post row.
	Delete(ctx context.Context, id int64) error

	// FindByID retrieves a post regardless of publication state.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// FindPublishedBySlug retrieves a published post by slug with its author.
	FindPublishedBySlug(ctx context.Context, slug string) (*entity.Post, error)

	// ListAll returns every post, newest first.
	ListAll(ctx context.Context) ([]*entity.Post, error)

	// ListPublished returns published posts with their authors, newest first.
	ListPublished(ctx context.Context) ([]*entity.Post, error)
}
