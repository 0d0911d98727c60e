package usecase

import (
	"context"

	"warta/internal/domain/entity"
)

// FileUpload is one inbound multipart file, fully read into memory. The
// upload policy caps sizes well below any buffering concern.
type FileUpload struct {
	Name        string // Client-submitted filename.
	ContentType string // Declared MIME type; validation trusts this header.
	Size        int64
	Data        []byte
}

// SavePostInput carries the CMS post form for both create and full update.
type SavePostInput struct {
	Title       string
	Content     string
	Excerpt     string
	Published   bool
	AuthorID    int64
	CoverImage  *FileUpload   // Optional; nil when no new cover was uploaded.
	Attachments []*FileUpload // Batch; invalid entries are skipped, not fatal.
}

// DashboardOutput summarizes every post for the CMS dashboard.
type DashboardOutput struct {
	Posts     []*entity.Post
	Total     int
	Published int
	Drafts    int
}

// PostDetailOutput is one post with its attached files.
type PostDetailOutput struct {
	Post  *entity.Post
	Files []*entity.File
}

// PostUsecase defines the interface for post management and public reads.
type PostUsecase interface {
	// CreatePost validates the form, processes the optional cover image,
	// stores the post and ingests its attachments.
	CreatePost(ctx context.Context, input SavePostInput) (*entity.Post, error)

	// UpdatePost replaces the form fields of an existing post, regenerating
	// the slug from the title, and ingests any newly uploaded files. An
	// absent cover image leaves the current one in place.
	UpdatePost(ctx context.Context, id int64, input SavePostInput) (*entity.Post, error)

	// MergePost applies a partial field update as submitted. Client keys
	// pass through to columns after name normalization.
	MergePost(ctx context.Context, id int64, fields map[string]any) error

	// DeletePost removes the post, its file records and its stored objects.
	// Storage removal is best effort; record removal is atomic.
	DeletePost(ctx context.Context, id int64) error

	// DeleteFile removes one attachment and its stored object. Deleting a
	// file that no longer exists is not an error.
	DeleteFile(ctx context.Context, fileID int64) error

	// Dashboard returns every post, drafts included, newest first.
	Dashboard(ctx context.Context) (*DashboardOutput, error)

	// PublishedPosts returns published posts with authors, newest first.
	PublishedPosts(ctx context.Context) ([]*entity.Post, error)

	// PostBySlug returns one published post with author and files.
	PostBySlug(ctx context.Context, slug string) (*PostDetailOutput, error)

	// PostByID returns one post regardless of publication state, with files.
	PostByID(ctx context.Context, id int64) (*PostDetailOutput, error)
}
