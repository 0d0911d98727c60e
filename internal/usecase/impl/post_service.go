package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"

	deliverycontext "warta/internal/delivery/context"
	"warta/internal/domain/entity"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/repository"
	"warta/internal/domain/service"
	"warta/internal/domain/upload"
	"warta/internal/usecase"
	"warta/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	fileRepo  repository.FileRepository
	storage   service.ObjectStorage
	ingest    *IngestPipeline
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	FileRepo  repository.FileRepository
	Storage   service.ObjectStorage
	Ingest    *IngestPipeline
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		fileRepo:  params.FileRepo,
		storage:   params.Storage,
		ingest:    params.Ingest,
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost validates the form, processes the optional cover image, stores
// the post and ingests its attachments.
func (srv *postService) CreatePost(ctx context.Context, input usecase.SavePostInput) (*entity.Post, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.ErrMissingTitleOrContent
	}

	coverURL, err := srv.processCover(ctx, input.CoverImage)
	if err != nil {
		return nil, err
	}

	authorID := input.AuthorID
	post := &entity.Post{
		Title:      input.Title,
		Slug:       util.Slugify(input.Title),
		Excerpt:    optionalString(input.Excerpt),
		Content:    input.Content,
		CoverImage: coverURL,
		Published:  input.Published,
		AuthorID:   &authorID,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.String("slug", post.Slug), slog.Any("error", err))

		return nil, err
	}

	srv.ingest.IngestAttachments(ctx, srv.fileRepo, post.ID, input.Attachments)

	srv.log(ctx).Info("Post created", slog.Int64("postID", post.ID), slog.String("slug", post.Slug))

	return post, nil
}

// UpdatePost replaces the form fields of an existing post and ingests any
// newly uploaded files. The slug is regenerated from the submitted title.
func (srv *postService) UpdatePost(ctx context.Context, id int64, input usecase.SavePostInput) (*entity.Post, error) {
	if _, err := srv.findPost(ctx, id); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, domainerrors.ErrMissingTitleOrContent
	}

	coverURL, err := srv.processCover(ctx, input.CoverImage)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"title":      input.Title,
		"slug":       util.Slugify(input.Title),
		"excerpt":    optionalString(input.Excerpt),
		"content":    input.Content,
		"published":  input.Published,
		"updated_at": time.Now(),
	}
	// An absent cover upload keeps the existing cover image.
	if coverURL != nil {
		fields["cover_image"] = *coverURL
	}

	if err := srv.postRepo.Merge(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, err
	}

	srv.ingest.IngestAttachments(ctx, srv.fileRepo, id, input.Attachments)

	return srv.findPost(ctx, id)
}

// MergePost applies a partial field update as submitted by the client.
// Submitted keys pass through to columns after name normalization; the
// update timestamp is bumped even when the body carries no fields at all.
func (srv *postService) MergePost(ctx context.Context, id int64, fields map[string]any) error {
	merged := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		merged[key] = value
	}
	merged["updated_at"] = time.Now()

	if err := srv.postRepo.Merge(ctx, id, merged); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return err
	}

	return nil
}

// DeletePost removes the post, its file records and its stored objects.
// Storage removal is best effort and happens first; the database rows go
// away atomically afterwards, so a stray object never blocks the delete.
func (srv *postService) DeletePost(ctx context.Context, id int64) error {
	post, err := srv.findPost(ctx, id)
	if err != nil {
		return err
	}

	files, err := srv.fileRepo.FindByPost(ctx, id)
	if err != nil {
		return err
	}

	for _, file := range files {
		srv.storage.Delete(ctx, attachmentKey(file))
	}
	if post.CoverImage != nil && *post.CoverImage != "" {
		srv.storage.Delete(ctx, service.FolderCovers+"/"+path.Base(*post.CoverImage))
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.FileRepo().DeleteByPost(ctx, id); err != nil {
			return err
		}

		return repoFactory.PostRepo().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return err
	}

	srv.log(ctx).Info("Post deleted", slog.Int64("postID", id), slog.Int("fileCount", len(files)))

	return nil
}

// DeleteFile removes one attachment record and its stored object. A missing
// record is treated as already deleted.
func (srv *postService) DeleteFile(ctx context.Context, fileID int64) error {
	file, err := srv.fileRepo.FindByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil
		}

		return err
	}

	srv.storage.Delete(ctx, attachmentKey(file))

	if err := srv.fileRepo.Delete(ctx, fileID); err != nil && !errors.Is(err, repository.ErrFileNotFound) {
		return err
	}

	return nil
}

// Dashboard returns every post, drafts included, newest first.
func (srv *postService) Dashboard(ctx context.Context) (*usecase.DashboardOutput, error) {
	posts, err := srv.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	published := 0
	for _, post := range posts {
		if post.Published {
			published++
		}
	}

	return &usecase.DashboardOutput{
		Posts:     posts,
		Total:     len(posts),
		Published: published,
		Drafts:    len(posts) - published,
	}, nil
}

// PublishedPosts returns published posts with authors, newest first.
func (srv *postService) PublishedPosts(ctx context.Context) ([]*entity.Post, error) {
	return srv.postRepo.ListPublished(ctx)
}

// PostBySlug returns one published post with author and files.
func (srv *postService) PostBySlug(ctx context.Context, slug string) (*usecase.PostDetailOutput, error) {
	post, err := srv.postRepo.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, err
	}

	files, err := srv.fileRepo.FindByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.PostDetailOutput{Post: post, Files: files}, nil
}

// PostByID returns one post regardless of publication state, with files.
func (srv *postService) PostByID(ctx context.Context, id int64) (*usecase.PostDetailOutput, error) {
	post, err := srv.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	files, err := srv.fileRepo.FindByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.PostDetailOutput{Post: post, Files: files}, nil
}

// processCover validates and stores a newly uploaded cover image. Unlike
// attachments, a bad cover aborts the whole request before any row is
// written.
func (srv *postService) processCover(ctx context.Context, cover *usecase.FileUpload) (*string, error) {
	if cover == nil || cover.Size == 0 {
		return nil, nil
	}

	if cover.Size > upload.MaxFileSize {
		return nil, domainerrors.ErrCoverImageTooLarge
	}
	if !upload.IsImageType(cover.ContentType) {
		return nil, domainerrors.ErrUnsupportedCoverImageType
	}

	obj, err := srv.ingest.ProcessImage(ctx, cover, service.FolderCovers)
	if err != nil {
		return nil, err
	}

	return &obj.Stored.URL, nil
}

func (srv *postService) findPost(ctx context.Context, id int64) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrPostNotFound
		}

		return nil, err
	}

	return post, nil
}

// attachmentKey reconstructs the storage key of an attachment from its
// generated object name.
func attachmentKey(file *entity.File) string {
	return service.FolderAttachments + "/" + file.Filename
}

// optionalString maps an empty form field to NULL.
func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}
