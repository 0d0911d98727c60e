package postgres

import (
	"context"

	"warta/internal/domain/entity"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/repository"
	"warta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post and fills in its generated ID and timestamps.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPostSaveFailed.WrapMessage("slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrPostSaveFailed.WrapMessage("missing required post fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Merge applies a partial column update. Keys are normalized with GORM's
// naming strategy, so "coverImage" and "cover_image" address the same column.
func (repo *postRepository) Merge(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	ns := schema.NamingStrategy{}
	columns := make(map[string]any, len(fields))
	for key, value := range fields {
		columns[ns.ColumnName("", key)] = value
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPostSaveFailed.WrapMessage("slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post row.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// FindByID retrieves a post regardless of publication state.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).First(&postM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindPublishedBySlug retrieves a published post by slug with its author.
func (repo *postRepository) FindPublishedBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("slug = ? AND published = ?", slug, true).
		First(&postM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return toPostDomain(&postM), nil
}

// ListAll returns every post, newest first.
func (repo *postRepository) ListAll(ctx context.Context) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return toPostDomainList(postMs), nil
}

// ListPublished returns published posts with their authors, newest first.
func (repo *postRepository) ListPublished(ctx context.Context) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published posts")
	}

	return toPostDomainList(postMs), nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:         data.ID,
		Title:      data.Title,
		Slug:       data.Slug,
		Excerpt:    data.Excerpt,
		Content:    data.Content,
		CoverImage: data.CoverImage,
		Published:  data.Published,
		AuthorID:   data.AuthorID,
		Author:     toUserDomain(data.Author),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toPostDomainList(data []*model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for _, postM := range data {
		posts = append(posts, toPostDomain(postM))
	}

	return posts
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:         data.ID,
		Title:      data.Title,
		Slug:       data.Slug,
		Excerpt:    data.Excerpt,
		Content:    data.Content,
		CoverImage: data.CoverImage,
		Published:  data.Published,
		AuthorID:   data.AuthorID,
	}
}
