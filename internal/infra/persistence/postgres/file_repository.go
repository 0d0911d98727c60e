package postgres

import (
	"context"

	"warta/internal/domain/entity"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/repository"
	"warta/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// fileRepository implements the domain.FileRepository interface using GORM.
type fileRepository struct {
	db *gorm.DB
}

// NewFileRepository is the constructor for fileRepository.
func NewFileRepository(db *gorm.DB) repository.FileRepository {
	return &fileRepository{db: db}
}

// Create persists one metadata record after a successful upload.
func (repo *fileRepository) Create(ctx context.Context, file *entity.File) error {
	fileM := fromFileDomain(file)

	if err := repo.db.WithContext(ctx).Create(fileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create file record")
	}

	file.ID = fileM.ID
	file.CreatedAt = fileM.CreatedAt

	return nil
}

// FindByID retrieves a single file record.
func (repo *fileRepository) FindByID(ctx context.Context, id int64) (*entity.File, error) {
	var fileM model.FileModel
	err := repo.db.WithContext(ctx).First(&fileM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to find file by id")
	}

	return toFileDomain(&fileM), nil
}

// FindByPost returns every file record attached to a post.
func (repo *fileRepository) FindByPost(ctx context.Context, postID int64) ([]*entity.File, error) {
	var fileMs []*model.FileModel
	err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&fileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list files for post")
	}

	files := make([]*entity.File, 0, len(fileMs))
	for _, fileM := range fileMs {
		files = append(files, toFileDomain(fileM))
	}

	return files, nil
}

// Delete removes a single file record.
func (repo *fileRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.FileModel{}, id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete file record")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFileNotFound
	}

	return nil
}

// DeleteByPost removes all file records attached to a post.
func (repo *fileRepository) DeleteByPost(ctx context.Context, postID int64) error {
	err := repo.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&model.FileModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete file records for post")
	}

	return nil
}

// --- Mapper Functions ---

func toFileDomain(data *model.FileModel) *entity.File {
	if data == nil {
		return nil
	}

	return &entity.File{
		ID:           data.ID,
		Filename:     data.Filename,
		OriginalName: data.OriginalName,
		MimeType:     data.MimeType,
		Size:         data.Size,
		Path:         data.Path,
		PostID:       data.PostID,
		CreatedAt:    data.CreatedAt,
	}
}

func fromFileDomain(data *entity.File) *model.FileModel {
	if data == nil {
		return nil
	}

	return &model.FileModel{
		ID:           data.ID,
		Filename:     data.Filename,
		OriginalName: data.OriginalName,
		MimeType:     data.MimeType,
		Size:         data.Size,
		Path:         data.Path,
		PostID:       data.PostID,
	}
}
