package impl

import (
	"context"
	"testing"

	"warta/internal/domain/entity"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/repository"
	"warta/internal/domain/service"
	mockRepo "warta/internal/mocks/repository"
	mockSvc "warta/internal/mocks/service"
	"warta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service    usecase.PostUsecase
	txManager  *mockRepo.MockTransactionManager
	postRepo   *mockRepo.MockPostRepository
	fileRepo   *mockRepo.MockFileRepository
	storage    *mockSvc.MockObjectStorage
	transcoder *mockSvc.MockImageTranscoder
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	fileRepo := mockRepo.NewMockFileRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)
	transcoder := mockSvc.NewMockImageTranscoder(t)
	logger := newDiscardLogger()

	ingest := NewIngestPipeline(IngestPipelineParams{
		Transcoder: transcoder,
		Storage:    storage,
		Logger:     logger,
	})

	service := NewPostService(PostServiceParams{
		TxManager: txManager,
		PostRepo:  postRepo,
		FileRepo:  fileRepo,
		Storage:   storage,
		Ingest:    ingest,
		Logger:    logger,
	})

	return postServiceFixtures{
		service:    service,
		txManager:  txManager,
		postRepo:   postRepo,
		fileRepo:   fileRepo,
		storage:    storage,
		transcoder: transcoder,
	}
}

func jpegUpload(name string, size int64) *usecase.FileUpload {
	return &usecase.FileUpload{
		Name:        name,
		ContentType: "image/jpeg",
		Size:        size,
		Data:        make([]byte, size),
	}
}

func TestPostService_CreatePost_Success(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			post.ID = 7
		}).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, usecase.SavePostInput{
		Title:     "Kabar Terbaru! Edisi #1",
		Content:   "<p>Isi berita</p>",
		Published: true,
		AuthorID:  1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), post.ID)
	assert.Equal(t, "kabar-terbaru-edisi-1", post.Slug)
	assert.Nil(t, post.Excerpt)
	assert.Nil(t, post.CoverImage)
	require.NotNil(t, post.AuthorID)
	assert.Equal(t, int64(1), *post.AuthorID)
}

func TestPostService_CreatePost_MissingTitleOrContent(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	_, err := fx.service.CreatePost(ctx, usecase.SavePostInput{Title: "  ", Content: "body"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingTitleOrContent)

	_, err = fx.service.CreatePost(ctx, usecase.SavePostInput{Title: "Judul", Content: ""})
	assert.ErrorIs(t, err, domainerrors.ErrMissingTitleOrContent)

	fx.postRepo.AssertNotCalled(t, "Create")
}

func TestPostService_CreatePost_OversizedCoverAborts(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	_, err := fx.service.CreatePost(ctx, usecase.SavePostInput{
		Title:      "Judul",
		Content:    "body",
		CoverImage: jpegUpload("cover.jpg", 3*1024*1024),
	})

	// The whole request fails and nothing is written.
	assert.ErrorIs(t, err, domainerrors.ErrCoverImageTooLarge)
	fx.postRepo.AssertNotCalled(t, "Create")
	fx.storage.AssertNotCalled(t, "Upload")
}

func TestPostService_CreatePost_UnsupportedCoverTypeAborts(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	_, err := fx.service.CreatePost(ctx, usecase.SavePostInput{
		Title:   "Judul",
		Content: "body",
		CoverImage: &usecase.FileUpload{
			Name:        "cover.pdf",
			ContentType: "application/pdf",
			Size:        1024,
			Data:        []byte("%PDF"),
		},
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedCoverImageType)
	fx.postRepo.AssertNotCalled(t, "Create")
}

func TestPostService_CreatePost_WithCover(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	cover := jpegUpload("cover.png", 1024)
	cover.ContentType = "image/png"

	fx.transcoder.EXPECT().
		Transcode(cover.Data, service.DefaultTranscodeOptions()).
		Return([]byte("jpeg-bytes"), nil)
	fx.storage.EXPECT().
		Upload(ctx, []byte("jpeg-bytes"), mock.AnythingOfType("string"), "image/jpeg", service.FolderCovers).
		Return(&service.StoredObject{URL: "https://cdn.example.com/covers/x.jpg", Path: "covers/x.jpg"}, nil)
	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, usecase.SavePostInput{
		Title:      "Judul",
		Content:    "body",
		CoverImage: cover,
	})

	require.NoError(t, err)
	require.NotNil(t, post.CoverImage)
	assert.Equal(t, "https://cdn.example.com/covers/x.jpg", *post.CoverImage)
}

func TestPostService_CreatePost_SkipsInvalidAttachment(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	attachments := []*usecase.FileUpload{
		{Name: "laporan.pdf", ContentType: "application/pdf", Size: 512, Data: []byte("%PDF")},
		{Name: "virus.exe", ContentType: "application/x-msdownload", Size: 512, Data: []byte("MZ")},
		jpegUpload("foto.jpg", 512),
	}

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			post.ID = 9
		}).
		Return(nil)

	fx.storage.EXPECT().
		Upload(ctx, mock.Anything, mock.AnythingOfType("string"), "application/pdf", service.FolderAttachments).
		Return(&service.StoredObject{URL: "https://cdn.example.com/attachments/a.pdf", Path: "attachments/a.pdf"}, nil)

	fx.transcoder.EXPECT().
		Transcode(attachments[2].Data, service.DefaultTranscodeOptions()).
		Return([]byte("jpeg-bytes"), nil)
	fx.storage.EXPECT().
		Upload(ctx, []byte("jpeg-bytes"), mock.AnythingOfType("string"), "image/jpeg", service.FolderAttachments).
		Return(&service.StoredObject{URL: "https://cdn.example.com/attachments/b.jpg", Path: "attachments/b.jpg"}, nil)

	// Exactly two records: the disallowed type in the middle is skipped.
	fx.fileRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.File")).
		Return(nil).
		Times(2)

	_, err := fx.service.CreatePost(ctx, usecase.SavePostInput{
		Title:       "Judul",
		Content:     "body",
		Attachments: attachments,
	})

	require.NoError(t, err)
}

func TestPostService_UpdatePost_RegeneratesSlug(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	existing := &entity.Post{ID: 3, Title: "Lama", Slug: "lama", Content: "old"}
	updated := &entity.Post{ID: 3, Title: "Judul Baru", Slug: "judul-baru", Content: "new"}

	fx.postRepo.EXPECT().FindByID(ctx, int64(3)).Return(existing, nil).Once()
	fx.postRepo.EXPECT().
		Merge(ctx, int64(3), mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id int64, fields map[string]any) {
			assert.Equal(t, "Judul Baru", fields["title"])
			assert.Equal(t, "judul-baru", fields["slug"])
			assert.Equal(t, "new", fields["content"])
			assert.NotContains(t, fields, "cover_image")
			assert.Contains(t, fields, "updated_at")
		}).
		Return(nil)
	fx.postRepo.EXPECT().FindByID(ctx, int64(3)).Return(updated, nil).Once()

	post, err := fx.service.UpdatePost(ctx, 3, usecase.SavePostInput{
		Title:   "Judul Baru",
		Content: "new",
	})

	require.NoError(t, err)
	assert.Equal(t, "judul-baru", post.Slug)
}

func TestPostService_UpdatePost_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.UpdatePost(ctx, 42, usecase.SavePostInput{Title: "x", Content: "y"})

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_MergePost_PassesFieldsThrough(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		Merge(ctx, int64(5), mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id int64, fields map[string]any) {
			assert.Equal(t, true, fields["published"])
			assert.Contains(t, fields, "updated_at")
		}).
		Return(nil)

	err := fx.service.MergePost(ctx, 5, map[string]any{"published": true})
	require.NoError(t, err)
}

func TestPostService_MergePost_EmptyBodyStillBumpsTimestamp(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		Merge(ctx, int64(5), mock.AnythingOfType("map[string]interface {}")).
		Run(func(ctx context.Context, id int64, fields map[string]any) {
			assert.Len(t, fields, 1)
			assert.Contains(t, fields, "updated_at")
		}).
		Return(nil)

	err := fx.service.MergePost(ctx, 5, map[string]any{})
	require.NoError(t, err)
}

func TestPostService_MergePost_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		Merge(ctx, int64(5), mock.AnythingOfType("map[string]interface {}")).
		Return(repository.ErrPostNotFound)

	err := fx.service.MergePost(ctx, 5, map[string]any{"published": true})
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_DeletePost_RemovesFilesAndRecords(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	coverURL := "https://cdn.example.com/covers/c.jpg"
	post := &entity.Post{ID: 3, Title: "Judul", CoverImage: &coverURL}
	files := []*entity.File{
		{ID: 1, Filename: "a.pdf", PostID: &post.ID},
		{ID: 2, Filename: "b.jpg", PostID: &post.ID},
	}

	fx.postRepo.EXPECT().FindByID(ctx, int64(3)).Return(post, nil)
	fx.fileRepo.EXPECT().FindByPost(ctx, int64(3)).Return(files, nil)

	fx.storage.EXPECT().Delete(ctx, "attachments/a.pdf").Return(true)
	fx.storage.EXPECT().Delete(ctx, "attachments/b.jpg").Return(true)
	fx.storage.EXPECT().Delete(ctx, "covers/c.jpg").Return(true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			fileRepo := mockRepo.NewMockFileRepository(t)
			postRepo := mockRepo.NewMockPostRepository(t)

			factory.EXPECT().FileRepo().Return(fileRepo)
			factory.EXPECT().PostRepo().Return(postRepo)
			fileRepo.EXPECT().DeleteByPost(ctx, int64(3)).Return(nil)
			postRepo.EXPECT().Delete(ctx, int64(3)).Return(nil)

			require.NoError(t, fn(factory))
		}).
		Return(nil)

	require.NoError(t, fx.service.DeletePost(ctx, 3))
}

func TestPostService_DeletePost_FailedStorageDeleteStillRemovesRecords(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	post := &entity.Post{ID: 4, Title: "Judul"}
	files := []*entity.File{{ID: 1, Filename: "a.pdf", PostID: &post.ID}}

	fx.postRepo.EXPECT().FindByID(ctx, int64(4)).Return(post, nil)
	fx.fileRepo.EXPECT().FindByPost(ctx, int64(4)).Return(files, nil)
	fx.storage.EXPECT().Delete(ctx, "attachments/a.pdf").Return(false)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	require.NoError(t, fx.service.DeletePost(ctx, 4))
}

func TestPostService_DeleteFile_MissingRecordIsNoop(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.fileRepo.EXPECT().FindByID(ctx, int64(11)).Return(nil, repository.ErrFileNotFound)

	require.NoError(t, fx.service.DeleteFile(ctx, 11))
	fx.storage.AssertNotCalled(t, "Delete")
}

func TestPostService_DeleteFile_RemovesObjectAndRecord(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	file := &entity.File{ID: 11, Filename: "a.pdf"}

	fx.fileRepo.EXPECT().FindByID(ctx, int64(11)).Return(file, nil)
	fx.storage.EXPECT().Delete(ctx, "attachments/a.pdf").Return(true)
	fx.fileRepo.EXPECT().Delete(ctx, int64(11)).Return(nil)

	require.NoError(t, fx.service.DeleteFile(ctx, 11))
}

func TestPostService_Dashboard_Counts(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	posts := []*entity.Post{
		{ID: 1, Published: true},
		{ID: 2, Published: false},
		{ID: 3, Published: true},
	}

	fx.postRepo.EXPECT().ListAll(ctx).Return(posts, nil)

	output, err := fx.service.Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, output.Total)
	assert.Equal(t, 2, output.Published)
	assert.Equal(t, 1, output.Drafts)
}

func TestPostService_PostBySlug_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().FindPublishedBySlug(ctx, "missing").Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.PostBySlug(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_PostBySlug_IncludesFiles(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	post := &entity.Post{ID: 8, Slug: "judul", Published: true}
	files := []*entity.File{{ID: 1, Filename: "a.pdf"}}

	fx.postRepo.EXPECT().FindPublishedBySlug(ctx, "judul").Return(post, nil)
	fx.fileRepo.EXPECT().FindByPost(ctx, int64(8)).Return(files, nil)

	output, err := fx.service.PostBySlug(ctx, "judul")

	require.NoError(t, err)
	assert.Equal(t, post, output.Post)
	assert.Equal(t, files, output.Files)
}
