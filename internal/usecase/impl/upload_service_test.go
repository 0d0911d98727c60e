package impl

import (
	"context"
	"testing"

	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/service"
	mockSvc "warta/internal/mocks/service"
	"warta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// uploadServiceFixtures holds all test dependencies for upload service tests.
type uploadServiceFixtures struct {
	service    usecase.UploadUsecase
	storage    *mockSvc.MockObjectStorage
	transcoder *mockSvc.MockImageTranscoder
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	storage := mockSvc.NewMockObjectStorage(t)
	transcoder := mockSvc.NewMockImageTranscoder(t)
	logger := newDiscardLogger()

	ingest := NewIngestPipeline(IngestPipelineParams{
		Transcoder: transcoder,
		Storage:    storage,
		Logger:     logger,
	})

	service := NewUploadService(UploadServiceParams{
		Ingest: ingest,
		Logger: logger,
	})

	return uploadServiceFixtures{
		service:    service,
		storage:    storage,
		transcoder: transcoder,
	}
}

func TestUploadService_UploadEditorImage_Success(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	file := &usecase.FileUpload{
		Name:        "gambar.webp",
		ContentType: "image/webp",
		Size:        1024,
		Data:        []byte("webp-bytes"),
	}

	fx.transcoder.EXPECT().
		Transcode(file.Data, service.DefaultTranscodeOptions()).
		Return([]byte("jpeg-bytes"), nil)
	fx.storage.EXPECT().
		Upload(ctx, []byte("jpeg-bytes"), mock.AnythingOfType("string"), "image/jpeg", service.FolderEditor).
		Return(&service.StoredObject{URL: "https://cdn.example.com/editor/x.jpg", Path: "editor/x.jpg"}, nil)

	output, err := fx.service.UploadEditorImage(ctx, file)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/editor/x.jpg", output.URL)
}

func TestUploadService_UploadEditorImage_NoFile(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	_, err := fx.service.UploadEditorImage(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNoFileProvided)

	_, err = fx.service.UploadEditorImage(ctx, &usecase.FileUpload{Name: "empty.png", ContentType: "image/png"})
	assert.ErrorIs(t, err, domainerrors.ErrNoFileProvided)
}

func TestUploadService_UploadEditorImage_TypeCheckedBeforeSize(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	// Oversized and wrong type: the type error wins.
	_, err := fx.service.UploadEditorImage(ctx, &usecase.FileUpload{
		Name:        "dump.txt",
		ContentType: "text/plain",
		Size:        5 * 1024 * 1024,
		Data:        []byte("..."),
	})

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
}

func TestUploadService_UploadEditorImage_TooLarge(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	_, err := fx.service.UploadEditorImage(ctx, &usecase.FileUpload{
		Name:        "big.jpg",
		ContentType: "image/jpeg",
		Size:        3 * 1024 * 1024,
		Data:        []byte("..."),
	})

	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
	fx.transcoder.AssertNotCalled(t, "Transcode")
}

func TestUploadService_UploadEditorImage_CorruptImage(t *testing.T) {
	fx := createTestUploadService(t)
	ctx := context.Background()

	file := &usecase.FileUpload{
		Name:        "broken.png",
		ContentType: "image/png",
		Size:        64,
		Data:        []byte("not an image"),
	}

	fx.transcoder.EXPECT().
		Transcode(file.Data, service.DefaultTranscodeOptions()).
		Return(nil, domainerrors.ErrImageProcessingFailed)

	_, err := fx.service.UploadEditorImage(ctx, file)

	assert.ErrorIs(t, err, domainerrors.ErrImageProcessingFailed)
	fx.storage.AssertNotCalled(t, "Upload")
}
