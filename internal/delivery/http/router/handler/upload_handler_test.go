package handler

import (
	"net/http"
	"testing"

	domainerrors "warta/internal/domain/errors"
	mockUC "warta/internal/mocks/usecase"
	"warta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpload_ReturnsPublicURL(t *testing.T) {
	uploadUsecase := mockUC.NewMockUploadUsecase(t)
	uploadUsecase.EXPECT().
		UploadEditorImage(mock.Anything, mock.MatchedBy(func(file *usecase.FileUpload) bool {
			return file.Name == "foto.png" && file.ContentType == "image/png" && file.Size == 4
		})).
		Return(&usecase.UploadOutput{URL: "https://cdn.example.com/editor/1700000000000-abc.jpg"}, nil).
		Once()

	h := NewUploadHandler(uploadUsecase, newDiscardLogger())

	c, rec := newMultipartContext(t, "/api/upload", nil, []filePart{
		{field: "image", name: "foto.png", contentType: "image/png", data: []byte("PNG!")},
	})

	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://cdn.example.com/editor/1700000000000-abc.jpg"}`, rec.Body.String())
}

func TestUpload_MissingFilePart(t *testing.T) {
	uploadUsecase := mockUC.NewMockUploadUsecase(t)
	h := NewUploadHandler(uploadUsecase, newDiscardLogger())

	c, _ := newMultipartContext(t, "/api/upload", map[string]string{"other": "value"}, nil)

	err := h.Upload(c)
	assert.ErrorIs(t, err, domainerrors.ErrNoFileProvided)
	uploadUsecase.AssertNotCalled(t, "UploadEditorImage")
}

func TestUpload_UsecaseErrorPropagates(t *testing.T) {
	uploadUsecase := mockUC.NewMockUploadUsecase(t)
	uploadUsecase.EXPECT().
		UploadEditorImage(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUnsupportedImageType).
		Once()

	h := NewUploadHandler(uploadUsecase, newDiscardLogger())

	c, _ := newMultipartContext(t, "/api/upload", nil, []filePart{
		{field: "image", name: "doc.pdf", contentType: "application/pdf", data: []byte("%PDF")},
	})

	err := h.Upload(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
}
