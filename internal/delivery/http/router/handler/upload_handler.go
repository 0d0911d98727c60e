package handler

import (
	"log/slog"
	"net/http"

	"warta/internal/delivery/http/response"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UploadHandler serves the standalone editor image upload.
type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	logger        *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(uploadUsecase usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		logger:        logger,
	}
}

// Upload stores one image from the rich-text editor and returns its public
// URL as {"url": "..."}.
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrNoFileProvided
	}

	file, err := readFileUpload(fh)
	if err != nil {
		return domainerrors.ErrUploadFailed.WrapMessage("read multipart upload")
	}

	output, err := h.uploadUsecase.UploadEditorImage(c.Request().Context(), file)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]string{"url": output.URL})
}
