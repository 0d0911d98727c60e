package handler

import (
	"log/slog"
	"net/http"

	"warta/internal/delivery/http/response"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PostHandler serves the JSON management API used by the dashboard's
// client-side actions.
type PostHandler struct {
	postUsecase usecase.PostUsecase
	logger      *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(postUsecase usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		logger:      logger,
	}
}

// Delete removes a post with everything attached to it.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrPostNotFound
	}

	if err := h.postUsecase.DeletePost(c.Request().Context(), id); err != nil {
		return err
	}

	return response.OK(c)
}

// Patch applies a partial update from the request body. The submitted keys
// pass through to the post as-is; the dashboard uses this for the publish
// toggle.
func (h *PostHandler) Patch(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrPostNotFound
	}

	var fields map[string]any
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.postUsecase.MergePost(c.Request().Context(), id, fields); err != nil {
		return err
	}

	return response.OK(c)
}
