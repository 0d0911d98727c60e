package handler

import (
	"log/slog"
	"net/http"

	"warta/internal/delivery/http/response"
	"warta/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BlogHandler serves the public, unauthenticated blog reads.
type BlogHandler struct {
	postUsecase usecase.PostUsecase
	logger      *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler.
func NewBlogHandler(postUsecase usecase.PostUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		postUsecase: postUsecase,
		logger:      logger,
	}
}

// Home lists published posts, newest first. Drafts never appear here.
func (h *BlogHandler) Home(c echo.Context) error {
	posts, err := h.postUsecase.PublishedPosts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"posts": toPostListJSON(posts),
	})
}

// Show returns one published post by slug with its author and files.
func (h *BlogHandler) Show(c echo.Context) error {
	detail, err := h.postUsecase.PostBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"post":  toPostJSON(detail.Post),
		"files": toFileListJSON(detail.Files),
	})
}
