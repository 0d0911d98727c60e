package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"warta/config"
	deliverycontext "warta/internal/delivery/context"
	"warta/internal/delivery/http/response"
	"warta/internal/delivery/http/session"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CMSHandler serves the authenticated management pages and their form
// actions. Form actions answer with a redirect and a flash message, never
// JSON errors; the session middleware has already attached the claims.
type CMSHandler struct {
	postUsecase usecase.PostUsecase
	cfg         *config.Config
	logger      *slog.Logger
}

// NewCMSHandler is the constructor for CMSHandler.
func NewCMSHandler(postUsecase usecase.PostUsecase, cfg *config.Config, logger *slog.Logger) *CMSHandler {
	return &CMSHandler{
		postUsecase: postUsecase,
		cfg:         cfg,
		logger:      logger,
	}
}

// recentPostCount bounds the dashboard's recent-posts panel.
const recentPostCount = 5

// Dashboard returns what the dashboard renders: the signed-in author, the
// post counters and the most recent posts, drafts included.
func (h *CMSHandler) Dashboard(c echo.Context) error {
	output, err := h.postUsecase.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	claims := deliverycontext.GetSessionClaims(c)

	recent := output.Posts
	if len(recent) > recentPostCount {
		recent = recent[:recentPostCount]
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"user": map[string]any{
			"id":       claims.UserID,
			"username": claims.Username,
			"name":     claims.Name,
		},
		"totalPosts":     output.Total,
		"publishedPosts": output.Published,
		"draftPosts":     output.Drafts,
		"recentPosts":    toPostListJSON(recent),
	})
}

// Posts lists every post for the management table, newest first, together
// with any pending flash message from the last form action.
func (h *CMSHandler) Posts(c echo.Context) error {
	output, err := h.postUsecase.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"posts": toPostListJSON(output.Posts),
		"flash": session.PopFlash(c),
	})
}

// EditData returns one post with its files for the edit form, drafts
// included.
func (h *CMSHandler) EditData(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrPostNotFound
	}

	detail, err := h.postUsecase.PostByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, map[string]any{
		"post":  toPostJSON(detail.Post),
		"files": toFileListJSON(detail.Files),
	})
}

// Create handles the new-post form.
func (h *CMSHandler) Create(c echo.Context) error {
	input, err := h.bindSavePostInput(c)
	if err != nil {
		return h.flashError(c, err)
	}

	if _, err := h.postUsecase.CreatePost(c.Request().Context(), input); err != nil {
		return h.flashError(c, err)
	}

	session.SetFlash(c, session.Flash{Type: "success", Message: "Post berhasil dibuat"}, h.cfg.IsProduction())

	return c.Redirect(http.StatusSeeOther, "/cms/posts")
}

// Update handles the edit-post form.
func (h *CMSHandler) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrPostNotFound
	}

	input, err := h.bindSavePostInput(c)
	if err != nil {
		return h.flashError(c, err)
	}

	if _, err := h.postUsecase.UpdatePost(c.Request().Context(), id, input); err != nil {
		return h.flashError(c, err)
	}

	session.SetFlash(c, session.Flash{Type: "success", Message: "Post berhasil diperbarui"}, h.cfg.IsProduction())

	return c.Redirect(http.StatusSeeOther, "/cms/posts")
}

// DeleteFile removes one attachment from the edit form.
func (h *CMSHandler) DeleteFile(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return h.redirectBack(c)
	}

	if err := h.postUsecase.DeleteFile(c.Request().Context(), id); err != nil {
		return h.flashError(c, err)
	}

	session.SetFlash(c, session.Flash{Type: "success", Message: "File berhasil dihapus"}, h.cfg.IsProduction())

	return h.redirectBack(c)
}

// bindSavePostInput reads the multipart post form. Unreadable attachment
// parts are dropped like invalid ones; the cover image is strict.
func (h *CMSHandler) bindSavePostInput(c echo.Context) (usecase.SavePostInput, error) {
	input := usecase.SavePostInput{
		Title:     c.FormValue("title"),
		Content:   c.FormValue("content"),
		Excerpt:   c.FormValue("excerpt"),
		Published: formBool(c.FormValue("published")),
	}

	if claims := deliverycontext.GetSessionClaims(c); claims != nil {
		input.AuthorID = claims.UserID
	}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return input, nil
	}

	if headers := form.File["coverImage"]; len(headers) > 0 {
		cover, err := readFileUpload(headers[0])
		if err != nil {
			return input, errors.Wrap(err, "failed to read cover image")
		}
		if cover.Size > 0 {
			input.CoverImage = cover
		}
	}

	for _, fh := range form.File["attachments"] {
		attachment, err := readFileUpload(fh)
		if err != nil {
			h.logger.Warn("Dropping unreadable attachment", slog.String("name", fh.Filename), slog.Any("error", err))

			continue
		}
		if attachment.Size > 0 {
			input.Attachments = append(input.Attachments, attachment)
		}
	}

	return input, nil
}

func (h *CMSHandler) flashError(c echo.Context, err error) error {
	message := "Terjadi kesalahan. Silakan coba lagi."
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message()
	} else {
		h.logger.Error("CMS form action failed", slog.String("path", c.Request().URL.Path), slog.Any("error", err))
	}

	session.SetFlash(c, session.Flash{Type: "error", Message: message}, h.cfg.IsProduction())

	return h.redirectBack(c)
}

func (h *CMSHandler) redirectBack(c echo.Context) error {
	target := c.Request().Referer()
	if target == "" {
		target = "/cms/posts"
	}

	return c.Redirect(http.StatusSeeOther, target)
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func formBool(v string) bool {
	return v == "true" || v == "on" || v == "1"
}
