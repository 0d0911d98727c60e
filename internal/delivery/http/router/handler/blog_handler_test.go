package handler

import (
	"net/http"
	"testing"
	"time"

	"warta/internal/domain/entity"
	domainerrors "warta/internal/domain/errors"
	mockUC "warta/internal/mocks/usecase"
	"warta/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHome_ListsPublishedPosts(t *testing.T) {
	now := time.Now()
	excerpt := "Ringkasan singkat"
	postUsecase := mockUC.NewMockPostUsecase(t)
	postUsecase.EXPECT().PublishedPosts(mock.Anything).Return([]*entity.Post{
		{
			ID:        1,
			Title:     "Kabar Terbaru",
			Slug:      "kabar-terbaru",
			Excerpt:   &excerpt,
			Published: true,
			Author:    &entity.User{ID: 1, Name: "Laziza Iklima Khairatun"},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil).Once()

	h := NewBlogHandler(postUsecase, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodGet, "/", "")

	require.NoError(t, h.Home(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"slug":"kabar-terbaru"`)
	assert.Contains(t, rec.Body.String(), `"excerpt":"Ringkasan singkat"`)
	assert.Contains(t, rec.Body.String(), `"name":"Laziza Iklima Khairatun"`)
	// The password hash must never leak through the author projection.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHome_EmptyListRendersEmptyArray(t *testing.T) {
	postUsecase := mockUC.NewMockPostUsecase(t)
	postUsecase.EXPECT().PublishedPosts(mock.Anything).Return([]*entity.Post{}, nil).Once()

	h := NewBlogHandler(postUsecase, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodGet, "/", "")

	require.NoError(t, h.Home(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"posts":[]}`, rec.Body.String())
}

func TestShow_ReturnsPostAndFiles(t *testing.T) {
	postUsecase := mockUC.NewMockPostUsecase(t)
	postUsecase.EXPECT().PostBySlug(mock.Anything, "kabar-terbaru").Return(&usecase.PostDetailOutput{
		Post: &entity.Post{ID: 1, Title: "Kabar Terbaru", Slug: "kabar-terbaru", Published: true},
		Files: []*entity.File{
			{ID: 3, Filename: "1700000000000-abc.jpg", OriginalName: "foto.jpg", MimeType: "image/jpeg"},
		},
	}, nil).Once()

	h := NewBlogHandler(postUsecase, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodGet, "/blog/kabar-terbaru", "")
	c.SetParamNames("slug")
	c.SetParamValues("kabar-terbaru")

	require.NoError(t, h.Show(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Kabar Terbaru"`)
	assert.Contains(t, rec.Body.String(), `"originalName":"foto.jpg"`)
}

func TestShow_UnknownSlugPropagatesNotFound(t *testing.T) {
	postUsecase := mockUC.NewMockPostUsecase(t)
	postUsecase.EXPECT().PostBySlug(mock.Anything, "tidak-ada").Return(nil, domainerrors.ErrPostNotFound).Once()

	h := NewBlogHandler(postUsecase, newDiscardLogger())

	c, _ := newJSONContext(t, http.MethodGet, "/blog/tidak-ada", "")
	c.SetParamNames("slug")
	c.SetParamValues("tidak-ada")

	err := h.Show(c)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}
