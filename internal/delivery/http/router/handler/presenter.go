package handler

import (
	"io"
	"mime/multipart"
	"time"

	"warta/internal/domain/entity"
	"warta/internal/usecase"

	"github.com/pkg/errors"
)

// JSON field names follow the admin frontend's camelCase expectations.

type authorJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type postJSON struct {
	ID         int64       `json:"id"`
	Title      string      `json:"title"`
	Slug       string      `json:"slug"`
	Excerpt    *string     `json:"excerpt"`
	Content    string      `json:"content"`
	CoverImage *string     `json:"coverImage"`
	Published  bool        `json:"published"`
	Author     *authorJSON `json:"author,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

type fileJSON struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toPostJSON(post *entity.Post) *postJSON {
	if post == nil {
		return nil
	}

	out := &postJSON{
		ID:         post.ID,
		Title:      post.Title,
		Slug:       post.Slug,
		Excerpt:    post.Excerpt,
		Content:    post.Content,
		CoverImage: post.CoverImage,
		Published:  post.Published,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
	if post.Author != nil {
		out.Author = &authorJSON{ID: post.Author.ID, Name: post.Author.Name}
	}

	return out
}

func toPostListJSON(posts []*entity.Post) []*postJSON {
	out := make([]*postJSON, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostJSON(post))
	}

	return out
}

func toFileListJSON(files []*entity.File) []*fileJSON {
	out := make([]*fileJSON, 0, len(files))
	for _, file := range files {
		out = append(out, &fileJSON{
			ID:           file.ID,
			Filename:     file.Filename,
			OriginalName: file.OriginalName,
			MimeType:     file.MimeType,
			Size:         file.Size,
			Path:         file.Path,
			CreatedAt:    file.CreatedAt,
		})
	}

	return out
}

// readFileUpload buffers one multipart file into the usecase upload DTO.
func readFileUpload(fh *multipart.FileHeader) (*usecase.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open multipart file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read multipart file")
	}

	return &usecase.FileUpload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
