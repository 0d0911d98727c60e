package usecase

import "context"

// UploadOutput returns the public URL of a stored editor image.
type UploadOutput struct {
	URL string
}

// UploadUsecase defines the interface for standalone editor image uploads.
type UploadUsecase interface {
	// UploadEditorImage validates, transcodes and stores one image from the
	// rich-text editor. The type check runs before the size check so an
	// oversized text file reports the type problem.
	UploadEditorImage(ctx context.Context, file *FileUpload) (*UploadOutput, error)
}
