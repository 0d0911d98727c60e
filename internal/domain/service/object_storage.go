package service

import "context"

// Storage folder names, fixed by the upload pipeline.
const (
	FolderImages      = "images"
	FolderCovers      = "covers"
	FolderAttachments = "attachments"
	FolderEditor      = "editor"
)

// StoredObject describes a successfully persisted object.
type StoredObject struct {
	URL  string // Durable public URL.
	Path string // Storage key, needed for later deletion.
}

// ObjectStorage persists validated upload buffers in an object-storage
// bucket. Implementations must refuse to overwrite an existing key: a name
// collision surfaces as an upload error, never a silent replace.
type ObjectStorage interface {
	// Upload writes the buffer once under folder/filename.
	Upload(ctx context.Context, data []byte, filename, contentType, folder string) (*StoredObject, error)

	// Delete removes an object by its storage path. Best effort: a failed
	// removal returns false instead of an error so callers can decide
	// whether to treat it as fatal.
	Delete(ctx context.Context, path string) bool
}
