package entity

import "time"

// File is the metadata record for one stored attachment. Path holds the
// durable public URL; the storage key is reconstructed from the folder and
// Filename on deletion.
type File struct {
	ID           int64
	Filename     string // Generated object name inside the storage folder.
	OriginalName string // Filename as submitted by the client.
	MimeType     string // Resolved type: image/jpeg for transcoded images, declared type otherwise.
	Size         int64  // Stored byte size (post-transcode for images).
	Path         string // Public URL of the stored object.
	PostID       *int64
	CreatedAt    time.Time
}
