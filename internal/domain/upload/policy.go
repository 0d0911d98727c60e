// Package upload holds the validation policy applied to every inbound file:
// a global size ceiling and per-class MIME allowlists.
package upload

import domainerrors "warta/internal/domain/errors"

// MaxFileSize is the global upload ceiling, applied identically to images
// and attachments, cover images included.
const MaxFileSize = 2 * 1024 * 1024

// FileClass selects which allowlist applies to a file.
type FileClass int

const (
	// ClassImage covers cover images and editor uploads.
	ClassImage FileClass = iota
	// ClassAttachment covers the broad attachment set of the post forms.
	ClassAttachment
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var allowedAttachmentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         {},
	"application/vnd.ms-powerpoint": {},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {},
	"application/wps-office.docx": {},
	"application/wps-office.doc":  {},
	"application/wps-office.xlsx": {},
	"application/wps-office.xls":  {},
	"application/wps-office.pptx": {},
	"application/wps-office.ppt":  {},
	"application/vnd.oasis.opendocument.text":         {},
	"application/vnd.oasis.opendocument.spreadsheet":  {},
	"application/vnd.oasis.opendocument.presentation": {},
	"text/plain":                   {},
	"text/csv":                     {},
	"application/rtf":              {},
	"application/zip":              {},
	"application/x-rar-compressed": {},
	"application/x-7z-compressed":  {},
}

// IsImageType reports whether the declared MIME type is in the narrow image
// allowlist. Attachment ingestion uses this to decide whether a file goes
// through the transcoder.
func IsImageType(mimeType string) bool {
	_, ok := allowedImageTypes[mimeType]

	return ok
}

// Validate checks a file's declared size and MIME type against the ceiling
// and the allowlist of the given class. The returned errors are terminal for
// the file but callers decide whether they abort the whole request (cover
// images) or just skip the file (attachment batches).
func Validate(size int64, mimeType string, class FileClass) error {
	if size > MaxFileSize {
		return domainerrors.ErrFileTooLarge
	}

	switch class {
	case ClassImage:
		if !IsImageType(mimeType) {
			return domainerrors.ErrUnsupportedImageType
		}
	case ClassAttachment:
		if _, ok := allowedAttachmentTypes[mimeType]; !ok {
			return domainerrors.ErrUnsupportedAttachmentType
		}
	}

	return nil
}
