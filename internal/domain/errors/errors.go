package errors

import (
	"net/http"

	"warta/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types. User-facing messages keep the original Indonesian
// copy of the CMS frontend.
var (
	// Authentication
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Username dan password wajib diisi",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Username atau password salah",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized",
		"",
	)

	// Posts
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post tidak ditemukan",
		"",
	)

	ErrMissingTitleOrContent = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Title dan content wajib diisi",
		"",
	)

	ErrPostSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"POST_SAVE_FAILED",
		"Gagal menyimpan post",
		"",
	)

	// Uploads. Cover images carry their own copy, matching the stricter
	// cover path of the post forms.
	ErrNoFileProvided = NewBaseError(
		http.StatusBadRequest,
		"NO_FILE",
		"No file provided",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"FILE_TOO_LARGE",
		"Ukuran file maksimal 2MB.",
		"",
	)

	ErrUnsupportedImageType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"Tipe file tidak didukung. Gunakan JPEG, PNG, GIF, atau WebP.",
		"",
	)

	ErrUnsupportedAttachmentType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_FILE_TYPE",
		"Tipe file tidak didukung.",
		"",
	)

	ErrCoverImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"COVER_TOO_LARGE",
		"Ukuran cover image maksimal 2MB",
		"",
	)

	ErrUnsupportedCoverImageType = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_COVER_TYPE",
		"Tipe cover image tidak didukung. Gunakan JPEG, PNG, GIF, atau WebP.",
		"",
	)

	ErrImageProcessingFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMAGE_PROCESSING_FAILED",
		"Gagal memproses gambar",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Gagal mengupload file",
		"",
	)

	// Database
	ErrDatabaseExecuteFailed = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Database operation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps a database error with a contextual message.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrDatabaseExecuteFailed.WithDetails(err.Error()), message)
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}
