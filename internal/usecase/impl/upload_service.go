package impl

import (
	"context"
	"log/slog"

	deliverycontext "warta/internal/delivery/context"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/service"
	"warta/internal/domain/upload"
	"warta/internal/usecase"

	"go.uber.org/fx"
)

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	ingest *IngestPipeline
	logger *slog.Logger
}

// UploadServiceParams holds dependencies for uploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Ingest *IngestPipeline
	Logger *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		ingest: params.Ingest,
		logger: params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadEditorImage validates, transcodes and stores one image from the
// rich-text editor. The type check runs before the size check.
func (srv *uploadService) UploadEditorImage(ctx context.Context, file *usecase.FileUpload) (*usecase.UploadOutput, error) {
	if file == nil || file.Size == 0 {
		return nil, domainerrors.ErrNoFileProvided
	}

	if !upload.IsImageType(file.ContentType) {
		return nil, domainerrors.ErrUnsupportedImageType
	}
	if file.Size > upload.MaxFileSize {
		return nil, domainerrors.ErrFileTooLarge
	}

	obj, err := srv.ingest.ProcessImage(ctx, file, service.FolderEditor)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Editor image stored",
		slog.String("filename", obj.Filename),
		slog.Int64("size", obj.Size),
	)

	return &usecase.UploadOutput{URL: obj.Stored.URL}, nil
}
