// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"warta/config"
	deliverycontext "warta/internal/delivery/context"
	"warta/internal/domain/entity"
	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/repository"
	"warta/internal/domain/service"
	"warta/internal/domain/upload"
	"warta/internal/usecase"
	"warta/internal/util"

	"go.uber.org/fx"
)

const transcodedMimeType = "image/jpeg"

// IngestPipeline is the shared validate-transcode-store sequence behind
// cover images, editor uploads and attachment batches.
type IngestPipeline struct {
	transcoder service.ImageTranscoder
	storage    service.ObjectStorage
	opts       service.TranscodeOptions
	logger     *slog.Logger
}

// ingestedObject describes one successfully stored upload.
type ingestedObject struct {
	Stored   *service.StoredObject
	Filename string
	MimeType string
	Size     int64
}

// IngestPipelineParams holds dependencies for IngestPipeline, injected by Fx.
type IngestPipelineParams struct {
	fx.In

	Transcoder service.ImageTranscoder
	Storage    service.ObjectStorage
	Config     *config.Config
	Logger     *slog.Logger
}

// NewIngestPipeline is the constructor for IngestPipeline.
func NewIngestPipeline(params IngestPipelineParams) *IngestPipeline {
	opts := service.DefaultTranscodeOptions()
	if params.Config != nil {
		if params.Config.Upload.Quality > 0 {
			opts.Quality = params.Config.Upload.Quality
		}
		if params.Config.Upload.MaxWidth > 0 {
			opts.MaxWidth = params.Config.Upload.MaxWidth
		}
	}

	return &IngestPipeline{
		transcoder: params.Transcoder,
		storage:    params.Storage,
		opts:       opts,
		logger:     params.Logger,
	}
}

func (p *IngestPipeline) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

// ProcessImage validates, transcodes and stores one image upload under the
// given folder. Every stored image comes out as JPEG regardless of input
// format.
func (p *IngestPipeline) ProcessImage(ctx context.Context, file *usecase.FileUpload, folder string) (*ingestedObject, error) {
	if err := upload.Validate(file.Size, file.ContentType, upload.ClassImage); err != nil {
		return nil, err
	}

	data, err := p.transcoder.Transcode(file.Data, p.opts)
	if err != nil {
		return nil, err
	}

	filename := util.ObjectFilename("jpg")
	stored, err := p.storage.Upload(ctx, data, filename, transcodedMimeType, folder)
	if err != nil {
		p.log(ctx).Error("Failed to store image",
			slog.String("folder", folder),
			slog.String("originalName", file.Name),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUploadFailed.WrapMessage("store image")
	}

	return &ingestedObject{
		Stored:   stored,
		Filename: filename,
		MimeType: transcodedMimeType,
		Size:     int64(len(data)),
	}, nil
}

// IngestAttachments stores an attachment batch for a post. Files that fail
// validation, transcoding or storage are skipped with a warning; the rest of
// the batch proceeds. Cover images do not pass through here, their failures
// abort the whole request.
func (p *IngestPipeline) IngestAttachments(ctx context.Context, fileRepo repository.FileRepository, postID int64, files []*usecase.FileUpload) {
	for _, file := range files {
		if file == nil || file.Size == 0 {
			continue
		}

		if err := p.ingestAttachment(ctx, fileRepo, postID, file); err != nil {
			p.log(ctx).Warn("Skipping attachment",
				slog.Int64("postID", postID),
				slog.String("originalName", file.Name),
				slog.Any("error", err),
			)
		}
	}
}

func (p *IngestPipeline) ingestAttachment(ctx context.Context, fileRepo repository.FileRepository, postID int64, file *usecase.FileUpload) error {
	if err := upload.Validate(file.Size, file.ContentType, upload.ClassAttachment); err != nil {
		return err
	}

	data := file.Data
	mimeType := file.ContentType
	ext := util.FileExtension(file.Name)

	// Image attachments are normalized like covers; everything else is
	// stored as submitted.
	if upload.IsImageType(file.ContentType) {
		transcoded, err := p.transcoder.Transcode(file.Data, p.opts)
		if err != nil {
			return err
		}
		data = transcoded
		mimeType = transcodedMimeType
		ext = "jpg"
	}

	filename := util.ObjectFilename(ext)
	stored, err := p.storage.Upload(ctx, data, filename, mimeType, service.FolderAttachments)
	if err != nil {
		return err
	}

	return fileRepo.Create(ctx, &entity.File{
		Filename:     filename,
		OriginalName: file.Name,
		MimeType:     mimeType,
		Size:         int64(len(data)),
		Path:         stored.URL,
		PostID:       &postID,
	})
}
