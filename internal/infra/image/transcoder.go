// Package image implements the upload pipeline's image normalization.
package image

import (
	"bytes"

	"github.com/disintegration/imaging"

	// Registers WebP decoding for image.Decode; imaging itself registers
	// JPEG, PNG, GIF, TIFF and BMP.
	_ "golang.org/x/image/webp"

	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/service"
)

type jpegTranscoder struct{}

// NewTranscoder returns the JPEG transcoder used for covers, editor images
// and image attachments.
func NewTranscoder() service.ImageTranscoder {
	return &jpegTranscoder{}
}

// Transcode decodes the buffer, resizes it to fit inside MaxWidth without
// ever enlarging, and re-encodes as JPEG at the given quality. Corrupt input
// surfaces as a processing error, not a panic.
func (t *jpegTranscoder) Transcode(data []byte, opts service.TranscodeOptions) ([]byte, error) {
	if opts.Quality <= 0 || opts.MaxWidth <= 0 {
		defaults := service.DefaultTranscodeOptions()
		if opts.Quality <= 0 {
			opts.Quality = defaults.Quality
		}
		if opts.MaxWidth <= 0 {
			opts.MaxWidth = defaults.MaxWidth
		}
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domainerrors.ErrImageProcessingFailed.WrapMessage("decode image")
	}

	if img.Bounds().Dx() > opts.MaxWidth {
		// Height 0 preserves the aspect ratio.
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(opts.Quality)); err != nil {
		return nil, domainerrors.ErrImageProcessingFailed.WrapMessage("encode image")
	}

	return buf.Bytes(), nil
}
