package image

import (
	"bytes"
	stdimage "image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	domainerrors "warta/internal/domain/errors"
	"warta/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	for x := 0; x < width; x += 100 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) stdimage.Image {
	t.Helper()

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	return img
}

func TestTranscode_ResizesWideImages(t *testing.T) {
	transcoder := NewTranscoder()

	out, err := transcoder.Transcode(encodePNG(t, 4000, 1000), service.DefaultTranscodeOptions())
	require.NoError(t, err)

	img := decodeJPEG(t, out)
	assert.Equal(t, 1920, img.Bounds().Dx())
	// Aspect ratio preserved: 4000x1000 -> 1920x480.
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestTranscode_NeverUpscales(t *testing.T) {
	transcoder := NewTranscoder()

	out, err := transcoder.Transcode(encodePNG(t, 800, 600), service.DefaultTranscodeOptions())
	require.NoError(t, err)

	img := decodeJPEG(t, out)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestTranscode_ZeroOptionsUseDefaults(t *testing.T) {
	transcoder := NewTranscoder()

	out, err := transcoder.Transcode(encodePNG(t, 2500, 500), service.TranscodeOptions{})
	require.NoError(t, err)

	img := decodeJPEG(t, out)
	assert.Equal(t, 1920, img.Bounds().Dx())
}

func TestTranscode_CorruptInputFails(t *testing.T) {
	transcoder := NewTranscoder()

	_, err := transcoder.Transcode([]byte("definitely not an image"), service.DefaultTranscodeOptions())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "IMAGE_PROCESSING_FAILED", appErr.ErrorCode())
}
