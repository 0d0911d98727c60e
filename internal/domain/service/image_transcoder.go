package service

// TranscodeOptions bound the output of image normalization.
type TranscodeOptions struct {
	Quality  int // Lossy encoding quality, 1-100.
	MaxWidth int // Output is resized to fit inside this width; never enlarged.
}

// DefaultTranscodeOptions returns the pipeline defaults.
func DefaultTranscodeOptions() TranscodeOptions {
	return TranscodeOptions{Quality: 80, MaxWidth: 1920}
}

// ImageTranscoder normalizes any accepted image into the single target
// format: bounded width, preserved aspect ratio, lossy re-encode.
// Deterministic for identical input and options.
type ImageTranscoder interface {
	Transcode(data []byte, opts TranscodeOptions) ([]byte, error)
}
