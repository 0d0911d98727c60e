package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple", "Hello World", "hello-world"},
		{"mixed case", "My First Post", "my-first-post"},
		{"special characters stripped", "Hello, World! (2024)", "hello-world-2024"},
		{"multiple spaces collapse", "too   many    spaces", "too-many-spaces"},
		{"dash runs collapse", "a -- b --- c", "a-b-c"},
		{"surrounding whitespace becomes edge dashes", "  padded title  ", "-padded-title-"},
		{"trailing punctuation leaves a trailing dash", "Hello :)", "hello-"},
		{"numbers kept", "Top 10 Tips", "top-10-tips"},
		{"only invalid characters", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}

func TestObjectFilename(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+-[0-9a-z]{6}\.jpg$`)

	name := ObjectFilename("jpg")
	assert.Regexp(t, pattern, name)

	// Two names generated back to back should differ in the random suffix.
	other := ObjectFilename("jpg")
	assert.NotEqual(t, name, other)
}

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "pdf", FileExtension("report.pdf"))
	assert.Equal(t, "gz", FileExtension("archive.tar.gz"))
	assert.Equal(t, "bin", FileExtension("noextension"))
	assert.Equal(t, "bin", FileExtension("trailingdot."))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "2.0 MB", FormatBytes(2*1024*1024))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
}
