// Package util contains small stateless helpers shared across layers.
package util

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces       = regexp.MustCompile(`\s+`)
	slugDashes       = regexp.MustCompile(`-+`)
)

// Slugify normalizes a post title into a URL slug: lowercase, strip anything
// outside [a-z0-9 -], collapse whitespace and dash runs into single dashes.
// Dashes produced at the edges stay, so "Hello :)" slugs to "hello-".
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")

	return slugDashes.ReplaceAllString(slug, "-")
}

const randomTokenLength = 6

// ObjectFilename generates a storage object name of the form
// "<unix-ms>-<random>.<ext>". Names are probabilistically unique; the storage
// layer's no-overwrite precondition is the backstop for collisions.
func ObjectFilename(ext string) string {
	return fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), randomToken(randomTokenLength), ext)
}

// FileExtension extracts the extension from an original filename, without the
// dot. Files without an extension fall back to "bin".
func FileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "bin"
	}

	return name[idx+1:]
}

func randomToken(length int) string {
	token := strconv.FormatUint(rand.Uint64(), 36)
	if len(token) < length {
		token = strings.Repeat("0", length-len(token)) + token
	}

	return token[:length]
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
