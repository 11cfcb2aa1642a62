// Package archive persists comic strips under dated directories and
// resolves the most recently archived entry.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const MetadataSuffix = "_metadata.txt"

// SplitImageURL derives the base filename and extension from the last
// path segment of an image URL. The extension has any query string
// stripped, so ".../foo.png?cache=1" yields ("foo", "png"). A segment
// without a dot yields an empty extension.
func SplitImageURL(imageURL string) (base, ext string) {
	seg := imageURL
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}

	dot := strings.LastIndex(seg, ".")
	if dot < 0 {
		return seg, ""
	}

	ext = seg[dot+1:]
	if q := strings.Index(ext, "?"); q >= 0 {
		ext = ext[:q]
	}

	return seg[:dot], ext
}

// Write stores the image bytes and the two-line metadata sidecar in dir.
// The base filename is sanitized once and shared by both files. Metadata
// is only written after the image write succeeded, so a failed run never
// leaves a sidecar without its image. Returns the base filename.
func Write(dir, imageURL, title string, image []byte) (string, error) {
	rawBase, ext := SplitImageURL(imageURL)
	base := Sanitize(rawBase)

	imageName := base
	if ext != "" {
		imageName = base + "." + ext
	}

	imagePath := filepath.Join(dir, imageName)
	if err := os.WriteFile(imagePath, image, 0644); err != nil {
		return "", fmt.Errorf("save image %s: %w", imagePath, err)
	}

	metadata := fmt.Sprintf("Title: %s\nImage URL: %s\n", title, imageURL)
	metadataPath := filepath.Join(dir, base+MetadataSuffix)
	if err := os.WriteFile(metadataPath, []byte(metadata), 0644); err != nil {
		return "", fmt.Errorf("save metadata %s: %w", metadataPath, err)
	}

	return base, nil
}
