// Package summary renders the Markdown document reflecting the latest
// archived comic.
package summary

import (
	"fmt"
	"strings"

	"github.com/hvollset/dinodaily/internal/archive"

	"github.com/natefinch/atomic"
)

const heading = "Dinosaur Comics Daily"

const disclaimer = "*This README is automatically updated with the latest Dinosaur Comics comic.*"

// Render produces the summary document for one entry. Deterministic:
// the same entry always renders to the same bytes.
func Render(e archive.Entry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", heading))
	sb.WriteString(fmt.Sprintf("#### %s\n\n", e.Date))
	sb.WriteString(fmt.Sprintf("![%s](%s)\n\n", e.Base, e.ImagePath))
	sb.WriteString(fmt.Sprintf("**%s**\n\n", e.Title))
	sb.WriteString("---\n\n")
	sb.WriteString(disclaimer + "\n")

	return sb.String()
}

// WriteDocument replaces the document at path with the rendered entry.
// The write is atomic: readers never observe a half-written document.
func WriteDocument(path string, e archive.Entry) error {
	if err := atomic.WriteFile(path, strings.NewReader(Render(e))); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}

	return nil
}
