package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitImageURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantBase string
		wantExt  string
	}{
		{
			name:     "plain png",
			url:      "https://www.qwantz.com/comics/comic2-1234.png",
			wantBase: "comic2-1234",
			wantExt:  "png",
		},
		{
			name:     "query string stripped from extension",
			url:      "https://example.com/strips/foo.png?cache=1",
			wantBase: "foo",
			wantExt:  "png",
		},
		{
			name:     "multiple dots split on last",
			url:      "https://example.com/a.b/strip.v2.png",
			wantBase: "strip.v2",
			wantExt:  "png",
		},
		{
			name:     "no extension",
			url:      "https://example.com/comics/raw",
			wantBase: "raw",
			wantExt:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, ext := SplitImageURL(tt.url)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	image := []byte("\x89PNG\r\n\x1a\nfakepixels")

	base, err := Write(dir, "https://www.qwantz.com/comics/strip.png", "T", image)
	require.NoError(t, err)
	assert.Equal(t, "strip", base)

	got, err := os.ReadFile(filepath.Join(dir, "strip.png"))
	require.NoError(t, err)
	assert.Equal(t, image, got, "stored bytes must match fetched bytes exactly")

	meta, err := os.ReadFile(filepath.Join(dir, "strip_metadata.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Title: T\nImage URL: https://www.qwantz.com/comics/strip.png\n", string(meta))
}

func TestWriteSanitizesBaseOnce(t *testing.T) {
	dir := t.TempDir()

	base, err := Write(dir, "https://example.com/comics/we:ird|name.png", "x", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "weirdname", base)

	// image and sidecar share the same sanitized base
	_, err = os.Stat(filepath.Join(dir, "weirdname.png"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "weirdname"+MetadataSuffix))
	require.NoError(t, err)
}

func TestWriteNoExtension(t *testing.T) {
	dir := t.TempDir()

	base, err := Write(dir, "https://example.com/comics/raw", "x", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, "raw", base)

	_, err = os.Stat(filepath.Join(dir, "raw"))
	require.NoError(t, err)
}

func TestWriteImageFailureLeavesNoMetadata(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Write(dir, "https://example.com/comics/strip.png", "T", []byte("img"))
	require.Error(t, err)

	// the sidecar must never exist without its image
	_, statErr := os.Stat(filepath.Join(dir, "strip"+MetadataSuffix))
	assert.True(t, os.IsNotExist(statErr))
}
