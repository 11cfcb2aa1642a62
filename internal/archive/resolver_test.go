package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEntry(t *testing.T, dataDir, date, imageName, metadata string) {
	t.Helper()

	dir := filepath.Join(dataDir, date)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, imageName), []byte("img"), 0644))

	if metadata != "" {
		base := imageName[:len(imageName)-len(filepath.Ext(imageName))]
		require.NoError(t, os.WriteFile(filepath.Join(dir, base+MetadataSuffix), []byte(metadata), 0644))
	}
}

func TestLatestEntryPicksNewestDate(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")

	writeEntry(t, dataDir, "2024-01-01", "old.png", "Title: Old\nImage URL: u\n")
	writeEntry(t, dataDir, "2024-01-02", "new.png", "Title: New\nImage URL: u\n")

	entry, err := LatestEntry(dataDir, root, "png")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-02", entry.Date)
	assert.Equal(t, "new", entry.Base)
	assert.Equal(t, "New", entry.Title)
	assert.Equal(t, "data/2024-01-02/new.png", entry.ImagePath)
}

func TestLatestEntryComparesDatesNotStrings(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")

	writeEntry(t, dataDir, "2024-12-31", "a.png", "")
	writeEntry(t, dataDir, "2025-01-02", "b.png", "")

	entry, err := LatestEntry(dataDir, root, "png")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", entry.Date)
}

func TestLatestEntrySkipsNonDateDirs(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")

	writeEntry(t, dataDir, "2024-06-01", "a.png", "")
	// sorts after the dated dir lexically but must be ignored
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "zz-scratch"), 0755))

	entry, err := LatestEntry(dataDir, root, "png")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", entry.Date)
}

func TestLatestEntryNoEntries(t *testing.T) {
	root := t.TempDir()

	t.Run("missing data dir", func(t *testing.T) {
		_, err := LatestEntry(filepath.Join(root, "nope"), root, "png")
		assert.ErrorIs(t, err, ErrNoEntries)
	})

	t.Run("empty data dir", func(t *testing.T) {
		dataDir := filepath.Join(root, "data")
		require.NoError(t, os.MkdirAll(dataDir, 0755))

		_, err := LatestEntry(dataDir, root, "png")
		assert.ErrorIs(t, err, ErrNoEntries)
	})

	t.Run("dated dir without image", func(t *testing.T) {
		dataDir := filepath.Join(root, "data2")
		require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "2024-05-05"), 0755))

		_, err := LatestEntry(dataDir, root, "png")
		assert.ErrorIs(t, err, ErrNoEntries)
	})
}

func TestLatestEntryMissingMetadataFallsBack(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")

	writeEntry(t, dataDir, "2024-03-03", "orphan.png", "")

	entry, err := LatestEntry(dataDir, root, "png")
	require.NoError(t, err)
	assert.Equal(t, NoTitle, entry.Title)
}

func TestLatestEntryMetadataWithoutTitleLine(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")

	writeEntry(t, dataDir, "2024-03-03", "a.png", "Image URL: something\n")

	entry, err := LatestEntry(dataDir, root, "png")
	require.NoError(t, err)
	assert.Equal(t, NoTitle, entry.Title)
}

func TestLatestEntryEscapesSpaces(t *testing.T) {
	root := t.TempDir()
	dataDir := filepath.Join(root, "my data")

	writeEntry(t, dataDir, "2024-03-03", "a strip.png", "")

	entry, err := LatestEntry(dataDir, root, "png")
	require.NoError(t, err)
	assert.Equal(t, "my%20data/2024-03-03/a%20strip.png", entry.ImagePath)
	assert.Equal(t, "a strip", entry.Base)
}
