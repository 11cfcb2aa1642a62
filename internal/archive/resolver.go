package archive

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNoEntries is reported when the archive holds no usable entry: the
// data directory is missing, contains no dated subdirectories, or the
// newest one holds no image.
var ErrNoEntries = errors.New("no archived comics found")

// NoTitle is used when the metadata sidecar is absent or carries no
// title line. An image without its sidecar is an accepted state, not an
// error.
const NoTitle = "No title available"

const dateLayout = "2006-01-02"

// Entry describes the most recently archived comic.
type Entry struct {
	Date      string // YYYY-MM-DD
	Base      string // image filename without extension
	ImagePath string // relative to the project root, spaces escaped as %20
	Title     string
}

// LatestEntry scans dataDir for the newest dated subdirectory and locates
// its comic image and metadata. Directory names are parsed as calendar
// dates and compared as such; names that do not parse are skipped.
func LatestEntry(dataDir, projectRoot, imageExt string) (Entry, error) {
	dirs, err := os.ReadDir(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, ErrNoEntries
		}
		return Entry{}, fmt.Errorf("list %s: %w", dataDir, err)
	}

	var (
		newest     time.Time
		newestName string
	)
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}

		t, err := time.Parse(dateLayout, d.Name())
		if err != nil {
			continue
		}

		if newestName == "" || t.After(newest) {
			newest = t
			newestName = d.Name()
		}
	}
	if newestName == "" {
		return Entry{}, ErrNoEntries
	}

	entryDir := filepath.Join(dataDir, newestName)
	files, err := os.ReadDir(entryDir)
	if err != nil {
		return Entry{}, fmt.Errorf("list %s: %w", entryDir, err)
	}

	suffix := "." + strings.TrimPrefix(imageExt, ".")

	// ReadDir sorts by name; the writer leaves exactly one image per day,
	// so the first match is the entry.
	var imageName string
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if strings.HasSuffix(f.Name(), suffix) {
			imageName = f.Name()
			break
		}
	}
	if imageName == "" {
		return Entry{}, ErrNoEntries
	}

	base := strings.TrimSuffix(imageName, suffix)
	title := readTitle(filepath.Join(entryDir, base+MetadataSuffix))

	rel, err := filepath.Rel(projectRoot, filepath.Join(entryDir, imageName))
	if err != nil {
		return Entry{}, fmt.Errorf("relative path for %s: %w", imageName, err)
	}

	// %20-escape spaces so the path survives embedding in a Markdown link.
	relPath := strings.ReplaceAll(filepath.ToSlash(rel), " ", "%20")

	return Entry{
		Date:      newestName,
		Base:      base,
		ImagePath: relPath,
		Title:     title,
	}, nil
}

func readTitle(metadataPath string) string {
	f, err := os.Open(metadataPath)
	if err != nil {
		return NoTitle
	}
	defer func() {
		_ = f.Close()
	}()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "Title:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Title:"))
		}
	}

	return NoTitle
}
