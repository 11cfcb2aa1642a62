// Package qwantz scrapes the current Dinosaur Comics strip from qwantz.com.
package qwantz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const DefaultBaseURL = "https://www.qwantz.com/"

// UnknownTitle is the title recorded when the comic image carries no
// title attribute. Extraction still succeeds in that case.
const UnknownTitle = "unknown"

var (
	ErrNoComicImage  = errors.New("comic image not found in page")
	ErrNoImageSource = errors.New("comic image has no source attribute")
)

// Comic is the record extracted from one fetched page: the absolute image
// URL plus the hover title. Immutable once built.
type Comic struct {
	ImageURL string
	Title    string
}

type Scraper struct {
	client  *http.Client
	baseURL string
	log     interface {
		Debugf(string, ...any)
	}
}

func NewScraper(client *http.Client, baseURL string, log interface{ Debugf(string, ...any) }) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Scraper{
		client:  client,
		baseURL: baseURL,
		log:     log,
	}
}

// FetchPage retrieves the comic page and parses it into a queryable
// document. Any non-2xx status is an error.
func (s *Scraper) FetchPage(ctx context.Context) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.baseURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", s.baseURL, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.baseURL, err)
	}

	return doc, nil
}

// Extract locates the comic image element and builds the Comic record.
// A missing title attribute falls back to UnknownTitle; a missing element
// or source attribute is an error.
func (s *Scraper) Extract(doc *goquery.Document) (Comic, error) {
	img := doc.Find("img.comic").First()
	if img.Length() == 0 {
		return Comic{}, ErrNoComicImage
	}

	src, ok := img.Attr("src")
	src = strings.TrimSpace(src)
	if !ok || src == "" {
		return Comic{}, ErrNoImageSource
	}

	title, ok := img.Attr("title")
	if !ok {
		title = UnknownTitle
	}

	return Comic{
		ImageURL: resolveURL(s.baseURL, src),
		Title:    title,
	}, nil
}

// Current fetches the comic page and extracts today's strip.
func (s *Scraper) Current(ctx context.Context) (Comic, error) {
	doc, err := s.FetchPage(ctx)
	if err != nil {
		return Comic{}, err
	}

	return s.Extract(doc)
}

// Download retrieves the image bytes unmodified. The progress callback,
// if non-nil, receives cumulative written bytes and the total from
// Content-Length (-1 if unknown).
func (s *Scraper) Download(ctx context.Context, imageURL string, progress func(written, total int64)) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Referer", s.baseURL)
	req.Header.Set("Accept", "image/avif,image/webp,image/apng,image/*,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", imageURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download %s: unexpected status %s", imageURL, resp.Status)
	}

	if s.log != nil {
		s.log.Debugf("downloading %s (%d bytes reported)\n", imageURL, resp.ContentLength)
	}

	var buf bytes.Buffer
	chunk := make([]byte, 32*1024)
	for {
		n, rerr := resp.Body.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
			if progress != nil {
				progress(int64(buf.Len()), resp.ContentLength)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("download %s: %w", imageURL, rerr)
		}
	}

	return buf.Bytes(), nil
}

func resolveURL(baseURL, href string) string {
	if href == "" {
		return baseURL
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return u.String()
	}

	b, err := url.Parse(baseURL)
	if err != nil {
		return href
	}

	return b.ResolveReference(u).String()
}
