package curriculum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// Fetcher downloads study plan documents over HTTP.
type Fetcher struct {
	httpDo   *http.Client
	maxBytes int64
}

func NewFetcher(timeout time.Duration, maxBytes int64) *Fetcher {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if maxBytes <= 0 {
		maxBytes = 15 << 20
	}
	return &Fetcher{httpDo: &http.Client{Timeout: timeout}, maxBytes: maxBytes}
}

// Fetch downloads the document at rawURL and extracts its text. The file
// format is taken from the URL path, defaulting to PDF.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return Document{}, fmt.Errorf("invalid document url %q", rawURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Document{}, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; program-advisor/1.0)")
	req.Header.Set("Accept", "application/pdf,*/*")

	resp, err := f.httpDo.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("download %s: %w", u.Redacted(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Document{}, fmt.Errorf("download %s: unexpected status %d", u.Redacted(), resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return Document{}, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return Document{}, fmt.Errorf("document too large: limit is %d bytes", f.maxBytes)
	}
	name := path.Base(u.Path)
	if !Supported(name) {
		name = "document.pdf"
	}
	return ReadDocument(name, data)
}
