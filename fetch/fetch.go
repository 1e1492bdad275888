// SPDX-License-Identifier: EPL-2.0

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/afero"
)

var (
	ErrUnsupportedScheme = errors.New("unsupported reference scheme")
	ErrTooLarge          = errors.New("response exceeds size limit")
)

// DefaultMaxBytes caps a single fetched file.
const DefaultMaxBytes = 256 << 20

// Fetcher returns the raw encoded bytes a track reference points to.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// FS reads references from a filesystem. Plain paths and file:// URLs are
// accepted.
type FS struct {
	Fs afero.Fs
}

// NewFS returns an FS over the operating system filesystem.
func NewFS() FS { return FS{Fs: afero.NewOsFs()} }

func (f FS) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := strings.TrimPrefix(ref, "file://")
	data, err := afero.ReadFile(f.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// HTTP fetches references over http and https.
type HTTP struct {
	Client *http.Client
	// MaxBytes caps the body size; 0 means DefaultMaxBytes.
	MaxBytes int64
}

func (h HTTP) Fetch(ctx context.Context, ref string) ([]byte, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	limit := h.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: ref, Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ref, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s over %d bytes", ErrTooLarge, ref, limit)
	}

	return data, nil
}

// Router dispatches on the reference scheme. References without a scheme
// go to the "file" fetcher.
type Router map[string]Fetcher

// NewRouter wires FS to file and HTTP to http and https.
func NewRouter(fs afero.Fs, client *http.Client) Router {
	h := HTTP{Client: client}
	return Router{
		"file":  FS{Fs: fs},
		"http":  h,
		"https": h,
	}
}

func (r Router) Fetch(ctx context.Context, ref string) ([]byte, error) {
	scheme := "file"
	if u, err := url.Parse(ref); err == nil && len(u.Scheme) > 1 {
		// single letters are Windows drive names
		scheme = strings.ToLower(u.Scheme)
	}

	f, ok := r[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, scheme)
	}

	return f.Fetch(ctx, ref)
}
