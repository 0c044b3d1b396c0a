package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Source opens asset files by their URL path, such as "/fonts/Funkorama_Regular.json".
type Source interface {
	// Open returns the asset contents and their size, or -1 when the size is unknown.
	//
	// Parameters:
	//   - ctx: cancels the request
	//   - url: the asset path
	//
	// Returns:
	//   - io.ReadCloser: the asset contents, closed by the caller
	//   - int64: the content length or -1
	//   - error: ErrNotFound when the asset does not exist, or a transport error
	Open(ctx context.Context, url string) (io.ReadCloser, int64, error)
}

type dirSource struct {
	root string
}

// DirSource serves assets from a directory. URL paths are resolved below root and cannot escape it.
//
// Parameters:
//   - root: the asset directory
//
// Returns:
//   - Source: the directory source
func DirSource(root string) Source {
	return &dirSource{root: root}
}

func (s *dirSource) Open(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	p := filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+url)))
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, url)
		}
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, fmt.Errorf("%w: %s is a directory", ErrNotFound, url)
	}
	return f, info.Size(), nil
}

type httpSource struct {
	base   string
	client *http.Client
}

// HTTPSource fetches assets relative to a base URL.
//
// Parameters:
//   - baseURL: prefix joined with each asset path, for example "http://localhost:5173"
//   - client: the HTTP client, nil for http.DefaultClient
//
// Returns:
//   - Source: the HTTP source
func HTTPSource(baseURL string, client *http.Client) Source {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{base: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *httpSource) Open(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	full := s.base + "/" + strings.TrimLeft(url, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, 0, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, full)
		}
		return nil, 0, fmt.Errorf("fetching %s: unexpected status %s", full, resp.Status)
	}
	return resp.Body, resp.ContentLength, nil
}

// progressReader reports cumulative reads to a callback.
type progressReader struct {
	r        io.Reader
	url      string
	read     int64
	total    int64
	progress func(url string, read, total int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.progress(p.url, p.read, p.total)
	}
	return n, err
}
