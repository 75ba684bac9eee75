package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Fetcher retrieves the text of a shader source. A failed fetch may still
// return whatever text the source produced; the coordinator stores it.
type Fetcher interface {
	Fetch(ctx context.Context, d Descriptor) (string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, d Descriptor) (string, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, d Descriptor) (string, error) {
	return f(ctx, d)
}

// FileFetcher reads sources from the local filesystem.
type FileFetcher struct{}

// Fetch reads d.Source.
func (FileFetcher) Fetch(ctx context.Context, d Descriptor) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(d.Source)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", d, err)
	}
	return string(data), nil
}

// HTTPFetcher issues GET requests for http(s) sources.
type HTTPFetcher struct {
	Client *http.Client // nil uses http.DefaultClient
}

// Fetch downloads d.Source. Non-200 responses are errors, returned together
// with the response body.
func (f HTTPFetcher) Fetch(ctx context.Context, d Descriptor) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.Source, nil)
	if err != nil {
		return "", fmt.Errorf("request %s: %w", d, err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", d, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body %s: %w", d, err)
	}
	if resp.StatusCode != http.StatusOK {
		return string(data), fmt.Errorf("get %s: status %s", d, resp.Status)
	}
	return string(data), nil
}

// SourceFetcher routes each descriptor by scheme.
type SourceFetcher struct {
	File FileFetcher
	HTTP HTTPFetcher
}

// Fetch dispatches to the HTTP fetcher for URLs and to the file fetcher
// otherwise.
func (f SourceFetcher) Fetch(ctx context.Context, d Descriptor) (string, error) {
	if isURL(d.Source) {
		return f.HTTP.Fetch(ctx, d)
	}
	return f.File.Fetch(ctx, d)
}
