// Package resource discovers, fetches and stores the shader sources the
// experiment needs. Fetches run concurrently; their results are applied to
// the registry on the main loop only.
package resource

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Kind is the pipeline stage a shader source belongs to.
type Kind int

const (
	KindVertex Kind = iota
	KindFragment
)

func (k Kind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindFragment:
		return "fragment"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Script types recognised in the markup page.
const (
	ScriptVertex   = "x-shader/x-vertex"
	ScriptFragment = "x-shader/x-fragment"
)

// ErrNoMarkup is returned when the markup page cannot be read.
var ErrNoMarkup = errors.New("markup page not found")

// Descriptor names one shader source to fetch.
type Descriptor struct {
	Name   string
	Kind   Kind
	Source string // file path or http(s) URL
}

func (d Descriptor) String() string {
	return d.Name + "/" + d.Kind.String()
}

// Discover reads the markup page at location (a path or URL) and returns a
// descriptor for every shader script element. Fragment descriptors come
// first, then vertex ones, each in document order.
func Discover(location string) ([]Descriptor, error) {
	r, err := openMarkup(location)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse markup %s: %w", location, err)
	}

	var descs []Descriptor
	for _, sel := range []struct {
		typ  string
		kind Kind
	}{
		{ScriptFragment, KindFragment},
		{ScriptVertex, KindVertex},
	} {
		var ferr error
		doc.Find(fmt.Sprintf("script[type=%q]", sel.typ)).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			name := strings.TrimSpace(s.AttrOr("data-name", ""))
			src := strings.TrimSpace(s.AttrOr("data-src", ""))
			if name == "" || src == "" {
				ferr = fmt.Errorf("%s script without data-name or data-src in %s", sel.kind, location)
				return false
			}
			resolved, err := resolve(location, src)
			if err != nil {
				ferr = err
				return false
			}
			descs = append(descs, Descriptor{Name: name, Kind: sel.kind, Source: resolved})
			return true
		})
		if ferr != nil {
			return nil, ferr
		}
	}
	return descs, nil
}

func openMarkup(location string) (io.ReadCloser, error) {
	if isURL(location) {
		resp, err := http.Get(location)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoMarkup, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %s returned %s", ErrNoMarkup, location, resp.Status)
		}
		return resp.Body, nil
	}
	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoMarkup, err)
	}
	return f, nil
}

// resolve makes src absolute relative to the markup location.
func resolve(base, src string) (string, error) {
	if isURL(src) {
		return src, nil
	}
	if isURL(base) {
		b, err := url.Parse(base)
		if err != nil {
			return "", fmt.Errorf("parse base url: %w", err)
		}
		ref, err := url.Parse(src)
		if err != nil {
			return "", fmt.Errorf("parse shader url %q: %w", src, err)
		}
		return b.ResolveReference(ref).String(), nil
	}
	if filepath.IsAbs(src) {
		return src, nil
	}
	return filepath.Join(filepath.Dir(base), filepath.FromSlash(src)), nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
