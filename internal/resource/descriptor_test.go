package resource

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const testMarkup = `<!doctype html>
<html><head>
<script type="x-shader/x-vertex" data-name="Sphere" data-src="shaders/sphere.vert"></script>
<script type="text/javascript" src="app.js"></script>
<script type="x-shader/x-fragment" data-name="Sphere" data-src="shaders/sphere.frag"></script>
<script type="x-shader/x-vertex" data-name="Flat" data-src="/abs/flat.vert"></script>
</head><body></body></html>`

func TestDiscoverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(testMarkup), 0644); err != nil {
		t.Fatal(err)
	}

	descs, err := Discover(path)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	want := []Descriptor{
		{Name: "Sphere", Kind: KindFragment, Source: filepath.Join(dir, "shaders", "sphere.frag")},
		{Name: "Sphere", Kind: KindVertex, Source: filepath.Join(dir, "shaders", "sphere.vert")},
		{Name: "Flat", Kind: KindVertex, Source: "/abs/flat.vert"},
	}
	if len(descs) != len(want) {
		t.Fatalf("expected %d descriptors, got %d: %v", len(want), len(descs), descs)
	}
	for i := range want {
		if descs[i] != want[i] {
			t.Errorf("descriptor %d: expected %+v, got %+v", i, want[i], descs[i])
		}
	}
}

func TestDiscoverURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testMarkup))
	}))
	defer srv.Close()

	descs, err := Discover(srv.URL + "/demo/index.html")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(descs) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(descs))
	}
	if got, want := descs[0].Source, srv.URL+"/demo/shaders/sphere.frag"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	if got, want := descs[2].Source, srv.URL+"/abs/flat.vert"; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDiscoverEmptyPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	if err := os.WriteFile(path, []byte("<html><body>nothing</body></html>"), 0644); err != nil {
		t.Fatal(err)
	}
	descs, err := Discover(path)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(descs) != 0 {
		t.Errorf("expected no descriptors, got %v", descs)
	}
}

func TestDiscoverMissing(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing.html"))
	if !errors.Is(err, ErrNoMarkup) {
		t.Errorf("expected ErrNoMarkup, got %v", err)
	}
}

func TestDiscoverIncompleteScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	page := `<script type="x-shader/x-vertex" data-name="Sphere"></script>`
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Discover(path); err == nil {
		t.Error("expected error for script without data-src")
	}
}
