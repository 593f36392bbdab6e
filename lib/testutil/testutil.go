package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

type Route struct {
	ContentType string
	Body        string
	// requests missing any of these headers get a 403
	Headers map[string]string
}

// NewServer serves fixed documents by path, anything else is a 404. The
// server is closed when the test finishes.
func NewServer(t testing.TB, routes map[string]Route) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		for key, value := range route.Headers {
			if r.Header.Get(key) != value {
				w.WriteHeader(http.StatusForbidden)
				return
			}
		}
		if route.ContentType != "" {
			w.Header().Set("content-type", route.ContentType)
		}
		w.Write([]byte(route.Body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// WriteFile creates `name` under `dir` and returns its path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(path, []byte(contents), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

// Chdir switches the working directory for the rest of the test.
func Chdir(t testing.TB, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	err = os.Chdir(dir)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Chdir(wd)
	})
}

// Collector records every request body it receives by path, it stands in
// for an otlp/http collector.
type Collector struct {
	URL string

	mutex    sync.Mutex
	requests map[string][][]byte
}

func NewCollector(t testing.TB) *Collector {
	t.Helper()
	c := &Collector{requests: map[string][][]byte{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		c.mutex.Lock()
		c.requests[r.URL.Path] = append(c.requests[r.URL.Path], body)
		c.mutex.Unlock()
		w.Header().Set("content-type", "application/x-protobuf")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	c.URL = srv.URL
	return c
}

// Received is every body posted to `path` so far, joined.
func (c *Collector) Received(path string) []byte {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	var out []byte
	for _, body := range c.requests[path] {
		out = append(out, body...)
	}
	return out
}
