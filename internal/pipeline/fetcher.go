package pipeline

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// FetchError reports a failed download of a boot-time dependency.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

var fetchClient = &http.Client{
	Timeout: 60 * time.Second,
}

// EnsureLocal makes sure the resource at url exists at path. If the file is
// already present it is a no-op; otherwise the resource is streamed to disk,
// creating parent directories as needed. Any network or IO failure returns a
// *FetchError and is fatal to pipeline startup.
func EnsureLocal(url, path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &FetchError{URL: url, Err: err}
	}

	resp, err := fetchClient.Get(url)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	// Write to a temp file first so an interrupted download is never
	// mistaken for a complete one on the next start.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return &FetchError{URL: url, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &FetchError{URL: url, Err: err}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return &FetchError{URL: url, Err: err}
	}

	return nil
}
