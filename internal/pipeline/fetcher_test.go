package pipeline

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureLocalDownloadsOnce(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("payload"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "raw", "trips.csv")

	require.NoError(t, EnsureLocal(server.URL, path))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
	assert.Equal(t, 1, hits)

	// Second call is a no-op even though the server would answer
	require.NoError(t, EnsureLocal(server.URL, path))
	assert.Equal(t, 1, hits)
}

func TestEnsureLocalSkipsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.csv")
	require.NoError(t, os.WriteFile(path, []byte("already here"), 0o644))

	// An unreachable URL proves no request is made
	require.NoError(t, EnsureLocal("http://127.0.0.1:0/nope", path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "already here", string(got))
}

func TestEnsureLocalErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "trips.csv")
	err := EnsureLocal(server.URL, path)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)

	// No partial artifact left behind
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnsureLocalNetworkError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.csv")
	err := EnsureLocal("http://127.0.0.1:0/unreachable", path)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Error(t, fetchErr.Err)
}
