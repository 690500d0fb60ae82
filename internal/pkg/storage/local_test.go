package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)
	return s
}

func TestUploadAndDownloadRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	stored, err := s.Upload(ctx, strings.NewReader("hello"), "reports/q3.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "reports/q3.txt", stored)

	rc, err := s.Download(ctx, stored)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestUploadContainsTraversalInsideBase(t *testing.T) {
	s := newTestStorage(t)

	stored, err := s.Upload(context.Background(), strings.NewReader("x"), "../escape.txt", "text/plain")
	require.NoError(t, err)

	// The leading .. is stripped; the file lands inside the base directory.
	assert.Equal(t, "escape.txt", stored)
	_, err = os.Stat(filepath.Join(s.basePath, "escape.txt"))
	assert.NoError(t, err)
}

func TestListReturnsImmediateChildren(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, strings.NewReader("a"), "reports/a.txt", "text/plain")
	require.NoError(t, err)
	require.NoError(t, s.CreateFolder(ctx, "reports/archive"))

	infos, err := s.List(ctx, "reports")
	require.NoError(t, err)
	require.Len(t, infos, 2)

	byName := map[string]FileInfo{}
	for _, info := range infos {
		byName[info.Name] = info
	}

	assert.Equal(t, "reports/a.txt", byName["a.txt"].Path)
	assert.False(t, byName["a.txt"].IsDir)
	assert.True(t, byName["archive"].IsDir)
}

func TestListMissingFolderReturnsEmpty(t *testing.T) {
	s := newTestStorage(t)

	infos, err := s.List(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestDeleteMissingFileIsNoOp(t *testing.T) {
	s := newTestStorage(t)

	assert.NoError(t, s.Delete(context.Background(), "reports/missing.txt"))
}

func TestExists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "reports/a.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Upload(ctx, strings.NewReader("a"), "reports/a.txt", "text/plain")
	require.NoError(t, err)

	ok, err = s.Exists(ctx, "reports/a.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetURLJoinsBaseURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "reports/q3.txt", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/reports/q3.txt", url)
}
