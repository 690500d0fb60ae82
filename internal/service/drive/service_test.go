package drive

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/drive"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/storage"
)

type fakeStorage struct {
	objects map[string][]byte
	folders map[string]bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects: make(map[string][]byte),
		folders: make(map[string]bool),
	}
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.objects[path] = data
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := f.objects[path]
	if !ok {
		return nil, drive.ErrFileNotFound
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(f.objects, path)
	delete(f.folders, path)
	return nil
}

func (f *fakeStorage) List(ctx context.Context, prefix string) ([]storage.FileInfo, error) {
	var infos []storage.FileInfo
	for path, data := range f.objects {
		infos = append(infos, storage.FileInfo{
			Path:      path,
			Name:      path,
			Size:      int64(len(data)),
			UpdatedAt: time.Now(),
		})
	}
	for path := range f.folders {
		infos = append(infos, storage.FileInfo{
			Path:      path,
			Name:      path,
			IsDir:     true,
			UpdatedAt: time.Now(),
		})
	}
	return infos, nil
}

func (f *fakeStorage) CreateFolder(ctx context.Context, path string) error {
	f.folders[path] = true
	return nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://files.local/" + path, nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	if _, ok := f.objects[path]; ok {
		return true, nil
	}
	return f.folders[path], nil
}

func uploadRequest(name string, size int64) drive.UploadFileRequest {
	return drive.UploadFileRequest{
		Folder:      "reports",
		FileName:    name,
		ContentType: "text/plain",
		Size:        size,
		Content:     strings.NewReader("hello"),
	}
}

func TestUploadStoresUnderFolder(t *testing.T) {
	fs := newFakeStorage()
	svc := NewDriveService(fs)

	resp, err := svc.UploadFile(context.Background(), uploadRequest("q3.txt", 5))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Path, "reports/"))
	assert.True(t, strings.HasSuffix(resp.Path, "_q3.txt"))
	require.NotNil(t, resp.URL)
	assert.Contains(t, *resp.URL, resp.Path)
	assert.Len(t, fs.objects, 1)
}

func TestUploadSameNameTwiceDoesNotCollide(t *testing.T) {
	fs := newFakeStorage()
	svc := NewDriveService(fs)

	first, err := svc.UploadFile(context.Background(), uploadRequest("q3.txt", 5))
	require.NoError(t, err)
	second, err := svc.UploadFile(context.Background(), uploadRequest("q3.txt", 5))
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	assert.Len(t, fs.objects, 2)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := NewDriveService(newFakeStorage())

	_, err := svc.UploadFile(context.Background(), uploadRequest("big.bin", maxUploadSize+1))
	assert.ErrorIs(t, err, drive.ErrFileTooLarge)
}

func TestUploadRejectsBlockedExtension(t *testing.T) {
	svc := NewDriveService(newFakeStorage())

	_, err := svc.UploadFile(context.Background(), uploadRequest("setup.EXE", 10))
	assert.ErrorIs(t, err, drive.ErrFileTypeBlocked)
}

func TestUploadRejectsPathSeparatorInName(t *testing.T) {
	svc := NewDriveService(newFakeStorage())

	_, err := svc.UploadFile(context.Background(), uploadRequest("../escape.txt", 5))
	assert.Error(t, err)
}

func TestCreateFolderJoinsParent(t *testing.T) {
	fs := newFakeStorage()
	svc := NewDriveService(fs)

	resp, err := svc.CreateFolder(context.Background(), drive.CreateFolderRequest{
		Parent: "reports",
		Name:   "2024",
	})
	require.NoError(t, err)

	assert.Equal(t, "reports/2024", resp.Path)
	assert.True(t, resp.IsDir)
	assert.True(t, fs.folders["reports/2024"])
}

func TestDeleteUnknownFileReturnsNotFound(t *testing.T) {
	svc := NewDriveService(newFakeStorage())

	err := svc.DeleteFile(context.Background(), "reports/missing.txt")
	assert.ErrorIs(t, err, drive.ErrFileNotFound)
}

func TestDeleteRejectsTraversal(t *testing.T) {
	svc := NewDriveService(newFakeStorage())

	err := svc.DeleteFile(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, drive.ErrInvalidPath)

	err = svc.DeleteFile(context.Background(), "")
	assert.ErrorIs(t, err, drive.ErrInvalidPath)
}

func TestListFilesAddsURLsForFilesOnly(t *testing.T) {
	fs := newFakeStorage()
	fs.objects["reports/q3.txt"] = []byte("hello")
	fs.folders["reports/archive"] = true
	svc := NewDriveService(fs)

	resp, err := svc.ListFiles(context.Background(), "reports")
	require.NoError(t, err)
	require.Len(t, resp.Files, 2)

	for _, file := range resp.Files {
		if file.IsDir {
			assert.Nil(t, file.URL)
		} else {
			require.NotNil(t, file.URL)
		}
	}
}
