package drive

import (
	"context"
)

// DriveService exposes the shared file gallery.
type DriveService interface {
	UploadFile(ctx context.Context, req UploadFileRequest) (FileResponse, error)
	ListFiles(ctx context.Context, folder string) (ListFilesResponse, error)
	CreateFolder(ctx context.Context, req CreateFolderRequest) (FileResponse, error)
	DeleteFile(ctx context.Context, path string) error
}
