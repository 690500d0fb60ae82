package drive

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/drive"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/storage"
)

// maxUploadSize caps gallery uploads at 25 MB.
const maxUploadSize = 25 << 20

var blockedExtensions = []string{".exe", ".bat", ".cmd", ".sh", ".com", ".scr"}

type DriveServiceImpl struct {
	storage storage.FileStorage
}

func NewDriveService(fileStorage storage.FileStorage) drive.DriveService {
	return &DriveServiceImpl{storage: fileStorage}
}

// UploadFile implements drive.DriveService. Files are stored under a
// generated prefix so two uploads with the same name never collide.
func (s *DriveServiceImpl) UploadFile(ctx context.Context, req drive.UploadFileRequest) (drive.FileResponse, error) {
	if err := req.Validate(); err != nil {
		return drive.FileResponse{}, err
	}

	if req.Size > maxUploadSize {
		return drive.FileResponse{}, drive.ErrFileTooLarge
	}

	ext := strings.ToLower(path.Ext(req.FileName))
	for _, blocked := range blockedExtensions {
		if ext == blocked {
			return drive.FileResponse{}, drive.ErrFileTypeBlocked
		}
	}

	key := path.Join(req.Folder, uuid.NewString()+"_"+req.FileName)

	stored, err := s.storage.Upload(ctx, req.Content, key, req.ContentType)
	if err != nil {
		return drive.FileResponse{}, fmt.Errorf("failed to upload file: %w", err)
	}

	url, err := s.storage.GetURL(ctx, stored, 24*time.Hour)
	if err != nil {
		return drive.FileResponse{}, fmt.Errorf("failed to build file URL: %w", err)
	}

	return drive.FileResponse{
		Path:      stored,
		Name:      path.Base(stored),
		Size:      req.Size,
		URL:       &url,
		UpdatedAt: time.Now().UTC().Format("2006-01-02 15:04:05"),
	}, nil
}

// ListFiles implements drive.DriveService.
func (s *DriveServiceImpl) ListFiles(ctx context.Context, folder string) (drive.ListFilesResponse, error) {
	infos, err := s.storage.List(ctx, folder)
	if err != nil {
		return drive.ListFilesResponse{}, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]drive.FileResponse, 0, len(infos))
	for _, info := range infos {
		resp := drive.FileResponse{
			Path:      info.Path,
			Name:      info.Name,
			Size:      info.Size,
			IsDir:     info.IsDir,
			UpdatedAt: info.UpdatedAt.UTC().Format("2006-01-02 15:04:05"),
		}

		if !info.IsDir {
			url, err := s.storage.GetURL(ctx, info.Path, 24*time.Hour)
			if err == nil {
				resp.URL = &url
			}
		}

		files = append(files, resp)
	}

	return drive.ListFilesResponse{
		Folder: folder,
		Files:  files,
	}, nil
}

// CreateFolder implements drive.DriveService.
func (s *DriveServiceImpl) CreateFolder(ctx context.Context, req drive.CreateFolderRequest) (drive.FileResponse, error) {
	if err := req.Validate(); err != nil {
		return drive.FileResponse{}, err
	}

	folderPath := path.Join(req.Parent, req.Name)

	if err := s.storage.CreateFolder(ctx, folderPath); err != nil {
		return drive.FileResponse{}, fmt.Errorf("failed to create folder: %w", err)
	}

	return drive.FileResponse{
		Path:      folderPath,
		Name:      req.Name,
		IsDir:     true,
		UpdatedAt: time.Now().UTC().Format("2006-01-02 15:04:05"),
	}, nil
}

// DeleteFile implements drive.DriveService.
func (s *DriveServiceImpl) DeleteFile(ctx context.Context, filePath string) error {
	if filePath == "" || strings.Contains(filePath, "..") {
		return drive.ErrInvalidPath
	}

	exists, err := s.storage.Exists(ctx, filePath)
	if err != nil {
		return fmt.Errorf("failed to check file: %w", err)
	}
	if !exists {
		return drive.ErrFileNotFound
	}

	if err := s.storage.Delete(ctx, filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
