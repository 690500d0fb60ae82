package drive

import (
	"io"
	"strings"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/validator"
)

type UploadFileRequest struct {
	Folder      string
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

func (r *UploadFileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FileName) {
		errs = append(errs, validator.ValidationError{
			Field:   "file_name",
			Message: "file_name is required",
		})
	} else if strings.ContainsAny(r.FileName, "/\\") {
		errs = append(errs, validator.ValidationError{
			Field:   "file_name",
			Message: "file_name must not contain path separators",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateFolderRequest struct {
	Parent string `json:"parent"`
	Name   string `json:"name"`
}

func (r *CreateFolderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if strings.ContainsAny(r.Name, "/\\") {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not contain path separators",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FileResponse struct {
	Path      string  `json:"path"`
	Name      string  `json:"name"`
	Size      int64   `json:"size"`
	IsDir     bool    `json:"is_dir"`
	URL       *string `json:"url,omitempty"`
	UpdatedAt string  `json:"updated_at"`
}

type ListFilesResponse struct {
	Folder string         `json:"folder"`
	Files  []FileResponse `json:"files"`
}
