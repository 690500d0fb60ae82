package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/drive"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/handler/http/response"
)

type DriveHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	CreateFolder(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DriveHandlerImpl struct {
	driveService drive.DriveService
}

func NewDriveHandler(driveService drive.DriveService) DriveHandler {
	return &DriveHandlerImpl{driveService: driveService}
}

// Upload implements DriveHandler.
func (h *DriveHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 32MB in memory)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer file.Close()

	req := drive.UploadFileRequest{
		Folder:      r.FormValue("folder"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	}

	result, err := h.driveService.UploadFile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "File uploaded successfully", result)
}

// List implements DriveHandler.
func (h *DriveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.driveService.ListFiles(r.Context(), r.URL.Query().Get("folder"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateFolder implements DriveHandler.
func (h *DriveHandlerImpl) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req drive.CreateFolderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateFolder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.driveService.CreateFolder(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Folder created successfully", result)
}

// Delete implements DriveHandler.
func (h *DriveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")

	if err := h.driveService.DeleteFile(r.Context(), path); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "File deleted successfully", nil)
}
