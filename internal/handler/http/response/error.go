package response

import (
	"errors"
	"net/http"

	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/attendance"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/auth"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/calendar"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/drive"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/leave"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/project"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/user"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/domain/worksheet"
	"github.com/teamdesk-hq/teamdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, attendance.ErrInvalidTransition):
		Conflict(w, "Action not allowed in the current attendance state")
	case errors.Is(err, attendance.ErrInvalidInterval):
		BadRequest(w, "Invalid time interval", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidLeaveRange):
		BadRequest(w, "Invalid leave date range", nil)
	case errors.Is(err, leave.ErrAlreadyDecided):
		Conflict(w, "Leave request already decided")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Worksheet domain errors
	case errors.Is(err, worksheet.ErrWorksheetNotFound):
		NotFound(w, "Worksheet not found")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrPostNotFound):
		NotFound(w, "Content post not found")

	// Drive domain errors
	case errors.Is(err, drive.ErrFileNotFound):
		NotFound(w, "File not found")
	case errors.Is(err, drive.ErrInvalidPath):
		BadRequest(w, "Invalid file path", nil)
	case errors.Is(err, drive.ErrFileTooLarge):
		BadRequest(w, "File exceeds the size limit", nil)
	case errors.Is(err, drive.ErrFileTypeBlocked):
		BadRequest(w, "File type is not allowed", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
