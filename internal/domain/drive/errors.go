package drive

import "errors"

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidPath     = errors.New("invalid path")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
	ErrFileTypeBlocked = errors.New("file type is not allowed")
)
