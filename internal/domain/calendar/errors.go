package calendar

import "errors"

var (
	ErrPostNotFound = errors.New("content post not found")
)
