package worksheet

import "errors"

var (
	ErrWorksheetNotFound = errors.New("worksheet not found")
)
