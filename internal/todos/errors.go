package todos

import "errors"

var (
	ErrTitleRequired = errors.New("title is required")
	ErrNotFound      = errors.New("todo not found")
)
