package loader

import "errors"

var (
	// ErrNotRegularFile signals that a path does not name a regular file.
	ErrNotRegularFile = errors.New("loader: not a regular file")
)
