package output

import "errors"

var (
	ErrUnsupportedFormat    = errors.New("output: unsupported image format")
	ErrInvalidThumbnailSize = errors.New("output: thumbnail size must be positive")
)
