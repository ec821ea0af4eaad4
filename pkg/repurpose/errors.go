package repurpose

import "errors"

var (
	ErrEmptyContent      = errors.New("content is empty")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidParam      = errors.New("invalid parameter")
	ErrMalformedOutput   = errors.New("malformed structured output")
	ErrRenderFailed      = errors.New("template render failed")
)
