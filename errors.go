package ttl2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrTurtleParse  = errors.New("turtle parsing failed")
	ErrPageRender   = errors.New("page template rendering failed")
	ErrIndexRender  = errors.New("index template rendering failed")
	ErrTemplateLoad = errors.New("template loading failed")
	ErrStyleLoad    = errors.New("stylesheet loading failed")

	// Converter configuration errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrInvalidPrefix    = errors.New("invalid namespace prefix")
)
