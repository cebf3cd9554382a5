package catalog

import "errors"

var (
	ErrUnknownKind  = errors.New("unknown catalog kind")
	ErrItemNotFound = errors.New("catalog item not found")
)
