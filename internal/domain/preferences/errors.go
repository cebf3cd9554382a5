package preferences

import "errors"

var (
	ErrItemNotFound        = errors.New("preference item not found")
	ErrAssociationNotFound = errors.New("preference not found for user")
	ErrPersistence         = errors.New("preference persistence failed")
)
