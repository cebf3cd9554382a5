package labresult

import "errors"

var (
	ErrNotPDF            = errors.New("only PDF files are allowed")
	ErrEmptyFile         = errors.New("file is empty")
	ErrFileTooLarge      = errors.New("file too large")
	ErrLabResultNotFound = errors.New("lab result not found")
	ErrPersistence       = errors.New("lab result persistence failed")
)
