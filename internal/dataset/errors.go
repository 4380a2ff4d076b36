package dataset

import "errors"

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrInvalidCSV      = errors.New("file is not valid CSV")
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
	ErrDatasetNotFound = errors.New("dataset not found")
)
