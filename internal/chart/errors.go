package chart

import "errors"

var (
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrColumnNotFound  = errors.New("column not found")
)
