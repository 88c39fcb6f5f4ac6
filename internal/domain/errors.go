package domain

import "errors"

// Domain errors represent error conditions in the sheaf domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrNoInputs is returned when a job is created without input files.
	ErrNoInputs = errors.New("sheaf: no input files")

	// ErrNotDirectory is returned when an archive source path is not a directory.
	ErrNotDirectory = errors.New("sheaf: source is not a directory")

	// ErrInvalidLevel is returned when the zip compression level is out of range.
	ErrInvalidLevel = errors.New("sheaf: invalid compression level")

	// ErrPageOutOfRange is returned when a page number does not exist in a document.
	ErrPageOutOfRange = errors.New("sheaf: page out of range")
)
