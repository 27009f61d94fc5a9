// Package intake turns user selections into a validated résumé candidate.
package intake

import "errors"

// Validation errors. Their messages are shown to the user verbatim.
// Use errors.Is() to check for these errors in calling code.
var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyInput          = errors.New("empty input")
	ErrNoInput             = errors.New("no input provided")
	ErrFileTooLarge        = errors.New("file too large")
)

// IsValidationError reports whether err is one of the intake sentinels.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnsupportedFileType) ||
		errors.Is(err, ErrEmptyInput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrFileTooLarge)
}
