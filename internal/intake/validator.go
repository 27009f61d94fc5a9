package intake

import (
	"strings"

	"github.com/Urvashi-146/ThinkHire/internal/models"
)

// SupportedExtensions lists the accepted résumé file extensions.
var SupportedExtensions = []string{".pdf", ".txt"}

// Validate checks a candidate before any network I/O.
// A nil candidate means nothing was selected.
func Validate(c *models.Candidate) error {
	if c == nil {
		return ErrNoInput
	}
	switch c.Kind {
	case models.CandidateFile:
		if !IsSupportedFile(c.Name) {
			return ErrUnsupportedFileType
		}
		return nil
	case models.CandidateText:
		if strings.TrimSpace(c.Text) == "" {
			return ErrEmptyInput
		}
		return nil
	default:
		return ErrNoInput
	}
}

// IsSupportedFile reports whether name has a .pdf or .txt extension,
// compared case-insensitively.
func IsSupportedFile(name string) bool {
	ext := models.FileExtension(name)
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}
