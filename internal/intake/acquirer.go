package intake

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Urvashi-146/ThinkHire/internal/models"
)

// DefaultMaxFileSize caps résumé files at 10 MiB.
const DefaultMaxFileSize int64 = 10 << 20

// NoFileLabel is shown while no candidate is selected.
const NoFileLabel = "No file chosen"

// Acquirer holds at most one candidate: a file or pasted text.
// Selecting one kind replaces the other. A rejected selection leaves the
// current candidate untouched.
//
// Acquirer is not safe for concurrent use; it belongs to the UI goroutine.
type Acquirer struct {
	maxFileSize int64
	current     *models.Candidate
}

// NewAcquirer creates an acquirer. A non-positive maxFileSize uses DefaultMaxFileSize.
func NewAcquirer(maxFileSize int64) *Acquirer {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Acquirer{maxFileSize: maxFileSize}
}

// SelectFile makes a file the current candidate.
func (a *Acquirer) SelectFile(name string, data []byte) (*models.Candidate, error) {
	if !IsSupportedFile(name) {
		return nil, ErrUnsupportedFileType
	}
	if int64(len(data)) > a.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, len(data), a.maxFileSize)
	}
	a.current = models.NewFileCandidate(name, data)
	return a.current, nil
}

// SelectText makes pasted text the current candidate.
func (a *Acquirer) SelectText(raw string) (*models.Candidate, error) {
	c := models.NewTextCandidate(raw)
	if err := Validate(c); err != nil {
		return nil, err
	}
	a.current = c
	return a.current, nil
}

// Browse selects a file picked by path (the click-to-browse entry point).
func (a *Acquirer) Browse(path string) (*models.Candidate, error) {
	return a.selectPath(path)
}

// Drop selects a file dropped onto the client (the drag-and-drop entry point).
// It behaves exactly like Browse.
func (a *Acquirer) Drop(path string) (*models.Candidate, error) {
	return a.selectPath(path)
}

// selectPath checks the extension and size before reading the file so that
// unsupported or oversized files are never loaded into memory.
func (a *Acquirer) selectPath(path string) (*models.Candidate, error) {
	name := filepath.Base(path)
	if !IsSupportedFile(name) {
		return nil, ErrUnsupportedFileType
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open file: %s is a directory", path)
	}
	if info.Size() > a.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, info.Size(), a.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return a.SelectFile(name, data)
}

// Current returns the selected candidate, or nil.
func (a *Acquirer) Current() *models.Candidate {
	return a.current
}

// Take hands the current candidate to a submission cycle and clears it.
func (a *Acquirer) Take() *models.Candidate {
	c := a.current
	a.current = nil
	return c
}

// Clear drops the current candidate.
func (a *Acquirer) Clear() {
	a.current = nil
}

// Label returns the selected file name, a text summary, or NoFileLabel.
func (a *Acquirer) Label() string {
	if a.current == nil {
		return NoFileLabel
	}
	return a.current.Describe()
}
