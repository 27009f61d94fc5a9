// Package models defines the data structures shared by the ThinkHire client.
package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CandidateKind tells which half of a Candidate is populated.
type CandidateKind int

const (
	CandidateFile CandidateKind = iota + 1
	CandidateText
)

// String returns the kind name used in logs and metrics.
func (k CandidateKind) String() string {
	switch k {
	case CandidateFile:
		return "file"
	case CandidateText:
		return "text"
	default:
		return "unknown"
	}
}

// Candidate is the single résumé payload of a submission cycle.
// Either the file fields (Name, Extension, Data) or Text are set, never both.
type Candidate struct {
	Kind      CandidateKind
	Name      string
	Extension string // lowercase, including the leading dot
	Data      []byte
	Text      string
}

// NewFileCandidate builds a file candidate from its original name and bytes.
func NewFileCandidate(name string, data []byte) *Candidate {
	return &Candidate{
		Kind:      CandidateFile,
		Name:      name,
		Extension: FileExtension(name),
		Data:      data,
	}
}

// NewTextCandidate builds a text candidate. The content is kept as typed.
func NewTextCandidate(text string) *Candidate {
	return &Candidate{
		Kind: CandidateText,
		Text: text,
	}
}

// IsFile reports whether the candidate carries file bytes.
func (c *Candidate) IsFile() bool {
	return c != nil && c.Kind == CandidateFile
}

// Describe returns a short human label for the candidate.
func (c *Candidate) Describe() string {
	switch {
	case c == nil:
		return "nothing"
	case c.Kind == CandidateFile:
		return c.Name
	default:
		return fmt.Sprintf("pasted text (%d chars)", len([]rune(strings.TrimSpace(c.Text))))
	}
}

// Size returns the payload size in bytes.
func (c *Candidate) Size() int {
	if c == nil {
		return 0
	}
	if c.Kind == CandidateFile {
		return len(c.Data)
	}
	return len(c.Text)
}

// FileExtension returns the lowercase extension of name, including the dot.
// A name without an extension yields "".
func FileExtension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
