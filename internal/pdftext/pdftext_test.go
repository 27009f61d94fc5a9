package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urvashi-146/ThinkHire/internal/models"
)

func TestExtract_TextFile(t *testing.T) {
	cand := models.NewFileCandidate("resume.TXT", []byte("Go developer\nKubernetes, SQL"))

	c, err := Extract(cand)

	require.NoError(t, err)
	assert.Equal(t, "Go developer\nKubernetes, SQL", c.Text)
	assert.Equal(t, "resume.TXT", c.Source)
	assert.Equal(t, 1, c.PageCount)
	assert.Equal(t, 4, c.Words())
}

func TestExtract_PastedText(t *testing.T) {
	c, err := Extract(models.NewTextCandidate("  Python and Go  "))

	require.NoError(t, err)
	assert.Equal(t, "  Python and Go  ", c.Text)
	assert.Contains(t, c.Source, "pasted text")
}

func TestExtract_Errors(t *testing.T) {
	tests := []struct {
		name   string
		cand   *models.Candidate
		target error
	}{
		{"nil", nil, ErrUnsupported},
		{"docx", models.NewFileCandidate("cv.docx", []byte("PK")), ErrUnsupported},
		{"blank text file", models.NewFileCandidate("cv.txt", []byte(" \n ")), ErrNoText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.cand)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestExtract_InvalidUTF8(t *testing.T) {
	_, err := Extract(models.NewFileCandidate("cv.txt", []byte{0xff, 0xfe, 0xfd}))
	assert.ErrorContains(t, err, "invalid UTF-8")
}

func TestExtractPDF_NotAPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"plain text", []byte("this is not a pdf")},
		{"truncated header", []byte("%PDF-1.4\n%%EOF")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ExtractPDF(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b c", Preview("a\n\n b\tc", 0))
	assert.Equal(t, "hello", Preview("hello", 10))
	assert.Equal(t, "héll...", Preview("héllo world", 4))
}
