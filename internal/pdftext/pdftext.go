// Package pdftext extracts the plain text of a résumé candidate locally, so
// the CLI can show what the analysis service will read before uploading.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/Urvashi-146/ThinkHire/internal/models"
)

var (
	// ErrNoText means the document parsed but contained no extractable text,
	// typically a scanned PDF.
	ErrNoText = errors.New("no text content found")

	// ErrUnsupported means the candidate is neither a PDF, a text file, nor pasted text.
	ErrUnsupported = errors.New("unsupported candidate")
)

// Content is the extracted text of a candidate.
type Content struct {
	Text      string `json:"text" yaml:"text"`
	PageCount int    `json:"page_count" yaml:"page_count"`
	Source    string `json:"source" yaml:"source"`
}

// Words returns the number of whitespace-separated words.
func (c *Content) Words() int {
	return len(strings.Fields(c.Text))
}

// Extract returns the text of cand. PDFs are parsed page by page; .txt files
// and pasted text are returned as-is.
func Extract(cand *models.Candidate) (*Content, error) {
	if cand == nil {
		return nil, ErrUnsupported
	}

	if !cand.IsFile() {
		return textContent(cand.Text, cand.Describe())
	}

	switch cand.Extension {
	case ".pdf":
		text, pages, err := ExtractPDF(cand.Data)
		if err != nil {
			return nil, err
		}
		return &Content{Text: text, PageCount: pages, Source: cand.Name}, nil
	case ".txt":
		if !utf8.Valid(cand.Data) {
			return nil, fmt.Errorf("read %s: invalid UTF-8", cand.Name)
		}
		return textContent(string(cand.Data), cand.Name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, cand.Extension)
	}
}

func textContent(text, source string) (*Content, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}
	return &Content{Text: text, PageCount: 1, Source: source}, nil
}

// ExtractPDF returns the plain text of an in-memory PDF and its page count.
// Pages that fail to decode are skipped.
func ExtractPDF(data []byte) (text string, pages int, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, pages, err = "", 0, fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	pages = r.NumPage()
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n\n")
	}

	text = b.String()
	if strings.TrimSpace(text) == "" {
		return "", pages, ErrNoText
	}
	return text, pages, nil
}

// Preview returns at most maxRunes runes of text with whitespace collapsed,
// followed by an ellipsis when truncated.
func Preview(text string, maxRunes int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if maxRunes <= 0 || utf8.RuneCountInString(collapsed) <= maxRunes {
		return collapsed
	}
	runes := []rune(collapsed)
	return string(runes[:maxRunes]) + "..."
}
