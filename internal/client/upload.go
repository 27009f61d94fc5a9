package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/Urvashi-146/ThinkHire/internal/models"
)

// UploadPath is the résumé analysis endpoint.
const UploadPath = "/api/upload-resume"

// FileField is the multipart field that carries the résumé file.
const FileField = "file"

// uploadTextRequest is the JSON body for pasted résumé text.
type uploadTextRequest struct {
	Text string `json:"text"`
}

// Submit sends one candidate for analysis and returns the normalized result.
// Files are sent as multipart form data, text as JSON; never both.
func (c *Client) Submit(ctx context.Context, cand *models.Candidate) (*models.Result, error) {
	req, err := uploadRequest(cand)
	if err != nil {
		return nil, err
	}

	var result models.Result
	if err := c.do(ctx, req, &result); err != nil {
		return nil, err
	}
	result.Normalize()
	return &result, nil
}

// uploadRequest encodes the candidate for the upload endpoint.
func uploadRequest(cand *models.Candidate) (request, error) {
	const op = "upload resume"
	req := request{op: op, method: http.MethodPost, path: UploadPath}

	if cand == nil {
		return req, &TransportError{Kind: ErrFailed, Op: op, Detail: "no candidate"}
	}

	switch cand.Kind {
	case models.CandidateFile:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile(FileField, cand.Name)
		if err != nil {
			return req, &TransportError{Kind: ErrFailed, Op: op, Detail: fmt.Sprintf("create form file: %v", err)}
		}
		if _, err := part.Write(cand.Data); err != nil {
			return req, &TransportError{Kind: ErrFailed, Op: op, Detail: fmt.Sprintf("write form file: %v", err)}
		}
		if err := w.Close(); err != nil {
			return req, &TransportError{Kind: ErrFailed, Op: op, Detail: fmt.Sprintf("close multipart writer: %v", err)}
		}
		req.body = buf.Bytes()
		req.contentType = w.FormDataContentType()

	case models.CandidateText:
		body, err := json.Marshal(uploadTextRequest{Text: cand.Text})
		if err != nil {
			return req, &TransportError{Kind: ErrFailed, Op: op, Detail: fmt.Sprintf("marshal request: %v", err)}
		}
		req.body = body
		req.contentType = "application/json"

	default:
		return req, &TransportError{Kind: ErrFailed, Op: op, Detail: fmt.Sprintf("unknown candidate kind %d", cand.Kind)}
	}

	return req, nil
}
