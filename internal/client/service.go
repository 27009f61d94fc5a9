package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Urvashi-146/ThinkHire/internal/models"
)

// FetchJobsPath is the manual job matching endpoint.
const FetchJobsPath = "/api/fetch-jobs"

// HealthStatus is the analysis service health response.
type HealthStatus struct {
	Status string `json:"status"`
}

// Health checks that the analysis service is reachable.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	err := c.do(ctx, request{op: "health", method: http.MethodGet, path: "/"}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// fetchJobsRequest is the body for FetchJobs.
type fetchJobsRequest struct {
	Skills []string `json:"skills"`
}

// FetchJobs asks the service to match jobs against a known skill list,
// skipping résumé analysis. Matches are normalized like upload matches.
func (c *Client) FetchJobs(ctx context.Context, skills []string) ([]models.JobMatch, error) {
	const op = "fetch jobs"
	if skills == nil {
		skills = []string{}
	}
	body, err := json.Marshal(fetchJobsRequest{Skills: skills})
	if err != nil {
		return nil, &TransportError{Kind: ErrFailed, Op: op, Detail: fmt.Sprintf("marshal request: %v", err)}
	}

	var result struct {
		Matches []models.JobMatch `json:"matches"`
	}
	req := request{
		op:          op,
		method:      http.MethodPost,
		path:        FetchJobsPath,
		body:        body,
		contentType: "application/json",
	}
	if err := c.do(ctx, req, &result); err != nil {
		return nil, err
	}

	if result.Matches == nil {
		result.Matches = []models.JobMatch{}
	}
	for i := range result.Matches {
		result.Matches[i].Normalize()
	}
	return result.Matches, nil
}
