package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Urvashi-146/ThinkHire/internal/client"
	"github.com/Urvashi-146/ThinkHire/internal/config"
	"github.com/Urvashi-146/ThinkHire/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, timeout time.Duration) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.New(config.Config{BackendURL: srv.URL + "/", Timeout: timeout}, nil)
}

func TestSubmitFileSendsMultipart(t *testing.T) {
	var gotName, gotContent, gotRequestID string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, client.UploadPath, r.URL.Path)
		gotRequestID = r.Header.Get("X-Request-ID")

		file, header, err := r.FormFile(client.FileField)
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotName = header.Filename
		gotContent = string(data)

		assert.Empty(t, r.FormValue("text"), "multipart upload must not carry a text field")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"skills":["go","sql"],"matches":[{"title":"Backend Engineer","company":"Acme","matched_skills":["go"],"url":"https://jobs.example/1"}]}`)
	}, time.Second)

	res, err := c.Submit(context.Background(), models.NewFileCandidate("Resume.PDF", []byte("%PDF-1.4 test")))
	require.NoError(t, err)

	assert.Equal(t, "Resume.PDF", gotName)
	assert.Equal(t, "%PDF-1.4 test", gotContent)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, []string{"go", "sql"}, res.Skills)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "Backend Engineer", res.Matches[0].DisplayTitle())
	assert.Equal(t, []string{"go"}, res.Matches[0].MatchedSkills)
}

func TestSubmitTextSendsJSON(t *testing.T) {
	var body map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"skills":["python"],"matches":[],"profession":"software"}`)
	}, time.Second)

	res, err := c.Submit(context.Background(), models.NewTextCandidate("Python, SQL"))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"text": "Python, SQL"}, body)
	assert.Equal(t, "software", res.Profession)
	assert.Equal(t, []string{"python"}, res.Skills)
	assert.NotNil(t, res.Matches)
	assert.Empty(t, res.Matches)
}

func TestSubmitDefaultsMissingFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"skills":null}`)
	}, time.Second)

	res, err := c.Submit(context.Background(), models.NewTextCandidate("Go"))
	require.NoError(t, err)
	assert.NotNil(t, res.Skills)
	assert.NotNil(t, res.Matches)
	assert.Empty(t, res.Skills)
	assert.Empty(t, res.Matches)
}

func TestSubmitMatchFallbacks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"skills":[],"matches":[
			{"matched_skills":[]},
			{"title":"SRE","raw":{"company":"Globex","apply_url":"https://apply.example/7"}}
		]}`)
	}, time.Second)

	res, err := c.Submit(context.Background(), models.NewTextCandidate("Go"))
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)

	bare := res.Matches[0]
	assert.Equal(t, models.FallbackTitle, bare.DisplayTitle())
	assert.Equal(t, models.FallbackCompany, bare.DisplayCompany())
	_, ok := bare.ApplyURL()
	assert.False(t, ok)

	nested := res.Matches[1]
	assert.Equal(t, "Globex", nested.DisplayCompany())
	url, ok := nested.ApplyURL()
	assert.True(t, ok)
	assert.Equal(t, "https://apply.example/7", url)
}

func TestSubmitFailures(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantDetail string
	}{
		{
			name: "bad request with error body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"error":"No text extracted from resume."}`)
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "No text extracted from resume.",
		},
		{
			name: "internal server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantStatus: http.StatusInternalServerError,
			wantDetail: "boom",
		},
		{
			name: "html body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "<html>proxy error</html>")
			},
			wantStatus: http.StatusOK,
			wantDetail: "malformed response",
		},
		{
			name: "truncated json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"skills":["go"`)
			},
			wantStatus: http.StatusOK,
			wantDetail: "malformed response",
		},
		{
			name: "json array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `["go"]`)
			},
			wantStatus: http.StatusOK,
			wantDetail: "malformed response",
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: http.StatusOK,
			wantDetail: "empty body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler, time.Second)

			res, err := c.Submit(context.Background(), models.NewTextCandidate("Go"))
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, client.ErrFailed)

			var terr *client.TransportError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, tt.wantStatus, terr.Status)
			assert.Contains(t, terr.Detail, tt.wantDetail)
		})
	}
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := client.New(config.Config{BackendURL: url, Timeout: time.Second}, nil)
	_, err := c.Submit(context.Background(), models.NewTextCandidate("Go"))
	assert.ErrorIs(t, err, client.ErrFailed)
}

func TestSubmitTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// The server only notices a client disconnect once the body is read.
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	start := time.Now()
	_, err := c.Submit(context.Background(), models.NewTextCandidate("Go"))
	assert.ErrorIs(t, err, client.ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestSubmitCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.Submit(ctx, models.NewTextCandidate("Go"))
	assert.ErrorIs(t, err, client.ErrCanceled)
}

func TestSubmitToleratesMistypedFields(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		title   string
		company string
		skills  []string
	}{
		{"numeric title", `{"skills":["go"],"matches":[{"title":42}]}`, "42", models.FallbackCompany, []string{"go"}},
		{"object company", `{"matches":[{"title":"Dev","company":{"name":"Acme"}}]}`, "Dev", models.FallbackCompany, []string{}},
		{"string raw", `{"matches":[{"raw":"x"}]}`, models.FallbackTitle, models.FallbackCompany, []string{}},
		{"string skills", `{"skills":"go","matches":[{"company":"Acme"}]}`, models.FallbackTitle, "Acme", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}, time.Second)

			res, err := c.Submit(context.Background(), models.NewTextCandidate("Go"))
			require.NoError(t, err)
			require.Len(t, res.Matches, 1)
			assert.Equal(t, tt.title, res.Matches[0].DisplayTitle())
			assert.Equal(t, tt.company, res.Matches[0].DisplayCompany())
			assert.Equal(t, tt.skills, res.Skills)
			_, ok := res.Matches[0].ApplyURL()
			assert.False(t, ok)
		})
	}
}

func TestSubmitNilCandidate(t *testing.T) {
	c := client.New(config.Config{}, nil)
	_, err := c.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, client.ErrFailed)
}

func TestNewDefaults(t *testing.T) {
	c := client.New(config.Config{}, nil)
	assert.Equal(t, config.DefaultBackendURL, c.BaseURL())
	assert.Equal(t, config.DefaultTimeout, c.Timeout())
}

func TestHealth(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		_, _ = io.WriteString(w, `{"status":"ThinkHire backend running"}`)
	}, time.Second)

	status, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ThinkHire backend running", status.Status)
}

func TestFetchJobs(t *testing.T) {
	var body map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, client.FetchJobsPath, r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"matches":[{"title":"Data Engineer"}]}`)
	}, time.Second)

	matches, err := c.FetchJobs(context.Background(), []string{"python", "sql"})
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "sql"}, body["skills"])
	require.Len(t, matches, 1)
	assert.NotNil(t, matches[0].MatchedSkills)
}

func TestFetchJobsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	}, time.Second)

	matches, err := c.FetchJobs(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestTransportErrorMessage(t *testing.T) {
	err := &client.TransportError{Kind: client.ErrTimeout, Op: "upload resume", Detail: "context deadline exceeded"}
	assert.Equal(t, "upload resume: request timed out: context deadline exceeded", err.Error())
	assert.True(t, errors.Is(err, client.ErrTimeout))
}
