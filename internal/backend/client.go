package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/doculens/doculens/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the local-development backend address used when nothing
// else is configured.
const DefaultBaseURL = "http://localhost:8000"

// ResolveBaseURL picks the backend base URL. An explicit override wins, then
// the configured deployment origin, then the local-development default.
func ResolveBaseURL(override, origin string) string {
	if override != "" {
		return override
	}
	if origin != "" {
		return origin
	}
	return DefaultBaseURL
}

// APIError carries an error response from the backend. Detail is the
// human-readable reason from the response body when the backend provided one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Client is the HTTP client for the document-analysis backend. It implements
// domain.Backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a backend client for the given base URL. No request
// timeout is set on the transport: document processing on upload can take a
// while and the server bounds it.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// BaseURL returns the resolved base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResetSession clears server-side session state.
func (c *Client) ResetSession(ctx context.Context) error {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/session/reset", struct{}{})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ListDocuments returns all documents in the current session.
func (c *Client) ListDocuments(ctx context.Context) ([]domain.DocumentRecord, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, "/documents", nil)
	if err != nil {
		return nil, err
	}

	var records []domain.DocumentRecord
	if err := c.do(req, &records); err != nil {
		return nil, err
	}
	for i := range records {
		records[i].EnsureID()
	}
	return records, nil
}

// Upload submits a file as multipart form data and returns the resulting
// document record.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (*domain.DocumentRecord, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.New().String())

	var record domain.DocumentRecord
	if err := c.do(req, &record); err != nil {
		return nil, err
	}
	record.EnsureID()
	return &record, nil
}

// DeleteDocument removes a document remotely.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	req, err := c.newJSONRequest(ctx, http.MethodDelete, "/documents/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// Query asks a question scoped to a document.
func (c *Client) Query(ctx context.Context, queryReq domain.QueryRequest) (*domain.QueryResult, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/query", queryReq)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var result domain.QueryResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}

	log.Debug().
		Str("document_id", queryReq.DocumentID).
		Float64("confidence", result.ConfidenceScore).
		Int("citations", len(result.Citations)).
		Dur("round_trip", time.Since(start)).
		Msg("query completed")

	return &result, nil
}

// DocumentSummary returns implementation-defined summary data for a document.
func (c *Client) DocumentSummary(ctx context.Context, id string) (map[string]any, error) {
	req, err := c.newJSONRequest(ctx, http.MethodGet, "/documents/"+id+"/summary", nil)
	if err != nil {
		return nil, err
	}

	var summary map[string]any
	if err := c.do(req, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// do executes the request and decodes a 2xx body into out when out is
// non-nil. Non-2xx responses become an *APIError carrying the backend's
// detail message when present.
func (c *Client) do(req *http.Request, out any) error {
	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("backend request")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		// Body ignored for endpoints that only signal success.
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError extracts the FastAPI-style {"detail": ...} reason when the
// backend sent one.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != nil {
		switch d := body.Detail.(type) {
		case string:
			apiErr.Detail = d
		default:
			apiErr.Detail = fmt.Sprintf("%v", d)
		}
	}
	return apiErr
}
