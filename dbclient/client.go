// Package dbclient is a thin JSON-over-HTTP client for the document
// database's query endpoint. It knows nothing about SQL or FQL
// semantics; it marshals an already-built expression, posts it, and
// decodes the response envelope.
package dbclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kicktipper/sqlfql/fql"
)

// Client talks to one document database endpoint over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	secret     string
}

// New constructs a Client that reaches the document database at
// scheme://domain:port, authenticating every request with secret.
func New(scheme, domain string, port int, secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    fmt.Sprintf("%s://%s:%d", scheme, domain, port),
		secret:     secret,
	}
}

// Result is the decoded {resource: ...} envelope the document database
// wraps every successful response in.
type Result struct {
	Resource json.RawMessage `json:"resource"`
}

// Query posts expr to the database's query endpoint and returns the
// decoded result envelope.
func (c *Client) Query(ctx context.Context, expr fql.Expr) (*Result, error) {
	body, err := json.Marshal(expr)
	if err != nil {
		return nil, fmt.Errorf("dbclient.Query: marshal expression: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("dbclient.Query: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.SetBasicAuth(c.secret, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dbclient.Query: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dbclient.Query: read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newBadRequestError(resp.StatusCode, respBody)
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("dbclient.Query: decode response: %w", err)
	}
	return &result, nil
}

// errorsEnvelope mirrors the document database's error response shape:
// {"errors": [{"code": "...", "description": "..."}]}.
type errorsEnvelope struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
}

// BadRequestError reports a response with status 400 or above from the
// document database, carrying the raw description so callers can pattern-match
// specific failure strings (e.g. "document data is not valid",
// "document is not unique").
type BadRequestError struct {
	StatusCode  int
	Description string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("dbclient: request failed (%d): %s", e.StatusCode, e.Description)
}

func newBadRequestError(statusCode int, body []byte) *BadRequestError {
	var env errorsEnvelope
	desc := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &env); err == nil && len(env.Errors) > 0 {
		desc = env.Errors[0].Description
	}
	return &BadRequestError{StatusCode: statusCode, Description: desc}
}
