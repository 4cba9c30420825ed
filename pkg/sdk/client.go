package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ethanbaker/api/pkg/api_types"
)

// Client wraps calls to the GestUAB memorandum backend
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient replaces the HTTP client used for requests
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// Request is a single call to the backend, built with NewRequest
type Request struct {
	client  *Client
	ctx     context.Context
	method  string
	path    string
	query   url.Values
	in      any
	out     any
	headers map[string]string
}

// NewRequest starts building a request to the backend
func (c *Client) NewRequest(ctx context.Context, method, path string, in any, out any) *Request {
	return &Request{
		client:  c,
		ctx:     ctx,
		method:  method,
		path:    path,
		in:      in,
		out:     out,
		headers: map[string]string{},
	}
}

// WithApiKey sets the API key header on the request
func (r *Request) WithApiKey(apiKey string) *Request {
	if apiKey != "" {
		r.headers["X-API-KEY"] = apiKey
	}
	return r
}

// WithQuery adds query parameters to the request
func (r *Request) WithQuery(query url.Values) *Request {
	r.query = query
	return r
}

// doJSON is a helper to perform JSON requests to the backend
func (r *Request) doJSON() error {
	// Create request body if input is provided
	var body io.Reader
	if r.in != nil {
		b, err := json.Marshal(r.in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	target := r.client.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	// Create the request
	req, err := http.NewRequestWithContext(r.ctx, r.method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range r.headers {
		req.Header.Set(key, value)
	}

	// Perform the request
	resp, err := r.client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("[BACKEND]: failed to read response of '%s %s': %w", r.method, r.path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(r.method, r.path, resp.StatusCode, b)
	}

	// If no output expected, return early
	if r.out == nil {
		return nil
	}

	// Decode the response body into the output struct
	return json.Unmarshal(b, r.out)
}

// decodeError turns a non-2xx response into an error, keeping validation
// failures when the backend sent them
func decodeError(method, path string, code int, body []byte) error {
	var fail struct {
		Status  api_types.StatusType `json:"status"`
		Message string               `json:"message"`
		Error   json.RawMessage      `json:"error"`
	}

	if err := json.Unmarshal(body, &fail); err == nil {
		if fail.Status == api_types.StatusFail && code == http.StatusUnprocessableEntity {
			verr := &ValidationError{Message: fail.Message}
			if err := json.Unmarshal(fail.Error, &verr.Failures); err == nil {
				return verr
			}
		}

		if fail.Message != "" {
			return &StatusError{Code: code, Message: fail.Message, Detail: string(fail.Error)}
		}
	}

	return &StatusError{Code: code, Message: fmt.Sprintf("backend '%s %s' failed", method, path), Detail: string(body)}
}

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	Code    int
	Message string
	Detail  string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("[BACKEND]: %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[BACKEND]: %d: %s: %s", e.Code, e.Message, e.Detail)
}
