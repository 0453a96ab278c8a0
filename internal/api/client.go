package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"pricehawk/internal/misc"
)

const maxResponseBytes = 300000

// Client talks to the PriceHawk backend. It owns the bearer credential
// attached to outbound requests; the session manager decides when a token is
// set or cleared.
type Client struct {
	*http.Client
	BaseURL string
	Logger  logger

	mu    sync.RWMutex
	token string
}

type logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

func NewClient(httpClient *http.Client, baseURL string, l logger) *Client {
	return &Client{
		Client:  httpClient,
		BaseURL: baseURL,
		Logger:  l,
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) newRequest(ctx context.Context, method string, path string, body any) (*http.Request, string, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, "", errors.Wrapf(err, "error marshalling request body: %+v", body)
		}
		bodyReader = bytes.NewReader(b)
	}

	r, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, "", errors.Wrapf(err, "error creating request for path: %s", path)
	}

	traceID := uuid.NewString()
	r.Header.Set("User-Agent", "pricehawk-cli")
	r.Header.Set("Accept", "application/json")
	r.Header.Set("X-Trace-ID", traceID)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearerToken(); token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r, traceID, nil
}

// doJSON runs the request, maps the response status onto the error taxonomy,
// and decodes a 2xx body into out when out is non-nil.
func (c *Client) doJSON(req *http.Request, traceID string, out any) error {
	c.Logger.Debugf("doJSON: %s %s, TraceID: %s", req.Method, req.URL.Path, traceID)

	resp, err := c.Client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "error doing request %s %s, TraceID: %s", req.Method, req.URL, traceID)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.Logger.Errorf("doJSON: error closing response body on request to url: %s, err: %v", req.URL, err)
		}
	}()

	body, err := io.ReadAll(http.MaxBytesReader(nil, resp.Body, maxResponseBytes))
	if err != nil {
		return errors.Wrapf(err, "error reading response body from url: %s, TraceID: %s", req.URL, traceID)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.Wrapf(ErrUnauthorized, "request %s %s rejected, TraceID: %s", req.Method, req.URL.Path, traceID)
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(ErrNotFound, "request %s %s, TraceID: %s", req.Method, req.URL.Path, traceID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Code: resp.StatusCode, Message: serverMessage(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(out); err != nil {
		return errors.Wrapf(err, "error decoding response from url: %s, TraceID: %s, body:\n%s",
			req.URL, traceID, misc.StringLimit(string(body), 500))
	}
	return nil
}

// serverMessage pulls the human-readable text out of a structured error body,
// falling back to the raw body excerpt.
func serverMessage(body []byte) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return misc.StringLimit(string(body), 200)
}
