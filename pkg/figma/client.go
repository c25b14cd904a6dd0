package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Version is the current release of figma-projects.
const Version = "0.1.0"

// maxErrorBody caps how much of a failed response is kept for the error message.
const maxErrorBody = 4 << 10

// Client represents a Figma API client bound to one API root and one access token.
type Client struct {
	apiRoot     string
	accessToken string
	httpClient  *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. to plug in a custom
// transport or a test server's client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new Figma API client for the given API root
// (e.g. https://api.figma.com) and personal access token.
// The default HTTP client has no overall timeout; bound each call with its context instead.
func NewClient(apiRoot, accessToken string, opts ...ClientOption) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
	}

	c := &Client{
		apiRoot:     strings.TrimRight(apiRoot, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Transport: transport},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchProjectFiles validates cfg and fetches the files of cfg.ProjectID.
// An invalid configuration fails with a ConfigError before any request is sent.
func FetchProjectFiles(ctx context.Context, cfg Config, opts ...ClientOption) (*ProjectDetails, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewClient(cfg.APIRoot, cfg.AccessToken, opts...).GetProjectFiles(ctx, cfg.ProjectID)
}

// ProjectFilesURL returns the project files endpoint for projectID under apiRoot.
func ProjectFilesURL(apiRoot string, projectID uint64) string {
	return fmt.Sprintf("%s/v1/projects/%d/files", strings.TrimRight(apiRoot, "/"), projectID)
}

// GetProjectFiles retrieves the name and the file list of a project with a single GET request.
// There is no retry: the first failure is returned as a TransportError or SchemaMismatch.
// Cancelling ctx aborts the in-flight request.
func (c *Client) GetProjectFiles(ctx context.Context, projectID uint64) (*ProjectDetails, error) {
	const op = "get project files"

	if strings.TrimSpace(c.accessToken) == "" {
		return nil, newError(ConfigError, op, errors.New("access token is blank"))
	}
	if projectID == 0 {
		return nil, newError(ConfigError, op, errors.New("project id is zero"))
	}

	var project ProjectDetails
	if err := c.get(ctx, op, ProjectFilesURL(c.apiRoot, projectID), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// get performs one authenticated GET and decodes the body into v.
func (c *Client) get(ctx context.Context, op, url string, v validation.Validatable) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return newError(TransportError, op, fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Figma-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newError(TransportError, op, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{
			Kind:       TransportError,
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        apiErrorMessage(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(TransportError, op, fmt.Errorf("failed to read response body: %w", err))
	}

	if err := Unmarshal(body, v); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Op = op
		}
		return err
	}
	return nil
}

// apiError is the error body the Figma API sends with non-2xx responses.
type apiError struct {
	Status int    `json:"status"`
	Err    string `json:"err"`
}

func apiErrorMessage(body []byte) error {
	var ae apiError
	if err := json.Unmarshal(body, &ae); err == nil && ae.Err != "" {
		return errors.New(ae.Err)
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return errors.New(msg)
	}
	return errors.New("empty response body")
}

// Unmarshal decodes a JSON resource into v and validates its required fields.
// Malformed JSON, a wrong JSON type or a missing required field all fail with
// a SchemaMismatch.
func Unmarshal(data []byte, v validation.Validatable) error {
	if err := json.Unmarshal(data, v); err != nil {
		return newError(SchemaMismatch, "decode", err)
	}
	if err := v.Validate(); err != nil {
		return newError(SchemaMismatch, "decode", err)
	}
	return nil
}
