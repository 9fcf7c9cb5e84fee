package latitude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// DefaultBaseURL is the Latitude gateway endpoint used when no override is
// configured.
const DefaultBaseURL = "https://gateway.latitude.so/api/v2"

// LiveVersion is the floating version resolved by the gateway to the latest
// published commit of a project. It is the default when no version UUID is
// configured.
const LiveVersion = "live"

// Option configures a Client.
type Option func(*Client)

// Client talks to the Latitude gateway. It holds the API key plus optional
// defaults for the project and version that document operations target, and
// is safe for concurrent use.
//
// Instances must be created with New.
type Client struct {
	apiKey      string
	projectID   int
	versionUUID string
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
}

// New creates a Client authenticating with the given API key. The zero
// configuration targets the public gateway with no default project; most
// callers will at least set WithProjectID.
func New(apiKey string, options ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// WithProjectID sets the default project document operations run against.
func WithProjectID(id int) Option {
	return func(c *Client) {
		c.projectID = id
	}
}

// WithVersionUUID sets the default version document operations run against.
// When unset, operations target LiveVersion.
func WithVersionUUID(versionUUID string) Option {
	return func(c *Client) {
		c.versionUUID = versionUUID
	}
}

// WithBaseURL overrides the gateway endpoint, which is useful for testing
// against a mock server or targeting a self-hosted gateway.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the HTTP client used for requests. If nil, the default
// HTTP client is used.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger used for stream decoding diagnostics. If unset,
// slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// RunOptions override the client's default project and version for a single
// call. Zero values fall back to the client configuration.
type RunOptions struct {
	ProjectID   int
	VersionUUID string
}

// resolveTarget combines per-call options with the client defaults into the
// project and version a document operation addresses.
func (c *Client) resolveTarget(opts *RunOptions) (int, string, error) {
	projectID := c.projectID
	versionUUID := c.versionUUID

	if opts != nil {
		if opts.ProjectID != 0 {
			projectID = opts.ProjectID
		}
		if opts.VersionUUID != "" {
			versionUUID = opts.VersionUUID
		}
	}

	if projectID == 0 {
		return 0, "", ErrProjectIDRequired
	}
	if versionUUID == "" {
		versionUUID = LiveVersion
	}

	return projectID, versionUUID, nil
}

// post sends a JSON-encoded POST request to the given gateway path and
// returns the response with its status already checked. The caller owns the
// response body.
func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		return nil, apiErrorFromResponse(resp)
	}

	return resp, nil
}

// postJSON sends a request via post and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := c.post(ctx, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}
