package latitude

import (
	"context"
	"fmt"
	"iter"
)

// RunDocument describes a document execution request. Path addresses the
// document inside its project, Parameters is any JSON-marshalable value the
// prompt template is rendered with, and Options may override the client's
// default project and version for this call.
type RunDocument struct {
	Path       string `json:"path"`
	Parameters any    `json:"parameters,omitempty"`
	Stream     bool   `json:"stream"`

	Options *RunOptions `json:"-"`
}

// RunResponse is the buffered result of a document run.
type RunResponse struct {
	UUID     string         `json:"uuid"`
	Response ResponseDetail `json:"response"`
}

// ResponseDetail carries the generated text and token usage of a run.
type ResponseDetail struct {
	Text  string      `json:"text"`
	Usage UsageDetail `json:"usage"`
}

// UsageDetail carries the token counts reported by the buffered run endpoint.
// Stream events report usage through Usage, which uses camel-cased keys.
type UsageDetail struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Run executes a document and waits for the complete response. The document's
// Stream flag is ignored; use RunStream for streamed execution.
func (c *Client) Run(ctx context.Context, doc RunDocument) (*RunResponse, error) {
	path, err := c.runPath(doc.Options, "run")
	if err != nil {
		return nil, err
	}

	doc.Stream = false

	var out RunResponse
	if err := c.postJSON(ctx, path, doc, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// RunStream executes a document and returns the gateway's events as they
// arrive. The sequence ends when the chain completes or the context is
// cancelled.
func (c *Client) RunStream(ctx context.Context, doc RunDocument) (iter.Seq[Event], error) {
	path, err := c.runPath(doc.Options, "run")
	if err != nil {
		return nil, err
	}

	doc.Stream = true

	return c.postStream(ctx, path, doc)
}

func (c *Client) runPath(opts *RunOptions, op string) (string, error) {
	projectID, versionUUID, err := c.resolveTarget(opts)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/projects/%d/versions/%s/documents/%s", projectID, versionUUID, op), nil
}
