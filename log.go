package latitude

import (
	"context"
	"encoding/json"
)

// Log is a document log produced outside of Latitude, pushed into the
// gateway so the generation shows up alongside runs executed by Latitude
// itself. Options may override the client's default project and version.
type Log struct {
	Path     string    `json:"path"`
	Messages []Message `json:"messages"`
	Response string    `json:"response"`

	Options *RunOptions `json:"-"`
}

// LogResponse is the document log record created by the gateway.
type LogResponse struct {
	ID               int64           `json:"id"`
	UUID             string          `json:"uuid"`
	DocumentUUID     string          `json:"documentUuid"`
	CommitID         int64           `json:"commitId"`
	ResolvedContent  string          `json:"resolvedContent"`
	ContentHash      string          `json:"contentHash"`
	Parameters       json.RawMessage `json:"parameters"`
	CustomIdentifier json.RawMessage `json:"customIdentifier"`
	Duration         json.RawMessage `json:"duration"`
	Source           string          `json:"source"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

// CreateLog uploads a document log. Both the document path and the response
// text are required.
func (c *Client) CreateLog(ctx context.Context, log Log) (*LogResponse, error) {
	if log.Path == "" {
		return nil, ErrLogPathRequired
	}
	if log.Response == "" {
		return nil, ErrLogResponseRequired
	}

	path, err := c.runPath(log.Options, "logs")
	if err != nil {
		return nil, err
	}

	var out LogResponse
	if err := c.postJSON(ctx, path, log, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
