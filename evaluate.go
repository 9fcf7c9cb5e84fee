package latitude

import (
	"context"
	"net/url"
)

// evaluateRequest is the body of an evaluation trigger. An empty UUID list is
// omitted, which tells the gateway to run every evaluation connected to the
// document.
type evaluateRequest struct {
	EvaluationUUIDs []string `json:"evaluationUuids,omitempty"`
}

// EvaluationResponse lists the UUIDs of the evaluation results created for a
// conversation.
type EvaluationResponse struct {
	Evaluations []string `json:"evaluations"`
}

// Evaluate triggers evaluations on a finished conversation. Pass the UUIDs of
// specific evaluations to run, or none to run all connected evaluations.
func (c *Client) Evaluate(ctx context.Context, conversationID string, evaluationUUIDs ...string) (*EvaluationResponse, error) {
	if conversationID == "" {
		return nil, ErrConversationIDRequired
	}

	path := "/conversations/" + url.PathEscape(conversationID) + "/evaluate"

	var out EvaluationResponse
	if err := c.postJSON(ctx, path, evaluateRequest{EvaluationUUIDs: evaluationUUIDs}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
