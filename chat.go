package latitude

import (
	"context"
	"iter"
	"net/url"
)

// chatRequest is the body of a conversation continuation.
type chatRequest struct {
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// Chat appends messages to an existing conversation and waits for the
// complete response. The conversation ID is the document log UUID returned by
// a previous run.
func (c *Client) Chat(ctx context.Context, conversationID string, messages []Message) (*RunResponse, error) {
	path, err := chatPath(conversationID)
	if err != nil {
		return nil, err
	}

	var out RunResponse
	if err := c.postJSON(ctx, path, chatRequest{Messages: messages}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ChatStream appends messages to an existing conversation and returns the
// gateway's events as they arrive.
func (c *Client) ChatStream(ctx context.Context, conversationID string, messages []Message) (iter.Seq[Event], error) {
	path, err := chatPath(conversationID)
	if err != nil {
		return nil, err
	}

	return c.postStream(ctx, path, chatRequest{Messages: messages, Stream: true})
}

func chatPath(conversationID string) (string, error) {
	if conversationID == "" {
		return "", ErrConversationIDRequired
	}
	return "/conversations/" + url.PathEscape(conversationID) + "/chat", nil
}
