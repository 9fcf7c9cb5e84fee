package latitude

import (
	"context"
	"errors"
	"io"
	"iter"
	"sync"

	"github.com/tmaxmax/go-sse"
)

// postStream sends a request via post and decodes the SSE response body into
// an event sequence. The sequence ends when the gateway closes the stream or
// the request context is cancelled. Breaking out of the sequence early stops
// the reader and releases the connection.
func (c *Client) postStream(ctx context.Context, path string, body any) (iter.Seq[Event], error) {
	resp, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	events := make(chan Event)
	done := make(chan struct{})
	go c.readEvents(ctx, resp.Body, events, done)

	var stop sync.Once
	return func(yield func(Event) bool) {
		defer stop.Do(func() { close(done) })

		for ev := range events {
			if !yield(ev) {
				return
			}
		}
	}, nil
}

func (c *Client) readEvents(ctx context.Context, body io.ReadCloser, events chan<- Event, done <-chan struct{}) {
	defer func() {
		body.Close()
		close(events)
	}()

	for ev, err := range sse.Read(body, nil) {
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				c.logger.Error("failed to read SSE event", "err", err)
			}
			return
		}

		event, ok := decodeEvent(ev, c.logger)
		if !ok {
			continue
		}

		select {
		case events <- event:
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}
