package engine

import (
	"context"
	"fmt"
	"io"
)

// encodeContent converts the request content into the complete body payload
// the transport needs at submission time.
//
// A ProducerContent runs its producer on a writer goroutine feeding a pipe
// while this goroutine collects the output; submission is deferred until
// the producer finishes. Failures here reject the call before any network
// activity.
func encodeContent(ctx context.Context, c Content) ([]byte, error) {
	switch v := c.(type) {
	case nil, NoContent:
		return nil, nil
	case BytesContent:
		return v.Data, nil
	case ProducerContent:
		if v.Produce == nil {
			return nil, NewInvalidRequestError(fmt.Errorf("producer content without producer"))
		}
		pr, pw := io.Pipe()
		go func() {
			pw.CloseWithError(v.Produce(ctx, pw))
		}()
		data, err := io.ReadAll(pr)
		if err != nil {
			return nil, NewInvalidRequestError(fmt.Errorf("produce request body: %w", err))
		}
		return data, nil
	default:
		return nil, NewUnsupportedContentError(fmt.Sprintf("%T", c))
	}
}
