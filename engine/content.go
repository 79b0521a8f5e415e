package engine

import (
	"context"
	"encoding/json"
	"io"
)

// Content describes an outgoing request body. The engine recognizes
// NoContent, BytesContent, and ProducerContent; anything else fails with
// ErrCodeUnsupportedContent before any network activity.
type Content interface {
	// ContentType returns the MIME type, empty when unspecified.
	ContentType() string
	// Length returns the body length in bytes, -1 when unknown.
	Length() int64
}

// NoContent is a request without a body.
type NoContent struct{}

func (NoContent) ContentType() string { return "" }
func (NoContent) Length() int64       { return 0 }

// BytesContent is an in-memory request body.
type BytesContent struct {
	Data []byte
	Type string
}

func (c BytesContent) ContentType() string { return c.Type }
func (c BytesContent) Length() int64       { return int64(len(c.Data)) }

// ProducerContent is a body generated by a producer function. The producer
// is invoked with a destination sink during encoding; its output is
// collected into a single buffer because the transport requires a complete
// body at submission time.
type ProducerContent struct {
	// Produce writes the body to w. It should honor ctx.
	Produce func(ctx context.Context, w io.Writer) error
	Type    string
	// Size is the expected body length. Zero or negative means unknown.
	Size int64
}

func (c ProducerContent) ContentType() string { return c.Type }

func (c ProducerContent) Length() int64 {
	if c.Size > 0 {
		return c.Size
	}
	return -1
}

// TextContent creates a text/plain in-memory body.
func TextContent(s string) BytesContent {
	return BytesContent{Data: []byte(s), Type: "text/plain"}
}

// JSONContent JSON-encodes v into an in-memory body.
func JSONContent(v any) (BytesContent, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return BytesContent{}, err
	}
	return BytesContent{Data: data, Type: "application/json"}, nil
}
