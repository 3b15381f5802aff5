package imagesink

import (
	"context"
	"encoding/base64"
)

// InlineSink stores nothing externally: the reference it returns is a
// data URI carrying the image itself, persisted directly in the record.
type InlineSink struct{}

func NewInlineSink() *InlineSink {
	return &InlineSink{}
}

func (s *InlineSink) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
