// Package imagesink stores raw image bytes and hands back a retrievable
// reference. Two backends exist behind one interface: "file" writes to
// local disk served under /uploads, "inline" returns the bytes as a
// base64 data URI. The backend is a single configuration choice
// (IMAGE_STORE), not parallel request paths.
package imagesink

import (
	"context"
	"fmt"

	"photomap-backend/internal/utils"
)

type Sink interface {
	// Put stores data under name and returns the public reference the
	// stored image can be fetched from.
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// New builds the sink selected by the IMAGE_STORE env var.
func New() (Sink, error) {
	backend := utils.GetEnv("IMAGE_STORE", "file")
	switch backend {
	case "file":
		return NewFileSink(
			utils.GetEnv("UPLOAD_DIR", "uploads"),
			utils.GetEnv("BASE_URL", ""),
		), nil
	case "inline":
		return NewInlineSink(), nil
	default:
		return nil, fmt.Errorf("unknown IMAGE_STORE %q", backend)
	}
}
