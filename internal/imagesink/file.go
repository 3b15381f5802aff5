package imagesink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes image bytes to a local directory that the app serves
// at /uploads. When baseURL is set the returned reference is absolute,
// otherwise it is server-relative.
type FileSink struct {
	dir     string
	baseURL string
}

func NewFileSink(dir, baseURL string) *FileSink {
	return &FileSink{dir: dir, baseURL: baseURL}
}

func (s *FileSink) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst := filepath.Join(s.dir, name)
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	if s.baseURL != "" {
		return fmt.Sprintf("%s/uploads/%s", s.baseURL, name), nil
	}
	return "/uploads/" + name, nil
}
