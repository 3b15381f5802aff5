package imagesink

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSink(t *testing.T) {
	t.Run("writes the file and returns a relative URL", func(t *testing.T) {
		dir := t.TempDir()
		sink := NewFileSink(dir, "")

		url, err := sink.Put(context.Background(), "photo_1_abc.png", []byte("img-bytes"), "image/png")
		if err != nil {
			t.Fatalf("Put: %v", err)
		}
		if url != "/uploads/photo_1_abc.png" {
			t.Errorf("url = %q, want /uploads/photo_1_abc.png", url)
		}

		data, err := os.ReadFile(filepath.Join(dir, "photo_1_abc.png"))
		if err != nil {
			t.Fatalf("read stored file: %v", err)
		}
		if string(data) != "img-bytes" {
			t.Errorf("stored bytes = %q, want img-bytes", data)
		}
	})

	t.Run("prefixes the base URL when configured", func(t *testing.T) {
		sink := NewFileSink(t.TempDir(), "https://photos.example.com")

		url, err := sink.Put(context.Background(), "photo_2_def.jpg", []byte{1}, "image/jpeg")
		if err != nil {
			t.Fatalf("Put: %v", err)
		}
		if url != "https://photos.example.com/uploads/photo_2_def.jpg" {
			t.Errorf("url = %q, want absolute base URL form", url)
		}
	})

	t.Run("creates the upload dir if missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "uploads")
		sink := NewFileSink(dir, "")

		if _, err := sink.Put(context.Background(), "photo_3.png", []byte{1}, "image/png"); err != nil {
			t.Fatalf("Put: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "photo_3.png")); err != nil {
			t.Errorf("stored file missing: %v", err)
		}
	})
}

func TestInlineSink(t *testing.T) {
	sink := NewInlineSink()

	url, err := sink.Put(context.Background(), "ignored.png", []byte{0, 0, 0}, "image/png")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if url != "data:image/png;base64,AAAA" {
		t.Errorf("url = %q, want data:image/png;base64,AAAA", url)
	}

	// Inline references must decode back to the original bytes.
	data, mediaType, err := DecodeDataURI(url)
	if err != nil {
		t.Fatalf("decode inline reference: %v", err)
	}
	if mediaType != "image/png" || len(data) != 3 {
		t.Errorf("round trip = (%q, %d bytes), want (image/png, 3 bytes)", mediaType, len(data))
	}
}
