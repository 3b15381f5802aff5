package imagesink

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	t.Run("decodes a png data URI", func(t *testing.T) {
		data, mediaType, err := DecodeDataURI("data:image/png;base64,AAAA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mediaType != "image/png" {
			t.Errorf("mediaType = %q, want image/png", mediaType)
		}
		if !bytes.Equal(data, []byte{0, 0, 0}) {
			t.Errorf("data = %v, want three zero bytes", data)
		}
	})

	t.Run("decodes a jpeg data URI", func(t *testing.T) {
		_, mediaType, err := DecodeDataURI("data:image/jpeg;base64,/9j/4AA=")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mediaType != "image/jpeg" {
			t.Errorf("mediaType = %q, want image/jpeg", mediaType)
		}
	})

	bad := []struct {
		name string
		uri  string
	}{
		{"missing data prefix", "image/png;base64,AAAA"},
		{"missing comma", "data:image/png;base64AAAA"},
		{"missing encoding", "data:image/png,AAAA"},
		{"not base64 encoding", "data:image/png;utf8,AAAA"},
		{"not an image", "data:text/plain;base64,AAAA"},
		{"corrupt base64", "data:image/png;base64,!!!not-base64!!!"},
		{"empty string", ""},
	}
	for _, tc := range bad {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			_, _, err := DecodeDataURI(tc.uri)
			if !errors.Is(err, ErrBadDataURI) {
				t.Errorf("err = %v, want ErrBadDataURI", err)
			}
		})
	}
}

func TestExtForMediaType(t *testing.T) {
	cases := map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpg",
		"image/webp": ".webp",
		"image/tiff": ".img",
	}
	for mediaType, want := range cases {
		if got := ExtForMediaType(mediaType); got != want {
			t.Errorf("ExtForMediaType(%q) = %q, want %q", mediaType, got, want)
		}
	}
}
