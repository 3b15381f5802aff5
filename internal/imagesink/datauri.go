package imagesink

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrBadDataURI marks a payload that is not a decodable base64 image
// data URI.
var ErrBadDataURI = errors.New("invalid image data URI")

var extByMediaType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// DecodeDataURI splits a "data:image/*;base64,..." payload into raw
// bytes and its media type.
func DecodeDataURI(uri string) (data []byte, mediaType string, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", ErrBadDataURI
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", ErrBadDataURI
	}

	mediaType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" || !strings.HasPrefix(mediaType, "image/") {
		return nil, "", ErrBadDataURI
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrBadDataURI
	}
	return data, mediaType, nil
}

// ExtForMediaType maps an image media type to a file extension,
// defaulting to .img for types outside the usual set.
func ExtForMediaType(mediaType string) string {
	if ext, ok := extByMediaType[mediaType]; ok {
		return ext
	}
	return ".img"
}
