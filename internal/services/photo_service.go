package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"photomap-backend/internal/imagesink"
	"photomap-backend/internal/models"
	"photomap-backend/internal/store"
)

// PhotoService owns the write and read paths: decode the incoming data
// URI, hand the bytes to the image sink, persist the record; list all
// records.
type PhotoService struct {
	store store.Store
	sink  imagesink.Sink
}

func NewPhotoService(st store.Store, sink imagesink.Sink) *PhotoService {
	return &PhotoService{store: st, sink: sink}
}

// Upload stores one photo. The record is only written after the image
// bytes are durably stored, so a stored record always carries a live
// reference.
func (s *PhotoService) Upload(ctx context.Context, req models.UploadRequest) (*models.Photo, error) {
	data, mediaType, err := imagesink.DecodeDataURI(*req.Image)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("photo_%d_%s%s",
		time.Now().UnixNano(),
		uuid.NewString()[:8],
		imagesink.ExtForMediaType(mediaType))

	url, err := s.sink.Put(ctx, name, data, mediaType)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	photo := &models.Photo{
		ImageURL:  url,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Timestamp: *req.Timestamp,
	}
	if err := s.store.InsertPhoto(ctx, photo); err != nil {
		return nil, fmt.Errorf("persist record: %w", err)
	}
	return photo, nil
}

// List returns every stored record, in store-default order.
func (s *PhotoService) List(ctx context.Context) ([]models.Photo, error) {
	return s.store.ListPhotos(ctx)
}
