package store

import (
	"context"
	"strconv"
	"sync"

	"photomap-backend/internal/models"
)

// MemoryStore keeps records in process memory. Used for development and
// tests; everything is lost on restart.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int
	photos []models.Photo
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) InsertPhoto(ctx context.Context, photo *models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	photo.ID = strconv.Itoa(s.nextID)
	s.nextID++
	s.photos = append(s.photos, *photo)
	return nil
}

func (s *MemoryStore) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos := make([]models.Photo, len(s.photos))
	copy(photos, s.photos)
	return photos, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close(ctx context.Context) error { return nil }
