package store

import (
	"context"
	"sync"
	"testing"

	"photomap-backend/internal/models"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store lists an empty non-nil slice", func(t *testing.T) {
		s := NewMemoryStore()
		photos, err := s.ListPhotos(ctx)
		if err != nil {
			t.Fatalf("ListPhotos: %v", err)
		}
		if photos == nil {
			t.Fatal("photos is nil, want empty slice")
		}
		if len(photos) != 0 {
			t.Fatalf("len = %d, want 0", len(photos))
		}
	})

	t.Run("insert assigns IDs and round-trips fields", func(t *testing.T) {
		s := NewMemoryStore()
		p := &models.Photo{
			ImageURL:  "/uploads/photo_1.png",
			Latitude:  51.5,
			Longitude: -0.12,
			Timestamp: "2024-01-01T00:00:00.000Z",
		}
		if err := s.InsertPhoto(ctx, p); err != nil {
			t.Fatalf("InsertPhoto: %v", err)
		}
		if p.ID == "" {
			t.Error("ID not assigned")
		}

		photos, err := s.ListPhotos(ctx)
		if err != nil {
			t.Fatalf("ListPhotos: %v", err)
		}
		if len(photos) != 1 {
			t.Fatalf("len = %d, want 1", len(photos))
		}
		got := photos[0]
		if got.ImageURL != p.ImageURL || got.Latitude != 51.5 || got.Longitude != -0.12 || got.Timestamp != p.Timestamp {
			t.Errorf("round trip mismatch: %+v", got)
		}
	})

	t.Run("tolerates concurrent inserts", func(t *testing.T) {
		s := NewMemoryStore()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = s.InsertPhoto(ctx, &models.Photo{ImageURL: "x", Timestamp: "t"})
			}()
		}
		wg.Wait()

		photos, err := s.ListPhotos(ctx)
		if err != nil {
			t.Fatalf("ListPhotos: %v", err)
		}
		if len(photos) != 20 {
			t.Errorf("len = %d, want 20", len(photos))
		}
		seen := map[string]bool{}
		for _, p := range photos {
			if seen[p.ID] {
				t.Errorf("duplicate ID %q", p.ID)
			}
			seen[p.ID] = true
		}
	})
}
