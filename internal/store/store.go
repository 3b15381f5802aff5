package store

import (
	"context"
	"fmt"

	"photomap-backend/internal/models"
	"photomap-backend/internal/utils"
)

// Store persists photo records. Two operations only: records are
// immutable, so there is no update or delete.
type Store interface {
	// InsertPhoto writes one record and fills in its store-assigned ID.
	InsertPhoto(ctx context.Context, photo *models.Photo) error
	// ListPhotos returns every record in store-default order. An empty
	// store yields an empty (non-nil) slice.
	ListPhotos(ctx context.Context) ([]models.Photo, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New builds the store selected by the PHOTO_STORE env var
// (mongo, postgres or memory).
func New(ctx context.Context) (Store, error) {
	backend := utils.GetEnv("PHOTO_STORE", "mongo")
	switch backend {
	case "mongo":
		return NewMongoStore(
			utils.GetEnv("MONGODB_URI", "mongodb://localhost:27017"),
			utils.GetEnv("MONGODB_DB", "photomap"),
		), nil
	case "postgres":
		return NewPostgresStore(ctx, postgresConnString())
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown PHOTO_STORE %q", backend)
	}
}

func postgresConnString() string {
	if s := utils.GetEnv("DATABASE_URL", ""); s != "" {
		return s
	}
	return "postgres://" + utils.GetEnv("POSTGRES_USER", "postgres") + ":" +
		utils.GetEnv("POSTGRES_PASSWORD", "postgres") + "@" +
		utils.GetEnv("POSTGRES_HOST", "localhost") + ":" +
		utils.GetEnv("POSTGRES_PORT", "5432") + "/" +
		utils.GetEnv("POSTGRES_DB", "photomap") + "?sslmode=disable"
}
