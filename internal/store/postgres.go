package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"photomap-backend/internal/models"
)

const photosSchema = `
CREATE TABLE IF NOT EXISTS photos (
	id         TEXT PRIMARY KEY,
	image_url  TEXT NOT NULL,
	latitude   DOUBLE PRECISION NOT NULL,
	longitude  DOUBLE PRECISION NOT NULL,
	captured_at TEXT NOT NULL
)`

// PostgresStore is the alternate record store, for deployments that
// already run Postgres instead of a document database.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, photosSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ensure photos table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) InsertPhoto(ctx context.Context, photo *models.Photo) error {
	id := uuid.NewString()
	query := `INSERT INTO photos (id, image_url, latitude, longitude, captured_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := s.pool.Exec(ctx, query, id, photo.ImageURL, photo.Latitude, photo.Longitude, photo.Timestamp)
	if err != nil {
		return fmt.Errorf("postgres insert: %w", err)
	}
	photo.ID = id
	return nil
}

func (s *PostgresStore) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	query := `SELECT id, image_url, latitude, longitude, captured_at FROM photos`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres query: %w", err)
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.ImageURL, &p.Latitude, &p.Longitude, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("postgres scan: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres rows: %w", err)
	}
	return photos, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close(ctx context.Context) error {
	s.pool.Close()
	return nil
}
