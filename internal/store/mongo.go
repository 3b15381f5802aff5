package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"photomap-backend/internal/models"
)

const photosCollection = "photos"

// MongoStore is the default record store. The connection is established
// lazily on first use and reused afterwards; Close tears it down
// explicitly on shutdown. The handle is passed around, never a package
// global.
type MongoStore struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
}

func NewMongoStore(uri, dbName string) *MongoStore {
	return &MongoStore{uri: uri, dbName: dbName}
}

// collection returns the photos collection, connecting if needed.
// Safe for concurrent callers; only the first one pays the connect cost.
func (s *MongoStore) collection(ctx context.Context) (*mongo.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		cctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		client, err := mongo.Connect(cctx, options.Client().ApplyURI(s.uri))
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		if err := client.Ping(cctx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongo ping: %w", err)
		}
		s.client = client
	}
	return s.client.Database(s.dbName).Collection(photosCollection), nil
}

type photoDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ImageURL  string             `bson:"imageUrl"`
	Latitude  float64            `bson:"latitude"`
	Longitude float64            `bson:"longitude"`
	Timestamp string             `bson:"timestamp"`
}

func (s *MongoStore) InsertPhoto(ctx context.Context, photo *models.Photo) error {
	col, err := s.collection(ctx)
	if err != nil {
		return err
	}

	ictx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	res, err := col.InsertOne(ictx, photoDoc{
		ImageURL:  photo.ImageURL,
		Latitude:  photo.Latitude,
		Longitude: photo.Longitude,
		Timestamp: photo.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		photo.ID = oid.Hex()
	}
	return nil
}

func (s *MongoStore) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	col, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	cur, err := col.Find(qctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(qctx)

	photos := []models.Photo{}
	for cur.Next(qctx) {
		var doc photoDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("mongo decode: %w", err)
		}
		photos = append(photos, models.Photo{
			ID:        doc.ID.Hex(),
			ImageURL:  doc.ImageURL,
			Latitude:  doc.Latitude,
			Longitude: doc.Longitude,
			Timestamp: doc.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	return photos, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if _, err := s.collection(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()
	return client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	client := s.client
	s.client = nil
	return client.Disconnect(ctx)
}
