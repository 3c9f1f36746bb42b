// Package repository provides the station sources: generator manifests on disk and a mongo collection.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/katiamach/heatrisk-calendars/internal/model"
)

// DB errors.
var (
	ErrNoStations = errors.New("there are no stations yet")
)

// MongoConfig holds connection settings of the mongo station source.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// Repository wraps database and mongo client.
type Repository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// New creates new repository from mongo database.
func New(ctx context.Context, cfg MongoConfig) (*Repository, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := NewMongoDBClient(ctxWithTimeout, cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	err = createIndexes(ctxWithTimeout, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return &Repository{
		client:     client,
		collection: collection,
	}, nil
}

// CreateIndexes creates necessary indexes for the stations collection.
func createIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexModelStations := mongo.IndexModel{
		Keys:    bson.M{"id": 1},
		Options: options.Index().SetUnique(true),
	}

	_, err := collection.Indexes().CreateOne(ctx, indexModelStations)
	if err != nil {
		return fmt.Errorf("failed to create unique station id index: %w", err)
	}

	return nil
}

// Close closes mongo db connection.
func (r *Repository) Close() error {
	if err := r.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// GetStations gets all stations ordered by id.
func (r *Repository) GetStations(ctx context.Context) ([]*model.Station, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"id": 1}).SetProjection(bson.M{"_id": 0})

	stations, err := r.filterStations(ctxWithTimeout, bson.M{}, opts)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoStations
	}
	if err != nil {
		return nil, err
	}

	return stations, nil
}

func (r *Repository) filterStations(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Station, error) {
	var stations []*model.Station

	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		st := model.Station{}
		err := cur.Decode(&st)
		if err != nil {
			return nil, err
		}

		stations = append(stations, &st)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	if len(stations) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return stations, nil
}
