// Package mongo implements the record stores on MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

const (
	collectionAccess        = "access_control"
	collectionRoleOverrides = "role_overrides"
	collectionProfiles      = "profiles"
	collectionSubmissions   = "contact_submissions"
	collectionBlog          = "blog_articles"
	collectionServices      = "services"
	collectionTopics        = "trending_topics"
	collectionListings      = "legal_listings"
	collectionCounters      = "counters"
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the secondary indexes used by the list filters.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		collectionSubmissions: {
			{Keys: bson.D{{Key: "jurisdiction", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		collectionBlog: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		collectionServices: {
			{Keys: bson.D{{Key: "jurisdiction", Value: 1}, {Key: "practice_area", Value: 1}}},
		},
		collectionTopics: {
			{Keys: bson.D{{Key: "is_posted", Value: 1}}},
			{Keys: bson.D{{Key: "practice_area", Value: 1}}},
		},
		collectionListings: {
			{Keys: bson.D{{Key: "jurisdiction", Value: 1}, {Key: "specialization", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// byID sorts results in insertion order, since ids come from a sequence.
var byID = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := col.Find(ctx, filter, byID)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Pinger adapts a database to the readiness check.
type Pinger struct {
	DB *mongo.Database
}

func (p Pinger) Ping(ctx context.Context) error {
	return p.DB.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
