package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sequences hands out per-collection ids from the counters collection.
type sequences struct {
	col *mongo.Collection
}

func newSequences(db *mongo.Database) sequences {
	return sequences{col: db.Collection(collectionCounters)}
}

type counter struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

// next atomically increments and returns the counter for name.
func (s sequences) next(ctx context.Context, name string) (uint64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var c counter
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&c)
	if err != nil {
		return 0, fmt.Errorf("next %s id: %w", name, err)
	}
	return uint64(c.Seq), nil
}

// atLeast raises the counter for name to id so it is never reissued.
func (s sequences) atLeast(ctx context.Context, name string, id uint64) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$max": bson.M{"seq": int64(id)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("bump %s id: %w", name, err)
	}
	return nil
}

// insertWithID assigns the next id through assign and inserts doc. A duplicate
// key means an explicit id overtook the counter, so it draws again.
func (s sequences) insertWithID(ctx context.Context, col *mongo.Collection, name string, assign func(uint64) any) (uint64, error) {
	const attempts = 3
	for i := 0; ; i++ {
		id, err := s.next(ctx, name)
		if err != nil {
			return 0, err
		}
		_, err = col.InsertOne(ctx, assign(id))
		if err == nil {
			return id, nil
		}
		if !mongo.IsDuplicateKeyError(err) || i == attempts-1 {
			return 0, fmt.Errorf("insert into %s: %w", col.Name(), err)
		}
	}
}
