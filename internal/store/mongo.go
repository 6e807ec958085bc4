package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNoDocument is returned by FindOne when no document matches.
var ErrNoDocument = errors.New("no matching document")

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 5 * time.Second
	findTimeout  = 10 * time.Second
)

// MongoStore implements Store over a mongo database handle.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter Filter, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	err := s.db.Collection(collection).FindOne(ctx, filterToBSON(filter)).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNoDocument
	}
	return err
}

func (s *MongoStore) Find(ctx context.Context, collection string, query Query, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, findTimeout)
	defer cancel()

	opts := options.Find()
	if query.Limit > 0 {
		opts.SetLimit(query.Limit)
	}
	if query.SortField != "" {
		order := query.SortOrder
		if order == 0 {
			order = SortAsc
		}
		opts.SetSort(bson.D{{Key: query.SortField, Value: order}})
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filterToBSON(query.Filter), opts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

func (s *MongoStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()
	return s.db.Collection(collection).CountDocuments(ctx, filterToBSON(filter))
}

// filterToBSON renders a Filter as a mongo filter document. Range ops on
// the same field share one operator document, so Gte+Lte on price become
// {"price": {"$gte": x, "$lte": y}}.
func filterToBSON(f Filter) bson.M {
	out := bson.M{}
	for _, c := range f {
		switch c.Op {
		case OpEq:
			out[c.Field] = c.Value
		case OpNe, OpGte, OpLte:
			ops, ok := out[c.Field].(bson.M)
			if !ok {
				ops = bson.M{}
				out[c.Field] = ops
			}
			ops["$"+string(c.Op)] = c.Value
		}
	}
	return out
}
