package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store backed by a MongoDB database, one collection
// per document kind, documents keyed by their string _id.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo dials MongoDB and verifies the connection with a ping.
func ConnectMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// Disconnect closes the underlying client.
func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Get(ctx context.Context, kind, id string, out any) error {
	err := s.db.Collection(kind).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *MongoStore) Insert(ctx context.Context, kind, id string, doc any) error {
	keyed, err := withID(id, doc)
	if err != nil {
		return err
	}
	_, err = s.db.Collection(kind).InsertOne(ctx, keyed)
	if mongo.IsDuplicateKeyError(err) {
		return ErrExists
	}
	return err
}

func (s *MongoStore) Upsert(ctx context.Context, kind, id string, doc any) error {
	keyed, err := withID(id, doc)
	if err != nil {
		return err
	}
	opts := options.Replace().SetUpsert(true)
	_, err = s.db.Collection(kind).ReplaceOne(ctx, bson.M{"_id": id}, keyed, opts)
	return err
}

func (s *MongoStore) Delete(ctx context.Context, kind, id string) error {
	res, err := s.db.Collection(kind).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Query(ctx context.Context, kind string, filter map[string]any, limit, offset int, out any) error {
	match := bson.M{}
	for field, value := range filter {
		match[field] = value
	}

	opts := options.Find().SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.db.Collection(kind).Find(ctx, match, opts)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// withID rewrites doc as a bson map carrying the caller-supplied key.
func withID(id string, doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m["_id"] = id
	return m, nil
}
