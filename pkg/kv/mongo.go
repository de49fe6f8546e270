package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/familycar/datastore/config"
)

const mongoCollection = "kv_entries"

// kvDocument is the shape written to MongoDB: the storage key as _id, the
// full JSON document as value.
type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// mongoMedium stores one document per key in a MongoDB collection.
type mongoMedium struct {
	client *mongo.Client
	col    *mongo.Collection
}

// NewMongo connects to MongoDB (MONGO_URI / MONGO_DB) and verifies the
// connection with a ping.
func NewMongo() (Medium, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("kv/mongo: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("kv/mongo: ping: %w", err)
	}

	return &mongoMedium{
		client: client,
		col:    client.Database(config.MongoDB()).Collection(mongoCollection),
	}, nil
}

func (d *mongoMedium) Get(key string) (string, bool, error) {
	var doc kvDocument
	err := d.col.FindOne(context.Background(), bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv/mongo: get %s: %w", key, err)
	}
	return doc.Value, true, nil
}

func (d *mongoMedium) Set(key, value string) error {
	_, err := d.col.ReplaceOne(context.Background(),
		bson.M{"_id": key},
		kvDocument{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("kv/mongo: set %s: %w", key, err)
	}
	return nil
}

func (d *mongoMedium) Remove(key string) error {
	if _, err := d.col.DeleteOne(context.Background(), bson.M{"_id": key}); err != nil {
		return fmt.Errorf("kv/mongo: remove %s: %w", key, err)
	}
	return nil
}

func (d *mongoMedium) Close() error {
	return d.client.Disconnect(context.Background())
}
