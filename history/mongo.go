package history

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBlob keeps the history as one document in a collection, keyed by
// a fixed _id.
type MongoBlob struct {
	Collection *mongo.Collection
	Key        string
}

type mongoDocument struct {
	Key     string `bson:"_id"`
	Payload []byte `bson:"payload"`
}

func (b MongoBlob) key() string {
	if b.Key != "" {
		return b.Key
	}
	return DefaultKey
}

func (b MongoBlob) Load(ctx context.Context) ([]byte, error) {
	var doc mongoDocument

	err := b.Collection.FindOne(ctx, bson.M{"_id": b.key()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return doc.Payload, nil
}

func (b MongoBlob) Save(ctx context.Context, payload []byte) error {
	doc := mongoDocument{Key: b.key(), Payload: payload}

	_, err := b.Collection.ReplaceOne(ctx, bson.M{"_id": b.key()}, doc, options.Replace().SetUpsert(true))

	return err
}
