package accountstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/tokenize/pkg/tokenize"
)

// MongoStore keeps one document per account, keyed by _id.
type MongoStore struct {
	col *mongo.Collection
}

type mongoAccount struct {
	ID         string `bson:"_id"`
	TokenReset int64  `bson:"last_token_reset"`
}

// NewMongoStore creates a Mongo-backed account store using the default collection name.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return NewMongoStoreWithConfig(db, DefaultConfig())
}

// NewMongoStoreWithConfig creates a Mongo-backed account store with a custom configuration.
func NewMongoStoreWithConfig(db *mongo.Database, cfg Config) *MongoStore {
	return &MongoStore{
		col: db.Collection(cfg.MongoCollection),
	}
}

// Create registers an account with a zero reset timestamp.
// Returns ErrAccountExists if the id is already registered.
func (s *MongoStore) Create(ctx context.Context, accountID string) error {
	_, err := s.col.InsertOne(ctx, mongoAccount{ID: accountID})
	if mongo.IsDuplicateKeyError(err) {
		return errors.Join(ErrAccountExists, err)
	}
	return err
}

// Lookup resolves an account id; missing accounts yield (nil, nil).
func (s *MongoStore) Lookup(ctx context.Context, accountID string) (tokenize.Account, error) {
	var doc mongoAccount
	err := s.col.FindOne(ctx, bson.M{"_id": accountID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return StoredAccount{ID: doc.ID, TokenReset: doc.TokenReset}, nil
}

// Invalidate revokes every token issued to the account before the given moment.
func (s *MongoStore) Invalidate(ctx context.Context, accountID string, at time.Time) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": accountID},
		bson.M{"$set": bson.M{"last_token_reset": at.UnixMilli()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Delete removes the account record.
func (s *MongoStore) Delete(ctx context.Context, accountID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": accountID})
	return err
}
