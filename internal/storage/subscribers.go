package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"jobportal-api/pkg/models"
)

// SubscriberStore owns the subscribers collection, deduplicated by email
type SubscriberStore struct {
	coll *mongo.Collection
}

// NewSubscriberStore creates a subscriber store over the client's database
func NewSubscriberStore(client *Client) *SubscriberStore {
	return &SubscriberStore{coll: client.Database().Collection(subscribersCollection)}
}

// Subscribe records a new subscriber. The read-before-write check catches
// the common duplicate without a write attempt; concurrent duplicates that
// slip past it hit the unique email index and are classified the same way.
func (s *SubscriberStore) Subscribe(ctx context.Context, email string) error {
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return ErrDuplicateSubscriber
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("checking subscriber %s: %w", email, err)
	}

	subscriber := models.Subscriber{
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	}

	if _, err := s.coll.InsertOne(ctx, subscriber); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSubscriber
		}
		return fmt.Errorf("inserting subscriber %s: %w", email, err)
	}
	return nil
}
