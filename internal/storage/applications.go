package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"jobportal-api/pkg/models"
)

// ApplicationStore owns the applications collection. Applications are
// immutable once submitted; no update or delete is exposed.
type ApplicationStore struct {
	coll *mongo.Collection
}

// NewApplicationStore creates an application store over the client's database
func NewApplicationStore(client *Client) *ApplicationStore {
	return &ApplicationStore{coll: client.Database().Collection(applicationsCollection)}
}

// Submit stamps appliedAt and inserts the application. The CV path handle
// must be present; the referenced job id is deliberately not checked
// against the jobs collection.
func (s *ApplicationStore) Submit(ctx context.Context, application models.Application) error {
	if application.CV == "" {
		return ErrMissingFile
	}

	application.AppliedAt = time.Now().UTC()
	if _, err := s.coll.InsertOne(ctx, application); err != nil {
		return fmt.Errorf("inserting application: %w", err)
	}
	return nil
}
