package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jobportal-api/pkg/models"
)

// JobStore owns the jobs collection
type JobStore struct {
	coll *mongo.Collection
}

// NewJobStore creates a job store over the client's database
func NewJobStore(client *Client) *JobStore {
	return &JobStore{coll: client.Database().Collection(jobsCollection)}
}

// parseObjectID validates identifier well-formedness before any store access
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

// Create stamps createdAt and inserts the posting, returning the
// store-assigned identifier in hex form.
func (s *JobStore) Create(ctx context.Context, fields models.Job) (string, error) {
	doc := models.Job{}
	for key, value := range fields {
		doc[key] = value
	}
	doc["createdAt"] = time.Now().UTC()

	result, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting job: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", ErrNotAcknowledged
	}
	return oid.Hex(), nil
}

// List returns all jobs in store-native order
func (s *JobStore) List(ctx context.Context) ([]models.Job, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decoding jobs: %w", err)
	}
	return jobs, nil
}

// GetByID returns a single job. ErrInvalidID on a malformed identifier,
// ErrNotFound when no record matches.
func (s *JobStore) GetByID(ctx context.Context, id string) (models.Job, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var job models.Job
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching job %s: %w", id, err)
	}
	return job, nil
}

// ListByPoster returns the jobs posted under the given email, exact match.
// An empty result is returned as an empty slice; the compatibility-facing
// 404 policy belongs to the handler.
func (s *JobStore) ListByPoster(ctx context.Context, email string) ([]models.Job, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"postedBy": email})
	if err != nil {
		return nil, fmt.Errorf("listing jobs for %s: %w", email, err)
	}

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decoding jobs for %s: %w", email, err)
	}
	return jobs, nil
}

// Update applies a partial update. The existing record is fetched first;
// every requested field is classified as set-or-unset against it before a
// single update is sent, so intent never has to be inferred store-side.
func (s *JobStore) Update(ctx context.Context, id string, fields models.Job) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	var existing models.Job
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("fetching job %s for update: %w", id, err)
	}

	patch := BuildPatch(existing, fields)
	if _, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, patch.Document()); err != nil {
		return fmt.Errorf("updating job %s: %w", id, err)
	}
	return nil
}

// Delete removes the job unconditionally and reports how many records went
// away (0 or 1). No existence check happens beforehand, and nothing
// cascades: applications and saved-job rows referencing the id stay put.
func (s *JobStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("deleting job %s: %w", id, err)
	}
	return result.DeletedCount, nil
}

// FindByIDs performs one batched lookup. Identifiers with no matching job
// are simply absent from the result.
func (s *JobStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Job, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("batch fetching jobs: %w", err)
	}

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decoding batch fetched jobs: %w", err)
	}
	return jobs, nil
}
