package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jobportal-api/pkg/models"
)

// SavedJobIndex owns the savedJobs collection. Rows only pair a user with
// a job id, so reads resolve against the job store; it is the one
// component here that depends on another.
type SavedJobIndex struct {
	coll *mongo.Collection
	jobs *JobStore
}

// NewSavedJobIndex creates a saved-job index resolving against the given job store
func NewSavedJobIndex(client *Client, jobs *JobStore) *SavedJobIndex {
	return &SavedJobIndex{
		coll: client.Database().Collection(savedJobsCollection),
		jobs: jobs,
	}
}

// ListSavedJobs returns the resolved job records for everything the user
// saved. An empty row set is ErrNotFound rather than an empty success,
// preserved for API compatibility. Saved rows referencing deleted jobs
// drop out of the batched lookup without erroring.
func (s *SavedJobIndex) ListSavedJobs(ctx context.Context, userID string) ([]models.Job, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("listing saved jobs for %s: %w", userID, err)
	}

	saved := []models.SavedJob{}
	if err := cursor.All(ctx, &saved); err != nil {
		return nil, fmt.Errorf("decoding saved jobs for %s: %w", userID, err)
	}

	if len(saved) == 0 {
		return nil, ErrNotFound
	}

	ids := make([]primitive.ObjectID, 0, len(saved))
	for _, row := range saved {
		oid, err := primitive.ObjectIDFromHex(row.JobID)
		if err != nil {
			return nil, fmt.Errorf("saved job %s holds malformed job id %q: %w", row.ID.Hex(), row.JobID, err)
		}
		ids = append(ids, oid)
	}

	return s.jobs.FindByIDs(ctx, ids)
}
