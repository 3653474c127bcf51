package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"jobportal-api/pkg/models"
)

// ResumeStore owns the resumes collection: metadata for uploaded CV files,
// independent of any application.
type ResumeStore struct {
	coll *mongo.Collection
}

// NewResumeStore creates a resume store over the client's database
func NewResumeStore(client *Client) *ResumeStore {
	return &ResumeStore{coll: client.Database().Collection(resumesCollection)}
}

// Upload stamps uploadedAt and inserts the resume metadata
func (s *ResumeStore) Upload(ctx context.Context, resume models.Resume) error {
	resume.UploadedAt = time.Now().UTC()
	if _, err := s.coll.InsertOne(ctx, resume); err != nil {
		return fmt.Errorf("inserting resume: %w", err)
	}
	return nil
}
