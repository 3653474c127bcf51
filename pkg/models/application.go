package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application is a submitted job application. It references a job by id and
// the applicant's uploaded CV by filesystem path; neither reference is
// validated against the target collection at write time.
type Application struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	JobID            string             `bson:"jobId" json:"jobId"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone" json:"phone"`
	CV               string             `bson:"cv" json:"cv"`
	Address          string             `bson:"address" json:"address"`
	DescribeYourself string             `bson:"describeYourself" json:"describeYourself"`
	AppliedAt        time.Time          `bson:"appliedAt" json:"appliedAt"`
}

// Subscriber is a newsletter subscriber record, unique by email.
type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	SubscribedAt time.Time          `bson:"subscribedAt" json:"subscribedAt"`
}

// Resume is the stored metadata for an uploaded CV file. It is independent
// of any application.
type Resume struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	FileName   string             `bson:"fileName" json:"fileName"`
	FilePath   string             `bson:"filePath" json:"filePath"`
	UploadedAt time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}

// SavedJob pairs a user with a job they bookmarked. Rows are resolved
// against the jobs collection on read; the jobId is stored as a plain
// string and may reference a job that no longer exists.
type SavedJob struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID string             `bson:"userId" json:"userId"`
	JobID  string             `bson:"jobId" json:"jobId"`
}

// FileHandle is the result of accepting an uploaded binary: the generated
// filename and the path it was persisted under.
type FileHandle struct {
	FileName string `json:"filename"`
	Path     string `json:"path"`
}
