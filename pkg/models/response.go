package models

import "time"

// InsertJobResponse is returned after a successful job insert
type InsertJobResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateJobResponse is returned after a successful partial update
type UpdateJobResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	Message      string `json:"message"`
}

// DeleteJobResponse carries the store's deletion acknowledgment
type DeleteJobResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// MyJobsResponse wraps the jobs posted by a single poster
type MyJobsResponse struct {
	Status bool  `json:"status"`
	Jobs   []Job `json:"jobs"`
}

// SavedJobsResponse wraps the resolved job records for a user's saved jobs
type SavedJobsResponse struct {
	Status    bool  `json:"status"`
	SavedJobs []Job `json:"savedJobs"`
}

// MessageResponse is a plain success message
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadCVResponse is returned after a standalone CV upload
type UploadCVResponse struct {
	Message string      `json:"message"`
	File    *FileHandle `json:"file"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
