package models

// SubscribeRequest represents the payload for the newsletter subscription endpoint
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ApplyRequest represents the multipart form fields of a job application.
// The CV file itself travels alongside these fields under the "cv" part.
type ApplyRequest struct {
	JobID            string `form:"jobId" json:"jobId" validate:"required"`
	Name             string `form:"name" json:"name" validate:"required"`
	Email            string `form:"email" json:"email" validate:"required,email"`
	Phone            string `form:"phone" json:"phone" validate:"required"`
	Address          string `form:"address" json:"address" validate:"required"`
	DescribeYourself string `form:"describeYourself" json:"describeYourself" validate:"required"`
}
