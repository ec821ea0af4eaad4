package model

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// RepurposeJob is one queued transformation request. Zero-valued params
// mean "use the format default".
type RepurposeJob struct {
	ID        int64
	Content   string
	Format    string
	Audience  string
	Tone      string
	Length    int
	NumSlides int
	Status    string
	CreatedAt time.Time
}

type RepurposeResult struct {
	ID            int64
	JobID         int64
	Output        string
	ModelUsed     string
	PromptVersion string
	CreatedAt     time.Time
}

type ProcessingError struct {
	ID           int64
	JobID        int64
	ErrorMessage string
	ErrorType    string
	CreatedAt    time.Time
}

// JobWithResult joins a job with its result row when one exists.
type JobWithResult struct {
	RepurposeJob
	Output    string
	ModelUsed string
}
