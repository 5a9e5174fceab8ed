package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job asks the workers to run the OCR and parse pipeline for one flyer
// file. TraceID carries the request ID of the ingest call that queued it.
type Job struct {
	FileID      uuid.UUID
	Force       bool // process even when the file was deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
