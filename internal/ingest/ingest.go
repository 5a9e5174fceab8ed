package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// IngestionResult is the per-flyer ingest outcome. FileID is set when the
// file row was created or matched by content hash.
type IngestionResult struct {
	SourcePath   string
	FileID       string
	Deduplicated bool
	HashHex      string
	FileExt      string
	UploadedAt   time.Time
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor is the behavior the gRPC server and batch CLI depend on.
type Ingestor interface {
	// IngestPath registers a single flyer file.
	IngestPath(ctx context.Context, profileID uuid.UUID, path string) (IngestionResult, error)
	// IngestDirectory registers every flyer with an allowed extension under root.
	IngestDirectory(ctx context.Context, profileID uuid.UUID, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}