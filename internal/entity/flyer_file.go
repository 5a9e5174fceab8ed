package entity

import (
	"time"

	"github.com/google/uuid"
)

// FlyerFile represents an ingested flyer file for data transfer between layers.
type FlyerFile struct {
	ID          uuid.UUID  `json:"id"`
	ProfileID   uuid.UUID  `json:"profile_id"`
	EventID     *uuid.UUID `json:"event_id,omitempty"`
	SourcePath  string     `json:"source_path"`
	ContentHash []byte     `json:"content_hash"`
	Filename    string     `json:"filename"`
	FileExt     string     `json:"file_ext"`
	FileSize    int        `json:"file_size"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}
