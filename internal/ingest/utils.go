package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/eventsnap/eventsnap/constants"
	"github.com/eventsnap/eventsnap/internal/repository"
)

// AllowedExt checks if a file extension is in the allowed set.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// ValidateProfile confirms the profile exists before attaching files to it.
func ValidateProfile(ctx context.Context, profiles repository.ProfileRepository, profileID uuid.UUID) error {
	exists, err := profiles.Exists(ctx, profileID)
	if err != nil {
		return fmt.Errorf("check profile: %w", err)
	}
	if !exists {
		return fmt.Errorf("profile %s not found", profileID)
	}
	return nil
}
