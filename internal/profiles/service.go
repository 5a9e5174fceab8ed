package profiles

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eventsnap/eventsnap/internal/common"
	"github.com/eventsnap/eventsnap/internal/entity"
	"github.com/eventsnap/eventsnap/internal/repository"
	"github.com/eventsnap/eventsnap/internal/utils"
)

// Service handles profile business logic.
type Service struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewService creates a new profile service.
func NewService(profileRepo repository.ProfileRepository, logger *slog.Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// CreateProfileRequest represents profile creation parameters.
type CreateProfileRequest struct {
	Name            string
	DefaultTimezone string
}

// CreateProfile creates a new profile.
func (s *Service) CreateProfile(ctx context.Context, req CreateProfileRequest) (*entity.Profile, error) {
	name := strings.TrimSpace(req.Name)
	v := common.NewValidator().
		Field("name", name, common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	tz := strings.TrimSpace(req.DefaultTimezone)
	if tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return nil, common.InvalidArgumentError("default_timezone must be an IANA zone name")
		}
	}

	p, err := s.profileRepo.CreateProfile(ctx, &repository.Profile{
		Name:            name,
		DefaultTimezone: tz,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create profile: %v", err)
	}

	s.logger.Info("profile created successfully", "profile_id", p.ID, "name", p.Name)
	return utils.ToProfile(p), nil
}

// ListProfiles returns all profiles.
func (s *Service) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	s.logger.Info("listing profiles")

	plist, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		// DB error already logged in repository layer
		return nil, status.Errorf(codes.Internal, "list profiles: %v", err)
	}

	out := make([]*entity.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToProfile(p))
	}
	s.logger.Info("profiles listed successfully", "count", len(out))
	return out, nil
}
