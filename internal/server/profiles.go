package server

import (
	"context"
	"log/slog"

	eventspb "github.com/eventsnap/eventsnap/gen/proto/events/v1"
	"github.com/eventsnap/eventsnap/internal/profiles"
	"github.com/eventsnap/eventsnap/internal/utils"
)

type ProfileServer struct {
	eventspb.UnimplementedProfilesServiceServer
	svc    *profiles.Service
	logger *slog.Logger
}

func NewProfileServer(svc *profiles.Service, logger *slog.Logger) *ProfileServer {
	return &ProfileServer{
		svc:    svc,
		logger: logger,
	}
}

// CreateProfile creates a new profile.
func (s *ProfileServer) CreateProfile(ctx context.Context, req *eventspb.CreateProfileRequest) (*eventspb.CreateProfileResponse, error) {
	serviceReq := profiles.CreateProfileRequest{
		Name:            req.GetName(),
		DefaultTimezone: req.GetDefaultTimezone(),
	}

	p, err := s.svc.CreateProfile(ctx, serviceReq)
	if err != nil {
		return nil, err
	}

	return &eventspb.CreateProfileResponse{
		Profile: utils.ToPBProfileFromEntity(p),
	}, nil
}

// ListProfiles lists all the profiles.
func (s *ProfileServer) ListProfiles(ctx context.Context, _ *eventspb.ListProfilesRequest) (*eventspb.ListProfilesResponse, error) {
	plist, err := s.svc.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*eventspb.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBProfileFromEntity(p))
	}
	return &eventspb.ListProfilesResponse{Profiles: out}, nil
}
