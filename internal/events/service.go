package events

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eventsnap/eventsnap/constants"
	"github.com/eventsnap/eventsnap/internal/common"
	"github.com/eventsnap/eventsnap/internal/entity"
	"github.com/eventsnap/eventsnap/internal/repository"
	"github.com/eventsnap/eventsnap/internal/utils"
)

// RecentLimit is how many events ListRecent returns when the caller does not
// ask for a specific count.
const RecentLimit = 3

// Service handles event business logic.
type Service struct {
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewService creates a new event service.
func NewService(eventRepo repository.EventRepository, categoryRepo repository.CategoryRepository, logger *slog.Logger) *Service {
	return &Service{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListEventsRequest represents event listing parameters.
type ListEventsRequest struct {
	ProfileID string
	FromDate  string // YYYY-MM-DD, inclusive; empty means unbounded
	ToDate    string // YYYY-MM-DD, inclusive; empty means unbounded
}

// GetEvent returns one event by ID.
func (s *Service) GetEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	id, err := uuid.Parse(strings.TrimSpace(eventID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "event_id must be a UUID")
	}
	ev, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "event %s: %v", id, err)
	}
	return ev, nil
}

// ListEvents returns events for a profile inside an optional date window.
func (s *Service) ListEvents(ctx context.Context, req ListEventsRequest) ([]*entity.Event, error) {
	profileID, err := parseProfileID(req.ProfileID)
	if err != nil {
		return nil, err
	}

	v := common.NewValidator()
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.FromDate); fd != "" {
		v.Field("from_date", fd, common.ISODate)
		from, _ := utils.ParseYMD(fd)
		fromDate = &from
	}
	if td := strings.TrimSpace(req.ToDate); td != "" {
		v.Field("to_date", td, common.ISODate)
		to, _ := utils.ParseYMD(td)
		toDate = &to
	}
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	s.logger.Info("listing events", "profile_id", profileID, "from_date", req.FromDate, "to_date", req.ToDate)
	evs, err := s.eventRepo.ListEvents(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list events: %v", err)
	}
	s.logger.Info("events listed successfully", "profile_id", profileID, "count", len(evs))
	return evs, nil
}

// ListRecent returns the newest events for a profile, newest first.
func (s *Service) ListRecent(ctx context.Context, profileIDStr string, limit int) ([]*entity.Event, error) {
	profileID, err := parseProfileID(profileIDStr)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = RecentLimit
	}

	evs, err := s.eventRepo.ListRecent(ctx, profileID, limit)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list recent events: %v", err)
	}
	return evs, nil
}

func parseProfileID(s string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	return id, nil
}

// EditEventRequest carries user-entered event fields for create and update.
// On update, empty strings leave the stored value unchanged.
type EditEventRequest struct {
	ProfileID            string
	Title                string
	EventDate            string // YYYY-MM-DD
	StartTime            string // HH:MM, 24-hour
	EndTime              string // HH:MM, 24-hour
	Venue                string
	Address              string
	Fee                  string
	RegistrationDeadline string // YYYY-MM-DD
	RegistrationLink     string
	ContactName1         string
	ContactPhone1        string
	ContactName2         string
	ContactTitle2        string
	Organization         string
	Notes                string
	Categories           []string
	Category             string
}

func (req EditEventRequest) validate(forCreate bool) error {
	v := common.NewValidator()
	if forCreate {
		v.Field("title", req.Title, common.Required)
		v.Field("event_date", req.EventDate, common.ISODate)
	} else if req.EventDate != "" {
		v.Field("event_date", req.EventDate, common.ISODate)
	}
	if req.StartTime != "" {
		v.Field("start_time", req.StartTime, common.ClockTime)
	}
	if req.EndTime != "" {
		v.Field("end_time", req.EndTime, common.ClockTime)
	}
	if req.RegistrationDeadline != "" {
		v.Field("registration_deadline", req.RegistrationDeadline, common.ISODate)
	}
	return common.ValidateAndReturnError(v)
}

func (req EditEventRequest) toEntity() *entity.Event {
	ev := &entity.Event{
		Title:            strings.TrimSpace(req.Title),
		StartTime:        optStr(req.StartTime),
		EndTime:          optStr(req.EndTime),
		Venue:            optStr(req.Venue),
		Address:          optStr(req.Address),
		Fee:              optStr(req.Fee),
		RegistrationLink: optStr(req.RegistrationLink),
		ContactName1:     optStr(req.ContactName1),
		ContactPhone1:    optStr(req.ContactPhone1),
		ContactName2:     optStr(req.ContactName2),
		ContactTitle2:    optStr(req.ContactTitle2),
		Organization:     optStr(req.Organization),
		Notes:            optStr(req.Notes),
		Categories:       req.Categories,
	}
	if req.EventDate != "" {
		if d, err := utils.ParseYMD(req.EventDate); err == nil {
			ev.EventDate = d
		}
	}
	if req.RegistrationDeadline != "" {
		if d, err := utils.ParseYMD(req.RegistrationDeadline); err == nil {
			ev.RegistrationDeadline = &d
		}
	}
	return ev
}

// CreateEvent stores a manually entered event.
func (s *Service) CreateEvent(ctx context.Context, req EditEventRequest) (*entity.Event, error) {
	profileID, err := parseProfileID(req.ProfileID)
	if err != nil {
		return nil, err
	}
	if err := req.validate(true); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	ev := req.toEntity()
	ev.ProfileID = profileID
	created, err := s.eventRepo.Create(ctx, ev, categoryID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create event: %v", err)
	}
	s.logger.Info("event created", "event_id", created.ID, "profile_id", profileID)
	return created, nil
}

// UpdateEvent applies non-empty fields of req to an existing event.
func (s *Service) UpdateEvent(ctx context.Context, eventID string, req EditEventRequest) (*entity.Event, error) {
	id, err := uuid.Parse(strings.TrimSpace(eventID))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "event_id must be a UUID")
	}
	if err := req.validate(false); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	ev := req.toEntity()
	ev.ID = id
	updated, err := s.eventRepo.Update(ctx, ev, categoryID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "update event %s: %v", id, err)
	}
	s.logger.Info("event updated", "event_id", id)
	return updated, nil
}

// DeleteEvent removes an event.
func (s *Service) DeleteEvent(ctx context.Context, eventID string) error {
	id, err := uuid.Parse(strings.TrimSpace(eventID))
	if err != nil {
		return status.Error(codes.InvalidArgument, "event_id must be a UUID")
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return status.Errorf(codes.NotFound, "delete event %s: %v", id, err)
	}
	s.logger.Info("event deleted", "event_id", id)
	return nil
}

// resolveCategory maps a free-form label onto the fixed enumeration and
// returns the lookup row's ID. Empty input means no category change.
func (s *Service) resolveCategory(ctx context.Context, name string) (*uuid.UUID, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	canon, _ := constants.Canonicalize(name)
	cat, err := s.categoryRepo.EnsureByName(ctx, string(canon))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "resolve category: %v", err)
	}
	return &cat.ID, nil
}

func optStr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	return &trimmed
}
