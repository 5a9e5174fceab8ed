package server

import (
	"context"
	"log/slog"

	eventspb "github.com/eventsnap/eventsnap/gen/proto/events/v1"
	"github.com/eventsnap/eventsnap/internal/entity"
	"github.com/eventsnap/eventsnap/internal/events"
	"github.com/eventsnap/eventsnap/internal/utils"
)

type EventServer struct {
	eventspb.UnimplementedEventsServiceServer
	svc    *events.Service
	logger *slog.Logger
}

func NewEventServer(svc *events.Service, logger *slog.Logger) *EventServer {
	return &EventServer{
		svc:    svc,
		logger: logger,
	}
}

// GetEvent returns a single event by ID.
func (s *EventServer) GetEvent(ctx context.Context, req *eventspb.GetEventRequest) (*eventspb.GetEventResponse, error) {
	ev, err := s.svc.GetEvent(ctx, req.GetEventId())
	if err != nil {
		return nil, err
	}
	return &eventspb.GetEventResponse{Event: utils.ToPBEvent(ev)}, nil
}

// ListEvents lists a profile's events inside an optional date window.
func (s *EventServer) ListEvents(ctx context.Context, req *eventspb.ListEventsRequest) (*eventspb.ListEventsResponse, error) {
	evs, err := s.svc.ListEvents(ctx, events.ListEventsRequest{
		ProfileID: req.GetProfileId(),
		FromDate:  req.GetFromDate(),
		ToDate:    req.GetToDate(),
	})
	if err != nil {
		return nil, err
	}
	return &eventspb.ListEventsResponse{Events: toPBEvents(evs)}, nil
}

// ListRecentEvents lists the newest events for a profile, newest first.
func (s *EventServer) ListRecentEvents(ctx context.Context, req *eventspb.ListRecentEventsRequest) (*eventspb.ListEventsResponse, error) {
	evs, err := s.svc.ListRecent(ctx, req.GetProfileId(), int(req.GetLimit()))
	if err != nil {
		return nil, err
	}
	return &eventspb.ListEventsResponse{Events: toPBEvents(evs)}, nil
}

func toPBEvents(evs []*entity.Event) []*eventspb.Event {
	out := make([]*eventspb.Event, 0, len(evs))
	for _, ev := range evs {
		out = append(out, utils.ToPBEvent(ev))
	}
	return out
}

// CreateEvent stores a manually entered event.
func (s *EventServer) CreateEvent(ctx context.Context, req *eventspb.CreateEventRequest) (*eventspb.GetEventResponse, error) {
	ev, err := s.svc.CreateEvent(ctx, editRequestFromPB(req.GetEvent()))
	if err != nil {
		return nil, err
	}
	return &eventspb.GetEventResponse{Event: utils.ToPBEvent(ev)}, nil
}

// UpdateEvent applies the non-empty fields of the request to an event.
func (s *EventServer) UpdateEvent(ctx context.Context, req *eventspb.UpdateEventRequest) (*eventspb.GetEventResponse, error) {
	ev, err := s.svc.UpdateEvent(ctx, req.GetEvent().GetId(), editRequestFromPB(req.GetEvent()))
	if err != nil {
		return nil, err
	}
	return &eventspb.GetEventResponse{Event: utils.ToPBEvent(ev)}, nil
}

// DeleteEvent removes an event.
func (s *EventServer) DeleteEvent(ctx context.Context, req *eventspb.DeleteEventRequest) (*eventspb.DeleteEventResponse, error) {
	if err := s.svc.DeleteEvent(ctx, req.GetEventId()); err != nil {
		return nil, err
	}
	return &eventspb.DeleteEventResponse{}, nil
}

func editRequestFromPB(e *eventspb.Event) events.EditEventRequest {
	if e == nil {
		return events.EditEventRequest{}
	}
	return events.EditEventRequest{
		ProfileID:            e.GetProfileId(),
		Title:                e.GetTitle(),
		EventDate:            e.GetEventDate(),
		StartTime:            e.GetStartTime(),
		EndTime:              e.GetEndTime(),
		Venue:                e.GetVenue(),
		Address:              e.GetAddress(),
		Fee:                  e.GetFee(),
		RegistrationDeadline: e.GetRegistrationDeadline(),
		RegistrationLink:     e.GetRegistrationLink(),
		ContactName1:         e.GetContactName1(),
		ContactPhone1:        e.GetContactPhone1(),
		ContactName2:         e.GetContactName2(),
		ContactTitle2:        e.GetContactTitle2(),
		Organization:         e.GetOrganization(),
		Notes:                e.GetNotes(),
		Categories:           e.GetCategories(),
		Category:             e.GetCategory(),
	}
}
