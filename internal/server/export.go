package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	eventspb "github.com/eventsnap/eventsnap/gen/proto/events/v1"
	"github.com/eventsnap/eventsnap/internal/export"
)

type ExportServer struct {
	eventspb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportEvents(ctx context.Context, req *eventspb.ExportEventsRequest) (*eventspb.ExportEventsResponse, error) {
	pid := strings.TrimSpace(req.GetProfileId())
	profileID, err := uuid.Parse(pid)
	if err != nil || pid == "" {
		return nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	stamp := time.Now().UTC().Format("20060102")
	switch req.GetFormat() {
	case eventspb.ExportFormat_EXPORT_FORMAT_ICS:
		data, err := s.svc.ExportEventsICS(ctx, profileID, fromPtr, toPtr)
		if err != nil {
			s.logger.Error("export.ics.failed", "profile_id", pid, "err", err)
			return nil, status.Errorf(codes.Internal, "export: %v", err)
		}
		return &eventspb.ExportEventsResponse{
			Data:     data,
			Filename: fmt.Sprintf("events-%s.ics", stamp),
		}, nil
	case eventspb.ExportFormat_EXPORT_FORMAT_XLSX, eventspb.ExportFormat_EXPORT_FORMAT_UNSPECIFIED:
		data, err := s.svc.ExportEventsXLSX(ctx, profileID, fromPtr, toPtr)
		if err != nil {
			s.logger.Error("export.xlsx.failed", "profile_id", pid, "err", err)
			return nil, status.Errorf(codes.Internal, "export: %v", err)
		}
		return &eventspb.ExportEventsResponse{
			Data:     data,
			Filename: fmt.Sprintf("events-%s.xlsx", stamp),
		}, nil
	default:
		return nil, status.Error(codes.InvalidArgument, "unknown export format")
	}
}

// ExportEventICS renders one event as an iCalendar document, for
// add-to-calendar links.
func (s *ExportServer) ExportEventICS(ctx context.Context, req *eventspb.ExportEventICSRequest) (*eventspb.ExportEventsResponse, error) {
	eventID, err := uuid.Parse(strings.TrimSpace(req.GetEventId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "event_id must be a UUID")
	}

	data, err := s.svc.ExportEventICS(ctx, eventID)
	if err != nil {
		s.logger.Error("export.ics.failed", "event_id", eventID, "err", err)
		return nil, status.Errorf(codes.NotFound, "export: %v", err)
	}
	return &eventspb.ExportEventsResponse{
		Data:     data,
		Filename: fmt.Sprintf("event-%s.ics", eventID),
	}, nil
}
