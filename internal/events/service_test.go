package events

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eventsnap/eventsnap/internal/entity"
	"github.com/eventsnap/eventsnap/internal/repository"
)

type fakeEventRepo struct {
	lastLimit int
	lastFrom  *time.Time
	lastTo    *time.Time
	created   *entity.Event
	deleted   uuid.UUID
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	return &entity.Event{ID: id}, nil
}

func (f *fakeEventRepo) ListEvents(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Event, error) {
	f.lastFrom, f.lastTo = fromDate, toDate
	return nil, nil
}

func (f *fakeEventRepo) ListRecent(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.Event, error) {
	f.lastLimit = limit
	return nil, nil
}

func (f *fakeEventRepo) UpsertFromFields(ctx context.Context, request *repository.CreateEventRequest) (*entity.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, e *entity.Event, categoryID *uuid.UUID) (*entity.Event, error) {
	f.created = e
	e.ID = uuid.New()
	return e, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *entity.Event, categoryID *uuid.UUID) (*entity.Event, error) {
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = id
	return nil
}

func TestListEventsRejectsBadDates(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakeCategoryRepo{}, discardLogger())

	_, err := svc.ListEvents(context.Background(), ListEventsRequest{
		ProfileID: uuid.NewString(),
		FromDate:  "04/12/2025",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}

func TestListEventsPassesWindow(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo, &fakeCategoryRepo{}, discardLogger())

	_, err := svc.ListEvents(context.Background(), ListEventsRequest{
		ProfileID: uuid.NewString(),
		FromDate:  "2025-04-01",
		ToDate:    "2025-04-30",
	})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if repo.lastFrom == nil || repo.lastFrom.Format("2006-01-02") != "2025-04-01" {
		t.Errorf("from = %v, want 2025-04-01", repo.lastFrom)
	}
	if repo.lastTo == nil || repo.lastTo.Format("2006-01-02") != "2025-04-30" {
		t.Errorf("to = %v, want 2025-04-30", repo.lastTo)
	}
}

func TestListRecentDefaultsLimit(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo, &fakeCategoryRepo{}, discardLogger())

	if _, err := svc.ListRecent(context.Background(), uuid.NewString(), 0); err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if repo.lastLimit != RecentLimit {
		t.Errorf("limit = %d, want %d", repo.lastLimit, RecentLimit)
	}
}

func TestGetEventRejectsBadID(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakeCategoryRepo{}, discardLogger())

	if _, err := svc.GetEvent(context.Background(), "not-a-uuid"); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCategoryRepo struct{}

func (f *fakeCategoryRepo) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	return &entity.Category{ID: uuid.New(), Name: name}, nil
}

func (f *fakeCategoryRepo) EnsureByName(ctx context.Context, name string) (*entity.Category, error) {
	return &entity.Category{ID: uuid.New(), Name: name}, nil
}

func TestCreateEventRequiresTitleAndDate(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakeCategoryRepo{}, discardLogger())

	_, err := svc.CreateEvent(context.Background(), EditEventRequest{
		ProfileID: uuid.NewString(),
		EventDate: "2025-04-12",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing title: err = %v, want InvalidArgument", err)
	}

	_, err = svc.CreateEvent(context.Background(), EditEventRequest{
		ProfileID: uuid.NewString(),
		Title:     "Spring Open",
		EventDate: "April 12",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("bad date: err = %v, want InvalidArgument", err)
	}
}

func TestCreateEventRejectsBadClock(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakeCategoryRepo{}, discardLogger())

	_, err := svc.CreateEvent(context.Background(), EditEventRequest{
		ProfileID: uuid.NewString(),
		Title:     "Spring Open",
		EventDate: "2025-04-12",
		StartTime: "9am",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}

func TestCreateEventStoresTrimmedFields(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewService(repo, &fakeCategoryRepo{}, discardLogger())

	ev, err := svc.CreateEvent(context.Background(), EditEventRequest{
		ProfileID: uuid.NewString(),
		Title:     "  Spring Open  ",
		EventDate: "2025-04-12",
		StartTime: "09:00",
		Venue:     " Riverside Community Center ",
		Category:  "sport",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if ev.Title != "Spring Open" {
		t.Errorf("title = %q, want trimmed", ev.Title)
	}
	if repo.created.Venue == nil || *repo.created.Venue != "Riverside Community Center" {
		t.Errorf("venue = %v, want trimmed", repo.created.Venue)
	}
}

func TestDeleteEventRejectsBadID(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakeCategoryRepo{}, discardLogger())

	if err := svc.DeleteEvent(context.Background(), "nope"); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("err = %v, want InvalidArgument", err)
	}
}
