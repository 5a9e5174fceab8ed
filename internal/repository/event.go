package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/eventsnap/eventsnap/gen/ent"
	"github.com/eventsnap/eventsnap/gen/ent/event"
	"github.com/eventsnap/eventsnap/internal/entity"
	"github.com/eventsnap/eventsnap/internal/parser"
	"github.com/eventsnap/eventsnap/internal/utils"
)

// CreateEventRequest wraps parameters for creating an event from parsed fields.
type CreateEventRequest struct {
	File       *ent.FlyerFile
	JobID      uuid.UUID
	Fields     parser.Fields
	CategoryID *uuid.UUID
}

type EventRepository interface {
	Create(ctx context.Context, e *entity.Event, categoryID *uuid.UUID) (*entity.Event, error)
	Update(ctx context.Context, e *entity.Event, categoryID *uuid.UUID) (*entity.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	ListEvents(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Event, error)
	ListRecent(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.Event, error)
	UpsertFromFields(ctx context.Context, request *CreateEventRequest) (*entity.Event, error)
}

type eventRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEventRepository(client *ent.Client, logger *slog.Logger) EventRepository {
	return &eventRepository{
		client: client,
		logger: logger,
	}
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	row, err := r.client.Event.Query().
		Where(event.ID(id)).
		WithCategory().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToEvent(row), nil
}

func (r *eventRepository) ListEvents(ctx context.Context, profileID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Event, error) {
	q := r.client.Event.Query().Where(event.ProfileID(profileID))
	if fromDate != nil {
		q = q.Where(event.EventDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(event.EventDateLTE(*toDate))
	}
	rows, err := q.WithCategory().Order(event.ByEventDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list events", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.Event, len(rows))
	for i, row := range rows {
		result[i] = utils.ToEvent(row)
	}
	return result, nil
}

func (r *eventRepository) ListRecent(ctx context.Context, profileID uuid.UUID, limit int) ([]*entity.Event, error) {
	if limit <= 0 {
		limit = 3
	}
	rows, err := r.client.Event.Query().
		Where(event.ProfileID(profileID)).
		WithCategory().
		Order(event.ByCreatedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recent events", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.Event, len(rows))
	for i, row := range rows {
		result[i] = utils.ToEvent(row)
	}
	return result, nil
}

func (r *eventRepository) UpsertFromFields(ctx context.Context, request *CreateEventRequest) (*entity.Event, error) {
	f := request.Fields
	file := request.File

	eventDate, err := utils.ParseYMD(f.Date)
	if err != nil {
		return nil, err
	}

	builder := r.client.Event.Create().
		SetProfileID(file.ProfileID).
		SetTitle(f.Title).
		SetEventDate(eventDate).
		SetCategories(f.Categories)

	if request.CategoryID != nil {
		builder = builder.SetCategoryID(*request.CategoryID)
	}
	if f.StartTime != "" {
		builder = builder.SetStartTime(f.StartTime)
	}
	if f.EndTime != "" {
		builder = builder.SetEndTime(f.EndTime)
	}
	if f.Venue != "" {
		builder = builder.SetVenue(f.Venue)
	}
	if f.Address != "" {
		builder = builder.SetAddress(f.Address)
	}
	if f.Fee != "" {
		builder = builder.SetFee(f.Fee)
	}
	if f.RegistrationDeadline != "" {
		if d, err := utils.ParseYMD(f.RegistrationDeadline); err == nil {
			builder = builder.SetRegistrationDeadline(d)
		}
	}
	if f.RegistrationLink != "" {
		builder = builder.SetRegistrationLink(f.RegistrationLink)
	}
	if f.ContactName1 != "" {
		builder = builder.SetContactName1(f.ContactName1)
	}
	if f.ContactPhone1 != "" {
		builder = builder.SetContactPhone1(f.ContactPhone1)
	}
	if f.Organization != "" {
		builder = builder.SetOrganization(f.Organization)
	}
	if f.Notes != "" {
		builder = builder.SetNotes(f.Notes)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, err
	}

	// Link the source file to the event it produced.
	if err := r.client.FlyerFile.UpdateOneID(file.ID).SetEventID(row.ID).Exec(ctx); err != nil {
		r.logger.Error("failed to link flyer file to event", "file_id", file.ID, "event_id", row.ID, "error", err)
		return nil, err
	}

	return utils.ToEvent(row), nil
}

// Create persists a manually entered event.
func (r *eventRepository) Create(ctx context.Context, e *entity.Event, categoryID *uuid.UUID) (*entity.Event, error) {
	builder := r.client.Event.Create().
		SetProfileID(e.ProfileID).
		SetTitle(e.Title).
		SetEventDate(e.EventDate)

	if categoryID != nil {
		builder = builder.SetCategoryID(*categoryID)
	}
	if e.Categories != nil {
		builder = builder.SetCategories(e.Categories)
	}
	if v := e.StartTime; v != nil && *v != "" {
		builder = builder.SetStartTime(*v)
	}
	if v := e.EndTime; v != nil && *v != "" {
		builder = builder.SetEndTime(*v)
	}
	if v := e.Venue; v != nil && *v != "" {
		builder = builder.SetVenue(*v)
	}
	if v := e.Address; v != nil && *v != "" {
		builder = builder.SetAddress(*v)
	}
	if v := e.Fee; v != nil && *v != "" {
		builder = builder.SetFee(*v)
	}
	if v := e.RegistrationDeadline; v != nil {
		builder = builder.SetRegistrationDeadline(*v)
	}
	if v := e.RegistrationLink; v != nil && *v != "" {
		builder = builder.SetRegistrationLink(*v)
	}
	if v := e.ContactName1; v != nil && *v != "" {
		builder = builder.SetContactName1(*v)
	}
	if v := e.ContactPhone1; v != nil && *v != "" {
		builder = builder.SetContactPhone1(*v)
	}
	if v := e.ContactName2; v != nil && *v != "" {
		builder = builder.SetContactName2(*v)
	}
	if v := e.ContactTitle2; v != nil && *v != "" {
		builder = builder.SetContactTitle2(*v)
	}
	if v := e.Organization; v != nil && *v != "" {
		builder = builder.SetOrganization(*v)
	}
	if v := e.Notes; v != nil && *v != "" {
		builder = builder.SetNotes(*v)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create event", "profile_id", e.ProfileID, "error", err)
		return nil, err
	}
	return r.GetByID(ctx, row.ID)
}

// Update applies the non-nil fields of e to an existing event. Nil pointers
// leave the stored value unchanged.
func (r *eventRepository) Update(ctx context.Context, e *entity.Event, categoryID *uuid.UUID) (*entity.Event, error) {
	builder := r.client.Event.UpdateOneID(e.ID)

	if e.Title != "" {
		builder = builder.SetTitle(e.Title)
	}
	if !e.EventDate.IsZero() {
		builder = builder.SetEventDate(e.EventDate)
	}
	if categoryID != nil {
		builder = builder.SetCategoryID(*categoryID)
	}
	if e.Categories != nil {
		builder = builder.SetCategories(e.Categories)
	}
	if v := e.StartTime; v != nil {
		builder = builder.SetStartTime(*v)
	}
	if v := e.EndTime; v != nil {
		builder = builder.SetEndTime(*v)
	}
	if v := e.Venue; v != nil {
		builder = builder.SetVenue(*v)
	}
	if v := e.Address; v != nil {
		builder = builder.SetAddress(*v)
	}
	if v := e.Fee; v != nil {
		builder = builder.SetFee(*v)
	}
	if v := e.RegistrationDeadline; v != nil {
		builder = builder.SetRegistrationDeadline(*v)
	}
	if v := e.RegistrationLink; v != nil {
		builder = builder.SetRegistrationLink(*v)
	}
	if v := e.ContactName1; v != nil {
		builder = builder.SetContactName1(*v)
	}
	if v := e.ContactPhone1; v != nil {
		builder = builder.SetContactPhone1(*v)
	}
	if v := e.ContactName2; v != nil {
		builder = builder.SetContactName2(*v)
	}
	if v := e.ContactTitle2; v != nil {
		builder = builder.SetContactTitle2(*v)
	}
	if v := e.Organization; v != nil {
		builder = builder.SetOrganization(*v)
	}
	if v := e.Notes; v != nil {
		builder = builder.SetNotes(*v)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update event", "event_id", e.ID, "error", err)
		return nil, err
	}
	return r.GetByID(ctx, row.ID)
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Event.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete event", "event_id", id, "error", err)
		return err
	}
	return nil
}
