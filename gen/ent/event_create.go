// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eventsnap/eventsnap/gen/ent/category"
	"github.com/eventsnap/eventsnap/gen/ent/event"
	"github.com/eventsnap/eventsnap/gen/ent/extractjob"
	"github.com/eventsnap/eventsnap/gen/ent/flyerfile"
	"github.com/eventsnap/eventsnap/gen/ent/profile"
	"github.com/google/uuid"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *EventCreate) SetProfileID(v uuid.UUID) *EventCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *EventCreate) SetCategoryID(v uuid.UUID) *EventCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableCategoryID(v *uuid.UUID) *EventCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *EventCreate) SetTitle(v string) *EventCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetEventDate sets the "event_date" field.
func (_c *EventCreate) SetEventDate(v time.Time) *EventCreate {
	_c.mutation.SetEventDate(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *EventCreate) SetStartTime(v string) *EventCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *EventCreate) SetNillableStartTime(v *string) *EventCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *EventCreate) SetEndTime(v string) *EventCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *EventCreate) SetNillableEndTime(v *string) *EventCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetVenue sets the "venue" field.
func (_c *EventCreate) SetVenue(v string) *EventCreate {
	_c.mutation.SetVenue(v)
	return _c
}

// SetNillableVenue sets the "venue" field if the given value is not nil.
func (_c *EventCreate) SetNillableVenue(v *string) *EventCreate {
	if v != nil {
		_c.SetVenue(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *EventCreate) SetAddress(v string) *EventCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *EventCreate) SetNillableAddress(v *string) *EventCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetFee sets the "fee" field.
func (_c *EventCreate) SetFee(v string) *EventCreate {
	_c.mutation.SetFee(v)
	return _c
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_c *EventCreate) SetNillableFee(v *string) *EventCreate {
	if v != nil {
		_c.SetFee(*v)
	}
	return _c
}

// SetRegistrationDeadline sets the "registration_deadline" field.
func (_c *EventCreate) SetRegistrationDeadline(v time.Time) *EventCreate {
	_c.mutation.SetRegistrationDeadline(v)
	return _c
}

// SetNillableRegistrationDeadline sets the "registration_deadline" field if the given value is not nil.
func (_c *EventCreate) SetNillableRegistrationDeadline(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetRegistrationDeadline(*v)
	}
	return _c
}

// SetRegistrationLink sets the "registration_link" field.
func (_c *EventCreate) SetRegistrationLink(v string) *EventCreate {
	_c.mutation.SetRegistrationLink(v)
	return _c
}

// SetNillableRegistrationLink sets the "registration_link" field if the given value is not nil.
func (_c *EventCreate) SetNillableRegistrationLink(v *string) *EventCreate {
	if v != nil {
		_c.SetRegistrationLink(*v)
	}
	return _c
}

// SetContactName1 sets the "contact_name1" field.
func (_c *EventCreate) SetContactName1(v string) *EventCreate {
	_c.mutation.SetContactName1(v)
	return _c
}

// SetNillableContactName1 sets the "contact_name1" field if the given value is not nil.
func (_c *EventCreate) SetNillableContactName1(v *string) *EventCreate {
	if v != nil {
		_c.SetContactName1(*v)
	}
	return _c
}

// SetContactPhone1 sets the "contact_phone1" field.
func (_c *EventCreate) SetContactPhone1(v string) *EventCreate {
	_c.mutation.SetContactPhone1(v)
	return _c
}

// SetNillableContactPhone1 sets the "contact_phone1" field if the given value is not nil.
func (_c *EventCreate) SetNillableContactPhone1(v *string) *EventCreate {
	if v != nil {
		_c.SetContactPhone1(*v)
	}
	return _c
}

// SetContactName2 sets the "contact_name2" field.
func (_c *EventCreate) SetContactName2(v string) *EventCreate {
	_c.mutation.SetContactName2(v)
	return _c
}

// SetNillableContactName2 sets the "contact_name2" field if the given value is not nil.
func (_c *EventCreate) SetNillableContactName2(v *string) *EventCreate {
	if v != nil {
		_c.SetContactName2(*v)
	}
	return _c
}

// SetContactTitle2 sets the "contact_title2" field.
func (_c *EventCreate) SetContactTitle2(v string) *EventCreate {
	_c.mutation.SetContactTitle2(v)
	return _c
}

// SetNillableContactTitle2 sets the "contact_title2" field if the given value is not nil.
func (_c *EventCreate) SetNillableContactTitle2(v *string) *EventCreate {
	if v != nil {
		_c.SetContactTitle2(*v)
	}
	return _c
}

// SetOrganization sets the "organization" field.
func (_c *EventCreate) SetOrganization(v string) *EventCreate {
	_c.mutation.SetOrganization(v)
	return _c
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_c *EventCreate) SetNillableOrganization(v *string) *EventCreate {
	if v != nil {
		_c.SetOrganization(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *EventCreate) SetNotes(v string) *EventCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *EventCreate) SetNillableNotes(v *string) *EventCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCategories sets the "categories" field.
func (_c *EventCreate) SetCategories(v []string) *EventCreate {
	_c.mutation.SetCategories(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableCreatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventCreate) SetUpdatedAt(v time.Time) *EventCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableUpdatedAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v uuid.UUID) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EventCreate) SetNillableID(v *uuid.UUID) *EventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *EventCreate) SetProfile(v *Profile) *EventCreate {
	return _c.SetProfileID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *EventCreate) SetCategory(v *Category) *EventCreate {
	return _c.SetCategoryID(v.ID)
}

// AddFileIDs adds the "files" edge to the FlyerFile entity by IDs.
func (_c *EventCreate) AddFileIDs(ids ...uuid.UUID) *EventCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the FlyerFile entity.
func (_c *EventCreate) AddFiles(v ...*FlyerFile) *EventCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *EventCreate) AddJobIDs(ids ...uuid.UUID) *EventCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *EventCreate) AddJobs(v ...*ExtractJob) *EventCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := event.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := event.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := event.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Event.profile_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Event.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := event.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Event.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventDate(); !ok {
		return &ValidationError{Name: "event_date", err: errors.New(`ent: missing required field "Event.event_date"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := event.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`ent: validator failed for field "Event.start_time": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := event.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`ent: validator failed for field "Event.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Event.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Event.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Event.profile"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.EventDate(); ok {
		_spec.SetField(event.FieldEventDate, field.TypeTime, value)
		_node.EventDate = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(event.FieldStartTime, field.TypeString, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(event.FieldEndTime, field.TypeString, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.Venue(); ok {
		_spec.SetField(event.FieldVenue, field.TypeString, value)
		_node.Venue = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(event.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.Fee(); ok {
		_spec.SetField(event.FieldFee, field.TypeString, value)
		_node.Fee = &value
	}
	if value, ok := _c.mutation.RegistrationDeadline(); ok {
		_spec.SetField(event.FieldRegistrationDeadline, field.TypeTime, value)
		_node.RegistrationDeadline = &value
	}
	if value, ok := _c.mutation.RegistrationLink(); ok {
		_spec.SetField(event.FieldRegistrationLink, field.TypeString, value)
		_node.RegistrationLink = &value
	}
	if value, ok := _c.mutation.ContactName1(); ok {
		_spec.SetField(event.FieldContactName1, field.TypeString, value)
		_node.ContactName1 = &value
	}
	if value, ok := _c.mutation.ContactPhone1(); ok {
		_spec.SetField(event.FieldContactPhone1, field.TypeString, value)
		_node.ContactPhone1 = &value
	}
	if value, ok := _c.mutation.ContactName2(); ok {
		_spec.SetField(event.FieldContactName2, field.TypeString, value)
		_node.ContactName2 = &value
	}
	if value, ok := _c.mutation.ContactTitle2(); ok {
		_spec.SetField(event.FieldContactTitle2, field.TypeString, value)
		_node.ContactTitle2 = &value
	}
	if value, ok := _c.mutation.Organization(); ok {
		_spec.SetField(event.FieldOrganization, field.TypeString, value)
		_node.Organization = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(event.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.Categories(); ok {
		_spec.SetField(event.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.ProfileTable,
			Columns: []string{event.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   event.CategoryTable,
			Columns: []string{event.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CategoryID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.FilesTable,
			Columns: []string{event.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flyerfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   event.JobsTable,
			Columns: []string{event.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
