// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/eventsnap/eventsnap/gen/ent/category"
	"github.com/eventsnap/eventsnap/gen/ent/event"
	"github.com/eventsnap/eventsnap/gen/ent/extractjob"
	"github.com/eventsnap/eventsnap/gen/ent/flyerfile"
	"github.com/eventsnap/eventsnap/gen/ent/predicate"
	"github.com/eventsnap/eventsnap/gen/ent/profile"
	"github.com/google/uuid"
)

// EventUpdate is the builder for updating Event entities.
type EventUpdate struct {
	config
	hooks    []Hook
	mutation *EventMutation
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdate) Where(ps ...predicate.Event) *EventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *EventUpdate) SetProfileID(v uuid.UUID) *EventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableProfileID(v *uuid.UUID) *EventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *EventUpdate) SetCategoryID(v uuid.UUID) *EventUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *EventUpdate) SetNillableCategoryID(v *uuid.UUID) *EventUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *EventUpdate) ClearCategoryID() *EventUpdate {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventUpdate) SetTitle(v string) *EventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdate) SetNillableTitle(v *string) *EventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *EventUpdate) SetEventDate(v time.Time) *EventUpdate {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEventDate(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EventUpdate) SetStartTime(v string) *EventUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableStartTime(v *string) *EventUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *EventUpdate) ClearStartTime() *EventUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EventUpdate) SetEndTime(v string) *EventUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EventUpdate) SetNillableEndTime(v *string) *EventUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *EventUpdate) ClearEndTime() *EventUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetVenue sets the "venue" field.
func (_u *EventUpdate) SetVenue(v string) *EventUpdate {
	_u.mutation.SetVenue(v)
	return _u
}

// SetNillableVenue sets the "venue" field if the given value is not nil.
func (_u *EventUpdate) SetNillableVenue(v *string) *EventUpdate {
	if v != nil {
		_u.SetVenue(*v)
	}
	return _u
}

// ClearVenue clears the value of the "venue" field.
func (_u *EventUpdate) ClearVenue() *EventUpdate {
	_u.mutation.ClearVenue()
	return _u
}

// SetAddress sets the "address" field.
func (_u *EventUpdate) SetAddress(v string) *EventUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *EventUpdate) SetNillableAddress(v *string) *EventUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *EventUpdate) ClearAddress() *EventUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetFee sets the "fee" field.
func (_u *EventUpdate) SetFee(v string) *EventUpdate {
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *EventUpdate) SetNillableFee(v *string) *EventUpdate {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// ClearFee clears the value of the "fee" field.
func (_u *EventUpdate) ClearFee() *EventUpdate {
	_u.mutation.ClearFee()
	return _u
}

// SetRegistrationDeadline sets the "registration_deadline" field.
func (_u *EventUpdate) SetRegistrationDeadline(v time.Time) *EventUpdate {
	_u.mutation.SetRegistrationDeadline(v)
	return _u
}

// SetNillableRegistrationDeadline sets the "registration_deadline" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRegistrationDeadline(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetRegistrationDeadline(*v)
	}
	return _u
}

// ClearRegistrationDeadline clears the value of the "registration_deadline" field.
func (_u *EventUpdate) ClearRegistrationDeadline() *EventUpdate {
	_u.mutation.ClearRegistrationDeadline()
	return _u
}

// SetRegistrationLink sets the "registration_link" field.
func (_u *EventUpdate) SetRegistrationLink(v string) *EventUpdate {
	_u.mutation.SetRegistrationLink(v)
	return _u
}

// SetNillableRegistrationLink sets the "registration_link" field if the given value is not nil.
func (_u *EventUpdate) SetNillableRegistrationLink(v *string) *EventUpdate {
	if v != nil {
		_u.SetRegistrationLink(*v)
	}
	return _u
}

// ClearRegistrationLink clears the value of the "registration_link" field.
func (_u *EventUpdate) ClearRegistrationLink() *EventUpdate {
	_u.mutation.ClearRegistrationLink()
	return _u
}

// SetContactName1 sets the "contact_name1" field.
func (_u *EventUpdate) SetContactName1(v string) *EventUpdate {
	_u.mutation.SetContactName1(v)
	return _u
}

// SetNillableContactName1 sets the "contact_name1" field if the given value is not nil.
func (_u *EventUpdate) SetNillableContactName1(v *string) *EventUpdate {
	if v != nil {
		_u.SetContactName1(*v)
	}
	return _u
}

// ClearContactName1 clears the value of the "contact_name1" field.
func (_u *EventUpdate) ClearContactName1() *EventUpdate {
	_u.mutation.ClearContactName1()
	return _u
}

// SetContactPhone1 sets the "contact_phone1" field.
func (_u *EventUpdate) SetContactPhone1(v string) *EventUpdate {
	_u.mutation.SetContactPhone1(v)
	return _u
}

// SetNillableContactPhone1 sets the "contact_phone1" field if the given value is not nil.
func (_u *EventUpdate) SetNillableContactPhone1(v *string) *EventUpdate {
	if v != nil {
		_u.SetContactPhone1(*v)
	}
	return _u
}

// ClearContactPhone1 clears the value of the "contact_phone1" field.
func (_u *EventUpdate) ClearContactPhone1() *EventUpdate {
	_u.mutation.ClearContactPhone1()
	return _u
}

// SetContactName2 sets the "contact_name2" field.
func (_u *EventUpdate) SetContactName2(v string) *EventUpdate {
	_u.mutation.SetContactName2(v)
	return _u
}

// SetNillableContactName2 sets the "contact_name2" field if the given value is not nil.
func (_u *EventUpdate) SetNillableContactName2(v *string) *EventUpdate {
	if v != nil {
		_u.SetContactName2(*v)
	}
	return _u
}

// ClearContactName2 clears the value of the "contact_name2" field.
func (_u *EventUpdate) ClearContactName2() *EventUpdate {
	_u.mutation.ClearContactName2()
	return _u
}

// SetContactTitle2 sets the "contact_title2" field.
func (_u *EventUpdate) SetContactTitle2(v string) *EventUpdate {
	_u.mutation.SetContactTitle2(v)
	return _u
}

// SetNillableContactTitle2 sets the "contact_title2" field if the given value is not nil.
func (_u *EventUpdate) SetNillableContactTitle2(v *string) *EventUpdate {
	if v != nil {
		_u.SetContactTitle2(*v)
	}
	return _u
}

// ClearContactTitle2 clears the value of the "contact_title2" field.
func (_u *EventUpdate) ClearContactTitle2() *EventUpdate {
	_u.mutation.ClearContactTitle2()
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *EventUpdate) SetOrganization(v string) *EventUpdate {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *EventUpdate) SetNillableOrganization(v *string) *EventUpdate {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// ClearOrganization clears the value of the "organization" field.
func (_u *EventUpdate) ClearOrganization() *EventUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EventUpdate) SetNotes(v string) *EventUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EventUpdate) SetNillableNotes(v *string) *EventUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EventUpdate) ClearNotes() *EventUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *EventUpdate) SetCategories(v []string) *EventUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *EventUpdate) AppendCategories(v []string) *EventUpdate {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *EventUpdate) ClearCategories() *EventUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EventUpdate) SetCreatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EventUpdate) SetNillableCreatedAt(v *time.Time) *EventUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdate) SetUpdatedAt(v time.Time) *EventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *EventUpdate) SetProfile(v *Profile) *EventUpdate {
	return _u.SetProfileID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *EventUpdate) SetCategory(v *Category) *EventUpdate {
	return _u.SetCategoryID(v.ID)
}

// AddFileIDs adds the "files" edge to the FlyerFile entity by IDs.
func (_u *EventUpdate) AddFileIDs(ids ...uuid.UUID) *EventUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the FlyerFile entity.
func (_u *EventUpdate) AddFiles(v ...*FlyerFile) *EventUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *EventUpdate) AddJobIDs(ids ...uuid.UUID) *EventUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *EventUpdate) AddJobs(v ...*ExtractJob) *EventUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdate) Mutation() *EventMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *EventUpdate) ClearProfile() *EventUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *EventUpdate) ClearCategory() *EventUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// ClearFiles clears all "files" edges to the FlyerFile entity.
func (_u *EventUpdate) ClearFiles() *EventUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to FlyerFile entities by IDs.
func (_u *EventUpdate) RemoveFileIDs(ids ...uuid.UUID) *EventUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to FlyerFile entities.
func (_u *EventUpdate) RemoveFiles(v ...*FlyerFile) *EventUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *EventUpdate) ClearJobs() *EventUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *EventUpdate) RemoveJobIDs(ids ...uuid.UUID) *EventUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *EventUpdate) RemoveJobs(v ...*ExtractJob) *EventUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := event.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Event.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := event.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`ent: validator failed for field "Event.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := event.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`ent: validator failed for field "Event.end_time": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.profile"`)
	}
	return nil
}

func (_u *EventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(event.FieldEventDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(event.FieldStartTime, field.TypeString, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(event.FieldStartTime, field.TypeString)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(event.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(event.FieldEndTime, field.TypeString)
	}
	if value, ok := _u.mutation.Venue(); ok {
		_spec.SetField(event.FieldVenue, field.TypeString, value)
	}
	if _u.mutation.VenueCleared() {
		_spec.ClearField(event.FieldVenue, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(event.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(event.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(event.FieldFee, field.TypeString, value)
	}
	if _u.mutation.FeeCleared() {
		_spec.ClearField(event.FieldFee, field.TypeString)
	}
	if value, ok := _u.mutation.RegistrationDeadline(); ok {
		_spec.SetField(event.FieldRegistrationDeadline, field.TypeTime, value)
	}
	if _u.mutation.RegistrationDeadlineCleared() {
		_spec.ClearField(event.FieldRegistrationDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.RegistrationLink(); ok {
		_spec.SetField(event.FieldRegistrationLink, field.TypeString, value)
	}
	if _u.mutation.RegistrationLinkCleared() {
		_spec.ClearField(event.FieldRegistrationLink, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName1(); ok {
		_spec.SetField(event.FieldContactName1, field.TypeString, value)
	}
	if _u.mutation.ContactName1Cleared() {
		_spec.ClearField(event.FieldContactName1, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone1(); ok {
		_spec.SetField(event.FieldContactPhone1, field.TypeString, value)
	}
	if _u.mutation.ContactPhone1Cleared() {
		_spec.ClearField(event.FieldContactPhone1, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName2(); ok {
		_spec.SetField(event.FieldContactName2, field.TypeString, value)
	}
	if _u.mutation.ContactName2Cleared() {
		_spec.ClearField(event.FieldContactName2, field.TypeString)
	}
	if value, ok := _u.mutation.ContactTitle2(); ok {
		_spec.SetField(event.FieldContactTitle2, field.TypeString, value)
	}
	if _u.mutation.ContactTitle2Cleared() {
		_spec.ClearField(event.FieldContactTitle2, field.TypeString)
	}
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(event.FieldOrganization, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
		_spec.ClearField(event.FieldOrganization, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(event.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(event.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(event.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(event.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventUpdateOne is the builder for updating a single Event entity.
type EventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *EventUpdateOne) SetProfileID(v uuid.UUID) *EventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableProfileID(v *uuid.UUID) *EventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *EventUpdateOne) SetCategoryID(v uuid.UUID) *EventUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableCategoryID(v *uuid.UUID) *EventUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *EventUpdateOne) ClearCategoryID() *EventUpdateOne {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetTitle sets the "title" field.
func (_u *EventUpdateOne) SetTitle(v string) *EventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableTitle(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetEventDate sets the "event_date" field.
func (_u *EventUpdateOne) SetEventDate(v time.Time) *EventUpdateOne {
	_u.mutation.SetEventDate(v)
	return _u
}

// SetNillableEventDate sets the "event_date" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEventDate(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetEventDate(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *EventUpdateOne) SetStartTime(v string) *EventUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableStartTime(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *EventUpdateOne) ClearStartTime() *EventUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *EventUpdateOne) SetEndTime(v string) *EventUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableEndTime(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *EventUpdateOne) ClearEndTime() *EventUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetVenue sets the "venue" field.
func (_u *EventUpdateOne) SetVenue(v string) *EventUpdateOne {
	_u.mutation.SetVenue(v)
	return _u
}

// SetNillableVenue sets the "venue" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableVenue(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetVenue(*v)
	}
	return _u
}

// ClearVenue clears the value of the "venue" field.
func (_u *EventUpdateOne) ClearVenue() *EventUpdateOne {
	_u.mutation.ClearVenue()
	return _u
}

// SetAddress sets the "address" field.
func (_u *EventUpdateOne) SetAddress(v string) *EventUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableAddress(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *EventUpdateOne) ClearAddress() *EventUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetFee sets the "fee" field.
func (_u *EventUpdateOne) SetFee(v string) *EventUpdateOne {
	_u.mutation.SetFee(v)
	return _u
}

// SetNillableFee sets the "fee" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableFee(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetFee(*v)
	}
	return _u
}

// ClearFee clears the value of the "fee" field.
func (_u *EventUpdateOne) ClearFee() *EventUpdateOne {
	_u.mutation.ClearFee()
	return _u
}

// SetRegistrationDeadline sets the "registration_deadline" field.
func (_u *EventUpdateOne) SetRegistrationDeadline(v time.Time) *EventUpdateOne {
	_u.mutation.SetRegistrationDeadline(v)
	return _u
}

// SetNillableRegistrationDeadline sets the "registration_deadline" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRegistrationDeadline(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetRegistrationDeadline(*v)
	}
	return _u
}

// ClearRegistrationDeadline clears the value of the "registration_deadline" field.
func (_u *EventUpdateOne) ClearRegistrationDeadline() *EventUpdateOne {
	_u.mutation.ClearRegistrationDeadline()
	return _u
}

// SetRegistrationLink sets the "registration_link" field.
func (_u *EventUpdateOne) SetRegistrationLink(v string) *EventUpdateOne {
	_u.mutation.SetRegistrationLink(v)
	return _u
}

// SetNillableRegistrationLink sets the "registration_link" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableRegistrationLink(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetRegistrationLink(*v)
	}
	return _u
}

// ClearRegistrationLink clears the value of the "registration_link" field.
func (_u *EventUpdateOne) ClearRegistrationLink() *EventUpdateOne {
	_u.mutation.ClearRegistrationLink()
	return _u
}

// SetContactName1 sets the "contact_name1" field.
func (_u *EventUpdateOne) SetContactName1(v string) *EventUpdateOne {
	_u.mutation.SetContactName1(v)
	return _u
}

// SetNillableContactName1 sets the "contact_name1" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableContactName1(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetContactName1(*v)
	}
	return _u
}

// ClearContactName1 clears the value of the "contact_name1" field.
func (_u *EventUpdateOne) ClearContactName1() *EventUpdateOne {
	_u.mutation.ClearContactName1()
	return _u
}

// SetContactPhone1 sets the "contact_phone1" field.
func (_u *EventUpdateOne) SetContactPhone1(v string) *EventUpdateOne {
	_u.mutation.SetContactPhone1(v)
	return _u
}

// SetNillableContactPhone1 sets the "contact_phone1" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableContactPhone1(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetContactPhone1(*v)
	}
	return _u
}

// ClearContactPhone1 clears the value of the "contact_phone1" field.
func (_u *EventUpdateOne) ClearContactPhone1() *EventUpdateOne {
	_u.mutation.ClearContactPhone1()
	return _u
}

// SetContactName2 sets the "contact_name2" field.
func (_u *EventUpdateOne) SetContactName2(v string) *EventUpdateOne {
	_u.mutation.SetContactName2(v)
	return _u
}

// SetNillableContactName2 sets the "contact_name2" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableContactName2(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetContactName2(*v)
	}
	return _u
}

// ClearContactName2 clears the value of the "contact_name2" field.
func (_u *EventUpdateOne) ClearContactName2() *EventUpdateOne {
	_u.mutation.ClearContactName2()
	return _u
}

// SetContactTitle2 sets the "contact_title2" field.
func (_u *EventUpdateOne) SetContactTitle2(v string) *EventUpdateOne {
	_u.mutation.SetContactTitle2(v)
	return _u
}

// SetNillableContactTitle2 sets the "contact_title2" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableContactTitle2(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetContactTitle2(*v)
	}
	return _u
}

// ClearContactTitle2 clears the value of the "contact_title2" field.
func (_u *EventUpdateOne) ClearContactTitle2() *EventUpdateOne {
	_u.mutation.ClearContactTitle2()
	return _u
}

// SetOrganization sets the "organization" field.
func (_u *EventUpdateOne) SetOrganization(v string) *EventUpdateOne {
	_u.mutation.SetOrganization(v)
	return _u
}

// SetNillableOrganization sets the "organization" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableOrganization(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetOrganization(*v)
	}
	return _u
}

// ClearOrganization clears the value of the "organization" field.
func (_u *EventUpdateOne) ClearOrganization() *EventUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *EventUpdateOne) SetNotes(v string) *EventUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableNotes(v *string) *EventUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *EventUpdateOne) ClearNotes() *EventUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCategories sets the "categories" field.
func (_u *EventUpdateOne) SetCategories(v []string) *EventUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *EventUpdateOne) AppendCategories(v []string) *EventUpdateOne {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *EventUpdateOne) ClearCategories() *EventUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EventUpdateOne) SetCreatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EventUpdateOne) SetNillableCreatedAt(v *time.Time) *EventUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventUpdateOne) SetUpdatedAt(v time.Time) *EventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *EventUpdateOne) SetProfile(v *Profile) *EventUpdateOne {
	return _u.SetProfileID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *EventUpdateOne) SetCategory(v *Category) *EventUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// AddFileIDs adds the "files" edge to the FlyerFile entity by IDs.
func (_u *EventUpdateOne) AddFileIDs(ids ...uuid.UUID) *EventUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the FlyerFile entity.
func (_u *EventUpdateOne) AddFiles(v ...*FlyerFile) *EventUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *EventUpdateOne) AddJobIDs(ids ...uuid.UUID) *EventUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *EventUpdateOne) AddJobs(v ...*ExtractJob) *EventUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the EventMutation object of the builder.
func (_u *EventUpdateOne) Mutation() *EventMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *EventUpdateOne) ClearProfile() *EventUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *EventUpdateOne) ClearCategory() *EventUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// ClearFiles clears all "files" edges to the FlyerFile entity.
func (_u *EventUpdateOne) ClearFiles() *EventUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to FlyerFile entities by IDs.
func (_u *EventUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *EventUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to FlyerFile entities.
func (_u *EventUpdateOne) RemoveFiles(v ...*FlyerFile) *EventUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *EventUpdateOne) ClearJobs() *EventUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *EventUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *EventUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *EventUpdateOne) RemoveJobs(v ...*ExtractJob) *EventUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the EventUpdate builder.
func (_u *EventUpdateOne) Where(ps ...predicate.Event) *EventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventUpdateOne) Select(field string, fields ...string) *EventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Event entity.
func (_u *EventUpdateOne) Save(ctx context.Context) (*Event, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventUpdateOne) SaveX(ctx context.Context) *Event {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := event.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := event.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Event.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := event.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`ent: validator failed for field "Event.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := event.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`ent: validator failed for field "Event.end_time": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Event.profile"`)
	}
	return nil
}

func (_u *EventUpdateOne) sqlSave(ctx context.Context) (_node *Event, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(event.Table, event.Columns, sqlgraph.NewFieldSpec(event.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Event.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, event.FieldID)
		for _, f := range fields {
			if !event.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != event.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(event.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.EventDate(); ok {
		_spec.SetField(event.FieldEventDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(event.FieldStartTime, field.TypeString, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(event.FieldStartTime, field.TypeString)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(event.FieldEndTime, field.TypeString, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(event.FieldEndTime, field.TypeString)
	}
	if value, ok := _u.mutation.Venue(); ok {
		_spec.SetField(event.FieldVenue, field.TypeString, value)
	}
	if _u.mutation.VenueCleared() {
		_spec.ClearField(event.FieldVenue, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(event.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(event.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.Fee(); ok {
		_spec.SetField(event.FieldFee, field.TypeString, value)
	}
	if _u.mutation.FeeCleared() {
		_spec.ClearField(event.FieldFee, field.TypeString)
	}
	if value, ok := _u.mutation.RegistrationDeadline(); ok {
		_spec.SetField(event.FieldRegistrationDeadline, field.TypeTime, value)
	}
	if _u.mutation.RegistrationDeadlineCleared() {
		_spec.ClearField(event.FieldRegistrationDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.RegistrationLink(); ok {
		_spec.SetField(event.FieldRegistrationLink, field.TypeString, value)
	}
	if _u.mutation.RegistrationLinkCleared() {
		_spec.ClearField(event.FieldRegistrationLink, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName1(); ok {
		_spec.SetField(event.FieldContactName1, field.TypeString, value)
	}
	if _u.mutation.ContactName1Cleared() {
		_spec.ClearField(event.FieldContactName1, field.TypeString)
	}
	if value, ok := _u.mutation.ContactPhone1(); ok {
		_spec.SetField(event.FieldContactPhone1, field.TypeString, value)
	}
	if _u.mutation.ContactPhone1Cleared() {
		_spec.ClearField(event.FieldContactPhone1, field.TypeString)
	}
	if value, ok := _u.mutation.ContactName2(); ok {
		_spec.SetField(event.FieldContactName2, field.TypeString, value)
	}
	if _u.mutation.ContactName2Cleared() {
		_spec.ClearField(event.FieldContactName2, field.TypeString)
	}
	if value, ok := _u.mutation.ContactTitle2(); ok {
		_spec.SetField(event.FieldContactTitle2, field.TypeString, value)
	}
	if _u.mutation.ContactTitle2Cleared() {
		_spec.ClearField(event.FieldContactTitle2, field.TypeString)
	}
	if value, ok := _u.mutation.Organization(); ok {
		_spec.SetField(event.FieldOrganization, field.TypeString, value)
	}
	if _u.mutation.OrganizationCleared() {
		_spec.ClearField(event.FieldOrganization, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(event.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(event.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(event.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, event.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(event.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(event.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Event{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{event.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
