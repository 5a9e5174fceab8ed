// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/eventsnap/eventsnap/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProfileID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCategoryID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTitle, v))
}

// EventDate applies equality check predicate on the "event_date" field. It's identical to EventDateEQ.
func EventDate(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventDate, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEndTime, v))
}

// Venue applies equality check predicate on the "venue" field. It's identical to VenueEQ.
func Venue(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldVenue, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldAddress, v))
}

// Fee applies equality check predicate on the "fee" field. It's identical to FeeEQ.
func Fee(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFee, v))
}

// RegistrationDeadline applies equality check predicate on the "registration_deadline" field. It's identical to RegistrationDeadlineEQ.
func RegistrationDeadline(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRegistrationDeadline, v))
}

// RegistrationLink applies equality check predicate on the "registration_link" field. It's identical to RegistrationLinkEQ.
func RegistrationLink(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRegistrationLink, v))
}

// ContactName1 applies equality check predicate on the "contact_name1" field. It's identical to ContactName1EQ.
func ContactName1(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContactName1, v))
}

// ContactPhone1 applies equality check predicate on the "contact_phone1" field. It's identical to ContactPhone1EQ.
func ContactPhone1(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContactPhone1, v))
}

// ContactName2 applies equality check predicate on the "contact_name2" field. It's identical to ContactName2EQ.
func ContactName2(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContactName2, v))
}

// ContactTitle2 applies equality check predicate on the "contact_title2" field. It's identical to ContactTitle2EQ.
func ContactTitle2(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContactTitle2, v))
}

// Organization applies equality check predicate on the "organization" field. It's identical to OrganizationEQ.
func Organization(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldOrganization, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldNotes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldProfileID, vs...))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...uuid.UUID) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDIsNil applies the IsNil predicate on the "category_id" field.
func CategoryIDIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldCategoryID))
}

// CategoryIDNotNil applies the NotNil predicate on the "category_id" field.
func CategoryIDNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldCategoryID))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldTitle, v))
}

// EventDateEQ applies the EQ predicate on the "event_date" field.
func EventDateEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEventDate, v))
}

// EventDateNEQ applies the NEQ predicate on the "event_date" field.
func EventDateNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEventDate, v))
}

// EventDateIn applies the In predicate on the "event_date" field.
func EventDateIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEventDate, vs...))
}

// EventDateNotIn applies the NotIn predicate on the "event_date" field.
func EventDateNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEventDate, vs...))
}

// EventDateGT applies the GT predicate on the "event_date" field.
func EventDateGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEventDate, v))
}

// EventDateGTE applies the GTE predicate on the "event_date" field.
func EventDateGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEventDate, v))
}

// EventDateLT applies the LT predicate on the "event_date" field.
func EventDateLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEventDate, v))
}

// EventDateLTE applies the LTE predicate on the "event_date" field.
func EventDateLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEventDate, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeIsNil applies the IsNil predicate on the "start_time" field.
func StartTimeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldStartTime))
}

// StartTimeNotNil applies the NotNil predicate on the "start_time" field.
func StartTimeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldStartTime))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldEndTime))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldEndTime, v))
}

// VenueEQ applies the EQ predicate on the "venue" field.
func VenueEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldVenue, v))
}

// VenueNEQ applies the NEQ predicate on the "venue" field.
func VenueNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldVenue, v))
}

// VenueIn applies the In predicate on the "venue" field.
func VenueIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldVenue, vs...))
}

// VenueNotIn applies the NotIn predicate on the "venue" field.
func VenueNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldVenue, vs...))
}

// VenueGT applies the GT predicate on the "venue" field.
func VenueGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldVenue, v))
}

// VenueGTE applies the GTE predicate on the "venue" field.
func VenueGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldVenue, v))
}

// VenueLT applies the LT predicate on the "venue" field.
func VenueLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldVenue, v))
}

// VenueLTE applies the LTE predicate on the "venue" field.
func VenueLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldVenue, v))
}

// VenueContains applies the Contains predicate on the "venue" field.
func VenueContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldVenue, v))
}

// VenueHasPrefix applies the HasPrefix predicate on the "venue" field.
func VenueHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldVenue, v))
}

// VenueHasSuffix applies the HasSuffix predicate on the "venue" field.
func VenueHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldVenue, v))
}

// VenueIsNil applies the IsNil predicate on the "venue" field.
func VenueIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldVenue))
}

// VenueNotNil applies the NotNil predicate on the "venue" field.
func VenueNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldVenue))
}

// VenueEqualFold applies the EqualFold predicate on the "venue" field.
func VenueEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldVenue, v))
}

// VenueContainsFold applies the ContainsFold predicate on the "venue" field.
func VenueContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldVenue, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldAddress, v))
}

// FeeEQ applies the EQ predicate on the "fee" field.
func FeeEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldFee, v))
}

// FeeNEQ applies the NEQ predicate on the "fee" field.
func FeeNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldFee, v))
}

// FeeIn applies the In predicate on the "fee" field.
func FeeIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldFee, vs...))
}

// FeeNotIn applies the NotIn predicate on the "fee" field.
func FeeNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldFee, vs...))
}

// FeeGT applies the GT predicate on the "fee" field.
func FeeGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldFee, v))
}

// FeeGTE applies the GTE predicate on the "fee" field.
func FeeGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldFee, v))
}

// FeeLT applies the LT predicate on the "fee" field.
func FeeLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldFee, v))
}

// FeeLTE applies the LTE predicate on the "fee" field.
func FeeLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldFee, v))
}

// FeeContains applies the Contains predicate on the "fee" field.
func FeeContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldFee, v))
}

// FeeHasPrefix applies the HasPrefix predicate on the "fee" field.
func FeeHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldFee, v))
}

// FeeHasSuffix applies the HasSuffix predicate on the "fee" field.
func FeeHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldFee, v))
}

// FeeIsNil applies the IsNil predicate on the "fee" field.
func FeeIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldFee))
}

// FeeNotNil applies the NotNil predicate on the "fee" field.
func FeeNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldFee))
}

// FeeEqualFold applies the EqualFold predicate on the "fee" field.
func FeeEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldFee, v))
}

// FeeContainsFold applies the ContainsFold predicate on the "fee" field.
func FeeContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldFee, v))
}

// RegistrationDeadlineEQ applies the EQ predicate on the "registration_deadline" field.
func RegistrationDeadlineEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRegistrationDeadline, v))
}

// RegistrationDeadlineNEQ applies the NEQ predicate on the "registration_deadline" field.
func RegistrationDeadlineNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRegistrationDeadline, v))
}

// RegistrationDeadlineIn applies the In predicate on the "registration_deadline" field.
func RegistrationDeadlineIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRegistrationDeadline, vs...))
}

// RegistrationDeadlineNotIn applies the NotIn predicate on the "registration_deadline" field.
func RegistrationDeadlineNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRegistrationDeadline, vs...))
}

// RegistrationDeadlineGT applies the GT predicate on the "registration_deadline" field.
func RegistrationDeadlineGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRegistrationDeadline, v))
}

// RegistrationDeadlineGTE applies the GTE predicate on the "registration_deadline" field.
func RegistrationDeadlineGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRegistrationDeadline, v))
}

// RegistrationDeadlineLT applies the LT predicate on the "registration_deadline" field.
func RegistrationDeadlineLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRegistrationDeadline, v))
}

// RegistrationDeadlineLTE applies the LTE predicate on the "registration_deadline" field.
func RegistrationDeadlineLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRegistrationDeadline, v))
}

// RegistrationDeadlineIsNil applies the IsNil predicate on the "registration_deadline" field.
func RegistrationDeadlineIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldRegistrationDeadline))
}

// RegistrationDeadlineNotNil applies the NotNil predicate on the "registration_deadline" field.
func RegistrationDeadlineNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldRegistrationDeadline))
}

// RegistrationLinkEQ applies the EQ predicate on the "registration_link" field.
func RegistrationLinkEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldRegistrationLink, v))
}

// RegistrationLinkNEQ applies the NEQ predicate on the "registration_link" field.
func RegistrationLinkNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldRegistrationLink, v))
}

// RegistrationLinkIn applies the In predicate on the "registration_link" field.
func RegistrationLinkIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldRegistrationLink, vs...))
}

// RegistrationLinkNotIn applies the NotIn predicate on the "registration_link" field.
func RegistrationLinkNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldRegistrationLink, vs...))
}

// RegistrationLinkGT applies the GT predicate on the "registration_link" field.
func RegistrationLinkGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldRegistrationLink, v))
}

// RegistrationLinkGTE applies the GTE predicate on the "registration_link" field.
func RegistrationLinkGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldRegistrationLink, v))
}

// RegistrationLinkLT applies the LT predicate on the "registration_link" field.
func RegistrationLinkLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldRegistrationLink, v))
}

// RegistrationLinkLTE applies the LTE predicate on the "registration_link" field.
func RegistrationLinkLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldRegistrationLink, v))
}

// RegistrationLinkContains applies the Contains predicate on the "registration_link" field.
func RegistrationLinkContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldRegistrationLink, v))
}

// RegistrationLinkHasPrefix applies the HasPrefix predicate on the "registration_link" field.
func RegistrationLinkHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldRegistrationLink, v))
}

// RegistrationLinkHasSuffix applies the HasSuffix predicate on the "registration_link" field.
func RegistrationLinkHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldRegistrationLink, v))
}

// RegistrationLinkIsNil applies the IsNil predicate on the "registration_link" field.
func RegistrationLinkIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldRegistrationLink))
}

// RegistrationLinkNotNil applies the NotNil predicate on the "registration_link" field.
func RegistrationLinkNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldRegistrationLink))
}

// RegistrationLinkEqualFold applies the EqualFold predicate on the "registration_link" field.
func RegistrationLinkEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldRegistrationLink, v))
}

// RegistrationLinkContainsFold applies the ContainsFold predicate on the "registration_link" field.
func RegistrationLinkContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldRegistrationLink, v))
}

// ContactName1EQ applies the EQ predicate on the "contact_name1" field.
func ContactName1EQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContactName1, v))
}

// ContactName1NEQ applies the NEQ predicate on the "contact_name1" field.
func ContactName1NEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldContactName1, v))
}

// ContactName1In applies the In predicate on the "contact_name1" field.
func ContactName1In(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldContactName1, vs...))
}

// ContactName1NotIn applies the NotIn predicate on the "contact_name1" field.
func ContactName1NotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldContactName1, vs...))
}

// ContactName1GT applies the GT predicate on the "contact_name1" field.
func ContactName1GT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldContactName1, v))
}

// ContactName1GTE applies the GTE predicate on the "contact_name1" field.
func ContactName1GTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldContactName1, v))
}

// ContactName1LT applies the LT predicate on the "contact_name1" field.
func ContactName1LT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldContactName1, v))
}

// ContactName1LTE applies the LTE predicate on the "contact_name1" field.
func ContactName1LTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldContactName1, v))
}

// ContactName1Contains applies the Contains predicate on the "contact_name1" field.
func ContactName1Contains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldContactName1, v))
}

// ContactName1HasPrefix applies the HasPrefix predicate on the "contact_name1" field.
func ContactName1HasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldContactName1, v))
}

// ContactName1HasSuffix applies the HasSuffix predicate on the "contact_name1" field.
func ContactName1HasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldContactName1, v))
}

// ContactName1IsNil applies the IsNil predicate on the "contact_name1" field.
func ContactName1IsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldContactName1))
}

// ContactName1NotNil applies the NotNil predicate on the "contact_name1" field.
func ContactName1NotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldContactName1))
}

// ContactName1EqualFold applies the EqualFold predicate on the "contact_name1" field.
func ContactName1EqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldContactName1, v))
}

// ContactName1ContainsFold applies the ContainsFold predicate on the "contact_name1" field.
func ContactName1ContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldContactName1, v))
}

// ContactPhone1EQ applies the EQ predicate on the "contact_phone1" field.
func ContactPhone1EQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContactPhone1, v))
}

// ContactPhone1NEQ applies the NEQ predicate on the "contact_phone1" field.
func ContactPhone1NEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldContactPhone1, v))
}

// ContactPhone1In applies the In predicate on the "contact_phone1" field.
func ContactPhone1In(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldContactPhone1, vs...))
}

// ContactPhone1NotIn applies the NotIn predicate on the "contact_phone1" field.
func ContactPhone1NotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldContactPhone1, vs...))
}

// ContactPhone1GT applies the GT predicate on the "contact_phone1" field.
func ContactPhone1GT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldContactPhone1, v))
}

// ContactPhone1GTE applies the GTE predicate on the "contact_phone1" field.
func ContactPhone1GTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldContactPhone1, v))
}

// ContactPhone1LT applies the LT predicate on the "contact_phone1" field.
func ContactPhone1LT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldContactPhone1, v))
}

// ContactPhone1LTE applies the LTE predicate on the "contact_phone1" field.
func ContactPhone1LTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldContactPhone1, v))
}

// ContactPhone1Contains applies the Contains predicate on the "contact_phone1" field.
func ContactPhone1Contains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldContactPhone1, v))
}

// ContactPhone1HasPrefix applies the HasPrefix predicate on the "contact_phone1" field.
func ContactPhone1HasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldContactPhone1, v))
}

// ContactPhone1HasSuffix applies the HasSuffix predicate on the "contact_phone1" field.
func ContactPhone1HasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldContactPhone1, v))
}

// ContactPhone1IsNil applies the IsNil predicate on the "contact_phone1" field.
func ContactPhone1IsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldContactPhone1))
}

// ContactPhone1NotNil applies the NotNil predicate on the "contact_phone1" field.
func ContactPhone1NotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldContactPhone1))
}

// ContactPhone1EqualFold applies the EqualFold predicate on the "contact_phone1" field.
func ContactPhone1EqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldContactPhone1, v))
}

// ContactPhone1ContainsFold applies the ContainsFold predicate on the "contact_phone1" field.
func ContactPhone1ContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldContactPhone1, v))
}

// ContactName2EQ applies the EQ predicate on the "contact_name2" field.
func ContactName2EQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContactName2, v))
}

// ContactName2NEQ applies the NEQ predicate on the "contact_name2" field.
func ContactName2NEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldContactName2, v))
}

// ContactName2In applies the In predicate on the "contact_name2" field.
func ContactName2In(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldContactName2, vs...))
}

// ContactName2NotIn applies the NotIn predicate on the "contact_name2" field.
func ContactName2NotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldContactName2, vs...))
}

// ContactName2GT applies the GT predicate on the "contact_name2" field.
func ContactName2GT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldContactName2, v))
}

// ContactName2GTE applies the GTE predicate on the "contact_name2" field.
func ContactName2GTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldContactName2, v))
}

// ContactName2LT applies the LT predicate on the "contact_name2" field.
func ContactName2LT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldContactName2, v))
}

// ContactName2LTE applies the LTE predicate on the "contact_name2" field.
func ContactName2LTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldContactName2, v))
}

// ContactName2Contains applies the Contains predicate on the "contact_name2" field.
func ContactName2Contains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldContactName2, v))
}

// ContactName2HasPrefix applies the HasPrefix predicate on the "contact_name2" field.
func ContactName2HasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldContactName2, v))
}

// ContactName2HasSuffix applies the HasSuffix predicate on the "contact_name2" field.
func ContactName2HasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldContactName2, v))
}

// ContactName2IsNil applies the IsNil predicate on the "contact_name2" field.
func ContactName2IsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldContactName2))
}

// ContactName2NotNil applies the NotNil predicate on the "contact_name2" field.
func ContactName2NotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldContactName2))
}

// ContactName2EqualFold applies the EqualFold predicate on the "contact_name2" field.
func ContactName2EqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldContactName2, v))
}

// ContactName2ContainsFold applies the ContainsFold predicate on the "contact_name2" field.
func ContactName2ContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldContactName2, v))
}

// ContactTitle2EQ applies the EQ predicate on the "contact_title2" field.
func ContactTitle2EQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldContactTitle2, v))
}

// ContactTitle2NEQ applies the NEQ predicate on the "contact_title2" field.
func ContactTitle2NEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldContactTitle2, v))
}

// ContactTitle2In applies the In predicate on the "contact_title2" field.
func ContactTitle2In(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldContactTitle2, vs...))
}

// ContactTitle2NotIn applies the NotIn predicate on the "contact_title2" field.
func ContactTitle2NotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldContactTitle2, vs...))
}

// ContactTitle2GT applies the GT predicate on the "contact_title2" field.
func ContactTitle2GT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldContactTitle2, v))
}

// ContactTitle2GTE applies the GTE predicate on the "contact_title2" field.
func ContactTitle2GTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldContactTitle2, v))
}

// ContactTitle2LT applies the LT predicate on the "contact_title2" field.
func ContactTitle2LT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldContactTitle2, v))
}

// ContactTitle2LTE applies the LTE predicate on the "contact_title2" field.
func ContactTitle2LTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldContactTitle2, v))
}

// ContactTitle2Contains applies the Contains predicate on the "contact_title2" field.
func ContactTitle2Contains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldContactTitle2, v))
}

// ContactTitle2HasPrefix applies the HasPrefix predicate on the "contact_title2" field.
func ContactTitle2HasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldContactTitle2, v))
}

// ContactTitle2HasSuffix applies the HasSuffix predicate on the "contact_title2" field.
func ContactTitle2HasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldContactTitle2, v))
}

// ContactTitle2IsNil applies the IsNil predicate on the "contact_title2" field.
func ContactTitle2IsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldContactTitle2))
}

// ContactTitle2NotNil applies the NotNil predicate on the "contact_title2" field.
func ContactTitle2NotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldContactTitle2))
}

// ContactTitle2EqualFold applies the EqualFold predicate on the "contact_title2" field.
func ContactTitle2EqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldContactTitle2, v))
}

// ContactTitle2ContainsFold applies the ContainsFold predicate on the "contact_title2" field.
func ContactTitle2ContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldContactTitle2, v))
}

// OrganizationEQ applies the EQ predicate on the "organization" field.
func OrganizationEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldOrganization, v))
}

// OrganizationNEQ applies the NEQ predicate on the "organization" field.
func OrganizationNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldOrganization, v))
}

// OrganizationIn applies the In predicate on the "organization" field.
func OrganizationIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldOrganization, vs...))
}

// OrganizationNotIn applies the NotIn predicate on the "organization" field.
func OrganizationNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldOrganization, vs...))
}

// OrganizationGT applies the GT predicate on the "organization" field.
func OrganizationGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldOrganization, v))
}

// OrganizationGTE applies the GTE predicate on the "organization" field.
func OrganizationGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldOrganization, v))
}

// OrganizationLT applies the LT predicate on the "organization" field.
func OrganizationLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldOrganization, v))
}

// OrganizationLTE applies the LTE predicate on the "organization" field.
func OrganizationLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldOrganization, v))
}

// OrganizationContains applies the Contains predicate on the "organization" field.
func OrganizationContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldOrganization, v))
}

// OrganizationHasPrefix applies the HasPrefix predicate on the "organization" field.
func OrganizationHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldOrganization, v))
}

// OrganizationHasSuffix applies the HasSuffix predicate on the "organization" field.
func OrganizationHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldOrganization, v))
}

// OrganizationIsNil applies the IsNil predicate on the "organization" field.
func OrganizationIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldOrganization))
}

// OrganizationNotNil applies the NotNil predicate on the "organization" field.
func OrganizationNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldOrganization))
}

// OrganizationEqualFold applies the EqualFold predicate on the "organization" field.
func OrganizationEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldOrganization, v))
}

// OrganizationContainsFold applies the ContainsFold predicate on the "organization" field.
func OrganizationContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldOrganization, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldNotes, v))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.Event {
	return predicate.Event(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.Event {
	return predicate.Event(sql.FieldNotNull(FieldCategories))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProfile applies the HasEdge predicate on the "profile" edge.
func HasProfile() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProfileTable, ProfileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProfileWith applies the HasEdge predicate on the "profile" edge with a given conditions (other predicates).
func HasProfileWith(preds ...predicate.Profile) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newProfileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.FlyerFile) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
