// Code generated by ent, DO NOT EDIT.

package testoutattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adesai/stride/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CardSlug applies equality check predicate on the "card_slug" field. It's identical to CardSlugEQ.
func CardSlug(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldCardSlug, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldPercentage, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldPassed, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldContainsFold(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// CardSlugEQ applies the EQ predicate on the "card_slug" field.
func CardSlugEQ(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldCardSlug, v))
}

// CardSlugNEQ applies the NEQ predicate on the "card_slug" field.
func CardSlugNEQ(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNEQ(FieldCardSlug, v))
}

// CardSlugIn applies the In predicate on the "card_slug" field.
func CardSlugIn(vs ...string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldIn(FieldCardSlug, vs...))
}

// CardSlugNotIn applies the NotIn predicate on the "card_slug" field.
func CardSlugNotIn(vs ...string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNotIn(FieldCardSlug, vs...))
}

// CardSlugGT applies the GT predicate on the "card_slug" field.
func CardSlugGT(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGT(FieldCardSlug, v))
}

// CardSlugGTE applies the GTE predicate on the "card_slug" field.
func CardSlugGTE(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGTE(FieldCardSlug, v))
}

// CardSlugLT applies the LT predicate on the "card_slug" field.
func CardSlugLT(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLT(FieldCardSlug, v))
}

// CardSlugLTE applies the LTE predicate on the "card_slug" field.
func CardSlugLTE(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLTE(FieldCardSlug, v))
}

// CardSlugContains applies the Contains predicate on the "card_slug" field.
func CardSlugContains(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldContains(FieldCardSlug, v))
}

// CardSlugHasPrefix applies the HasPrefix predicate on the "card_slug" field.
func CardSlugHasPrefix(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldHasPrefix(FieldCardSlug, v))
}

// CardSlugHasSuffix applies the HasSuffix predicate on the "card_slug" field.
func CardSlugHasSuffix(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldHasSuffix(FieldCardSlug, v))
}

// CardSlugEqualFold applies the EqualFold predicate on the "card_slug" field.
func CardSlugEqualFold(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEqualFold(FieldCardSlug, v))
}

// CardSlugContainsFold applies the ContainsFold predicate on the "card_slug" field.
func CardSlugContainsFold(v string) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldContainsFold(FieldCardSlug, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLTE(FieldCompletedAt, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v int) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldLTE(FieldPercentage, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.FieldNEQ(FieldPassed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestOutAttempt) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestOutAttempt) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestOutAttempt) predicate.TestOutAttempt {
	return predicate.TestOutAttempt(sql.NotPredicates(p))
}
