// Code generated by ent, DO NOT EDIT.

package nodeprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adesai/stride/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// RoadmapID applies equality check predicate on the "roadmap_id" field. It's identical to RoadmapIDEQ.
func RoadmapID(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldRoadmapID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldNodeID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContainsFold(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldCreatedAt, v))
}

// RoadmapIDEQ applies the EQ predicate on the "roadmap_id" field.
func RoadmapIDEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldRoadmapID, v))
}

// RoadmapIDNEQ applies the NEQ predicate on the "roadmap_id" field.
func RoadmapIDNEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldRoadmapID, v))
}

// RoadmapIDIn applies the In predicate on the "roadmap_id" field.
func RoadmapIDIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldRoadmapID, vs...))
}

// RoadmapIDNotIn applies the NotIn predicate on the "roadmap_id" field.
func RoadmapIDNotIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldRoadmapID, vs...))
}

// RoadmapIDGT applies the GT predicate on the "roadmap_id" field.
func RoadmapIDGT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldRoadmapID, v))
}

// RoadmapIDGTE applies the GTE predicate on the "roadmap_id" field.
func RoadmapIDGTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldRoadmapID, v))
}

// RoadmapIDLT applies the LT predicate on the "roadmap_id" field.
func RoadmapIDLT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldRoadmapID, v))
}

// RoadmapIDLTE applies the LTE predicate on the "roadmap_id" field.
func RoadmapIDLTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldRoadmapID, v))
}

// RoadmapIDContains applies the Contains predicate on the "roadmap_id" field.
func RoadmapIDContains(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContains(FieldRoadmapID, v))
}

// RoadmapIDHasPrefix applies the HasPrefix predicate on the "roadmap_id" field.
func RoadmapIDHasPrefix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasPrefix(FieldRoadmapID, v))
}

// RoadmapIDHasSuffix applies the HasSuffix predicate on the "roadmap_id" field.
func RoadmapIDHasSuffix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasSuffix(FieldRoadmapID, v))
}

// RoadmapIDEqualFold applies the EqualFold predicate on the "roadmap_id" field.
func RoadmapIDEqualFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEqualFold(FieldRoadmapID, v))
}

// RoadmapIDContainsFold applies the ContainsFold predicate on the "roadmap_id" field.
func RoadmapIDContainsFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContainsFold(FieldRoadmapID, v))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.NodeProgress {
	return predicate.NodeProgress(sql.FieldContainsFold(FieldNodeID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NodeProgress) predicate.NodeProgress {
	return predicate.NodeProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NodeProgress) predicate.NodeProgress {
	return predicate.NodeProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NodeProgress) predicate.NodeProgress {
	return predicate.NodeProgress(sql.NotPredicates(p))
}
