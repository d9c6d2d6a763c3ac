// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/adesai/stride/ent/nodeprogress"
	"github.com/adesai/stride/ent/quizattempt"
	"github.com/adesai/stride/ent/schema"
	"github.com/adesai/stride/ent/sessionsnapshot"
	"github.com/adesai/stride/ent/testoutattempt"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	nodeprogressMixin := schema.NodeProgress{}.Mixin()
	nodeprogressMixinFields0 := nodeprogressMixin[0].Fields()
	_ = nodeprogressMixinFields0
	nodeprogressFields := schema.NodeProgress{}.Fields()
	_ = nodeprogressFields
	// nodeprogressDescUserID is the schema descriptor for user_id field.
	nodeprogressDescUserID := nodeprogressMixinFields0[0].Descriptor()
	// nodeprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	nodeprogress.UserIDValidator = nodeprogressDescUserID.Validators[0].(func(string) error)
	// nodeprogressDescCreatedAt is the schema descriptor for created_at field.
	nodeprogressDescCreatedAt := nodeprogressMixinFields0[1].Descriptor()
	// nodeprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	nodeprogress.DefaultCreatedAt = nodeprogressDescCreatedAt.Default.(func() time.Time)
	// nodeprogressDescRoadmapID is the schema descriptor for roadmap_id field.
	nodeprogressDescRoadmapID := nodeprogressFields[0].Descriptor()
	// nodeprogress.RoadmapIDValidator is a validator for the "roadmap_id" field. It is called by the builders before save.
	nodeprogress.RoadmapIDValidator = nodeprogressDescRoadmapID.Validators[0].(func(string) error)
	// nodeprogressDescNodeID is the schema descriptor for node_id field.
	nodeprogressDescNodeID := nodeprogressFields[1].Descriptor()
	// nodeprogress.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	nodeprogress.NodeIDValidator = nodeprogressDescNodeID.Validators[0].(func(string) error)
	quizattemptMixin := schema.QuizAttempt{}.Mixin()
	quizattemptMixinFields0 := quizattemptMixin[0].Fields()
	_ = quizattemptMixinFields0
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescUserID is the schema descriptor for user_id field.
	quizattemptDescUserID := quizattemptMixinFields0[0].Descriptor()
	// quizattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizattempt.UserIDValidator = quizattemptDescUserID.Validators[0].(func(string) error)
	// quizattemptDescCreatedAt is the schema descriptor for created_at field.
	quizattemptDescCreatedAt := quizattemptMixinFields0[1].Descriptor()
	// quizattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizattempt.DefaultCreatedAt = quizattemptDescCreatedAt.Default.(func() time.Time)
	// quizattemptDescAttemptID is the schema descriptor for attempt_id field.
	quizattemptDescAttemptID := quizattemptFields[0].Descriptor()
	// quizattempt.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	quizattempt.AttemptIDValidator = quizattemptDescAttemptID.Validators[0].(func(string) error)
	// quizattemptDescRoadmapID is the schema descriptor for roadmap_id field.
	quizattemptDescRoadmapID := quizattemptFields[1].Descriptor()
	// quizattempt.RoadmapIDValidator is a validator for the "roadmap_id" field. It is called by the builders before save.
	quizattempt.RoadmapIDValidator = quizattemptDescRoadmapID.Validators[0].(func(string) error)
	// quizattemptDescTestOut is the schema descriptor for test_out field.
	quizattemptDescTestOut := quizattemptFields[7].Descriptor()
	// quizattempt.DefaultTestOut holds the default value on creation for the test_out field.
	quizattempt.DefaultTestOut = quizattemptDescTestOut.Default.(bool)
	sessionsnapshotFields := schema.SessionSnapshot{}.Fields()
	_ = sessionsnapshotFields
	// sessionsnapshotDescUserID is the schema descriptor for user_id field.
	sessionsnapshotDescUserID := sessionsnapshotFields[0].Descriptor()
	// sessionsnapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionsnapshot.UserIDValidator = sessionsnapshotDescUserID.Validators[0].(func(string) error)
	// sessionsnapshotDescRoadmapID is the schema descriptor for roadmap_id field.
	sessionsnapshotDescRoadmapID := sessionsnapshotFields[1].Descriptor()
	// sessionsnapshot.RoadmapIDValidator is a validator for the "roadmap_id" field. It is called by the builders before save.
	sessionsnapshot.RoadmapIDValidator = sessionsnapshotDescRoadmapID.Validators[0].(func(string) error)
	// sessionsnapshotDescSavedAt is the schema descriptor for saved_at field.
	sessionsnapshotDescSavedAt := sessionsnapshotFields[2].Descriptor()
	// sessionsnapshot.DefaultSavedAt holds the default value on creation for the saved_at field.
	sessionsnapshot.DefaultSavedAt = sessionsnapshotDescSavedAt.Default.(func() time.Time)
	testoutattemptMixin := schema.TestOutAttempt{}.Mixin()
	testoutattemptMixinFields0 := testoutattemptMixin[0].Fields()
	_ = testoutattemptMixinFields0
	testoutattemptFields := schema.TestOutAttempt{}.Fields()
	_ = testoutattemptFields
	// testoutattemptDescUserID is the schema descriptor for user_id field.
	testoutattemptDescUserID := testoutattemptMixinFields0[0].Descriptor()
	// testoutattempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	testoutattempt.UserIDValidator = testoutattemptDescUserID.Validators[0].(func(string) error)
	// testoutattemptDescCreatedAt is the schema descriptor for created_at field.
	testoutattemptDescCreatedAt := testoutattemptMixinFields0[1].Descriptor()
	// testoutattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	testoutattempt.DefaultCreatedAt = testoutattemptDescCreatedAt.Default.(func() time.Time)
	// testoutattemptDescCardSlug is the schema descriptor for card_slug field.
	testoutattemptDescCardSlug := testoutattemptFields[0].Descriptor()
	// testoutattempt.CardSlugValidator is a validator for the "card_slug" field. It is called by the builders before save.
	testoutattempt.CardSlugValidator = testoutattemptDescCardSlug.Validators[0].(func(string) error)
}
