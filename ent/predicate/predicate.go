// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// NodeProgress is the predicate function for nodeprogress builders.
type NodeProgress func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)

// SessionSnapshot is the predicate function for sessionsnapshot builders.
type SessionSnapshot func(*sql.Selector)

// TestOutAttempt is the predicate function for testoutattempt builders.
type TestOutAttempt func(*sql.Selector)
