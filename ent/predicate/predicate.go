// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// ParamChangeEvent is the predicate function for paramchangeevent builders.
type ParamChangeEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// TurnEvent is the predicate function for turnevent builders.
type TurnEvent func(*sql.Selector)
