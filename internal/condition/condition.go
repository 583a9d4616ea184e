// Package condition holds the structured errors and warnings raised by the
// indexing and element-wise engines.
//
// User-facing conditions are returned as *Condition values. Internal
// invariant violations are raised with panic and never returned: they mean a
// dispatch table is incomplete, not that the user made a mistake.
package condition

import (
	"errors"
	"fmt"
)

// Kind classifies a user-facing condition.
type Kind int

const (
	IncorrectSubscriptCount Kind = iota + 1
	InvalidSubscriptType
	SubscriptOutOfBounds
	MissingSubscript
	SelectLessThanOne
	SelectMoreThanOne
	NonConformableArrays
	NoArrayDimnames
	OnlyZeroMixedWithNegative
	LogicalSubscriptTooLong
	NonNumericArgument
	InvalidComparison
	InvalidReplacement
	InternalInvariantViolation
)

var kindNames = map[Kind]string{
	IncorrectSubscriptCount:    "IncorrectSubscriptCount",
	InvalidSubscriptType:       "InvalidSubscriptType",
	SubscriptOutOfBounds:       "SubscriptOutOfBounds",
	MissingSubscript:           "MissingSubscript",
	SelectLessThanOne:          "SelectLessThanOne",
	SelectMoreThanOne:          "SelectMoreThanOne",
	NonConformableArrays:       "NonConformableArrays",
	NoArrayDimnames:            "NoArrayDimnames",
	OnlyZeroMixedWithNegative:  "OnlyZeroMixedWithNegative",
	LogicalSubscriptTooLong:    "LogicalSubscriptTooLong",
	NonNumericArgument:         "NonNumericArgument",
	InvalidComparison:          "InvalidComparison",
	InvalidReplacement:         "InvalidReplacement",
	InternalInvariantViolation: "InternalInvariantViolation",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Location points at the source of the call that raised a condition.
// The zero value means unknown.
type Location struct {
	Line   int
	Column int
}

func (l Location) Known() bool { return l.Line > 0 }

// Condition is a user-facing error.
type Condition struct {
	Kind     Kind
	Message  string
	TypeName string // offending operand type, when relevant
	Location Location
}

func (c *Condition) Error() string {
	if c.Location.Known() {
		return fmt.Sprintf("error at %d:%d: %s", c.Location.Line, c.Location.Column, c.Message)
	}
	return "error: " + c.Message
}

// At returns a copy of c carrying loc. An already located condition keeps
// its original location.
func (c *Condition) At(loc Location) *Condition {
	if c.Location.Known() || !loc.Known() {
		return c
	}
	cp := *c
	cp.Location = loc
	return &cp
}

// New builds an unlocated condition of the given kind.
func New(kind Kind, format string, a ...interface{}) *Condition {
	return &Condition{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// Is reports whether err is a Condition of the given kind.
func Is(err error, kind Kind) bool {
	var c *Condition
	if errors.As(err, &c) {
		return c.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or 0 when err is not a Condition.
func KindOf(err error) Kind {
	var c *Condition
	if errors.As(err, &c) {
		return c.Kind
	}
	return 0
}

// Internal builds the value passed to panic when an unreachable state is hit.
func Internal(format string, a ...interface{}) *Condition {
	return &Condition{Kind: InternalInvariantViolation, Message: "internal error: " + fmt.Sprintf(format, a...)}
}
