package condition

import (
	"errors"
	"fmt"
	"testing"
)

func TestConditionError(t *testing.T) {
	c := OutOfBounds()
	if got := c.Error(); got != "error: subscript out of bounds" {
		t.Errorf("Error() = %q", got)
	}
	located := c.At(Location{Line: 3, Column: 7})
	if got := located.Error(); got != "error at 3:7: subscript out of bounds" {
		t.Errorf("located Error() = %q", got)
	}
	if c.Location.Known() {
		t.Error("At must not mutate the receiver")
	}
	if again := located.At(Location{Line: 9, Column: 1}); again.Location.Line != 3 {
		t.Error("an existing location is kept")
	}
	if c.At(Location{}) != c {
		t.Error("an unknown location returns the receiver")
	}
}

func TestIsAndKindOf(t *testing.T) {
	wrapped := fmt.Errorf("extract: %w", MixedSigns())
	if !Is(wrapped, OnlyZeroMixedWithNegative) || Is(wrapped, SubscriptOutOfBounds) {
		t.Error("Is must see through wrapping")
	}
	if KindOf(wrapped) != OnlyZeroMixedWithNegative {
		t.Errorf("KindOf = %v", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != 0 || Is(nil, MissingSubscript) {
		t.Error("non-conditions have no kind")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		c    *Condition
		kind Kind
		msg  string
	}{
		{SubscriptCount(), IncorrectSubscriptCount, "incorrect number of subscripts"},
		{InvalidType("closure"), InvalidSubscriptType, "invalid subscript type 'closure'"},
		{LessThanOne(), SelectLessThanOne, "attempt to select less than one element"},
		{DimsLengthMismatch(6, 5), NonConformableArrays, "dims [product 6] do not match the length of object [5]"},
		{NonNumeric("+"), NonNumericArgument, "non-numeric argument to binary operator +"},
		{ZeroLengthReplacement(), InvalidReplacement, "replacement has length zero"},
	}
	for _, tt := range tests {
		if tt.c.Kind != tt.kind || tt.c.Message != tt.msg {
			t.Errorf("got %v %q, want %v %q", tt.c.Kind, tt.c.Message, tt.kind, tt.msg)
		}
	}
	if InvalidType("closure").TypeName != "closure" {
		t.Error("TypeName")
	}
	if c := Internal("bad %s", "state"); c.Kind != InternalInvariantViolation || c.Message != "internal error: bad state" {
		t.Errorf("Internal = %+v", c)
	}
}

func TestKindString(t *testing.T) {
	if SubscriptOutOfBounds.String() != "SubscriptOutOfBounds" {
		t.Error(SubscriptOutOfBounds.String())
	}
	if Kind(99).String() != "Kind(99)" {
		t.Error(Kind(99).String())
	}
	if PartialMatch.String() != "PartialMatch" {
		t.Error(PartialMatch.String())
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	var w Warner = &c
	w.Warn(NaNs())
	w.Warn(Partial("al", "alpha"))
	if len(c.Warnings) != 2 || !c.Has(PartialMatch) || c.Has(IntegerOverflow) {
		t.Errorf("warnings = %v", c.Warnings)
	}
	if got := c.Warnings[1].String(); got != "Warning: partial match of 'al' to 'alpha'" {
		t.Errorf("String() = %q", got)
	}
	Discard{}.Warn(NaNs())
}
