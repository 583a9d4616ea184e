// Package elementwise applies scalar kernels over whole vectors.
//
// Binary operands are recycled to the longer length, coerced to the
// kernel's argument kind, and run through a loop chosen once per call from
// the (argument kind, result kind) pair. A temporary operand whose kind and
// length already match the result is overwritten in place instead of
// allocating. Operands are temporary only when the caller marked them so, or
// when they are the engine's own results or converted copies; results are
// returned marked, so a caller that keeps one must Share it.
package elementwise

import (
	"github.com/funvibe/funvec/internal/arith"
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/logger"
	"github.com/funvibe/funvec/internal/vector"
)

// Engine runs binary and unary maps, reporting warnings to Warner.
type Engine struct {
	Warner   condition.Warner
	Collator arith.Collator

	// KeepAttributes copies regular attributes of the left operand onto
	// binary results.
	KeepAttributes bool

	Log *logger.Logger
}

// New returns an engine that reports warnings to w and orders strings with
// c. A nil collator means byte order.
func New(w condition.Warner, c arith.Collator) *Engine {
	return &Engine{Warner: w, Collator: c, KeepAttributes: true}
}

func (e *Engine) warn(w condition.Warning) {
	if e.Warner != nil {
		e.Warner.Warn(w)
	}
}

func (e *Engine) tracef(format string, args ...interface{}) {
	if e.Log != nil {
		e.Log.Tracef(format, args...)
	}
}

func (e *Engine) collator() arith.Collator {
	if e.Collator == nil {
		return arith.ByteOrder{}
	}
	return e.Collator
}

// coerce converts v to kind and turns lossy conversions into warnings. A
// converted copy belongs to the engine and may become the result buffer.
func (e *Engine) coerce(v *vector.Vector, kind vector.Kind) *vector.Vector {
	out, info := vector.Coerce(v, kind)
	if out != v {
		out.MarkTemporary()
	}
	if info.NAIntroduced {
		e.warn(condition.CoercionNAs())
	}
	if info.OutOfIntRange {
		e.warn(condition.IntRangeNAs())
	}
	if info.ImaginaryDiscarded {
		e.warn(condition.ImaginaryParts())
	}
	return out
}

// reusable reports whether v may become the result buffer.
func reusable(v *vector.Vector, kind vector.Kind, n int) bool {
	return v.Temporary() && v.Kind() == kind && v.Len() == n
}
