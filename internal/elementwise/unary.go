package elementwise

import (
	"math"

	"github.com/funvibe/funvec/internal/arith"
	"github.com/funvibe/funvec/internal/attrib"
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/vector"
)

type unaryRunner interface {
	run(n int)
	neverSeenNA() bool
	producedNaN() bool
}

// Unary maps k over operand. Metadata is copied from the operand unless the
// operand's own buffer became the result.
func (e *Engine) Unary(k *arith.Unary, operand *vector.Vector) (*vector.Vector, error) {
	arg, res, err := k.Kinds(operand.Kind())
	if err != nil {
		return nil, err
	}
	checkCompatible(arg, res)

	n := operand.Len()
	x := e.coerce(operand, arg)
	out := x
	if !reusable(x, res, n) {
		out = vector.Alloc(res, n)
	}
	e.tracef("%s: %s[%d] -> %s reuse=%t", k.Symbol, operand.Kind(), n, res, out == x)

	if n > 0 {
		loop := unaryLoopFor(k, arg, res, x, out)
		loop.run(n)
		out.SetComplete(loop.neverSeenNA() && !k.MayIntroduceNA(operand.Kind()))
		if k.WarnNaN && loop.producedNaN() {
			e.warn(condition.NaNs())
		}
	}

	attrib.Unary(out, operand)
	return out.MarkTemporary(), nil
}

func newUnaryLoop[A, R any](in []A, out []R, v *vector.Vector, argNA func(A) bool, na R, fn func(A) R) *unaryLoop[A, R] {
	u := &unaryLoop[A, R]{in: in, out: out, argNA: argNA, na: na, fn: fn}
	u.check.Enable(v)
	return u
}

func unaryLoopFor(k *arith.Unary, arg, res vector.Kind, x, out *vector.Vector) unaryRunner {
	switch {
	case arg == vector.KindRaw && res == vector.KindRaw:
		return newUnaryLoop(x.Raws(), out.Raws(), x, noNA[byte], 0, k.Raw)
	case arg == vector.KindLogical && k.Logic != nil:
		return newUnaryLoop(x.Ints(), out.Ints(), x, isNAInt, vector.NALogical, k.Logic)
	case (arg == vector.KindLogical || arg == vector.KindInteger) && res == vector.KindInteger:
		return newUnaryLoop(x.Ints(), out.Ints(), x, isNAInt, vector.NAInteger, k.Int)
	case arg == vector.KindDouble && res == vector.KindDouble:
		u := newUnaryLoop(x.Doubles(), out.Doubles(), x, vector.IsNADouble, vector.NADouble, k.Real)
		u.nan = func(in, r float64) bool { return math.IsNaN(r) && !math.IsNaN(in) }
		return u
	case arg == vector.KindComplex && res == vector.KindComplex:
		return newUnaryLoop(x.Complexes(), out.Complexes(), x, vector.IsNAComplex, vector.NAComplex, k.Cplx)
	case arg == vector.KindComplex && res == vector.KindDouble:
		return newUnaryLoop(x.Complexes(), out.Doubles(), x, vector.IsNAComplex, vector.NADouble, k.CplxAbs)
	}
	panic(condition.Internal("no %s loop for %s -> %s", k.Symbol, arg, res))
}
