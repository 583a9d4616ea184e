package elementwise

import (
	"math"

	"github.com/funvibe/funvec/internal/arith"
	"github.com/funvibe/funvec/internal/attrib"
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/nacheck"
	"github.com/funvibe/funvec/internal/vector"
)

type binaryRunner interface {
	run(n, nl, nr int)
	checks() (*nacheck.Check, *nacheck.Check)
	introducedNA() bool
}

// Binary maps k over left and right. The result has the longer length;
// the shorter operand is recycled, with a warning when the lengths do not
// divide evenly. A zero-length operand gives a zero-length result.
func (e *Engine) Binary(k *arith.Binary, left, right *vector.Vector) (*vector.Vector, error) {
	arg, res, err := k.Kinds(left.Kind(), right.Kind())
	if err != nil {
		return nil, err
	}
	checkCompatible(arg, res)

	ld, rd := left.Dims(), right.Dims()
	if ld != nil && rd != nil && !vector.SameDims(ld, rd) {
		return nil, condition.NonConformable()
	}

	nl, nr := left.Len(), right.Len()
	if nl == 0 || nr == 0 {
		out := vector.Alloc(res, 0)
		attrib.Binary(out, left, right, e.KeepAttributes)
		return out.MarkTemporary(), nil
	}
	if ld != nil && rd == nil && nr > nl {
		return nil, condition.DimsLengthMismatch(vector.DimProduct(ld), nr)
	}
	if rd != nil && ld == nil && nl > nr {
		return nil, condition.DimsLengthMismatch(vector.DimProduct(rd), nl)
	}

	n := max(nl, nr)
	if n%nl != 0 || n%nr != 0 {
		e.warn(condition.NotMultiple())
	}

	l := e.coerce(left, arg)
	r := e.coerce(right, arg)

	var out *vector.Vector
	switch {
	case reusable(l, res, n):
		out = l
	case reusable(r, res, n):
		out = r
	default:
		out = vector.Alloc(res, n)
	}
	e.tracef("%s: %s[%d] %s[%d] -> %s[%d] reuse=%t", k.Symbol, left.Kind(), nl, right.Kind(), nr, res, n, out == l || out == r)

	loop := e.binaryLoop(k, arg, res, l, r, out)
	loop.run(n, nl, nr)

	lc, rc := loop.checks()
	out.SetComplete(lc.NeverSeenNA() && rc.NeverSeenNA() && !k.MayIntroduceNA(arg))
	if loop.introducedNA() && k.Class == arith.Arithmetic && (k.Op == arith.Add || k.Op == arith.Sub || k.Op == arith.Mul) {
		e.warn(condition.Overflow())
	}

	attrib.Binary(out, left, right, e.KeepAttributes)
	return out.MarkTemporary(), nil
}

func newBinaryLoop[A, R any](left, right []A, out []R, lv, rv *vector.Vector, argNA func(A) bool, resNA func(R) bool, na R, handlesNA bool, fn func(a, b A) R) *binaryLoop[A, R] {
	b := &binaryLoop[A, R]{
		left:      left,
		right:     right,
		out:       out,
		argNA:     argNA,
		resNA:     resNA,
		na:        na,
		handlesNA: handlesNA,
		fn:        fn,
	}
	b.lcheck.Enable(lv)
	b.rcheck.Enable(rv)
	return b
}

func isNAInt(x int32) bool { return x == vector.NAInteger }

func noNA[T any](T) bool { return false }

// binaryLoop picks the typed loop for the kernel class and kinds.
func (e *Engine) binaryLoop(k *arith.Binary, arg, res vector.Kind, l, r, out *vector.Vector) binaryRunner {
	switch k.Class {
	case arith.Arithmetic, arith.Extremum:
		switch arg {
		case vector.KindLogical, vector.KindInteger:
			if res == vector.KindDouble {
				return newBinaryLoop(l.Ints(), r.Ints(), out.Doubles(), l, r, isNAInt, vector.IsNADouble, vector.NADouble, k.HandlesNA, k.IntReal)
			}
			return newBinaryLoop(l.Ints(), r.Ints(), out.Ints(), l, r, isNAInt, isNAInt, vector.NAInteger, k.HandlesNA, k.Int)
		case vector.KindDouble:
			fn := k.Real
			if k.Op == arith.Pow {
				if pe := constantExponent(r); pe != nil {
					fn = func(x, _ float64) float64 { return pe(x) }
				}
			}
			return newBinaryLoop(l.Doubles(), r.Doubles(), out.Doubles(), l, r, vector.IsNADouble, vector.IsNADouble, vector.NADouble, k.HandlesNA, fn)
		case vector.KindComplex:
			return newBinaryLoop(l.Complexes(), r.Complexes(), out.Complexes(), l, r, vector.IsNAComplex, vector.IsNAComplex, vector.NAComplex, k.HandlesNA, k.Cplx)
		case vector.KindCharacter:
			cmp, coll := k.Cmp, e.collator()
			pick := func(a, b string) string {
				if cmp(coll.Compare(a, b)) {
					return a
				}
				return b
			}
			return newBinaryLoop(l.Strings(), r.Strings(), out.Strings(), l, r, vector.IsNAString, vector.IsNAString, vector.NAString, false, pick)
		}

	case arith.Comparison:
		cmp := k.Cmp
		switch arg {
		case vector.KindLogical, vector.KindInteger:
			fn := func(a, b int32) int32 { return vector.LogicalOf(cmp(arith.CompareInt(a, b))) }
			return newBinaryLoop(l.Ints(), r.Ints(), out.Ints(), l, r, isNAInt, isNAInt, vector.NALogical, false, fn)
		case vector.KindDouble:
			fn := func(a, b float64) int32 {
				if math.IsNaN(a) || math.IsNaN(b) {
					return vector.NALogical
				}
				return vector.LogicalOf(cmp(arith.CompareDouble(a, b)))
			}
			return newBinaryLoop(l.Doubles(), r.Doubles(), out.Ints(), l, r, vector.IsNADouble, isNAInt, vector.NALogical, false, fn)
		case vector.KindComplex:
			eq := k.Op == arith.Eq
			fn := func(a, b complex128) int32 {
				if vector.IsNaNComplex(a) || vector.IsNaNComplex(b) {
					return vector.NALogical
				}
				return vector.LogicalOf((a == b) == eq)
			}
			return newBinaryLoop(l.Complexes(), r.Complexes(), out.Ints(), l, r, vector.IsNAComplex, isNAInt, vector.NALogical, false, fn)
		case vector.KindCharacter:
			coll := e.collator()
			equality := k.IsEquality()
			fn := func(a, b string) int32 {
				if equality {
					if a == b {
						return vector.LogicalOf(cmp(0))
					}
					return vector.LogicalOf(cmp(1))
				}
				return vector.LogicalOf(cmp(coll.Compare(a, b)))
			}
			return newBinaryLoop(l.Strings(), r.Strings(), out.Ints(), l, r, vector.IsNAString, isNAInt, vector.NALogical, false, fn)
		case vector.KindRaw:
			fn := func(a, b byte) int32 { return vector.LogicalOf(cmp(arith.CompareInt(int32(a), int32(b)))) }
			return newBinaryLoop(l.Raws(), r.Raws(), out.Ints(), l, r, noNA[byte], isNAInt, vector.NALogical, false, fn)
		}

	case arith.Logic:
		switch arg {
		case vector.KindLogical:
			return newBinaryLoop(l.Ints(), r.Ints(), out.Ints(), l, r, isNAInt, isNAInt, vector.NALogical, k.HandlesNA, k.Logic)
		case vector.KindRaw:
			return newBinaryLoop(l.Raws(), r.Raws(), out.Raws(), l, r, noNA[byte], noNA[byte], 0, true, k.Raw)
		}
	}
	panic(condition.Internal("no %s loop for %s -> %s", k.Symbol, arg, res))
}

// constantExponent returns the specialised power function when the
// exponent operand is a single integral double.
func constantExponent(r *vector.Vector) func(float64) float64 {
	if r.Len() != 1 {
		return nil
	}
	y := r.Doubles()[0]
	if math.IsNaN(y) || y != math.Trunc(y) || math.Abs(y) > 65536 {
		return nil
	}
	return arith.PowExponent(int(y))
}
