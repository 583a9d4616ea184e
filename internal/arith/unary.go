package arith

import (
	"math"
	"math/cmplx"

	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/config"
	"github.com/funvibe/funvec/internal/vector"
)

// UnaryOp identifies a unary operator or math function.
type UnaryOp int

const (
	Neg UnaryOp = iota
	Plus
	Not
	Abs
	Sqrt
	Exp
	Log
	Floor
	Ceiling
	Trunc
	Sign
	numUnaryOps
)

// Unary describes a unary operator or math function.
type Unary struct {
	Op     UnaryOp
	Symbol string

	// Math marks functions (as opposed to operators); it only changes the
	// error message for non-numeric operands.
	Math bool

	// WarnNaN requests the "NaNs produced" warning when a non-NaN input
	// yields NaN.
	WarnNaN bool

	Int     func(int32) int32
	Real    func(float64) float64
	Cplx    func(complex128) complex128
	CplxAbs func(complex128) float64
	Logic   func(int32) int32
	Raw     func(byte) byte
}

var unaryKernels = [numUnaryOps]*Unary{
	Neg:     {Op: Neg, Symbol: config.OpSub, Int: func(a int32) int32 { return -a }, Real: func(a float64) float64 { return -a }, Cplx: func(a complex128) complex128 { return -a }},
	Plus:    {Op: Plus, Symbol: config.OpAdd, Int: func(a int32) int32 { return a }, Real: func(a float64) float64 { return a }, Cplx: func(a complex128) complex128 { return a }},
	Not:     {Op: Not, Symbol: config.OpNot, Logic: notLogical, Raw: func(a byte) byte { return ^a }},
	Abs:     {Op: Abs, Symbol: config.OpAbs, Math: true, Int: absInt, Real: math.Abs, CplxAbs: cmplx.Abs},
	Sqrt:    {Op: Sqrt, Symbol: config.OpSqrt, Math: true, WarnNaN: true, Real: math.Sqrt, Cplx: cmplx.Sqrt},
	Exp:     {Op: Exp, Symbol: config.OpExp, Math: true, Real: math.Exp, Cplx: cmplx.Exp},
	Log:     {Op: Log, Symbol: config.OpLog, Math: true, WarnNaN: true, Real: math.Log, Cplx: cmplx.Log},
	Floor:   {Op: Floor, Symbol: config.OpFloor, Math: true, Real: math.Floor},
	Ceiling: {Op: Ceiling, Symbol: config.OpCeiling, Math: true, Real: math.Ceil},
	Trunc:   {Op: Trunc, Symbol: config.OpTrunc, Math: true, Real: math.Trunc},
	Sign:    {Op: Sign, Symbol: config.OpSign, Math: true, Real: signDouble},
}

// LookupUnary returns the kernel entry for op.
func LookupUnary(op UnaryOp) *Unary {
	if op < 0 || op >= numUnaryOps {
		panic(condition.Internal("no unary kernel for op %d", int(op)))
	}
	return unaryKernels[op]
}

// UnaryByName finds a unary kernel by operator symbol or function name.
// "-" and "+" resolve to negation and identity.
func UnaryByName(name string) (*Unary, bool) {
	for _, k := range unaryKernels {
		if k.Symbol == name {
			return k, true
		}
	}
	return nil, false
}

func notLogical(a int32) int32 {
	switch a {
	case vector.NALogical:
		return vector.NALogical
	case vector.False:
		return vector.True
	}
	return vector.False
}

func absInt(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}

func signDouble(a float64) float64 {
	switch {
	case math.IsNaN(a):
		return a
	case a > 0:
		return 1
	case a < 0:
		return -1
	}
	return 0
}

func (k *Unary) nonNumeric() error {
	if k.Math {
		return condition.NonNumericMath(k.Symbol)
	}
	return condition.NonNumericUnary(k.Symbol)
}

// Kinds returns the argument kind the operand is coerced to and the result
// kind.
func (k *Unary) Kinds(operand vector.Kind) (arg, result vector.Kind, err error) {
	if k.Op == Not {
		switch {
		case operand == vector.KindRaw:
			return vector.KindRaw, vector.KindRaw, nil
		case operand == vector.KindLogical || operand == vector.KindInteger || operand == vector.KindDouble:
			return vector.KindLogical, vector.KindLogical, nil
		}
		return 0, 0, condition.New(condition.NonNumericArgument, "invalid argument type")
	}
	if !operand.IsNumeric() {
		return 0, 0, k.nonNumeric()
	}
	switch k.Op {
	case Neg, Plus:
		if operand == vector.KindLogical {
			return vector.KindLogical, vector.KindInteger, nil
		}
		return operand, operand, nil
	case Abs:
		switch operand {
		case vector.KindLogical, vector.KindInteger:
			return operand, vector.KindInteger, nil
		case vector.KindComplex:
			return operand, vector.KindDouble, nil
		}
		return vector.KindDouble, vector.KindDouble, nil
	case Sqrt, Exp, Log:
		if operand == vector.KindComplex {
			return operand, operand, nil
		}
		return vector.KindDouble, vector.KindDouble, nil
	}
	// floor, ceiling, trunc, sign
	if operand == vector.KindComplex {
		return 0, 0, condition.ComplexOperation(k.Symbol)
	}
	return vector.KindDouble, vector.KindDouble, nil
}

// MayIntroduceNA reports whether an operand of the given kind without NA can
// still produce NA. Logical negation of a double coerces NaN to NA.
func (k *Unary) MayIntroduceNA(operand vector.Kind) bool {
	return k.Op == Not && (operand == vector.KindDouble || operand == vector.KindComplex)
}
