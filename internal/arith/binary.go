// Package arith holds the scalar kernels applied element by element by the
// map engine: overflow-checked integer arithmetic, double arithmetic with R
// semantics for power and modulo, scaled complex division, complex power,
// comparisons, three-valued logic and the unary math functions.
//
// Kernels never see NA unless they say so (HandlesNA); the engine checks
// operands first.
package arith

import (
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/config"
	"github.com/funvibe/funvec/internal/vector"
)

// Op identifies a binary operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	IntDiv
	Mod
	Pow
	Min
	Max
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	And
	Or
	numOps
)

// Class groups operators by how they treat operand kinds.
type Class int

const (
	Arithmetic Class = iota
	Extremum
	Comparison
	Logic
)

// Binary describes one binary operator. Only the function fields that make
// sense for the operator are set.
type Binary struct {
	Op     Op
	Symbol string
	Class  Class

	// HandlesNA means the kernel receives NA operands and decides the
	// result itself instead of the engine short-circuiting to NA.
	HandlesNA bool

	Int     func(a, b int32) int32
	IntReal func(a, b int32) float64
	Real    func(a, b float64) float64
	Cplx    func(a, b complex128) complex128
	Cmp     func(c int) bool
	Logic   func(a, b int32) int32
	Raw     func(a, b byte) byte
}

var binaryKernels = [numOps]*Binary{
	Add:    {Op: Add, Symbol: config.OpAdd, Class: Arithmetic, Int: AddInt, Real: AddDouble, Cplx: AddComplex},
	Sub:    {Op: Sub, Symbol: config.OpSub, Class: Arithmetic, Int: SubInt, Real: SubDouble, Cplx: SubComplex},
	Mul:    {Op: Mul, Symbol: config.OpMul, Class: Arithmetic, Int: MulInt, Real: MulDouble, Cplx: MulComplex},
	Div:    {Op: Div, Symbol: config.OpDiv, Class: Arithmetic, IntReal: DivInt, Real: DivDouble, Cplx: DivComplex},
	IntDiv: {Op: IntDiv, Symbol: config.OpIntDiv, Class: Arithmetic, Int: IntDivInt, Real: IntDivDouble},
	Mod:    {Op: Mod, Symbol: config.OpMod, Class: Arithmetic, Int: ModInt, Real: ModDouble},
	Pow:    {Op: Pow, Symbol: config.OpPow, Class: Arithmetic, HandlesNA: true, IntReal: PowInt, Real: powNA, Cplx: PowComplex},
	Min:    {Op: Min, Symbol: config.OpMin, Class: Extremum, Int: MinInt, Real: MinDouble, Cmp: func(c int) bool { return c <= 0 }},
	Max:    {Op: Max, Symbol: config.OpMax, Class: Extremum, Int: MaxInt, Real: MaxDouble, Cmp: func(c int) bool { return c >= 0 }},
	Eq:     {Op: Eq, Symbol: config.OpEq, Class: Comparison, Cmp: func(c int) bool { return c == 0 }},
	Ne:     {Op: Ne, Symbol: config.OpNe, Class: Comparison, Cmp: func(c int) bool { return c != 0 }},
	Lt:     {Op: Lt, Symbol: config.OpLt, Class: Comparison, Cmp: func(c int) bool { return c < 0 }},
	Le:     {Op: Le, Symbol: config.OpLe, Class: Comparison, Cmp: func(c int) bool { return c <= 0 }},
	Gt:     {Op: Gt, Symbol: config.OpGt, Class: Comparison, Cmp: func(c int) bool { return c > 0 }},
	Ge:     {Op: Ge, Symbol: config.OpGe, Class: Comparison, Cmp: func(c int) bool { return c >= 0 }},
	And:    {Op: And, Symbol: config.OpAnd, Class: Logic, HandlesNA: true, Logic: AndLogical, Raw: func(a, b byte) byte { return a & b }},
	Or:     {Op: Or, Symbol: config.OpOr, Class: Logic, HandlesNA: true, Logic: OrLogical, Raw: func(a, b byte) byte { return a | b }},
}

// Lookup returns the kernel for op.
func Lookup(op Op) *Binary {
	if op < 0 || op >= numOps {
		panic(condition.Internal("no binary kernel for op %d", int(op)))
	}
	return binaryKernels[op]
}

// BySymbol finds a kernel by its operator symbol.
func BySymbol(sym string) (*Binary, bool) {
	for _, k := range binaryKernels {
		if k.Symbol == sym {
			return k, true
		}
	}
	return nil, false
}

// powNA is PowDouble for the double loop. It receives NA operands because
// 1^NA and NA^0 are 1.
func powNA(x, y float64) float64 { return PowDouble(x, y) }

// IsEquality reports whether the comparison only tests (in)equality, the
// only comparisons defined on complex values.
func (k *Binary) IsEquality() bool { return k.Op == Eq || k.Op == Ne }

// Kinds determines the argument kind both operands are coerced to and the
// kind of the result. User-facing type errors are returned here.
func (k *Binary) Kinds(left, right vector.Kind) (arg, result vector.Kind, err error) {
	switch k.Class {
	case Arithmetic:
		if !left.IsNumeric() || !right.IsNumeric() {
			return 0, 0, condition.NonNumeric(k.Symbol)
		}
		arg = vector.Promote(left, right)
		if arg == vector.KindComplex && (k.Op == IntDiv || k.Op == Mod) {
			return 0, 0, condition.ComplexOperation(k.Symbol)
		}
		switch {
		case arg == vector.KindComplex || arg == vector.KindDouble:
			result = arg
		case k.Op == Div || k.Op == Pow:
			result = vector.KindDouble
		default:
			result = vector.KindInteger
		}
		return arg, result, nil

	case Extremum:
		if !atomicNonRaw(left) || !atomicNonRaw(right) {
			return 0, 0, condition.NonNumeric(k.Symbol)
		}
		arg = vector.Promote(left, right)
		if arg == vector.KindComplex {
			return 0, 0, condition.ComplexOperation(k.Symbol)
		}
		return arg, arg, nil

	case Comparison:
		if !left.IsAtomic() {
			return 0, 0, condition.ListComparison(left)
		}
		if !right.IsAtomic() {
			return 0, 0, condition.ListComparison(right)
		}
		arg = vector.Promote(left, right)
		if arg == vector.KindLogical && (left == vector.KindRaw || right == vector.KindRaw) {
			arg = vector.KindInteger
		}
		if arg == vector.KindComplex && !k.IsEquality() {
			return 0, 0, condition.ComplexComparison()
		}
		return arg, vector.KindLogical, nil

	case Logic:
		if left == vector.KindRaw && right == vector.KindRaw {
			return vector.KindRaw, vector.KindRaw, nil
		}
		if !left.IsNumeric() || !right.IsNumeric() {
			return 0, 0, condition.LogicOperands()
		}
		return vector.KindLogical, vector.KindLogical, nil
	}
	panic(condition.Internal("unknown kernel class %d", int(k.Class)))
}

func atomicNonRaw(k vector.Kind) bool {
	return k.IsAtomic() && k != vector.KindRaw
}

// MayIntroduceNA reports whether the kernel can produce NA from operands
// that are not NA, for the given argument kind: integer overflow, integer
// division by zero, and comparisons involving NaN.
func (k *Binary) MayIntroduceNA(arg vector.Kind) bool {
	switch k.Class {
	case Arithmetic:
		if arg == vector.KindLogical || arg == vector.KindInteger {
			switch k.Op {
			case Add, Sub, Mul, IntDiv, Mod:
				return true
			}
		}
	case Comparison:
		return arg == vector.KindDouble || arg == vector.KindComplex
	}
	return false
}
