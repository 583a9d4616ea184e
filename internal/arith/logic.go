package arith

import "github.com/funvibe/funvec/internal/vector"

// AndLogical is three-valued: FALSE wins over NA.
func AndLogical(a, b int32) int32 {
	if a == vector.False || b == vector.False {
		return vector.False
	}
	if a == vector.NALogical || b == vector.NALogical {
		return vector.NALogical
	}
	return vector.True
}

// OrLogical is three-valued: TRUE wins over NA.
func OrLogical(a, b int32) int32 {
	if a == vector.True || b == vector.True {
		return vector.True
	}
	if a == vector.NALogical || b == vector.NALogical {
		return vector.NALogical
	}
	return vector.False
}

// RequiresRightOperand tells the short-circuit evaluator whether the right
// operand of && or || must be evaluated given the left value. A FALSE left
// operand decides &&, a TRUE one decides ||. NA decides neither: NA && FALSE
// is FALSE.
func RequiresRightOperand(op Op, left int32) bool {
	switch op {
	case And:
		return left != vector.False
	case Or:
		return left != vector.True
	}
	return true
}
