package condition

import "fmt"

// SubscriptCount reports a subscript list longer or shorter than the container has axes.
func SubscriptCount() *Condition {
	return New(IncorrectSubscriptCount, "incorrect number of subscripts")
}

// DimensionCount reports a dim vector that disagrees with the subscript count.
func DimensionCount() *Condition {
	return New(IncorrectSubscriptCount, "incorrect number of dimensions")
}

// InvalidType reports an operand kind that can never be a subscript here.
func InvalidType(typeName string) *Condition {
	c := New(InvalidSubscriptType, "invalid subscript type '%s'", typeName)
	c.TypeName = typeName
	return c
}

// OutOfBounds reports a position past the extent where that is fatal.
func OutOfBounds() *Condition {
	return New(SubscriptOutOfBounds, "subscript out of bounds")
}

// Missing reports a missing argument to [[.
func Missing() *Condition {
	return New(MissingSubscript, "[[ ]] with missing subscript")
}

// LessThanOne reports a [[ subscript that selects nothing.
func LessThanOne() *Condition {
	return New(SelectLessThanOne, "attempt to select less than one element")
}

// MoreThanOne reports a [[ subscript that selects several elements.
func MoreThanOne() *Condition {
	return New(SelectMoreThanOne, "attempt to select more than one element")
}

// NonConformable reports dimensioned operands of different shapes.
func NonConformable() *Condition {
	return New(NonConformableArrays, "non-conformable arrays")
}

// DimsLengthMismatch reports a vector operand longer than the array it meets.
func DimsLengthMismatch(product, length int) *Condition {
	return New(NonConformableArrays, "dims [product %d] do not match the length of object [%d]", product, length)
}

// NoDimnames reports a name subscript on an axis without dimnames.
func NoDimnames() *Condition {
	return New(NoArrayDimnames, "no 'dimnames' attribute for array")
}

// MixedSigns reports positive and negative positions in one subscript.
func MixedSigns() *Condition {
	return New(OnlyZeroMixedWithNegative, "can't mix positive and negative subscripts")
}

// LogicalTooLong reports a logical subscript longer than the axis.
func LogicalTooLong() *Condition {
	return New(LogicalSubscriptTooLong, "(subscript) logical subscript too long")
}

// NonNumeric reports a binary arithmetic operand that is not numeric.
func NonNumeric(op string) *Condition {
	return New(NonNumericArgument, "non-numeric argument to binary operator %s", op)
}

// NonNumericUnary reports a unary operator applied to a non-numeric operand.
func NonNumericUnary(op string) *Condition {
	return New(NonNumericArgument, "invalid argument to unary operator %s", op)
}

// NonNumericMath reports a math function applied to a non-numeric operand.
func NonNumericMath(fn string) *Condition {
	return New(NonNumericArgument, "non-numeric argument to mathematical function %s", fn)
}

// LogicOperands reports & or | on operands that cannot be made logical.
func LogicOperands() *Condition {
	return New(NonNumericArgument, "operations are possible only for numeric, logical or complex types")
}

// ComplexOperation reports an operator complex numbers do not support.
func ComplexOperation(op string) *Condition {
	return New(NonNumericArgument, "invalid operation on complex numbers: %s", op)
}

// ComplexComparison reports ordering of complex values.
func ComplexComparison() *Condition {
	return New(InvalidComparison, "invalid comparison with complex values")
}

// ListComparison reports a comparison involving a non-atomic operand.
func ListComparison(kind fmt.Stringer) *Condition {
	return New(InvalidComparison, "comparison is possible only for atomic types, not %s", kind)
}

// ZeroLengthReplacement reports an assignment from an empty value.
func ZeroLengthReplacement() *Condition {
	return New(InvalidReplacement, "replacement has length zero")
}

// NAInAssignment reports NA positions with a value longer than one.
func NAInAssignment() *Condition {
	return New(InvalidReplacement, "NAs are not allowed in subscripted assignments")
}
