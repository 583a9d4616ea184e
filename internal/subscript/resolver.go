// Package subscript turns the operand of x[...] or x[[...]] into canonical
// positions.
//
// Resolution happens in two steps. The operand is first normalised by type
// (promises forced, factors unwrapped, unnamed length-1 vectors treated as
// scalars). Then it is converted to 1-based integer positions according to
// its kind. The result is one of:
//
//   - an integer vector of positions; 0 selects nothing, NA is an
//     unresolved slot, and in single-dimension assignment a negative entry
//     marks a slot to fill with NA;
//   - vector.Missing, meaning every position of the dimension;
//   - the operand itself, for lists, closures and environments, which the
//     caller interprets as recursive or non-positional access.
package subscript

import (
	"fmt"

	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/config"
	"github.com/funvibe/funvec/internal/vector"
)

// Exact controls name matching for [[.
type Exact int

const (
	// ExactMatch only accepts whole names.
	ExactMatch Exact = iota
	// PartialMatch accepts a unique prefix silently.
	PartialMatch
	// PartialWarn accepts a unique prefix with a warning.
	PartialWarn
)

// ParseExact maps the option spelling to an Exact mode.
func ParseExact(s string) (Exact, error) {
	switch s {
	case config.ExactTrue, "":
		return ExactMatch, nil
	case config.ExactFalse:
		return PartialMatch, nil
	case config.ExactNA:
		return PartialWarn, nil
	}
	return ExactMatch, fmt.Errorf("invalid exact mode %q", s)
}

// Resolver converts subscripts for one dimension of one access.
type Resolver struct {
	// Axis is the 0-based dimension the subscript applies to.
	Axis int
	// NumDims is 1 for linear access and the number of subscripts for
	// matrix and array access.
	NumDims int
	// Assign is set when the access is the target of an assignment.
	Assign bool
	// Subset selects [ semantics; otherwise [[.
	Subset bool
	Exact  Exact

	// Values forces promises. Nil means vector.EagerResolver.
	Values vector.Resolver
	Warner condition.Warner

	// Location is attached to errors raised by assignments and [[ reads.
	Location condition.Location
}

func (r *Resolver) warn(w condition.Warning) {
	if r.Warner != nil {
		r.Warner.Warn(w)
	}
}

func (r *Resolver) numDims() int {
	if r.NumDims < 1 {
		return 1
	}
	return r.NumDims
}

func (r *Resolver) singleDim() bool { return r.numDims() == 1 }

// extent is the size of the dimension being indexed.
func (r *Resolver) extent(c vector.Container) int {
	if r.singleDim() {
		return c.Len()
	}
	dims := c.Dims()
	if r.Axis < len(dims) {
		return dims[r.Axis]
	}
	return 0
}

// bound is the length out-of-range checks compare against: the whole
// container for single-dimension access, the indexed axis otherwise.
func (r *Resolver) bound(c vector.Container) int {
	if r.singleDim() {
		return c.Len()
	}
	return r.extent(c)
}

// Resolve converts operand against container c.
func (r *Resolver) Resolve(c vector.Container, operand vector.Value) (vector.Value, error) {
	v, err := r.cast(operand)
	if err == nil {
		v, err = r.convert(c, v)
	}
	if err != nil {
		if cond, ok := err.(*condition.Condition); ok && (r.Assign || !r.Subset) {
			return nil, cond.At(r.Location)
		}
		return nil, err
	}
	return v, nil
}

// ResolveAll resolves one subscript per dimension. A single subscript is
// linear indexing whatever the container's shape; otherwise the count must
// equal the number of dimensions.
func (r *Resolver) ResolveAll(c vector.Container, operands []vector.Value) ([]vector.Value, error) {
	n := len(operands)
	if n > 1 && len(c.Dims()) != n {
		if r.Subset {
			return nil, condition.DimensionCount().At(r.Location)
		}
		return nil, condition.SubscriptCount().At(r.Location)
	}
	out := make([]vector.Value, n)
	for i, op := range operands {
		sub := *r
		sub.Axis = i
		sub.NumDims = max(n, 1)
		pos, err := sub.Resolve(c, op)
		if err != nil {
			return nil, err
		}
		out[i] = pos
	}
	return out, nil
}

// cast normalises the operand's type without looking at the container.
func (r *Resolver) cast(v vector.Value) (vector.Value, error) {
	if v == nil {
		return vector.Null, nil
	}
	if p, ok := v.(*vector.Promise); ok {
		values := r.Values
		if values == nil {
			values = vector.EagerResolver{}
		}
		forced, err := values.Force(p)
		if err != nil {
			return nil, err
		}
		return r.cast(forced)
	}
	if vector.IsFactor(v) {
		return vector.FactorCodes(v.(*vector.Vector)), nil
	}
	return v, nil
}

func (r *Resolver) convert(c vector.Container, v vector.Value) (vector.Value, error) {
	switch v.Kind() {
	case vector.KindMissing:
		return r.missing(c)
	case vector.KindNull:
		if r.Subset {
			return position(0), nil
		}
		return nil, condition.LessThanOne()
	case vector.KindList, vector.KindFunction, vector.KindEnvironment:
		return v, nil
	}

	vec, ok := v.(*vector.Vector)
	if !ok {
		return nil, condition.InvalidType(v.Kind().String())
	}
	if vec.Len() == 0 {
		return r.empty()
	}

	switch vec.Kind() {
	case vector.KindLogical:
		if vec.Len() == 1 {
			return r.logicalScalar(c, vec.Ints()[0])
		}
		return r.logicalVector(c, vec)
	case vector.KindInteger:
		if vec.Len() == 1 && vec.Names() == nil {
			return r.integerScalar(c, vec.Ints()[0])
		}
		return r.transformIntoPositive(c, vec)
	case vector.KindDouble:
		if vec.Len() == 1 && vec.Names() == nil {
			return r.doubleScalar(c, vec.Doubles()[0])
		}
		return r.transformIntoPositive(c, r.doublesToInts(vec))
	case vector.KindCharacter:
		if vec.Len() == 1 {
			return r.name(c, vec.Strings()[0])
		}
		return r.names(c, vec)
	case vector.KindComplex, vector.KindRaw:
		return r.collapse(c, vec)
	}
	return nil, condition.InvalidType(vec.Kind().String())
}

func (r *Resolver) missing(c vector.Container) (vector.Value, error) {
	if !r.Subset {
		if r.Assign {
			return nil, condition.Missing()
		}
		return nil, condition.InvalidType(vector.KindMissing.String())
	}
	if r.extent(c) == 1 {
		return position(1), nil
	}
	return vector.Missing, nil
}

// empty handles a zero-length operand: nothing is selected.
func (r *Resolver) empty() (vector.Value, error) {
	if r.Subset {
		return position(0), nil
	}
	return nil, condition.LessThanOne()
}

// collapse handles complex and raw operands, which are only usable as a
// single value.
func (r *Resolver) collapse(c vector.Container, vec *vector.Vector) (vector.Value, error) {
	if vec.Len() != 1 {
		if r.Subset {
			return nil, condition.InvalidType(vec.Kind().String())
		}
		return nil, condition.MoreThanOne()
	}
	if vec.Kind() == vector.KindRaw {
		return r.integerScalar(c, int32(vec.Raws()[0]))
	}
	z := vec.Complexes()[0]
	if vector.IsNAComplex(z) {
		return r.doubleScalar(c, vector.NADouble)
	}
	if imag(z) != 0 {
		r.warn(condition.ImaginaryParts())
	}
	return r.doubleScalar(c, real(z))
}

func position(p int32) *vector.Vector {
	return vector.NewInteger([]int32{p})
}
