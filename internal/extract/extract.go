// Package extract reads and replaces elements of vectors, arrays and frames
// using positions produced by the subscript resolver.
//
// Positions arrive 1-based with 0 meaning "nothing" and NA meaning an
// unresolved slot. Internally they are turned into 0-based indices where -1
// is an NA slot and an index at or past the source length reads as NA.
package extract

import (
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/nacheck"
	"github.com/funvibe/funvec/internal/subscript"
	"github.com/funvibe/funvec/internal/vector"
)

// Extractor carries the per-call settings shared by every access it
// performs.
type Extractor struct {
	Exact    subscript.Exact
	Values   vector.Resolver
	Warner   condition.Warner
	Location condition.Location
}

func (e *Extractor) resolver(subset, assign bool) *subscript.Resolver {
	return &subscript.Resolver{
		NumDims:  1,
		Subset:   subset,
		Assign:   assign,
		Exact:    e.Exact,
		Values:   e.Values,
		Warner:   e.Warner,
		Location: e.Location,
	}
}

func (e *Extractor) warn(w condition.Warning) {
	if e.Warner != nil {
		e.Warner.Warn(w)
	}
}

// indices converts resolved positions for a dimension of the given extent.
// Zeros are dropped. Negative entries are the NA fill marks of assignments
// and read as NA slots.
func indices(pos vector.Value, extent int) ([]int, error) {
	if vector.IsMissing(pos) {
		idx := make([]int, extent)
		for i := range idx {
			idx[i] = i
		}
		return idx, nil
	}
	vec, ok := pos.(*vector.Vector)
	if !ok || vec.Kind() != vector.KindInteger {
		return nil, condition.InvalidType(pos.Kind().String())
	}
	idx := make([]int, 0, vec.Len())
	for _, p := range vec.Ints() {
		switch {
		case p == 0:
		case p == vector.NAInteger || p < 0:
			idx = append(idx, -1)
		default:
			idx = append(idx, int(p)-1)
		}
	}
	return idx, nil
}

// take gathers the elements of x at idx into a new attribute-free vector.
func take(x *vector.Vector, idx []int) *vector.Vector {
	out := vector.Alloc(x.Kind(), len(idx))
	n := x.Len()
	for i, j := range idx {
		if j >= 0 && j < n {
			copyElem(out, i, x, j)
		} else {
			setNA(out, i)
		}
	}
	nacheck.Scan(out)
	return out
}

func copyElem(dst *vector.Vector, i int, src *vector.Vector, j int) {
	switch dst.Kind() {
	case vector.KindLogical, vector.KindInteger:
		dst.Ints()[i] = src.Ints()[j]
	case vector.KindDouble:
		dst.Doubles()[i] = src.Doubles()[j]
	case vector.KindComplex:
		dst.Complexes()[i] = src.Complexes()[j]
	case vector.KindCharacter:
		dst.Strings()[i] = src.Strings()[j]
	case vector.KindRaw:
		dst.Raws()[i] = src.Raws()[j]
	case vector.KindList:
		dst.Elements()[i] = src.Elements()[j]
	}
}

// setNA stores the missing value of dst's kind. Raw has none and gets 0;
// lists get NULL.
func setNA(dst *vector.Vector, i int) {
	switch dst.Kind() {
	case vector.KindLogical, vector.KindInteger:
		dst.Ints()[i] = vector.NAInteger
	case vector.KindDouble:
		dst.Doubles()[i] = vector.NADouble
	case vector.KindComplex:
		dst.Complexes()[i] = vector.NAComplex
	case vector.KindCharacter:
		dst.Strings()[i] = vector.NAString
	case vector.KindRaw:
		dst.Raws()[i] = 0
	case vector.KindList:
		dst.Elements()[i] = vector.Null
	}
}
