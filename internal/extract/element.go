package extract

import (
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/vector"
)

// Element implements x[[i]]. An atomic x yields a length-one vector without
// attributes; a list yields the stored value. An NA position reads as NA
// for atomic vectors and NULL for lists, as does a name missing from a
// list.
func (e *Extractor) Element(x *vector.Vector, operand vector.Value) (vector.Value, error) {
	pos, err := e.resolver(false, false).Resolve(x, operand)
	if err != nil {
		return nil, err
	}
	if vector.IsNull(pos) {
		return vector.Null, nil
	}
	vec, ok := pos.(*vector.Vector)
	if !ok || vec.Kind() != vector.KindInteger {
		return nil, condition.InvalidType(pos.Kind().String()).At(e.Location)
	}
	switch vec.Len() {
	case 1:
	case 0:
		return nil, condition.LessThanOne().At(e.Location)
	default:
		return nil, condition.MoreThanOne().At(e.Location)
	}

	p := vec.Ints()[0]
	if p == vector.NAInteger {
		if x.Kind() == vector.KindList {
			return vector.Null, nil
		}
		return take(x, []int{-1}), nil
	}
	if p < 1 || int(p) > x.Len() {
		return nil, condition.OutOfBounds().At(e.Location)
	}
	if x.Kind() == vector.KindList {
		return x.Elements()[p-1], nil
	}
	return take(x, []int{int(p) - 1}), nil
}

// Column implements f[[i]]: one column of a frame, selected by position or
// name.
func (e *Extractor) Column(f *vector.Frame, operand vector.Value) (vector.Value, error) {
	return e.Element(f.Vector, operand)
}
