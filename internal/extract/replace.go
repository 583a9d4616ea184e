package extract

import (
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/nacheck"
	"github.com/funvibe/funvec/internal/vector"
)

// Replace implements x[i] <- value on a linear vector and returns the new
// vector; x itself is never modified. The result kind is the wider of the
// two kinds. Positions past the end grow the result, padding with NA, and
// names appended by the resolver extend the names attribute.
//
// NA positions are skipped when value has length one and rejected
// otherwise. Fill marks write NA into their slot.
func (e *Extractor) Replace(x *vector.Vector, operand vector.Value, value *vector.Vector) (*vector.Vector, error) {
	if !x.Kind().IsAtomic() && x.Kind() != vector.KindList {
		return nil, condition.InvalidType(x.Kind().String()).At(e.Location)
	}
	pos, err := e.resolver(true, true).Resolve(x, operand)
	if err != nil {
		return nil, err
	}

	n := x.Len()
	var (
		targets  []int
		fill     []bool
		newNames map[int]string
	)
	if vector.IsMissing(pos) {
		targets = make([]int, n)
		fill = make([]bool, n)
		for i := range targets {
			targets[i] = i
		}
	} else {
		vec, ok := pos.(*vector.Vector)
		if !ok || vec.Kind() != vector.KindInteger {
			return nil, condition.InvalidType(pos.Kind().String()).At(e.Location)
		}
		var opNames []string
		if names := vec.Names(); names != nil {
			opNames = names.Strings()
		}
		for i, p := range vec.Ints() {
			switch {
			case p == 0:
				continue
			case p == vector.NAInteger:
				if value.Len() > 1 {
					return nil, condition.NAInAssignment().At(e.Location)
				}
				continue
			case p < 0:
				targets = append(targets, int(-p)-1)
				fill = append(fill, true)
			default:
				targets = append(targets, int(p)-1)
				fill = append(fill, false)
			}
			if t := targets[len(targets)-1]; t >= n && i < len(opNames) {
				if newNames == nil {
					newNames = make(map[int]string)
				}
				newNames[t] = opNames[i]
			}
		}
	}
	if len(targets) == 0 {
		return x, nil
	}
	if value.Len() == 0 {
		return nil, condition.ZeroLengthReplacement().At(e.Location)
	}
	if len(targets)%value.Len() != 0 {
		e.warn(condition.ReplacementNotMultiple())
	}

	kind := vector.Promote(x.Kind(), value.Kind())
	size := n
	for _, t := range targets {
		size = max(size, t+1)
	}
	src := x
	if kind != x.Kind() {
		src = e.coerce(x, kind)
	}
	val := value
	if kind != value.Kind() {
		val = e.coerce(value, kind)
	}

	out := vector.Alloc(kind, size)
	for i := 0; i < size; i++ {
		if i < n {
			copyElem(out, i, src, i)
		} else {
			setNA(out, i)
		}
	}
	for i, t := range targets {
		if fill[i] {
			setNA(out, t)
			continue
		}
		copyElem(out, t, val, i%val.Len())
	}
	nacheck.Scan(out)

	if size == n {
		out.SetAttributes(x.Attributes().Copy())
		return out, nil
	}
	// growing drops the shape; names are padded
	out.SetAttributes(x.Attributes().Copy())
	out.SetDims(nil)
	old := x.Names()
	if old == nil && newNames == nil {
		return out, nil
	}
	names := make([]string, size)
	for i := range names {
		switch {
		case old != nil && i < n:
			names[i] = old.Strings()[i]
		case newNames != nil:
			names[i] = newNames[i]
		}
	}
	out.SetNames(vector.NewCharacter(names))
	return out, nil
}

func (e *Extractor) coerce(v *vector.Vector, kind vector.Kind) *vector.Vector {
	if kind == vector.KindList {
		elems := make([]vector.Value, v.Len())
		for i := range elems {
			elems[i] = take(v, []int{i})
		}
		out := vector.NewList(elems)
		out.SetAttributes(v.Attributes().Copy())
		return out
	}
	out, info := vector.Coerce(v, kind)
	if info.NAIntroduced {
		e.warn(condition.CoercionNAs())
	}
	return out
}
