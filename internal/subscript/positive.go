package subscript

import (
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/vector"
)

// transformIntoPositive canonicalises an integer subscript vector of length
// two or more. Positive and NA entries select; zeros are dropped; negative
// entries exclude. The two styles cannot be mixed.
func (r *Resolver) transformIntoPositive(c vector.Container, vec *vector.Vector) (vector.Value, error) {
	positions := vec.Ints()
	ext := r.extent(c)
	length := r.bound(c)

	var hasNA, hasPositive, hasZero, hasNegative, outOfBounds bool
	for _, p := range positions {
		switch {
		case p == vector.NAInteger:
			hasNA = true
		case p > 0:
			hasPositive = true
			if r.singleDim() {
				if int(p) > length {
					outOfBounds = true
				}
			} else if int(p) > ext {
				return nil, condition.OutOfBounds()
			}
		case p == 0:
			hasZero = true
		default:
			hasNegative = true
		}
	}

	if hasNegative && (hasPositive || hasNA) {
		return nil, condition.MixedSigns()
	}
	if !hasPositive && !hasNA && !hasNegative {
		return position(0), nil
	}
	if outOfBounds && !r.Subset && !r.Assign {
		return nil, condition.OutOfBounds()
	}

	if hasPositive || hasNA {
		if hasZero || outOfBounds {
			out := make([]int32, 0, len(positions))
			for _, p := range positions {
				switch {
				case p == 0:
					continue
				case p != vector.NAInteger && int(p) > length && r.Assign:
					out = append(out, vector.NAInteger)
				default:
					out = append(out, p)
				}
			}
			return vector.NewInteger(out), nil
		}
		if r.singleDim() && r.Assign && vec.Names() != nil {
			return vec.CopyWithoutAttributes(), nil
		}
		return vec, nil
	}

	// all negative, possibly with zeros
	excluded := make([]bool, ext)
	for _, p := range positions {
		if m := int(-p); p < 0 && m <= ext {
			excluded[m-1] = true
		}
	}
	out := make([]int32, 0, ext)
	for i, ex := range excluded {
		if !ex {
			out = append(out, int32(i+1))
		}
	}
	if len(out) == 0 {
		return position(0), nil
	}
	return vector.NewInteger(out), nil
}
