package subscript

import (
	"math"

	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/vector"
)

func (r *Resolver) logicalScalar(c vector.Container, l int32) (vector.Value, error) {
	switch l {
	case vector.True:
		if !r.Subset {
			// [[TRUE]] selects the first element.
			return r.integerScalar(c, 1)
		}
		return vector.Seq(1, r.extent(c)), nil
	case vector.False:
		return r.integerScalar(c, 0)
	}
	if r.Subset && !r.Assign {
		n := max(r.extent(c), 1)
		out := make([]int32, n)
		for i := range out {
			out[i] = vector.NAInteger
		}
		return vector.NewInteger(out), nil
	}
	return position(vector.NAInteger), nil
}

// logicalVector selects the positions of TRUE entries, recycling the
// operand up to the extent.
func (r *Resolver) logicalVector(c vector.Container, vec *vector.Vector) (vector.Value, error) {
	if !r.Subset {
		return nil, condition.MoreThanOne()
	}
	ext := r.extent(c)
	src := vec.Ints()
	if !r.singleDim() && len(src) > ext {
		return nil, condition.LogicalTooLong()
	}
	n := max(len(src), ext)
	length := r.bound(c)
	out := make([]int32, 0, n)
	for i := 0; i < n; i++ {
		switch src[i%len(src)] {
		case vector.True:
			if i+1 > length && !r.Assign {
				out = append(out, vector.NAInteger)
			} else {
				out = append(out, int32(i+1))
			}
		case vector.NALogical:
			if r.Assign && r.singleDim() {
				out = append(out, int32(-(i + 1)))
			} else {
				out = append(out, vector.NAInteger)
			}
		}
	}
	return vector.NewInteger(out), nil
}

func (r *Resolver) integerScalar(c vector.Container, p int32) (vector.Value, error) {
	if p == vector.NAInteger {
		if r.Subset || r.Assign {
			return position(vector.NAInteger), nil
		}
		return nil, condition.OutOfBounds()
	}
	ext := r.extent(c)
	switch {
	case p > 0:
		if int(p) <= ext {
			return position(p), nil
		}
		if r.singleDim() {
			if r.Assign {
				return position(p), nil
			}
			if r.Subset {
				return position(vector.NAInteger), nil
			}
		}
		return nil, condition.OutOfBounds()
	case p == 0:
		if r.Subset {
			return position(0), nil
		}
		return nil, condition.LessThanOne()
	}

	m := int(-p)
	if m > ext {
		if ext == 1 {
			if r.Subset {
				return position(1), nil
			}
			return position(p), nil
		}
		if r.Subset {
			return vector.Missing, nil
		}
		return position(p), nil
	}
	if ext == 1 {
		return position(0), nil
	}
	out := make([]int32, 0, ext-1)
	for i := 1; i <= ext; i++ {
		if i != m {
			out = append(out, int32(i))
		}
	}
	return vector.NewInteger(out), nil
}

// doubleScalar truncates toward zero and continues as an integer. A negative
// value whose magnitude exceeds the length being indexed is decremented
// first, so x[-3.1] behaves like x[-4] there.
func (r *Resolver) doubleScalar(c vector.Container, d float64) (vector.Value, error) {
	if math.IsNaN(d) {
		return r.integerScalar(c, vector.NAInteger)
	}
	if d < 0 && -d > float64(r.bound(c)) {
		d--
	}
	var info vector.Coercion
	p := vector.DoubleToInt(d, &info)
	if info.OutOfIntRange {
		r.warn(condition.IntRangeNAs())
	}
	return r.integerScalar(c, p)
}

// doublesToInts truncates a double subscript vector, keeping its names.
func (r *Resolver) doublesToInts(vec *vector.Vector) *vector.Vector {
	src := vec.Doubles()
	out := make([]int32, len(src))
	var info vector.Coercion
	for i, d := range src {
		out[i] = vector.DoubleToInt(d, &info)
	}
	if info.OutOfIntRange {
		r.warn(condition.IntRangeNAs())
	}
	iv := vector.NewInteger(out)
	if names := vec.Names(); names != nil {
		iv.SetNames(names)
	}
	return iv
}
