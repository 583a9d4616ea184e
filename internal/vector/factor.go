package vector

// NewFactor builds an integer vector of 1-based level codes with the levels
// table and class attached.
func NewFactor(codes []int32, levels []string) *Vector {
	f := NewInteger(codes)
	f.SetAttr(AttrLevels, NewCharacter(levels))
	f.SetAttr(AttrClass, Characters("factor"))
	return f
}

// HasClass reports whether the class attribute contains name.
func HasClass(v *Vector, name string) bool {
	cls, ok := v.Attr(AttrClass)
	if !ok {
		return false
	}
	cv, ok := cls.(*Vector)
	if !ok || cv.kind != KindCharacter {
		return false
	}
	for _, c := range cv.strs {
		if c == name {
			return true
		}
	}
	return false
}

// IsFactor reports whether v is an integer vector classed as a factor.
func IsFactor(v Value) bool {
	vec, ok := v.(*Vector)
	return ok && vec.kind == KindInteger && HasClass(vec, "factor")
}

// FactorCodes strips the factor wrapping, keeping only names.
func FactorCodes(f *Vector) *Vector {
	out := &Vector{kind: KindInteger, ints: f.ints, complete: f.complete, refs: 1}
	if names := f.Names(); names != nil {
		out.SetNames(names)
	}
	return out
}
