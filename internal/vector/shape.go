package vector

// Container is the introspection surface the subscript resolver works
// against. Dims returns nil for a linear vector.
type Container interface {
	Kind() Kind
	Len() int
	Dims() []int
	Names() *Vector
	DimNames() *Vector
}

// Names returns the names attribute, or nil.
func (v *Vector) Names() *Vector {
	n, ok := v.attrs.Get(AttrNames)
	if !ok {
		return nil
	}
	nv, _ := n.(*Vector)
	return nv
}

// SetNames attaches names; nil removes them.
func (v *Vector) SetNames(names *Vector) {
	if names == nil {
		v.RemoveAttr(AttrNames)
		return
	}
	v.SetAttr(AttrNames, names)
}

// Dims returns the dim attribute as ints, or nil.
func (v *Vector) Dims() []int {
	d, ok := v.attrs.Get(AttrDim)
	if !ok {
		return nil
	}
	dv, ok := d.(*Vector)
	if !ok || dv.kind != KindInteger {
		return nil
	}
	out := make([]int, len(dv.ints))
	for i, x := range dv.ints {
		out[i] = int(x)
	}
	return out
}

// SetDims sets the dim attribute; nil removes dim and dimnames.
func (v *Vector) SetDims(dims []int) {
	if dims == nil {
		v.RemoveAttr(AttrDim)
		v.RemoveAttr(AttrDimNames)
		return
	}
	data := make([]int32, len(dims))
	for i, d := range dims {
		data[i] = int32(d)
	}
	v.SetAttr(AttrDim, NewInteger(data))
}

// DimNames returns the dimnames list, or nil.
func (v *Vector) DimNames() *Vector {
	d, ok := v.attrs.Get(AttrDimNames)
	if !ok {
		return nil
	}
	dv, _ := d.(*Vector)
	return dv
}

// SetDimNames sets the dimnames list; nil removes it.
func (v *Vector) SetDimNames(dn *Vector) {
	if dn == nil {
		v.RemoveAttr(AttrDimNames)
		return
	}
	v.SetAttr(AttrDimNames, dn)
}

// DimNamesAt returns the character vector naming axis i of c, or nil when
// the container has no dimnames or that slot is NULL.
func DimNamesAt(c Container, axis int) *Vector {
	dn := c.DimNames()
	if dn == nil || dn.kind != KindList || axis >= len(dn.elems) {
		return nil
	}
	names, ok := dn.elems[axis].(*Vector)
	if !ok || names.kind != KindCharacter {
		return nil
	}
	return names
}

// SameDims reports pointwise equality, including the number of dimensions.
func SameDims(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// DimProduct multiplies the extents.
func DimProduct(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}
