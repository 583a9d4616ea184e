package vector

import "strconv"

// Frame is a table-like container: a list of equal-length columns with
// row names. Its logical shape is [rows, columns] even though no dim
// attribute is stored.
type Frame struct {
	*Vector
}

// NewFrame builds a frame from named columns. Row names are stored in the
// compact form for 1..rows.
func NewFrame(names []string, columns []*Vector) *Frame {
	elems := make([]Value, len(columns))
	rows := 0
	for i, c := range columns {
		elems[i] = c
		if i == 0 {
			rows = c.Len()
		}
	}
	list := NewList(elems)
	list.SetNames(NewCharacter(append([]string(nil), names...)))
	list.SetAttr(AttrRowNames, CompactRowNames(rows))
	list.SetAttr(AttrClass, Characters("data.frame"))
	return &Frame{Vector: list}
}

// CompactRowNames encodes 1..n as (NA, -n).
func CompactRowNames(n int) *Vector {
	return NewInteger([]int32{NAInteger, int32(-n)})
}

// RowNames returns the row.names attribute as stored, possibly compact.
func (f *Frame) RowNames() Value {
	rn, ok := f.Attr(AttrRowNames)
	if !ok {
		return Null
	}
	return rn
}

// SetRowNames stores explicit row names.
func (f *Frame) SetRowNames(rn *Vector) {
	f.SetAttr(AttrRowNames, rn)
}

// RowCount decodes the row count from a row.names value. The compact form is
// an integer vector of length two whose first element is NA; the sign of the
// second element only records whether the names were automatic.
func RowCount(rowNames Value) int {
	rn, ok := rowNames.(*Vector)
	if !ok {
		return 0
	}
	if rn.kind == KindInteger && len(rn.ints) == 2 && rn.ints[0] == NAInteger {
		n := int(rn.ints[1])
		if n < 0 {
			n = -n
		}
		return n
	}
	return rn.Len()
}

// IsCompactRowNames reports whether rowNames uses the sequential encoding.
func IsCompactRowNames(rowNames Value) bool {
	rn, ok := rowNames.(*Vector)
	return ok && rn.kind == KindInteger && len(rn.ints) == 2 && rn.ints[0] == NAInteger
}

// Dims synthesises [rows, columns] from the row names.
func (f *Frame) Dims() []int {
	return []int{RowCount(f.RowNames()), f.Vector.Len()}
}

// DimNames expands the row names to strings and pairs them with the column
// names.
func (f *Frame) DimNames() *Vector {
	rn := f.RowNames()
	var rows Value = Null
	if IsCompactRowNames(rn) {
		n := RowCount(rn)
		labels := make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
		rows = NewCharacter(labels)
	} else if v, ok := rn.(*Vector); ok {
		rows = AsCharacter(v)
	}
	var cols Value = Null
	if names := f.Vector.Names(); names != nil {
		cols = names
	}
	return List(rows, cols)
}

// Column returns column i (0-based).
func (f *Frame) Column(i int) *Vector {
	c, _ := f.elems[i].(*Vector)
	return c
}
