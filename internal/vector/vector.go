package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is a fixed-length sequence of elements of one kind. Only the slice
// matching Kind is populated; logical and integer share ints.
//
// A vector belongs to its creator until MarkTemporary hands it to the next
// operation that consumes it, which may then overwrite it in place. Share
// records another holder; shared vectors must be copied before mutation.
type Vector struct {
	kind      Kind
	ints      []int32
	doubles   []float64
	complexes []complex128
	strs      []string
	raws      []byte
	elems     []Value

	attrs    *AttrList
	complete bool
	refs     int
	temp     bool
}

func (v *Vector) Kind() Kind { return v.kind }

// Len returns the element count.
func (v *Vector) Len() int {
	switch v.kind {
	case KindLogical, KindInteger:
		return len(v.ints)
	case KindDouble:
		return len(v.doubles)
	case KindComplex:
		return len(v.complexes)
	case KindCharacter:
		return len(v.strs)
	case KindRaw:
		return len(v.raws)
	case KindList:
		return len(v.elems)
	}
	return 0
}

// Complete reports that no element is NA.
func (v *Vector) Complete() bool { return v.complete }

// SetComplete overrides the completeness flag. Callers that fill a vector
// element by element use it once the NA status is known.
func (v *Vector) SetComplete(c bool) { v.complete = c }

// Temporary reports whether the vector was handed over with MarkTemporary
// and has no other holder. Only temporaries may be overwritten in place.
func (v *Vector) Temporary() bool { return v.temp && v.refs == 0 }

// MarkTemporary gives up the caller's claim on v: the next operation that
// consumes it may reuse its buffer. Vectors start out owned by their
// creator.
func (v *Vector) MarkTemporary() *Vector {
	v.temp = true
	return v
}

// Share records an additional holder; the vector is no longer reusable.
func (v *Vector) Share() *Vector {
	v.refs++
	return v
}

// Release drops one holder.
func (v *Vector) Release() {
	if v.refs > 0 {
		v.refs--
	}
}

func (v *Vector) Ints() []int32           { return v.ints }
func (v *Vector) Doubles() []float64      { return v.doubles }
func (v *Vector) Complexes() []complex128 { return v.complexes }
func (v *Vector) Strings() []string       { return v.strs }
func (v *Vector) Raws() []byte            { return v.raws }
func (v *Vector) Elements() []Value       { return v.elems }
func (v *Vector) Attributes() *AttrList   { return v.attrs }
func (v *Vector) HasAttributes() bool     { return !v.attrs.Empty() }

func (v *Vector) Attr(key string) (Value, bool) { return v.attrs.Get(key) }

func (v *Vector) SetAttr(key string, val Value) {
	if v.attrs == nil {
		v.attrs = NewAttributes()
	}
	v.attrs.Set(key, val)
}

func (v *Vector) RemoveAttr(key string) {
	v.attrs.Remove(key)
}

// SetAttributes replaces the whole store.
func (v *Vector) SetAttributes(a *AttrList) { v.attrs = a }

// ClearAttributes drops every attribute.
func (v *Vector) ClearAttributes() { v.attrs = nil }

func newVector(kind Kind) *Vector {
	return &Vector{kind: kind, complete: true}
}

// NewLogical builds a logical vector, scanning for NA.
func NewLogical(data []int32) *Vector {
	v := newVector(KindLogical)
	v.ints = data
	v.complete = !containsInt(data, NALogical)
	return v
}

// NewInteger builds an integer vector, scanning for NA.
func NewInteger(data []int32) *Vector {
	v := newVector(KindInteger)
	v.ints = data
	v.complete = !containsInt(data, NAInteger)
	return v
}

// NewDouble builds a double vector, scanning for NA.
func NewDouble(data []float64) *Vector {
	v := newVector(KindDouble)
	v.doubles = data
	for _, d := range data {
		if IsNADouble(d) {
			v.complete = false
			break
		}
	}
	return v
}

func NewComplex(data []complex128) *Vector {
	v := newVector(KindComplex)
	v.complexes = data
	for _, c := range data {
		if IsNAComplex(c) {
			v.complete = false
			break
		}
	}
	return v
}

func NewCharacter(data []string) *Vector {
	v := newVector(KindCharacter)
	v.strs = data
	for _, s := range data {
		if IsNAString(s) {
			v.complete = false
			break
		}
	}
	return v
}

// NewRaw builds a raw vector; raw has no NA.
func NewRaw(data []byte) *Vector {
	v := newVector(KindRaw)
	v.raws = data
	return v
}

// NewList builds a generic vector. Nil elements become NULL.
func NewList(elems []Value) *Vector {
	v := newVector(KindList)
	for i, e := range elems {
		if e == nil {
			elems[i] = Null
		}
	}
	v.elems = elems
	return v
}

// Alloc returns a zero-filled vector of the given kind and length. The
// completeness flag starts true and must be maintained by the filler.
func Alloc(kind Kind, n int) *Vector {
	v := newVector(kind)
	switch kind {
	case KindLogical, KindInteger:
		v.ints = make([]int32, n)
	case KindDouble:
		v.doubles = make([]float64, n)
	case KindComplex:
		v.complexes = make([]complex128, n)
	case KindCharacter:
		v.strs = make([]string, n)
	case KindRaw:
		v.raws = make([]byte, n)
	case KindList:
		v.elems = make([]Value, n)
		for i := range v.elems {
			v.elems[i] = Null
		}
	default:
		panic(fmt.Sprintf("vector: cannot allocate %s", kind))
	}
	return v
}

func containsInt(data []int32, x int32) bool {
	for _, d := range data {
		if d == x {
			return true
		}
	}
	return false
}

// Convenience constructors.

func Logicals(vals ...bool) *Vector {
	data := make([]int32, len(vals))
	for i, b := range vals {
		data[i] = LogicalOf(b)
	}
	return NewLogical(data)
}

func Integers(vals ...int32) *Vector { return NewInteger(vals) }

func Doubles(vals ...float64) *Vector { return NewDouble(vals) }

func Complexes(vals ...complex128) *Vector { return NewComplex(vals) }

func Characters(vals ...string) *Vector { return NewCharacter(vals) }

func Raws(vals ...byte) *Vector { return NewRaw(vals) }

func List(vals ...Value) *Vector { return NewList(vals) }

// Seq returns the integer vector from..to inclusive, ascending.
func Seq(from, to int) *Vector {
	if to < from {
		return NewInteger([]int32{})
	}
	data := make([]int32, to-from+1)
	for i := range data {
		data[i] = int32(from + i)
	}
	return NewInteger(data)
}

// Copy returns an unshared deep copy of the element storage with a shallow
// copy of the attributes.
func (v *Vector) Copy() *Vector {
	out := &Vector{kind: v.kind, complete: v.complete, attrs: v.attrs.Copy()}
	switch v.kind {
	case KindLogical, KindInteger:
		out.ints = append([]int32(nil), v.ints...)
	case KindDouble:
		out.doubles = append([]float64(nil), v.doubles...)
	case KindComplex:
		out.complexes = append([]complex128(nil), v.complexes...)
	case KindCharacter:
		out.strs = append([]string(nil), v.strs...)
	case KindRaw:
		out.raws = append([]byte(nil), v.raws...)
	case KindList:
		out.elems = append([]Value(nil), v.elems...)
	}
	return out
}

// CopyWithoutAttributes is Copy followed by dropping all attributes.
func (v *Vector) CopyWithoutAttributes() *Vector {
	out := v.Copy()
	out.attrs = nil
	return out
}

// IsNAAt reports whether element i is NA.
func (v *Vector) IsNAAt(i int) bool {
	switch v.kind {
	case KindLogical, KindInteger:
		return v.ints[i] == NAInteger
	case KindDouble:
		return IsNADouble(v.doubles[i])
	case KindComplex:
		return IsNAComplex(v.complexes[i])
	case KindCharacter:
		return IsNAString(v.strs[i])
	}
	return false
}

// Inspect renders the elements on one line, without index prefixes.
func (v *Vector) Inspect() string {
	n := v.Len()
	if n == 0 {
		return v.kind.String() + "(0)"
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = v.ElementString(i)
	}
	return strings.Join(parts, " ")
}

// ElementString formats element i the way the printer shows it.
func (v *Vector) ElementString(i int) string {
	switch v.kind {
	case KindLogical:
		return FormatLogical(v.ints[i])
	case KindInteger:
		return FormatInteger(v.ints[i])
	case KindDouble:
		return FormatDouble(v.doubles[i])
	case KindComplex:
		return FormatComplex(v.complexes[i])
	case KindCharacter:
		if IsNAString(v.strs[i]) {
			return "NA"
		}
		return strconv.Quote(v.strs[i])
	case KindRaw:
		return fmt.Sprintf("%02x", v.raws[i])
	case KindList:
		return v.elems[i].Inspect()
	}
	return "?"
}
