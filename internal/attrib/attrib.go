// Package attrib decides which attributes survive an operation.
//
// Structural attributes (dim, dimnames, names) follow fixed shape rules.
// Everything else is a regular attribute and is only carried over from the
// winning operand when the caller asks for it.
package attrib

import "github.com/funvibe/funvec/internal/vector"

// Binary computes the attributes of an element-wise result of length n from
// its two operands and installs them on result, replacing whatever result
// carried. result may be one of the operands when its buffer was reused.
//
//   - dim comes from whichever operand has it; conformance was checked by
//     the caller. dimnames prefer the left operand.
//   - names come from an operand whose length equals n, left first. They are
//     dropped when the result has dim.
//   - regular attributes are copied from the left operand only when keep is
//     set.
func Binary(result, left, right *vector.Vector, keep bool) {
	n := result.Len()
	out := vector.NewAttributes()

	if keep {
		copyRegular(out, left)
	}

	var dims *vector.Vector
	if d, ok := left.Attr(vector.AttrDim); ok {
		dims, _ = d.(*vector.Vector)
	} else if d, ok := right.Attr(vector.AttrDim); ok {
		dims, _ = d.(*vector.Vector)
	}
	if dims != nil && vector.DimProduct(intsOf(dims)) == n {
		out.Set(vector.AttrDim, dims)
		if dn := left.DimNames(); dn != nil && left.Dims() != nil {
			out.Set(vector.AttrDimNames, dn)
		} else if dn := right.DimNames(); dn != nil && right.Dims() != nil {
			out.Set(vector.AttrDimNames, dn)
		}
	} else {
		dims = nil
	}

	if dims == nil {
		if names := left.Names(); names != nil && left.Len() == n {
			out.Set(vector.AttrNames, names)
		} else if names := right.Names(); names != nil && right.Len() == n {
			out.Set(vector.AttrNames, names)
		}
	}

	install(result, out)
}

// Unary copies every attribute of operand onto result. When the operand's
// buffer was reused the result already is the operand and nothing happens.
func Unary(result, operand *vector.Vector) {
	if result == operand {
		return
	}
	install(result, operand.Attributes().Copy())
}

// Subset computes the attributes of an extraction result: names are
// selected alongside the elements, and a factor keeps its levels and class.
// positions are 0-based; a negative position marks an NA slot.
func Subset(result, source *vector.Vector, positions []int) {
	out := vector.NewAttributes()
	if names := source.Names(); names != nil {
		src := names.Strings()
		sel := make([]string, len(positions))
		for i, p := range positions {
			switch {
			case p < 0:
				sel[i] = vector.NAString
			case p >= len(src):
				sel[i] = "<NA>"
			default:
				sel[i] = src[p]
			}
		}
		out.Set(vector.AttrNames, vector.NewCharacter(sel))
	}
	if vector.IsFactor(source) {
		for _, key := range []string{vector.AttrLevels, vector.AttrClass} {
			if v, ok := source.Attr(key); ok {
				out.Set(key, v)
			}
		}
	}
	install(result, out)
}

func copyRegular(dst *vector.AttrList, src *vector.Vector) {
	attrs := src.Attributes()
	for _, key := range attrs.Keys() {
		if vector.IsStructural(key) {
			continue
		}
		v, _ := attrs.Get(key)
		dst.Set(key, v)
	}
}

func install(result *vector.Vector, attrs *vector.AttrList) {
	if attrs.Empty() {
		result.ClearAttributes()
		return
	}
	result.SetAttributes(attrs)
}

func intsOf(v *vector.Vector) []int {
	out := make([]int, v.Len())
	for i, x := range v.Ints() {
		out[i] = int(x)
	}
	return out
}
