package extract

import (
	"github.com/funvibe/funvec/internal/attrib"
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/vector"
)

// Subset implements x[i] with one subscript: linear indexing whatever the
// shape of x. The result keeps x's kind; names follow the selected
// positions.
func (e *Extractor) Subset(x *vector.Vector, operand vector.Value) (*vector.Vector, error) {
	pos, err := e.resolver(true, false).Resolve(x, operand)
	if err != nil {
		return nil, err
	}
	idx, err := indices(pos, x.Len())
	if err != nil {
		return nil, err
	}
	out := take(x, idx)
	attrib.Subset(out, x, idx)
	return out, nil
}

// Array implements x[i, j, ...]. With drop set, dimensions of extent one
// are removed and a result with at most one dimension left becomes a plain
// vector, named by the remaining axis.
func (e *Extractor) Array(x *vector.Vector, operands []vector.Value, drop bool) (*vector.Vector, error) {
	if len(operands) == 1 {
		return e.Subset(x, operands[0])
	}
	r := e.resolver(true, false)
	positions, err := r.ResolveAll(x, operands)
	if err != nil {
		return nil, err
	}
	dims := x.Dims()
	axes := make([][]int, len(dims))
	total := 1
	for k, extent := range dims {
		if axes[k], err = indices(positions[k], extent); err != nil {
			return nil, err
		}
		total *= len(axes[k])
	}

	idx := make([]int, total)
	cur := make([]int, len(dims))
	for i := 0; i < total; i++ {
		off, stride := 0, 1
		for k := range dims {
			j := axes[k][cur[k]]
			if j < 0 {
				off = -1
				break
			}
			off += j * stride
			stride *= dims[k]
		}
		idx[i] = off
		for k := range cur {
			cur[k]++
			if cur[k] < len(axes[k]) {
				break
			}
			cur[k] = 0
		}
	}
	out := take(x, idx)

	var keep []int
	for k := range dims {
		if !drop || len(axes[k]) != 1 {
			keep = append(keep, k)
		}
	}
	hasNames := x.DimNames() != nil
	if len(keep) <= 1 {
		if len(keep) == 1 && hasNames {
			if names := vector.DimNamesAt(x, keep[0]); names != nil {
				out.SetNames(selectNames(names, axes[keep[0]]))
			}
		}
		return out, nil
	}
	newDims := make([]int, len(keep))
	dn := make([]vector.Value, len(keep))
	for i, k := range keep {
		newDims[i] = len(axes[k])
		dn[i] = vector.Null
		if names := vector.DimNamesAt(x, k); names != nil {
			dn[i] = selectNames(names, axes[k])
		}
	}
	out.SetDims(newDims)
	if hasNames {
		out.SetDimNames(vector.NewList(dn))
	}
	return out, nil
}

func selectNames(names *vector.Vector, idx []int) *vector.Vector {
	src := names.Strings()
	out := make([]string, len(idx))
	for i, j := range idx {
		if j < 0 || j >= len(src) {
			out[i] = vector.NAString
			continue
		}
		out[i] = src[j]
	}
	return vector.NewCharacter(out)
}

// Frame implements f[rows, cols]. Selected columns are subset by the row
// positions; the row names follow the selection. Reading a column past the
// end is an error rather than an NA column.
func (e *Extractor) Frame(f *vector.Frame, rows, cols vector.Value) (*vector.Frame, error) {
	r := e.resolver(true, false)
	positions, err := r.ResolveAll(f, []vector.Value{rows, cols})
	if err != nil {
		return nil, err
	}
	dims := f.Dims()
	ri, err := indices(positions[0], dims[0])
	if err != nil {
		return nil, err
	}
	ci, err := indices(positions[1], dims[1])
	if err != nil {
		return nil, err
	}

	var colNames []string
	if names := f.Vector.Names(); names != nil {
		colNames = names.Strings()
	}
	names := make([]string, len(ci))
	columns := make([]*vector.Vector, len(ci))
	for i, c := range ci {
		if c < 0 || c >= dims[1] {
			return nil, condition.OutOfBounds().At(e.Location)
		}
		col := f.Column(c)
		sel := take(col, ri)
		attrib.Subset(sel, col, ri)
		columns[i] = sel
		if c < len(colNames) {
			names[i] = colNames[c]
		}
	}

	out := vector.NewFrame(names, columns)
	if vector.IsMissing(positions[0]) {
		if rn, ok := f.RowNames().(*vector.Vector); ok {
			out.SetRowNames(rn)
		}
		return out, nil
	}
	labels := vector.DimNamesAt(f, 0)
	sel := make([]string, len(ri))
	for i, j := range ri {
		if j < 0 || labels == nil || j >= labels.Len() {
			sel[i] = "NA"
			continue
		}
		sel[i] = labels.Strings()[j]
	}
	out.SetRowNames(vector.NewCharacter(sel))
	return out, nil
}
