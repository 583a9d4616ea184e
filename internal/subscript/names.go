package subscript

import (
	"strings"

	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/vector"
)

// nameTable returns the names searched for this dimension: the names of a
// linear container or the dimnames slot of the axis.
func (r *Resolver) nameTable(c vector.Container) (*vector.Vector, error) {
	if r.singleDim() {
		return c.Names(), nil
	}
	names := vector.DimNamesAt(c, r.Axis)
	if names == nil {
		return nil, condition.NoDimnames()
	}
	return names, nil
}

// lookup returns the 1-based index of name in table, or 0. The first exact
// match wins. For [[ a unique prefix is accepted unless Exact forbids it.
func (r *Resolver) lookup(table *vector.Vector, name string) int {
	if table == nil || vector.IsNAString(name) {
		return 0
	}
	names := table.Strings()
	for i, n := range names {
		if n == name {
			return i + 1
		}
	}
	if r.Subset || r.Exact == ExactMatch || name == "" {
		return 0
	}
	found := 0
	for i, n := range names {
		if !vector.IsNAString(n) && strings.HasPrefix(n, name) {
			if found != 0 {
				return 0
			}
			found = i + 1
		}
	}
	if found != 0 && r.Exact == PartialWarn {
		r.warn(condition.Partial(name, names[found-1]))
	}
	return found
}

// name resolves a single character subscript.
func (r *Resolver) name(c vector.Container, s string) (vector.Value, error) {
	table, err := r.nameTable(c)
	if err != nil {
		return nil, err
	}
	if vector.IsNAString(s) && r.Subset && r.singleDim() {
		if r.Assign {
			return appended(c.Len()+1, s), nil
		}
		return position(vector.NAInteger), nil
	}
	if i := r.lookup(table, s); i > 0 {
		return position(int32(i)), nil
	}
	if !r.singleDim() {
		return nil, condition.OutOfBounds()
	}
	switch {
	case r.Assign:
		return appended(c.Len()+1, s), nil
	case r.Subset:
		return position(vector.NAInteger), nil
	case c.Kind() == vector.KindList:
		return vector.Null, nil
	}
	return nil, condition.OutOfBounds()
}

// names resolves a character subscript vector element by element. In
// assignment, unmatched names are given fresh positions past the end; a
// name repeated within the operand reuses the position given the first
// time. The operand strings are attached as names so the writer can label
// the new slots.
func (r *Resolver) names(c vector.Container, vec *vector.Vector) (vector.Value, error) {
	table, err := r.nameTable(c)
	if err != nil {
		return nil, err
	}
	src := vec.Strings()
	out := make([]int32, len(src))
	next := c.Len() + 1
	seen := make(map[string]int32)
	for i, s := range src {
		if j := r.lookup(table, s); j > 0 {
			out[i] = int32(j)
			continue
		}
		if !r.singleDim() {
			return nil, condition.OutOfBounds()
		}
		if !r.Assign {
			out[i] = vector.NAInteger
			continue
		}
		if !vector.IsNAString(s) {
			if p, ok := seen[s]; ok {
				out[i] = p
				continue
			}
			seen[s] = int32(next)
		}
		out[i] = int32(next)
		next++
	}
	res := vector.NewInteger(out)
	if r.Assign && r.singleDim() {
		res.SetNames(vector.NewCharacter(append([]string(nil), src...)))
	}
	return res, nil
}

func appended(p int, name string) *vector.Vector {
	v := position(int32(p))
	v.SetNames(vector.Characters(name))
	return v
}
