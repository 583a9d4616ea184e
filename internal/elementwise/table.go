package elementwise

import (
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/vector"
)

// compatible lists, for each argument kind, the result kinds a kernel loop
// exists for.
var compatible = map[vector.Kind][]vector.Kind{
	vector.KindRaw:       {vector.KindRaw, vector.KindLogical},
	vector.KindLogical:   {vector.KindLogical, vector.KindInteger, vector.KindDouble},
	vector.KindInteger:   {vector.KindLogical, vector.KindInteger, vector.KindDouble},
	vector.KindDouble:    {vector.KindLogical, vector.KindDouble},
	vector.KindComplex:   {vector.KindLogical, vector.KindDouble, vector.KindComplex},
	vector.KindCharacter: {vector.KindLogical, vector.KindCharacter},
}

// checkCompatible panics when no loop exists for the pair. The kernels
// decide the kinds, so reaching this is a bug in the dispatch, not a user
// error.
func checkCompatible(arg, result vector.Kind) {
	for _, k := range compatible[arg] {
		if k == result {
			return
		}
	}
	panic(condition.Internal("no kernel loop for %s -> %s", arg, result))
}
