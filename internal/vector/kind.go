package vector

// Kind identifies the element type of a value.
type Kind uint8

const (
	KindNull Kind = iota
	KindMissing
	KindRaw
	KindLogical
	KindInteger
	KindDouble
	KindComplex
	KindCharacter
	KindList
	KindFunction
	KindEnvironment
	KindPromise
)

var kindNames = [...]string{
	KindNull:        "NULL",
	KindMissing:     "symbol",
	KindRaw:         "raw",
	KindLogical:     "logical",
	KindInteger:     "integer",
	KindDouble:      "double",
	KindComplex:     "complex",
	KindCharacter:   "character",
	KindList:        "list",
	KindFunction:    "closure",
	KindEnvironment: "environment",
	KindPromise:     "promise",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsAtomic reports whether vectors of this kind hold scalar elements.
func (k Kind) IsAtomic() bool {
	return k >= KindRaw && k <= KindCharacter
}

// IsNumeric reports whether the kind takes part in arithmetic.
// Logical counts as numeric, raw and character do not.
func (k Kind) IsNumeric() bool {
	return k == KindLogical || k == KindInteger || k == KindDouble || k == KindComplex
}

// Promote returns the common kind two atomic kinds coerce to,
// following raw < logical < integer < double < complex < character.
func Promote(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}
