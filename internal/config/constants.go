package config

// OptionFileExtensions are the recognised option file extensions.
var OptionFileExtensions = []string{".yaml", ".yml", ".toml"}

// Environment variables consulted on top of the option file.
const (
	EnvLogLevel = "FUNVEC_LOG_LEVEL"
	EnvNoColor  = "NO_COLOR"
)

// CollationC selects byte-order string comparison.
const CollationC = "C"

// Name matching modes for [[ lookups.
const (
	ExactTrue  = "true"
	ExactFalse = "false"
	ExactNA    = "na"
)

// Binary operator symbols.
const (
	OpAdd    = "+"
	OpSub    = "-"
	OpMul    = "*"
	OpDiv    = "/"
	OpIntDiv = "%/%"
	OpMod    = "%%"
	OpPow    = "^"
	OpEq     = "=="
	OpNe     = "!="
	OpLt     = "<"
	OpLe     = "<="
	OpGt     = ">"
	OpGe     = ">="
	OpAnd    = "&"
	OpOr     = "|"
	OpMin    = "pmin"
	OpMax    = "pmax"
)

// Unary operator and math function names.
const (
	OpNot     = "!"
	OpAbs     = "abs"
	OpSqrt    = "sqrt"
	OpExp     = "exp"
	OpLog     = "log"
	OpFloor   = "floor"
	OpCeiling = "ceiling"
	OpTrunc   = "trunc"
	OpSign    = "sign"
)
