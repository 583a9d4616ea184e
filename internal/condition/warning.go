package condition

// WarningKind classifies a warning.
type WarningKind int

const (
	LengthNotMultiple WarningKind = iota + 1
	IntegerOverflow
	NAsIntroduced
	NaNsProduced
	ImaginaryDiscarded
	PartialMatch
)

var warningNames = map[WarningKind]string{
	LengthNotMultiple:  "LengthNotMultiple",
	IntegerOverflow:    "IntegerOverflow",
	NAsIntroduced:      "NAsIntroduced",
	NaNsProduced:       "NaNsProduced",
	ImaginaryDiscarded: "ImaginaryDiscarded",
	PartialMatch:       "PartialMatch",
}

func (k WarningKind) String() string { return warningNames[k] }

// Warning is a recoverable, user-visible condition. Execution continues with
// a best-effort result.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return "Warning: " + w.Message }

// Warner receives warnings as they are raised.
type Warner interface {
	Warn(w Warning)
}

// Collector is a Warner that keeps everything in order.
type Collector struct {
	Warnings []Warning
}

func (c *Collector) Warn(w Warning) { c.Warnings = append(c.Warnings, w) }

// Has reports whether a warning of the given kind was raised.
func (c *Collector) Has(kind WarningKind) bool {
	for _, w := range c.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

// Discard drops warnings.
type Discard struct{}

func (Discard) Warn(Warning) {}

// NotMultiple is raised when recycling lengths do not divide evenly.
func NotMultiple() Warning {
	return Warning{Kind: LengthNotMultiple, Message: "longer object length is not a multiple of shorter object length"}
}

// Overflow is raised when an integer kernel produced NA from non-NA inputs.
func Overflow() Warning {
	return Warning{Kind: IntegerOverflow, Message: "NAs produced by integer overflow"}
}

// CoercionNAs is raised when strings failed to parse as numbers.
func CoercionNAs() Warning {
	return Warning{Kind: NAsIntroduced, Message: "NAs introduced by coercion"}
}

// IntRangeNAs is raised when doubles fell outside the 32-bit range.
func IntRangeNAs() Warning {
	return Warning{Kind: NAsIntroduced, Message: "NAs introduced by coercion to integer range"}
}

// NaNs is raised when a math function turned a number into NaN.
func NaNs() Warning {
	return Warning{Kind: NaNsProduced, Message: "NaNs produced"}
}

// ImaginaryParts is raised when complex values lost a non-zero imaginary part.
func ImaginaryParts() Warning {
	return Warning{Kind: ImaginaryDiscarded, Message: "imaginary parts discarded in coercion"}
}

// Partial is raised when a [[ name matched by prefix.
func Partial(name, match string) Warning {
	return Warning{Kind: PartialMatch, Message: "partial match of '" + name + "' to '" + match + "'"}
}

// ReplacementNotMultiple is raised when an assignment value does not divide the targets.
func ReplacementNotMultiple() Warning {
	return Warning{Kind: LengthNotMultiple, Message: "number of items to replace is not a multiple of replacement length"}
}
