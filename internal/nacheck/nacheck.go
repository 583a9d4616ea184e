// Package nacheck tracks whether an operation has met an NA element.
//
// A Check is enabled against one operand. An operand already known to be
// complete disables the check, so per-element tests cost nothing. After the
// loop, NeverSeenNA tells whether the result can be flagged complete.
package nacheck

import "github.com/funvibe/funvec/internal/vector"

// Check records whether a map met NA in one operand.
type Check struct {
	enabled bool
	seenNA  bool
}

// Enable arms the check for v. It resets any earlier observation.
func (c *Check) Enable(v *vector.Vector) {
	c.enabled = !v.Complete()
	c.seenNA = false
}

// Enabled reports whether elements need testing at all.
func (c *Check) Enabled() bool { return c.enabled }

// Mark records an NA found by the caller. Callers test elements only
// while Enabled is true.
func (c *Check) Mark() { c.seenNA = true }

// NeverSeenNA reports that no NA was observed, either because the operand
// was complete or because every tested element was not NA.
func (c *Check) NeverSeenNA() bool {
	return !c.enabled || !c.seenNA
}

// Scan tests every element of v whatever its flag says, records the
// outcome with SetComplete and returns it. Callers that fill a vector
// without a Check use it once the data is final.
func Scan(v *vector.Vector) bool {
	for i, n := 0, v.Len(); i < n; i++ {
		if v.IsNAAt(i) {
			v.SetComplete(false)
			return false
		}
	}
	v.SetComplete(true)
	return true
}
