package elementwise

import "github.com/funvibe/funvec/internal/nacheck"

// recycle calls fn for every result index with the matching operand
// indices. Equal lengths step together, a length-1 operand is held
// constant, anything else wraps.
func recycle(n, nl, nr int, fn func(i, li, ri int)) {
	switch {
	case nl == nr:
		for i := 0; i < n; i++ {
			fn(i, i, i)
		}
	case nl == 1:
		for i := 0; i < n; i++ {
			fn(i, 0, i)
		}
	case nr == 1:
		for i := 0; i < n; i++ {
			fn(i, i, 0)
		}
	default:
		li, ri := 0, 0
		for i := 0; i < n; i++ {
			fn(i, li, ri)
			if li++; li == nl {
				li = 0
			}
			if ri++; ri == nr {
				ri = 0
			}
		}
	}
}

// binaryLoop applies one kernel over typed slices. A is the argument
// element type, R the result element type. When out aliases left or right
// the writes are safe: index i is read before it is written and never read
// again.
type binaryLoop[A, R any] struct {
	left, right []A
	out         []R

	argNA     func(A) bool
	resNA     func(R) bool
	na        R
	handlesNA bool
	fn        func(a, b A) R

	lcheck, rcheck nacheck.Check
	introduced     bool
}

func (b *binaryLoop[A, R]) at(i, li, ri int) {
	x, y := b.left[li], b.right[ri]
	xNA := b.lcheck.Enabled() && b.argNA(x)
	if xNA {
		b.lcheck.Mark()
	}
	yNA := b.rcheck.Enabled() && b.argNA(y)
	if yNA {
		b.rcheck.Mark()
	}
	if (xNA || yNA) && !b.handlesNA {
		b.out[i] = b.na
		return
	}
	r := b.fn(x, y)
	if !xNA && !yNA && b.resNA(r) {
		b.introduced = true
	}
	b.out[i] = r
}

func (b *binaryLoop[A, R]) run(n, nl, nr int) {
	if n == 1 {
		b.at(0, 0, 0)
		return
	}
	recycle(n, nl, nr, b.at)
}

func (b *binaryLoop[A, R]) checks() (*nacheck.Check, *nacheck.Check) { return &b.lcheck, &b.rcheck }

func (b *binaryLoop[A, R]) introducedNA() bool { return b.introduced }

// unaryLoop is the single-operand counterpart of binaryLoop.
type unaryLoop[A, R any] struct {
	in  []A
	out []R

	argNA func(A) bool
	na    R
	fn    func(A) R

	// nan reports a NaN produced from a non-NaN input, for the
	// "NaNs produced" warning.
	nan   func(in A, out R) bool
	check nacheck.Check
	nans  bool
}

func (u *unaryLoop[A, R]) at(i int) {
	x := u.in[i]
	if u.check.Enabled() && u.argNA(x) {
		u.check.Mark()
		u.out[i] = u.na
		return
	}
	r := u.fn(x)
	if u.nan != nil && u.nan(x, r) {
		u.nans = true
	}
	u.out[i] = r
}

func (u *unaryLoop[A, R]) run(n int) {
	if n == 1 {
		u.at(0)
		return
	}
	for i := 0; i < n; i++ {
		u.at(i)
	}
}

func (u *unaryLoop[A, R]) neverSeenNA() bool { return u.check.NeverSeenNA() }

func (u *unaryLoop[A, R]) producedNaN() bool { return u.nans }
