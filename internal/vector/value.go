package vector

import "fmt"

// Value is anything that can appear as an operand: vectors, NULL, the
// missing argument, closures, environments and unforced promises.
type Value interface {
	Kind() Kind
	Inspect() string
}

type nullValue struct{}

func (*nullValue) Kind() Kind      { return KindNull }
func (*nullValue) Inspect() string { return "NULL" }

type missingValue struct{}

func (*missingValue) Kind() Kind      { return KindMissing }
func (*missingValue) Inspect() string { return "" }

var (
	// Null is the NULL object.
	Null Value = &nullValue{}
	// Missing stands for an empty argument slot, as in x[, 1].
	Missing Value = &missingValue{}
)

func IsNull(v Value) bool    { return v == nil || v.Kind() == KindNull }
func IsMissing(v Value) bool { return v != nil && v.Kind() == KindMissing }

// Function is an opaque closure; only its identity matters here.
type Function struct {
	Name string
}

func (f *Function) Kind() Kind { return KindFunction }
func (f *Function) Inspect() string {
	return fmt.Sprintf("function %s", f.Name)
}

// Environment is an opaque variable frame.
type Environment struct {
	Name string
}

func (e *Environment) Kind() Kind { return KindEnvironment }
func (e *Environment) Inspect() string {
	return fmt.Sprintf("<environment: %s>", e.Name)
}

// Promise is a deferred value. It is forced through a Resolver.
type Promise struct {
	Label  string
	thunk  func() (Value, error)
	value  Value
	forced bool
}

// NewPromise wraps a computation that produces the promised value.
func NewPromise(label string, thunk func() (Value, error)) *Promise {
	return &Promise{Label: label, thunk: thunk}
}

func (p *Promise) Kind() Kind { return KindPromise }
func (p *Promise) Inspect() string {
	return fmt.Sprintf("<promise: %s>", p.Label)
}

// Forced reports whether the promise already holds its value.
func (p *Promise) Forced() bool { return p.forced }

// Resolver materialises deferred values.
type Resolver interface {
	Force(v Value) (Value, error)
}

// EagerResolver forces promises by running their thunk once and caching the
// result. Non-promise values are returned unchanged.
type EagerResolver struct{}

func (EagerResolver) Force(v Value) (Value, error) {
	p, ok := v.(*Promise)
	if !ok {
		return v, nil
	}
	if !p.forced {
		val, err := p.thunk()
		if err != nil {
			return nil, err
		}
		p.value, p.forced = val, true
	}
	// a promise may evaluate to another promise
	if inner, ok := p.value.(*Promise); ok {
		return EagerResolver{}.Force(inner)
	}
	return p.value, nil
}
