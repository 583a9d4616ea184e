package vector

// Special attribute keys.
const (
	AttrNames    = "names"
	AttrDim      = "dim"
	AttrDimNames = "dimnames"
	AttrRowNames = "row.names"
	AttrClass    = "class"
	AttrLevels   = "levels"
)

// Attributes is the key-value store attached to a vector. Keys keep their
// insertion order.
type Attributes interface {
	Get(key string) (Value, bool)
	Set(key string, v Value)
	Remove(key string)
	Has(key string) bool
	Empty() bool
	Keys() []string
}

type attrEntry struct {
	key   string
	value Value
}

// AttrList is the default Attributes implementation, a small ordered list
// like a pairlist.
type AttrList struct {
	entries []attrEntry
}

// NewAttributes returns an empty store.
func NewAttributes() *AttrList {
	return &AttrList{}
}

func (a *AttrList) find(key string) int {
	for i, e := range a.entries {
		if e.key == key {
			return i
		}
	}
	return -1
}

func (a *AttrList) Get(key string) (Value, bool) {
	if a == nil {
		return nil, false
	}
	if i := a.find(key); i >= 0 {
		return a.entries[i].value, true
	}
	return nil, false
}

func (a *AttrList) Set(key string, v Value) {
	if i := a.find(key); i >= 0 {
		a.entries[i].value = v
		return
	}
	a.entries = append(a.entries, attrEntry{key: key, value: v})
}

func (a *AttrList) Remove(key string) {
	if a == nil {
		return
	}
	if i := a.find(key); i >= 0 {
		a.entries = append(a.entries[:i], a.entries[i+1:]...)
	}
}

func (a *AttrList) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

func (a *AttrList) Empty() bool {
	return a == nil || len(a.entries) == 0
}

func (a *AttrList) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, len(a.entries))
	for i, e := range a.entries {
		keys[i] = e.key
	}
	return keys
}

// Copy returns a shallow copy; attribute values are shared.
func (a *AttrList) Copy() *AttrList {
	if a == nil {
		return nil
	}
	out := &AttrList{entries: make([]attrEntry, len(a.entries))}
	copy(out.entries, a.entries)
	return out
}

// IsStructural reports whether key is one of the shape attributes that are
// reconciled separately from "regular" attributes.
func IsStructural(key string) bool {
	switch key {
	case AttrNames, AttrDim, AttrDimNames:
		return true
	}
	return false
}
