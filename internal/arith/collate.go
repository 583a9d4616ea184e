package arith

import (
	"fmt"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/funvibe/funvec/internal/config"
)

// Collator orders strings for the character comparison kernels.
type Collator interface {
	Compare(a, b string) int
}

// ByteOrder compares strings by their bytes, like the C locale.
type ByteOrder struct{}

func (ByteOrder) Compare(a, b string) int { return strings.Compare(a, b) }

type localeCollator struct {
	c *collate.Collator
}

func (l *localeCollator) Compare(a, b string) int { return l.c.CompareString(a, b) }

// NewCollator returns byte order for "C" or "", and a locale collator for a
// BCP-47 tag otherwise.
func NewCollator(name string) (Collator, error) {
	if name == "" || name == config.CollationC {
		return ByteOrder{}, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("invalid collation %q: %w", name, err)
	}
	return &localeCollator{c: collate.New(tag)}, nil
}
