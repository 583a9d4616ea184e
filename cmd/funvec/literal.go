package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/funvibe/funvec/internal/vector"
)

// parseValue reads a command-line literal: comma separated elements whose
// widest kind decides the vector kind, NULL, or _ for a missing argument.
func parseValue(s string) (vector.Value, error) {
	switch strings.TrimSpace(s) {
	case "_":
		return vector.Missing, nil
	case "NULL":
		return vector.Null, nil
	}
	return parseVector(s)
}

func parseVector(s string) (*vector.Vector, error) {
	trimmed := strings.TrimSpace(s)
	for _, k := range []vector.Kind{vector.KindLogical, vector.KindInteger, vector.KindDouble,
		vector.KindComplex, vector.KindCharacter, vector.KindRaw} {
		if trimmed == emptyLiteral(k) {
			return vector.Alloc(k, 0), nil
		}
	}

	tokens, err := splitTokens(s)
	if err != nil {
		return nil, err
	}
	scalars := make([]*vector.Vector, len(tokens))
	kind := vector.KindRaw
	for i, tok := range tokens {
		v, err := parseScalar(tok)
		if err != nil {
			return nil, err
		}
		scalars[i] = v
		if i == 0 {
			kind = v.Kind()
		} else if (kind == vector.KindRaw) != (v.Kind() == vector.KindRaw) {
			// raw only mixes with character
			kind = vector.KindCharacter
		} else {
			kind = vector.Promote(kind, v.Kind())
		}
	}

	out := vector.Alloc(kind, len(scalars))
	for i, sc := range scalars {
		c, _ := vector.Coerce(sc, kind)
		switch kind {
		case vector.KindLogical, vector.KindInteger:
			out.Ints()[i] = c.Ints()[0]
		case vector.KindDouble:
			out.Doubles()[i] = c.Doubles()[0]
		case vector.KindComplex:
			out.Complexes()[i] = c.Complexes()[0]
		case vector.KindCharacter:
			out.Strings()[i] = c.Strings()[0]
		case vector.KindRaw:
			out.Raws()[i] = c.Raws()[0]
		}
	}
	complete := true
	for i := range scalars {
		if out.IsNAAt(i) {
			complete = false
		}
	}
	out.SetComplete(complete)
	return out, nil
}

func emptyLiteral(k vector.Kind) string {
	if k == vector.KindDouble {
		return "numeric(0)"
	}
	return k.String() + "(0)"
}

// splitTokens splits on commas outside double quotes.
func splitTokens(s string) ([]string, error) {
	var (
		tokens  []string
		cur     strings.Builder
		inQuote bool
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case inQuote && r == '\\':
			cur.WriteRune(r)
			escaped = true
		case r == '"':
			cur.WriteRune(r)
			inQuote = !inQuote
		case r == ',' && !inQuote:
			tokens = append(tokens, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated string in %q", s)
	}
	tokens = append(tokens, strings.TrimSpace(cur.String()))
	return tokens, nil
}

func parseScalar(tok string) (*vector.Vector, error) {
	switch tok {
	case "TRUE", "T":
		return vector.Logicals(true), nil
	case "FALSE", "F":
		return vector.Logicals(false), nil
	case "NA":
		return vector.NewLogical([]int32{vector.NALogical}), nil
	case "NA_integer_":
		return vector.Integers(vector.NAInteger), nil
	case "NA_real_":
		return vector.Doubles(vector.NADouble), nil
	case "NA_character_":
		return vector.Characters(vector.NAString), nil
	case "Inf":
		return vector.Doubles(math.Inf(1)), nil
	case "-Inf":
		return vector.Doubles(math.Inf(-1)), nil
	case "NaN":
		return vector.Doubles(math.NaN()), nil
	}
	if strings.HasPrefix(tok, `"`) {
		s, err := strconv.Unquote(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid string literal %s", tok)
		}
		return vector.Characters(s), nil
	}
	if strings.HasPrefix(tok, "0x") && len(tok) <= 4 {
		if b, err := strconv.ParseUint(tok[2:], 16, 8); err == nil {
			return vector.Raws(byte(b)), nil
		}
	}
	if strings.HasSuffix(tok, "L") {
		if n, err := strconv.ParseInt(strings.TrimSuffix(tok, "L"), 10, 32); err == nil && n != math.MinInt32 {
			return vector.Integers(int32(n)), nil
		}
	}
	if d, err := strconv.ParseFloat(tok, 64); err == nil {
		return vector.Doubles(d), nil
	}
	if strings.HasSuffix(tok, "i") {
		if z, err := strconv.ParseComplex(tok, 128); err == nil {
			return vector.Complexes(z), nil
		}
	}
	return vector.Characters(tok), nil
}

// parseInts reads a comma separated list of non-negative extents.
func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid extent %q", p)
		}
		out[i] = n
	}
	return out, nil
}
