// Package printer renders values the way an interactive session shows
// them: atomic vectors with [i] index prefixes wrapped to the line width,
// named vectors as aligned name/value rows, matrices with row and column
// labels, lists element by element and frames as tables.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/funvibe/funvec/internal/logger"
	"github.com/funvibe/funvec/internal/vector"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

const labelColor = "\033[90m"
const resetColor = "\033[0m"

// Width returns the column count of the terminal behind w, or
// DefaultWidth.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok && logger.IsTerminal(w) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return DefaultWidth
}

// Printer renders values into a buffer.
type Printer struct {
	buf       bytes.Buffer
	lineWidth int
	maxPrint  int // 0 = unlimited
	color     bool
}

// New returns a printer wrapping at lineWidth. maxPrint caps the number of
// elements shown; 0 means no cap.
func New(lineWidth, maxPrint int) *Printer {
	if lineWidth <= 0 {
		lineWidth = DefaultWidth
	}
	return &Printer{lineWidth: lineWidth, maxPrint: maxPrint}
}

// SetColor greys out index labels.
func (p *Printer) SetColor(on bool) { p.color = on }

// Fprint writes v to w sized to w's width. Colour is only used on
// terminals.
func Fprint(w io.Writer, v vector.Value, maxPrint int, color bool) error {
	p := New(Width(w), maxPrint)
	p.SetColor(color && logger.IsTerminal(w))
	_, err := io.WriteString(w, p.Format(v))
	return err
}

// Format renders v, one trailing newline included.
func (p *Printer) Format(v vector.Value) string {
	p.buf.Reset()
	p.value(v, "")
	return p.buf.String()
}

func (p *Printer) line(s string) {
	p.buf.WriteString(strings.TrimRight(s, " "))
	p.buf.WriteByte('\n')
}

func (p *Printer) label(s string) string {
	if p.color {
		return labelColor + s + resetColor
	}
	return s
}

func (p *Printer) value(v vector.Value, prefix string) {
	switch x := v.(type) {
	case nil:
		p.line("NULL")
	case *vector.Frame:
		p.frame(x)
	case *vector.Vector:
		switch {
		case x.Kind() == vector.KindList && vector.HasClass(x, "data.frame"):
			p.frame(&vector.Frame{Vector: x})
		case x.Kind() == vector.KindList:
			p.list(x, prefix)
		case vector.IsFactor(x):
			p.factor(x)
		case len(x.Dims()) == 2:
			p.matrix(x)
		default:
			p.atomic(x)
		}
	default:
		p.line(v.Inspect())
	}
}

func emptyName(k vector.Kind) string {
	if k == vector.KindDouble {
		return "numeric(0)"
	}
	return k.String() + "(0)"
}

// shown applies the max print limit.
func (p *Printer) shown(n int) int {
	if p.maxPrint > 0 && n > p.maxPrint {
		return p.maxPrint
	}
	return n
}

func (p *Printer) omitted(n, shown int) {
	if shown < n {
		p.line(fmt.Sprintf(" [ reached getOption(\"max.print\") -- omitted %d entries ]", n-shown))
	}
}

func (p *Printer) atomic(v *vector.Vector) {
	n := v.Len()
	if n == 0 {
		p.line(emptyName(v.Kind()))
		return
	}
	shown := p.shown(n)
	cells := cells(v, shown, true)
	if names := v.Names(); names != nil {
		p.named(cells, names.Strings()[:shown])
	} else {
		p.indexed(cells, v.Kind() == vector.KindCharacter)
	}
	p.omitted(n, shown)
}

// indexed lays cells out in rows prefixed by the index of their first
// element. Strings are left aligned, everything else right aligned.
func (p *Printer) indexed(cells []string, left bool) {
	w := maxWidth(cells)
	labelWidth := len(fmt.Sprintf("[%d]", len(cells)))
	perLine := max(1, (p.lineWidth-labelWidth)/(w+1))
	for start := 0; start < len(cells); start += perLine {
		var b strings.Builder
		b.WriteString(p.label(padLeft(fmt.Sprintf("[%d]", start+1), labelWidth)))
		for _, c := range cells[start:min(start+perLine, len(cells))] {
			b.WriteByte(' ')
			if left {
				b.WriteString(padRight(c, w))
			} else {
				b.WriteString(padLeft(c, w))
			}
		}
		p.line(b.String())
	}
}

// named prints a names row above each row of values, all right aligned to
// a common column width.
func (p *Printer) named(cells, names []string) {
	labels := make([]string, len(names))
	for i, n := range names {
		if vector.IsNAString(n) {
			n = "<NA>"
		}
		labels[i] = n
	}
	w := max(maxWidth(cells), maxWidth(labels))
	perLine := max(1, (p.lineWidth+1)/(w+1))
	for start := 0; start < len(cells); start += perLine {
		end := min(start+perLine, len(cells))
		var top, bottom strings.Builder
		for i := start; i < end; i++ {
			if i > start {
				top.WriteByte(' ')
				bottom.WriteByte(' ')
			}
			top.WriteString(padLeft(labels[i], w))
			bottom.WriteString(padLeft(cells[i], w))
		}
		p.line(top.String())
		p.line(bottom.String())
	}
}

func (p *Printer) factor(v *vector.Vector) {
	levels := factorLevels(v)
	n := v.Len()
	if n == 0 {
		p.line("factor(0)")
	} else {
		shown := p.shown(n)
		p.indexed(factorCells(v, levels, shown), true)
		p.omitted(n, shown)
	}
	p.line("Levels: " + strings.Join(levels, " "))
}

func factorLevels(v *vector.Vector) []string {
	if lv, ok := v.Attr(vector.AttrLevels); ok {
		if lvv, ok := lv.(*vector.Vector); ok && lvv.Kind() == vector.KindCharacter {
			return lvv.Strings()
		}
	}
	return nil
}

func factorCells(v *vector.Vector, levels []string, n int) []string {
	out := make([]string, n)
	for i, code := range v.Ints()[:n] {
		if code == vector.NAInteger || int(code) < 1 || int(code) > len(levels) {
			out[i] = "<NA>"
			continue
		}
		out[i] = levels[code-1]
	}
	return out
}

func (p *Printer) matrix(v *vector.Vector) {
	dims := v.Dims()
	rows, cols := dims[0], dims[1]
	if rows*cols != v.Len() {
		p.atomic(v)
		return
	}
	all := cells(v, v.Len(), true)
	rowLabels := make([]string, rows)
	rowNames := vector.DimNamesAt(v, 0)
	for i := range rowLabels {
		if rowNames != nil {
			rowLabels[i] = rowNames.Strings()[i]
		} else {
			rowLabels[i] = fmt.Sprintf("[%d,]", i+1)
		}
	}
	colNames := vector.DimNamesAt(v, 1)
	colLabels := make([]string, cols)
	for j := range colLabels {
		if colNames != nil {
			colLabels[j] = colNames.Strings()[j]
		} else {
			colLabels[j] = fmt.Sprintf("[,%d]", j+1)
		}
	}
	p.table(rowLabels, colLabels, func(j int) []string { return all[j*rows : (j+1)*rows] }, v.Kind() == vector.KindCharacter)
}

// table prints labelled columns, wrapping whole columns to the line width.
func (p *Printer) table(rowLabels, colLabels []string, column func(j int) []string, left bool) {
	lw := maxWidth(rowLabels)
	widths := make([]int, len(colLabels))
	for j := range colLabels {
		widths[j] = max(len(colLabels[j]), maxWidth(column(j)))
	}
	for start := 0; start < len(colLabels) || start == 0; {
		end, used := start, lw
		for end < len(colLabels) && (end == start || used+1+widths[end] <= p.lineWidth) {
			used += 1 + widths[end]
			end++
		}
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", lw))
		for j := start; j < end; j++ {
			b.WriteByte(' ')
			if left {
				b.WriteString(padRight(colLabels[j], widths[j]))
			} else {
				b.WriteString(padLeft(colLabels[j], widths[j]))
			}
		}
		p.line(b.String())
		for i, rl := range rowLabels {
			b.Reset()
			b.WriteString(p.label(padRight(rl, lw)))
			for j := start; j < end; j++ {
				b.WriteByte(' ')
				if left {
					b.WriteString(padRight(column(j)[i], widths[j]))
				} else {
					b.WriteString(padLeft(column(j)[i], widths[j]))
				}
			}
			p.line(b.String())
		}
		if end >= len(colLabels) {
			break
		}
		start = end
	}
}

func (p *Printer) list(v *vector.Vector, prefix string) {
	elems := v.Elements()
	if len(elems) == 0 {
		p.line("list()")
		return
	}
	var names []string
	if n := v.Names(); n != nil {
		names = n.Strings()
	}
	for i, e := range elems {
		tag := fmt.Sprintf("[[%d]]", i+1)
		if i < len(names) && names[i] != "" && !vector.IsNAString(names[i]) {
			tag = "$" + names[i]
		}
		p.line(prefix + tag)
		p.value(e, prefix+tag)
		p.line("")
	}
}

func (p *Printer) frame(f *vector.Frame) {
	dims := f.Dims()
	rows, cols := dims[0], dims[1]
	if cols == 0 {
		p.line(fmt.Sprintf("data frame with 0 columns and %d rows", rows))
		return
	}
	var colLabels []string
	if names := f.Vector.Names(); names != nil {
		colLabels = names.Strings()
	} else {
		colLabels = make([]string, cols)
	}
	if rows == 0 {
		p.line("[1] " + strings.Join(colLabels, " "))
		p.line("<0 rows> (or 0-length row.names)")
		return
	}
	shown := p.shown(rows)
	rowLabels := make([]string, shown)
	labels := vector.DimNamesAt(f, 0)
	for i := range rowLabels {
		if labels != nil && i < labels.Len() {
			rowLabels[i] = labels.Strings()[i]
		} else {
			rowLabels[i] = strconv.Itoa(i + 1)
		}
	}
	columns := make([][]string, cols)
	for j := range columns {
		col := f.Column(j)
		switch {
		case col == nil:
			columns[j] = make([]string, shown)
		case vector.IsFactor(col):
			columns[j] = factorCells(col, factorLevels(col), shown)
		default:
			columns[j] = cells(col, shown, false)
		}
	}
	p.table(rowLabels, colLabels, func(j int) []string { return columns[j] }, false)
	p.omitted(rows, shown)
}

// cells formats the first n elements. Character elements are quoted when
// quote is set; NA strings print as NA quoted or <NA> unquoted.
func cells(v *vector.Vector, n int, quote bool) []string {
	if v.Kind() == vector.KindDouble {
		return formatDoubles(v.Doubles()[:n])
	}
	out := make([]string, n)
	for i := range out {
		if v.Kind() == vector.KindCharacter {
			s := v.Strings()[i]
			switch {
			case vector.IsNAString(s) && quote:
				out[i] = "NA"
			case vector.IsNAString(s):
				out[i] = "<NA>"
			case quote:
				out[i] = strconv.Quote(s)
			default:
				out[i] = s
			}
			continue
		}
		if v.Kind() == vector.KindList {
			out[i] = summary(v.Elements()[i])
			continue
		}
		out[i] = v.ElementString(i)
	}
	return out
}

func summary(e vector.Value) string {
	if vec, ok := e.(*vector.Vector); ok && vec.Len() == 1 && vec.Kind().IsAtomic() {
		return cells(vec, 1, false)[0]
	}
	if vec, ok := e.(*vector.Vector); ok {
		return fmt.Sprintf("%s,%d", vec.Kind(), vec.Len())
	}
	return e.Inspect()
}

// formatDoubles uses seven significant digits and a common number of
// decimals, falling back to per-element scientific notation when any
// element needs it.
func formatDoubles(ds []float64) []string {
	decimals, fixed := 0, true
	for _, d := range ds {
		if !finite(d) {
			continue
		}
		s := strconv.FormatFloat(d, 'g', 7, 64)
		if strings.ContainsRune(s, 'e') {
			fixed = false
			break
		}
		if i := strings.IndexByte(s, '.'); i >= 0 {
			decimals = max(decimals, len(s)-i-1)
		}
	}
	out := make([]string, len(ds))
	for i, d := range ds {
		switch {
		case !finite(d):
			out[i] = vector.FormatDouble(d)
		case fixed:
			out[i] = strconv.FormatFloat(d, 'f', decimals, 64)
		default:
			out[i] = strconv.FormatFloat(d, 'g', 7, 64)
		}
	}
	return out
}

func finite(d float64) bool {
	return d == d && d-d == 0
}

func maxWidth(cells []string) int {
	w := 0
	for _, c := range cells {
		w = max(w, len(c))
	}
	return w
}

func padLeft(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
