package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/funvibe/funvec/internal/arith"
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/config"
	"github.com/funvibe/funvec/internal/dbframe"
	"github.com/funvibe/funvec/internal/printer"
	"github.com/funvibe/funvec/internal/session"
	"github.com/funvibe/funvec/internal/vector"
)

const (
	exitOK        = 0
	exitCondition = 1
	exitUsage     = 2
)

const usage = `Usage:
  funvec [-config file] arith <op> <left> <right>
  funvec [-config file] unary <op> <operand>
  funvec [-config file] index [-assign] [-elem] [-value v] [-names a,b,c] [-dim 2,3 [-axis 0]] <container> <subscript>
  funvec [-config file] table -driver sqlite -dsn file.db -query "select ..." [-proto]

Literals are comma separated: TRUE/FALSE/NA, 1L integers, 1.5 doubles,
1+2i complex, 0x1f raw, "quoted" or bare strings, NULL, and _ for a
missing subscript. Separate per-dimension subscripts with ';'.
`

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, a ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, a...)}
}

// app is one CLI invocation.
type app struct {
	sess   *session.Session
	stdout io.Writer
	stderr io.Writer
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(exitCondition)
		}
	}()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("funvec", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := global.String("config", "", "option file (.yaml, .yml or .toml)")
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	rest := global.Args()
	if len(rest) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	opts := config.DefaultOptions()
	if *configPath != "" {
		loaded, err := config.LoadOptions(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return exitUsage
		}
		opts = loaded
	}
	opts.ApplyEnv()

	sess, err := session.New(opts, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitUsage
	}
	defer sess.Close()
	a := &app{sess: sess, stdout: stdout, stderr: stderr}

	var result vector.Value
	switch cmd, cmdArgs := rest[0], rest[1:]; cmd {
	case "arith":
		result, err = a.arith(cmdArgs)
	case "unary":
		result, err = a.unary(cmdArgs)
	case "index":
		result, err = a.index(cmdArgs)
	case "table":
		result, err = a.table(cmdArgs)
	case "help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		err = usagef("unknown command %q", cmd)
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Error: %s\n", uerr.msg)
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		a.printWarnings()
		return exitCondition
	}
	if result != nil {
		if err := printer.Fprint(stdout, result, opts.MaxPrint, opts.Color); err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", err)
			return exitCondition
		}
	}
	a.printWarnings()
	if err := sess.Err(); err != nil {
		fmt.Fprintf(stderr, "Error: warning promoted to error: %s\n", err)
		return exitCondition
	}
	return exitOK
}

func (a *app) printWarnings() {
	for _, w := range a.sess.Warnings() {
		fmt.Fprintln(a.stderr, w.String())
	}
}

func (a *app) arith(args []string) (vector.Value, error) {
	if len(args) != 3 {
		return nil, usagef("arith takes <op> <left> <right>")
	}
	k, ok := arith.BySymbol(args[0])
	if !ok {
		return nil, usagef("unknown operator %q", args[0])
	}
	left, err := parseVector(args[1])
	if err != nil {
		return nil, usagef("%s", err)
	}
	right, err := parseVector(args[2])
	if err != nil {
		return nil, usagef("%s", err)
	}
	// parsed literals have no other holder
	return a.sess.Engine.Binary(k, left.MarkTemporary(), right.MarkTemporary())
}

func (a *app) unary(args []string) (vector.Value, error) {
	if len(args) != 2 {
		return nil, usagef("unary takes <op> <operand>")
	}
	k, ok := arith.UnaryByName(args[0])
	if !ok {
		return nil, usagef("unknown function %q", args[0])
	}
	operand, err := parseVector(args[1])
	if err != nil {
		return nil, usagef("%s", err)
	}
	return a.sess.Engine.Unary(k, operand.MarkTemporary())
}

func (a *app) index(args []string) (vector.Value, error) {
	fs := flag.NewFlagSet("index", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	assign := fs.Bool("assign", false, "resolve as an assignment target")
	elem := fs.Bool("elem", false, "use [[ instead of [")
	value := fs.String("value", "", "replacement value; implies -assign")
	names := fs.String("names", "", "names for the container")
	dim := fs.String("dim", "", "dim attribute for the container")
	axis := fs.Int("axis", -1, "resolve a single subscript against this dimension")
	if err := fs.Parse(args); err != nil {
		return nil, usagef("%s", err)
	}
	if fs.NArg() != 2 {
		return nil, usagef("index takes <container> <subscript>")
	}
	x, err := parseVector(fs.Arg(0))
	if err != nil {
		return nil, usagef("%s", err)
	}
	if *names != "" {
		x.SetNames(vector.Characters(strings.Split(*names, ",")...))
	}
	dims, err := parseInts(*dim)
	if err != nil {
		return nil, usagef("%s", err)
	}
	if dims != nil {
		if vector.DimProduct(dims) != x.Len() {
			return nil, condition.DimsLengthMismatch(vector.DimProduct(dims), x.Len())
		}
		x.SetDims(dims)
	}
	x.Share()

	var subs []vector.Value
	for _, part := range strings.Split(fs.Arg(1), ";") {
		sub, err := parseValue(part)
		if err != nil {
			return nil, usagef("%s", err)
		}
		subs = append(subs, sub)
	}

	if *axis >= 0 {
		if len(subs) != 1 || *axis >= len(dims) {
			return nil, usagef("-axis needs -dim and a single subscript")
		}
		r := a.sess.Resolver(!*elem, *assign)
		r.Axis, r.NumDims = *axis, len(dims)
		return r.Resolve(x, subs[0])
	}

	ex := a.sess.Extractor
	switch {
	case *value != "":
		if len(subs) != 1 || *elem {
			return nil, usagef("-value works with a single [ subscript")
		}
		v, err := parseVector(*value)
		if err != nil {
			return nil, usagef("%s", err)
		}
		return ex.Replace(x, subs[0], v)
	case *assign:
		r := a.sess.Resolver(!*elem, true)
		if len(subs) != 1 {
			return nil, usagef("-assign resolves a single subscript")
		}
		return r.Resolve(x, subs[0])
	case *elem:
		if len(subs) != 1 {
			return nil, usagef("[[ takes a single subscript here")
		}
		return ex.Element(x, subs[0])
	case len(subs) > 1:
		return ex.Array(x, subs, true)
	}
	return ex.Subset(x, subs[0])
}

func (a *app) table(args []string) (vector.Value, error) {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	driver := fs.String("driver", dbframe.DriverSQLite, "sqlite or mysql")
	dsn := fs.String("dsn", "", "data source name")
	query := fs.String("query", "", "SQL query")
	proto := fs.Bool("proto", false, "print the frame as protobuf JSON")
	timeout := fs.Duration("timeout", 30*time.Second, "query timeout")
	if err := fs.Parse(args); err != nil {
		return nil, usagef("%s", err)
	}
	if *dsn == "" || *query == "" {
		return nil, usagef("table needs -dsn and -query")
	}
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	a.sess.Log.Debugf("loading %s table: %s", *driver, *query)
	f, err := dbframe.Load(ctx, *driver, *dsn, *query)
	if err != nil {
		return nil, err
	}
	if *proto {
		data, err := printer.MarshalJSON(f)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(a.stdout, string(data))
		return nil, nil
	}
	return f, nil
}
