// Package session bundles the engines and settings of one evaluation run:
// options, logging, warning collection and string collation.
package session

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/funvibe/funvec/internal/arith"
	"github.com/funvibe/funvec/internal/condition"
	"github.com/funvibe/funvec/internal/config"
	"github.com/funvibe/funvec/internal/elementwise"
	"github.com/funvibe/funvec/internal/extract"
	"github.com/funvibe/funvec/internal/logger"
	"github.com/funvibe/funvec/internal/subscript"
	"github.com/funvibe/funvec/internal/vector"
)

// Session is not safe for concurrent use; create one per run.
type Session struct {
	ID      uuid.UUID
	Options *config.Options
	Log     *logger.Logger

	Collator  arith.Collator
	Engine    *elementwise.Engine
	Extractor *extract.Extractor

	exact    subscript.Exact
	warnings condition.Collector
	base     *logger.Logger
}

// New builds a session from opts. Log output goes to opts.LogFile when set,
// otherwise to logOut.
func New(opts *config.Options, logOut io.Writer) (*Session, error) {
	if opts == nil {
		opts = config.DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	exact, err := subscript.ParseExact(strings.ToLower(opts.Exact))
	if err != nil {
		return nil, err
	}
	collator, err := arith.NewCollator(opts.Collation)
	if err != nil {
		return nil, err
	}

	level := logger.ParseLevel(opts.LogLevel)
	var base *logger.Logger
	if opts.LogFile != "" {
		base, err = logger.NewFile(opts.LogFile, level)
		if err != nil {
			base.Warnf("%v", err)
		}
	} else {
		if logOut == nil {
			logOut = os.Stderr
		}
		base = logger.New(logOut, level, opts.Color)
	}

	s := &Session{
		ID:       uuid.New(),
		Options:  opts,
		Collator: collator,
		exact:    exact,
		base:     base,
	}
	s.Log = base.With(fmt.Sprintf("[%s] ", s.ID.String()[:8]))

	s.Engine = elementwise.New(s, collator)
	s.Engine.KeepAttributes = opts.KeepAttributes
	s.Engine.Log = s.Log
	s.Extractor = &extract.Extractor{Exact: exact, Warner: s}

	s.Log.Debugf("session started: collation=%s exact=%s", opts.Collation, opts.Exact)
	return s, nil
}

// Warn collects w and logs it. Session implements condition.Warner.
func (s *Session) Warn(w condition.Warning) {
	s.warnings.Warn(w)
	s.Log.Warnf("%s", w.Message)
}

// Warnings returns the warnings raised so far, oldest first.
func (s *Session) Warnings() []condition.Warning {
	return s.warnings.Warnings
}

// ClearWarnings forgets collected warnings, e.g. between REPL commands.
func (s *Session) ClearWarnings() {
	s.warnings.Warnings = nil
}

// Err reports collected warnings as an error when WarnAsError is set.
func (s *Session) Err() error {
	if !s.Options.WarnAsError || len(s.warnings.Warnings) == 0 {
		return nil
	}
	first := s.warnings.Warnings[0]
	if n := len(s.warnings.Warnings); n > 1 {
		return fmt.Errorf("%s (and %d more warnings)", first.Message, n-1)
	}
	return fmt.Errorf("%s", first.Message)
}

// Resolver returns a subscript resolver for one dimension configured with
// the session's matching mode and warning sink.
func (s *Session) Resolver(subset, assign bool) *subscript.Resolver {
	return &subscript.Resolver{
		NumDims: 1,
		Subset:  subset,
		Assign:  assign,
		Exact:   s.exact,
		Values:  vector.EagerResolver{},
		Warner:  s,
	}
}

// At returns an extractor that attaches loc to the errors it raises.
func (s *Session) At(loc condition.Location) *extract.Extractor {
	e := *s.Extractor
	e.Location = loc
	return &e
}

// Close releases the log file, if any.
func (s *Session) Close() error {
	return s.base.Close()
}
