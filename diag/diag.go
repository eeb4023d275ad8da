// Package diag implements the pipeline's diagnostic sink: an
// "errors since snapshot" counter threaded explicitly through the
// pipeline rather than kept as a process-wide global. A Sink is safe to
// snapshot and compare from multiple goroutines even though gosh's own
// evaluator is single-threaded.
package diag

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Severity classifies a diagnostic. The evaluator guard only cares about
// Error; Warning is for non-fatal diagnostics. (The display engine's
// missing-trailing-newline warning is written straight to its Printer,
// not through a Sink.)
type Severity int

const (
	Error Severity = iota
	Warning
)

// Diagnostic is one reported lex/parse/analysis problem or display
// warning.
type Diagnostic struct {
	Severity Severity
	Pos      fmt.Stringer
	Message  string
}

func (d Diagnostic) String() string {
	sev := "error"
	if d.Severity == Warning {
		sev = "warning"
	}
	if d.Pos != nil {
		return fmt.Sprintf("%s: %s: %s", d.Pos, sev, d.Message)
	}
	return fmt.Sprintf("%s: %s", sev, d.Message)
}

// Sink collects diagnostics for one pipeline invocation (or, in the REPL,
// one Session's lifetime) and exposes the monotonic error-count guard the
// evaluator uses to decide whether to run at all.
type Sink struct {
	errorCount int64 // atomic
	all        []Diagnostic
}

// NewSink creates an empty sink.
func NewSink() *Sink { return &Sink{} }

// Errorf records an error-severity diagnostic at pos and prints it to
// stderr as a single human-readable line: user-visible failures print
// rather than raise, so one bad expression doesn't end the session.
func (s *Sink) Errorf(pos fmt.Stringer, format string, args ...interface{}) {
	d := Diagnostic{Severity: Error, Pos: pos, Message: fmt.Sprintf(format, args...)}
	atomic.AddInt64(&s.errorCount, 1)
	s.all = append(s.all, d)
	fmt.Fprintln(os.Stderr, d.String())
}

// Warnf records a warning-severity diagnostic. Warnings do not affect the
// evaluator's run guard.
func (s *Sink) Warnf(pos fmt.Stringer, format string, args ...interface{}) {
	d := Diagnostic{Severity: Warning, Pos: pos, Message: fmt.Sprintf(format, args...)}
	s.all = append(s.all, d)
	fmt.Fprintln(os.Stderr, d.String())
}

// Count returns the number of errors (not warnings) recorded so far.
func (s *Sink) Count() int {
	return int(atomic.LoadInt64(&s.errorCount))
}

// Snapshot returns an opaque marker of the current error count, to be
// passed to ErrorsSince.
func (s *Sink) Snapshot() int64 {
	return atomic.LoadInt64(&s.errorCount)
}

// ErrorsSince reports whether any error has been recorded since snapshot
// was taken. The evaluator calls this at run-phase entry and refuses to
// evaluate if it returns true — the "don't evaluate broken programs"
// guard, preserved from the original's process-wide atomic counter.
func (s *Sink) ErrorsSince(snapshot int64) bool {
	return atomic.LoadInt64(&s.errorCount) != snapshot
}

// All returns every diagnostic recorded so far, in order.
func (s *Sink) All() []Diagnostic {
	return s.all
}
