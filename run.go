package mockfx

import (
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

// Step is the payload of an executable test tree: one test case, handed the
// ambient Scope to record assertions into. The step decides which effect
// interpreter it runs its code under test against.
type Step func(s *Scope)

// Scope carries the ambient context of one executing test case and collects
// the assertions it records, in order.
type Scope struct {
	path     []string
	recorded []Assertion
}

// Context returns the slash-joined label path, "A/B" under
// Label("A", Label("B", ...)).
func (s *Scope) Context() string {
	return strings.Join(s.path, "/")
}

// Record stamps the assertion with the ambient context and keeps it.
func (s *Scope) Record(a Assertion) {
	a.Context = s.Context()
	s.recorded = append(s.recorded, a)
}

// Check records the primitive assertion directly.
func (s *Scope) Check(ok bool, statement, justification string) {
	s.Record(AssertIf(ok, statement, justification))
}

// Assertions returns everything recorded so far, in order.
func (s *Scope) Assertions() []Assertion {
	return s.recorded
}

// Run executes every case of the tree in order and summarizes all recorded
// assertions. A failing case never aborts its siblings: failures are
// recorded values, not control flow. Each case gets a fresh Scope whose
// context is exactly the labels above it, so the ambient context reverts by
// construction when a labeled subtree finishes.
func Run(tr Tree[Step]) Summary {
	var all []Assertion
	Walk(tr, func(path []string, step Step) {
		scope := &Scope{path: path}
		step(scope)
		all = append(all, scope.recorded...)
	})
	return SummarizeAll(all)
}

// Report logs every failure and the totals through the supplied logger.
func Report(logger *slog.Logger, s Summary) {
	for _, f := range s.Failed {
		logger.Error("assertion failed",
			"context", f.Context,
			"statement", f.Statement,
			"because", f.Justification,
		)
	}
	logger.Info("run complete", "assertions", s.Total(), "failures", s.Failures)
}

// NewReportLogger builds the tinted logger Report is normally used with.
func NewReportLogger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: "15:04:05",
	}))
}
