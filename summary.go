package mockfx

import (
	"fmt"
	"io"
)

// Summary aggregates many assertions into pass/fail counts plus the failing
// assertions in original order. It is a monoid: the zero value is the
// identity and Combine is associative, so summaries of nested groups can be
// merged in any grouping without changing the result.
//
// Summaries are derived from assertions by a pure fold; they are recomputed,
// never mutated incrementally.
type Summary struct {
	Successes int
	Failures  int
	Failed    []Assertion
}

// Combine merges two summaries, left before right.
func (s Summary) Combine(o Summary) Summary {
	out := Summary{
		Successes: s.Successes + o.Successes,
		Failures:  s.Failures + o.Failures,
	}
	// Identity stays exact: no empty non-nil slice is ever materialized.
	if len(s.Failed)+len(o.Failed) > 0 {
		out.Failed = make([]Assertion, 0, len(s.Failed)+len(o.Failed))
		out.Failed = append(out.Failed, s.Failed...)
		out.Failed = append(out.Failed, o.Failed...)
	}
	return out
}

// Total is the number of assertions summarized.
func (s Summary) Total() int {
	return s.Successes + s.Failures
}

// Summarize folds a single assertion into a summary.
func Summarize(a Assertion) Summary {
	if a.Outcome == Pass {
		return Summary{Successes: 1}
	}
	return Summary{Failures: 1, Failed: []Assertion{a}}
}

// SummarizeAll folds assertions left to right.
func SummarizeAll(as []Assertion) Summary {
	var s Summary
	for _, a := range as {
		s = s.Combine(Summarize(a))
	}
	return s
}

// WriteReport renders each failure followed by the totals:
//
//	FAIL: <statement>
//	  context: <context>
//	  because: <justification>
//	Assertions: <total>
//	Failures: <count>
func (s Summary) WriteReport(w io.Writer) error {
	for _, f := range s.Failed {
		if _, err := fmt.Fprintln(w, f.String()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Assertions: %d\nFailures: %d\n", s.Total(), s.Failures); err != nil {
		return err
	}
	return nil
}
