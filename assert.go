package mockfx

import (
	"fmt"
	"strings"
)

// Outcome is the fixed result of one assertion.
type Outcome int

const (
	// Pass marks an assertion whose predicate held.
	Pass Outcome = iota
	// Fail marks an assertion whose predicate did not hold.
	Fail
)

func (o Outcome) String() string {
	if o == Pass {
		return "PASS"
	}
	return "FAIL"
}

// Assertion is one falsifiable claim: a statement of what was checked, the
// test author's justification for why it should hold, the ambient context it
// was made under, and the outcome. Immutable once constructed; the outcome
// is fixed at construction and never re-evaluated.
type Assertion struct {
	Statement     string
	Justification string
	Context       string
	Outcome       Outcome
}

// String renders the assertion for the failure report.
func (a Assertion) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", a.Outcome, a.Statement)
	if a.Context != "" {
		fmt.Fprintf(&b, "\n  context: %s", a.Context)
	}
	if a.Justification != "" {
		fmt.Fprintf(&b, "\n  because: %s", a.Justification)
	}
	return b.String()
}

// AssertIf is the single primitive every other constructor reduces to: Pass
// when ok is true, Fail otherwise, with statement and justification kept
// verbatim. Context is attached when the assertion is recorded in a Scope.
func AssertIf(ok bool, statement, justification string) Assertion {
	outcome := Fail
	if ok {
		outcome = Pass
	}
	return Assertion{
		Statement:     statement,
		Justification: justification,
		Outcome:       outcome,
	}
}

// IsTrue asserts that v is true.
func IsTrue(v bool, justification string) Assertion {
	return AssertIf(v, fmt.Sprintf("%v is true", v), justification)
}

// IsFalse asserts that v is false.
func IsFalse(v bool, justification string) Assertion {
	return AssertIf(!v, fmt.Sprintf("%v is false", v), justification)
}

// Equal asserts exact equality. No tolerance is applied to any type,
// floating point included.
func Equal[T comparable](got, want T, justification string) Assertion {
	return AssertIf(got == want, fmt.Sprintf("%v is equal to %v", got, want), justification)
}

// NotEqual asserts exact inequality.
func NotEqual[T comparable](got, other T, justification string) Assertion {
	return AssertIf(got != other, fmt.Sprintf("%v is not equal to %v", got, other), justification)
}

// Substring asserts that needle occurs within hay.
func Substring(needle, hay, justification string) Assertion {
	return AssertIf(strings.Contains(hay, needle),
		fmt.Sprintf("%q is a substring of %q", needle, hay), justification)
}

// NotSubstring asserts that needle does not occur within hay.
func NotSubstring(needle, hay, justification string) Assertion {
	return AssertIf(!strings.Contains(hay, needle),
		fmt.Sprintf("%q is not a substring of %q", needle, hay), justification)
}

// SubstringNamed is Substring for large haystacks: the statement names the
// haystack instead of embedding it.
func SubstringNamed(name, needle, hay string) Assertion {
	return AssertIf(strings.Contains(hay, needle),
		fmt.Sprintf("%q is a substring of %s", needle, name), "")
}

// NotSubstringNamed is NotSubstring for large haystacks.
func NotSubstringNamed(name, needle, hay string) Assertion {
	return AssertIf(!strings.Contains(hay, needle),
		fmt.Sprintf("%q is not a substring of %s", needle, name), "")
}
