package mockfx

import "fmt"

// FaultKind classifies a simulated or live failure.
type FaultKind int

const (
	// FaultEndOfInput signals a read past the end of available input.
	FaultEndOfInput FaultKind = iota

	// FaultNotFound signals a read against a path that does not exist.
	FaultNotFound

	// FaultStorageFull signals a write rejected because storage is full.
	FaultStorageFull

	// FaultTransport signals an HTTP call that failed below the response
	// level (connection refused, scripted transport error, and so on).
	FaultTransport

	// FaultRaised signals a failure raised by the computation itself
	// (under the live interpreter, a recovered panic).
	FaultRaised
)

// String returns a short tag for the kind.
func (k FaultKind) String() string {
	switch k {
	case FaultEndOfInput:
		return "END_OF_INPUT"
	case FaultNotFound:
		return "NOT_FOUND"
	case FaultStorageFull:
		return "STORAGE_FULL"
	case FaultTransport:
		return "TRANSPORT"
	case FaultRaised:
		return "RAISED"
	default:
		return fmt.Sprintf("FAULT(%d)", int(k))
	}
}

// Fault is an inert failure value. Capability operations never return it
// directly and never panic with it; it sits in the captured-fault slot of the
// interpreter until the caller inspects it, typically through Trier.Attempt.
//
// Fault implements error so the live side can hand it to ordinary
// error-consuming code, but within this package it is only ever a value.
type Fault struct {
	Kind FaultKind
	Msg  string

	// Cause carries the underlying error on the live side. Mock faults
	// leave it nil.
	Cause error
}

// NewFault builds a fault with no underlying cause.
func NewFault(kind FaultKind, msg string) *Fault {
	return &Fault{Kind: kind, Msg: msg}
}

func (f *Fault) Error() string {
	if f.Msg == "" {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
}

// Unwrap exposes the underlying cause, if any.
func (f *Fault) Unwrap() error {
	return f.Cause
}
