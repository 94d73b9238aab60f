package mockfx

import "time"

// Tick is a point on the interpreter's clock. Under the simulated
// interpreter it is a logical step counter; under the live interpreter it is
// nanoseconds since the Unix epoch. Comparisons within one interpreter are
// meaningful, absolute values across interpreters are not.
type Tick int64

// HandleID names an output or input handle.
type HandleID int

const (
	// Stdin is the primary input handle.
	Stdin HandleID = iota
	// Stdout is the primary output handle.
	Stdout
	// Stderr is the secondary output handle.
	Stderr
)

// String returns the conventional handle name.
func (h HandleID) String() string {
	switch h {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "handle?"
	}
}

// Session is an opaque network-session handle.
type Session struct {
	ID string
}

// Response is a structured HTTP-level reply.
type Response struct {
	Status int
	Header map[string]string
	Body   []byte
}

// Console is the terminal capability. Code under test obtains handles from
// StdinHandle/StdoutHandle and reads or writes through them without knowing
// whether a real terminal or a simulated buffer is behind them.
type Console interface {
	InputEcho() bool
	SetInputEcho(on bool)
	StdinHandle() HandleID
	StdoutHandle() HandleID
	ReadChar(h HandleID) rune
	ReadLine(h HandleID) string
	WriteChar(h HandleID, c rune)
	WriteString(h HandleID, s string)
	WriteLine(h HandleID, s string)
	Flush(h HandleID)
}

// Timer is the clock capability. Sleep consumes no wall time under the
// simulated interpreter.
type Timer interface {
	Sleep(d time.Duration)
	Now() Tick
}

// Trier runs an inner computation and converts whatever fault is captured
// afterwards into an explicit value. A nil result means success. Attempt
// never clears the captured fault; a stale fault from an earlier operation
// is reported as-is, so independent fault scenarios must reset state between
// them.
type Trier interface {
	Attempt(fn func()) *Fault
}

// Files is the filesystem capability. Failed operations capture a fault and
// return a zero value rather than an error.
type Files interface {
	FileExists(path string) bool
	ReadFile(path string) []byte
	WriteFile(path string, data []byte)
}

// Random is the pseudo-random capability.
type Random interface {
	// NextInt draws one non-negative value from the full range.
	NextInt() int64
	// IntBetween draws one value from the closed interval [lo, hi].
	IntBetween(lo, hi int64) int64
}

// HTTP is the outbound-network capability. A nil Response means the call
// failed at the transport level; the fault is captured for Trier.Attempt.
type HTTP interface {
	Get(url string) *Response
	Post(url string, body []byte) *Response
	Delete(url string) *Response
	NewSession() Session
}

// Effects is the full capability set code under test is written against.
// It is satisfied interchangeably by Sim (deterministic, in-memory) and
// Live (real terminal, filesystem, clock, and network).
type Effects interface {
	Console
	Timer
	Trier
	Files
	Random
	HTTP
}
