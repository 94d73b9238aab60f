package mockfx

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Sim is the deterministic interpreter: it implements every capability
// interface by pure transformations of an Env value. Each capability call
// consumes the current environment, produces a successor, and advances the
// clock by exactly one Tick, so timestamps observed by code under test
// increase in lockstep with program order. The i-th call of a run that
// starts at tick T observes T+(i-1).
//
// Faults never surface as Go errors from capability methods. A failing
// operation stores a *Fault in the environment and returns the zero value;
// callers detect it through Attempt or by inspecting Env().Fault. Stale
// faults are not cleared by later operations.
type Sim[S any] struct {
	env Env[S]
}

var _ Effects = (*Sim[int])(nil)

// NewSim builds a simulated interpreter over a fresh environment.
func NewSim[S any](r Responder[S], session Session, initial S) *Sim[S] {
	return &Sim[S]{env: NewEnv(r, session, initial)}
}

// FromEnv builds a simulated interpreter resuming from a prior snapshot.
func FromEnv[S any](e Env[S]) *Sim[S] {
	return &Sim[S]{env: e}
}

// Env returns the current environment snapshot. Snapshots stay valid:
// later operations never mutate them.
func (m *Sim[S]) Env() Env[S] {
	return m.env
}

// SetEnv replaces the environment wholesale, clock included.
func (m *Sim[S]) SetEnv(e Env[S]) {
	m.env = e
}

// Fault returns the currently captured fault, nil when none.
func (m *Sim[S]) Fault() *Fault {
	return m.env.Fault
}

// ClearFault explicitly resets the captured fault. Use it between
// independent fault-injection scenarios.
func (m *Sim[S]) ClearFault() {
	next := m.env
	next.Fault = nil
	m.env = next
}

// step installs the successor environment and spends the call's tick.
func (m *Sim[S]) step(next Env[S]) {
	next.Clock++
	m.env = next
}

// --- Console ---

func (m *Sim[S]) InputEcho() bool {
	on := m.env.Echo
	m.step(m.env)
	return on
}

func (m *Sim[S]) SetInputEcho(on bool) {
	next := m.env
	next.Echo = on
	m.step(next)
}

func (m *Sim[S]) StdinHandle() HandleID {
	m.step(m.env)
	return Stdin
}

func (m *Sim[S]) StdoutHandle() HandleID {
	m.step(m.env)
	return Stdout
}

// ReadLine pops the head of the pending queue; once the queue is empty it
// returns the default line forever, without consuming anything.
func (m *Sim[S]) ReadLine(HandleID) string {
	next := m.env
	var line string
	if p := next.Input.Pending; len(p) > 0 {
		line = p[0]
		next.Input.Pending = append([]string(nil), p[1:]...)
	} else {
		line = next.Input.Default
	}
	m.step(next)
	return line
}

// ReadChar consumes one rune from the head pending line, leaving the rest
// of the line queued. An empty head line reads as '\n' and is dropped. An
// exhausted queue serves runes from the default line without consuming it.
func (m *Sim[S]) ReadChar(HandleID) rune {
	next := m.env
	var c rune
	if p := next.Input.Pending; len(p) > 0 {
		if p[0] == "" {
			c = '\n'
			next.Input.Pending = append([]string(nil), p[1:]...)
		} else {
			r, size := utf8.DecodeRuneInString(p[0])
			c = r
			pending := append([]string(nil), p...)
			pending[0] = p[0][size:]
			next.Input.Pending = pending
		}
	} else if d := next.Input.Default; d != "" {
		c, _ = utf8.DecodeRuneInString(d)
	} else {
		c = '\n'
	}
	m.step(next)
	return c
}

func (m *Sim[S]) WriteChar(h HandleID, c rune) {
	m.write(h, string(c))
}

// WriteString records the write in PrintLog and, for Stdout, prepends it to
// ConsoleOut (most recent first).
func (m *Sim[S]) WriteString(h HandleID, s string) {
	m.write(h, s)
}

// WriteLine is WriteString of the text plus a line terminator, as a single
// step.
func (m *Sim[S]) WriteLine(h HandleID, s string) {
	m.write(h, s+"\n")
}

func (m *Sim[S]) Flush(HandleID) {
	m.step(m.env)
}

func (m *Sim[S]) write(h HandleID, s string) {
	next := m.env
	log := make([]HandleWrite, len(next.PrintLog), len(next.PrintLog)+1)
	copy(log, next.PrintLog)
	next.PrintLog = append(log, HandleWrite{Handle: h, Text: s})
	if h == Stdout {
		next.ConsoleOut = append([]string{s}, next.ConsoleOut...)
	}
	m.step(next)
}

// --- Timer ---

// Sleep consumes no wall time; like any other call it costs one tick.
func (m *Sim[S]) Sleep(time.Duration) {
	m.step(m.env)
}

func (m *Sim[S]) Now() Tick {
	now := m.env.Clock
	m.step(m.env)
	return now
}

// --- Trier ---

// Attempt runs fn and returns the fault captured afterwards, nil on
// success. It does not clear the fault it reports.
func (m *Sim[S]) Attempt(fn func()) *Fault {
	fn()
	fault := m.env.Fault
	m.step(m.env)
	return fault
}

// --- Files ---

func (m *Sim[S]) FileExists(string) bool {
	exists := m.env.FileExists
	m.step(m.env)
	return exists
}

// ReadFile fails with NOT_FOUND when existence is switched off, otherwise
// pops the next queued payload, failing with END_OF_INPUT when none remain.
func (m *Sim[S]) ReadFile(path string) []byte {
	next := m.env
	var data []byte
	switch {
	case !next.FileExists:
		next.Fault = NewFault(FaultNotFound, path)
	case len(next.FileIn) == 0:
		next.Fault = NewFault(FaultEndOfInput, path)
	default:
		data = next.FileIn[0]
		next.FileIn = append([][]byte(nil), next.FileIn[1:]...)
	}
	m.step(next)
	return data
}

// WriteFile fails with STORAGE_FULL when the full switch is on (nothing is
// enqueued), otherwise prepends the payload to FileOut.
func (m *Sim[S]) WriteFile(path string, data []byte) {
	next := m.env
	if next.FileFull {
		next.Fault = NewFault(FaultStorageFull, path)
	} else {
		next.FileOut = append([][]byte{data}, next.FileOut...)
	}
	m.step(next)
}

// --- Random ---

func (m *Sim[S]) NextInt() int64 {
	next := m.env
	v, seed := next.Seed.Next()
	next.Seed = seed
	m.step(next)
	return v
}

func (m *Sim[S]) IntBetween(lo, hi int64) int64 {
	next := m.env
	v, seed := next.Seed.Between(lo, hi)
	next.Seed = seed
	m.step(next)
	return v
}

// --- HTTP ---

func (m *Sim[S]) Get(url string) *Response {
	return m.roundTrip(url, func(e Env[S]) (*Response, S, error) {
		if e.Responder.Get == nil {
			return nil, e.Client, fmt.Errorf("no GET handler scripted")
		}
		return e.Responder.Get(e.Client, url)
	})
}

func (m *Sim[S]) Post(url string, body []byte) *Response {
	return m.roundTrip(url, func(e Env[S]) (*Response, S, error) {
		if e.Responder.Post == nil {
			return nil, e.Client, fmt.Errorf("no POST handler scripted")
		}
		return e.Responder.Post(e.Client, url, body)
	})
}

func (m *Sim[S]) Delete(url string) *Response {
	return m.roundTrip(url, func(e Env[S]) (*Response, S, error) {
		if e.Responder.Delete == nil {
			return nil, e.Client, fmt.Errorf("no DELETE handler scripted")
		}
		return e.Responder.Delete(e.Client, url)
	})
}

// NewSession returns the session fixed at construction; the simulated
// environment never renegotiates.
func (m *Sim[S]) NewSession() Session {
	s := m.env.Session
	m.step(m.env)
	return s
}

// roundTrip invokes one scripted handler, threading client-local state and
// converting a transport error into a captured fault.
func (m *Sim[S]) roundTrip(url string, call func(Env[S]) (*Response, S, error)) *Response {
	next := m.env
	resp, client, err := call(next)
	next.Client = client
	if err != nil {
		next.Fault = &Fault{Kind: FaultTransport, Msg: url + ": " + err.Error(), Cause: err}
		resp = nil
	}
	m.step(next)
	return resp
}
