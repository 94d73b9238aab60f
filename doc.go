// Package mockfx replaces real-world side effects with a deterministic,
// inspectable simulation for unit tests.
//
// # Overview
//
// Code under test is written against a set of narrow capability interfaces
// (console, timer, try, files, random, HTTP) and never learns what is behind
// them. In tests the capabilities are backed by Sim, a pure state-threading
// interpreter over a single Env value; in production they are backed by Live,
// which talks to the real terminal, clock, filesystem, and network.
//
// # Architecture
//
// The package components, leaves first:
//
//   - rand.go    - deterministic pseudo-random generator (Seed)
//   - fault.go   - inert failure values (Fault, FaultKind)
//   - effects.go - the capability interfaces (Effects and its parts)
//   - env.go     - the simulated environment value (Env, Responder)
//   - mock.go    - the deterministic interpreter (Sim)
//   - live.go    - the real-effect interpreter (Live)
//   - assert.go  - falsifiable claims (Assertion and constructors)
//   - summary.go - the assertion summary monoid (Summary)
//   - tree.go    - the test hierarchy (Tree: Case, Group, Label)
//   - run.go     - the runner and report (Run, Scope, Report)
//
// # Quick Start
//
// Script an HTTP back end, run code under test against the simulation, and
// inspect the environment afterwards:
//
//	responder := mockfx.Responder[int]{
//	    Get: func(hits int, url string) (*mockfx.Response, int, error) {
//	        return &mockfx.Response{Status: 200, Body: []byte("ok")}, hits + 1, nil
//	    },
//	}
//	sim := mockfx.NewSim(responder, mockfx.Session{ID: "s1"}, 0)
//
//	fetchTwice(sim) // written against mockfx.Effects
//
//	env := sim.Env()
//	// env.Client == 2, env.Clock counts every capability call.
//
// Every capability call produces a fresh successor environment and advances
// the simulated clock by exactly one tick, so timestamps observed by the
// code under test increase in lockstep with program order. Snapshots taken
// with Env() stay valid forever.
//
// # Faults
//
// Simulated failures (end of input, not found, storage full, transport) are
// injected through Env switches and captured into Env.Fault instead of being
// returned or thrown. Nothing escalates on its own: the fault sits in state
// until Attempt or a direct inspection reads it, and it is cleared only by
// ClearFault or a full SetEnv.
//
// # Assertions and Trees
//
// An Assertion is an immutable pass/fail claim; Summary aggregates many of
// them associatively; Tree nests cases under named contexts:
//
//	tree := mockfx.Label("console", mockfx.Group(
//	    mockfx.Case[mockfx.Step](func(s *mockfx.Scope) {
//	        s.Record(mockfx.Equal(got, "hello", "greeting is echoed"))
//	    }),
//	))
//	summary := mockfx.Run(tree)
//	summary.WriteReport(os.Stdout)
//
// A failed assertion is a value, tallied and reported; it never aborts
// sibling cases.
//
// # Determinism
//
// The generator behind the Random capability is a fixed recurrence of an
// explicit Seed, the clock is a step counter, console and file content are
// queues configured up front, and HTTP responses are pure functions of
// client-local state. Two runs from equal environments are identical.
//
// # See Also
//
//   - examples/wordpoll - code under test wired to the live interpreter
package mockfx
