package mockfx

import (
	"strings"
	"testing"
)

func TestWalk_OrderAndPaths(t *testing.T) {
	var visited []string
	tree := Label("A", Group(
		Case("one"),
		Label("B", Case("two")),
		Case("three"),
	))

	Walk(tree, func(path []string, payload string) {
		visited = append(visited, strings.Join(path, "/")+":"+payload)
	})

	want := []string{"A:one", "A/B:two", "A:three"}
	if len(visited) != len(want) {
		t.Fatalf("Expected %d visits, got %v", len(want), visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("Visit %d: expected %q, got %q", i, want[i], visited[i])
		}
	}
}

func TestRun_ContextScoping(t *testing.T) {
	var inner, after string
	tree := Group(
		Label("A", Label("B", Case[Step](func(s *Scope) {
			inner = s.Context()
			s.Check(true, "context observed", "")
		}))),
		Case[Step](func(s *Scope) {
			after = s.Context()
			s.Check(true, "context observed", "")
		}),
	)

	Run(tree)

	if inner != "A/B" {
		t.Errorf("Expected context A/B inside nested labels, got %q", inner)
	}
	if after != "" {
		t.Errorf("Expected context to revert after the labeled subtree, got %q", after)
	}
}

func TestRun_NoShortCircuit(t *testing.T) {
	var order []string
	step := func(name string, ok bool) Tree[Step] {
		return Case[Step](func(s *Scope) {
			order = append(order, name)
			s.Check(ok, name, "")
		})
	}

	summary := Run(Group(
		step("first", false),
		step("second", true),
		step("third", false),
	))

	if len(order) != 3 {
		t.Fatalf("Expected all three cases to run, got %v", order)
	}
	if summary.Successes != 1 || summary.Failures != 2 {
		t.Errorf("Expected 1 success and 2 failures, got %d/%d", summary.Successes, summary.Failures)
	}
	if summary.Failed[0].Statement != "first" || summary.Failed[1].Statement != "third" {
		t.Errorf("Failures out of order: %v", summary.Failed)
	}
}

func TestRun_AssertionsCarryContext(t *testing.T) {
	tree := Label("files", Case[Step](func(s *Scope) {
		s.Record(Equal(1, 2, "should mismatch"))
	}))

	summary := Run(tree)
	if summary.Failures != 1 {
		t.Fatalf("Expected 1 failure, got %d", summary.Failures)
	}
	if summary.Failed[0].Context != "files" {
		t.Errorf("Expected context %q, got %q", "files", summary.Failed[0].Context)
	}
}

func TestRun_MockUnderTree(t *testing.T) {
	// A tree whose case exercises code under test against the simulated
	// interpreter, end to end.
	tree := Label("console", Case[Step](func(s *Scope) {
		sim := NewSim(Responder[int]{}, Session{ID: "s"}, 0)
		env := sim.Env()
		env.Input = InputQueue{Pending: []string{"alice"}, Default: ""}
		sim.SetEnv(env)

		greet(sim)

		s.Record(Equal(sim.Env().ConsoleOut[0], "hello, alice\n", "greeting uses the queued name"))
		s.Record(Equal(int64(sim.Env().Clock), int64(3), "greet makes three capability calls"))
	}))

	summary := Run(tree)
	if summary.Failures != 0 {
		var b strings.Builder
		summary.WriteReport(&b)
		t.Fatalf("Expected clean run:\n%s", b.String())
	}
}

// greet is a tiny specimen of code written against the capability set.
func greet(fx Effects) {
	out := fx.StdoutHandle()
	name := fx.ReadLine(Stdin)
	fx.WriteLine(out, "hello, "+name)
}

func TestReport_Logs(t *testing.T) {
	var b strings.Builder
	logger := NewReportLogger(&b)

	Report(logger, SummarizeAll([]Assertion{
		AssertIf(false, "broken thing", "should work"),
		AssertIf(true, "fine thing", ""),
	}))

	out := b.String()
	for _, want := range []string{"assertion failed", "broken thing", "run complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log output missing %q:\n%s", want, out)
		}
	}
}
