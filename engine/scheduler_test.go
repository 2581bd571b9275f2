package engine

import "testing"

func TestScheduler_StepRunsAllInOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.Add(func() bool { order = append(order, 1); return true })
	s.Add(func() bool { order = append(order, 2); return true })
	s.Start()

	if !s.Step() {
		t.Fatal("expected another iteration to be wanted")
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("invocation order = %v", order)
	}
}

func TestScheduler_FalseReturnUnregisters(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Add(func() bool { calls++; return false })
	s.Add(func() bool { return true })
	s.Start()

	s.Step()
	s.Step()
	if calls != 1 {
		t.Errorf("callback returning false ran %d times, want 1", calls)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestScheduler_StepWithoutStartIsNoOp(t *testing.T) {
	s := NewScheduler()
	s.Add(func() bool { t.Error("must not run before Start"); return true })
	if s.Step() {
		t.Error("Step should report no pending work")
	}
}

func TestScheduler_StartIdempotent(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Add(func() bool { calls++; return true })
	s.Start()
	s.Start()
	s.Step()
	if calls != 1 {
		t.Errorf("calls = %d, want 1 per Step regardless of Start count", calls)
	}
}

func TestScheduler_StopKeepsList(t *testing.T) {
	s := NewScheduler()
	s.Add(func() bool { return true })
	s.Start()
	s.Stop()

	if s.Step() {
		t.Error("stopped scheduler must not run")
	}
	if s.Len() != 1 {
		t.Errorf("Stop cleared the list: Len = %d", s.Len())
	}
}

func TestScheduler_ClearStopsAndEmpties(t *testing.T) {
	s := NewScheduler()
	s.Add(func() bool { return true })
	s.Start()
	s.Clear()

	if s.Running() || s.Len() != 0 {
		t.Errorf("Clear left running=%v len=%d", s.Running(), s.Len())
	}
}

func TestScheduler_AddDuringIterationRunsNextStep(t *testing.T) {
	s := NewScheduler()
	lateCalls := 0
	s.Add(func() bool {
		s.Add(func() bool { lateCalls++; return true })
		return false
	})
	s.Start()

	s.Step()
	if lateCalls != 0 {
		t.Error("callback added mid-iteration must not run in the same pass")
	}
	s.Step()
	if lateCalls != 1 {
		t.Errorf("late callback ran %d times after next Step, want 1", lateCalls)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want only the late callback", s.Len())
	}
}

func TestScheduler_ClearDuringIteration(t *testing.T) {
	s := NewScheduler()
	s.Add(func() bool {
		s.Clear()
		return true
	})
	s.Add(func() bool { return true })
	s.Start()

	if s.Step() {
		t.Error("a mid-pass Clear should leave nothing scheduled")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", s.Len())
	}
}
