package chain

import (
	"errors"
	"testing"
)

func TestRunHappyPath(t *testing.T) {
	r := NewRun()
	if r.State() != Pending {
		t.Fatalf("new run state = %s, want Pending", r.State())
	}
	for i := 0; i < 3; i++ {
		if err := r.Start(i); err != nil {
			t.Fatalf("Start(%d): %v", i, err)
		}
		if r.Step() != i {
			t.Fatalf("step = %d, want %d", r.Step(), i)
		}
	}
	if err := r.Succeed(); err != nil {
		t.Fatalf("Succeed: %v", err)
	}
	if r.State() != Succeeded {
		t.Fatalf("state = %s, want Succeeded", r.State())
	}
	if !r.State().Terminal() {
		t.Fatal("Succeeded should be terminal")
	}
}

func TestRunFailRecordsExitCode(t *testing.T) {
	r := NewRun()
	if err := r.Start(0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Fail(3); err != nil {
		t.Fatalf("Fail: %v", err)
	}
	if r.State() != Failed {
		t.Fatalf("state = %s, want Failed", r.State())
	}
	if r.ExitCode() != 3 {
		t.Fatalf("exit code = %d, want 3", r.ExitCode())
	}
}

func TestRunErrorBeforeFirstStep(t *testing.T) {
	r := NewRun()
	cause := errors.New("bad request")
	if err := r.Error(cause); err != nil {
		t.Fatalf("Error: %v", err)
	}
	if r.State() != Errored {
		t.Fatalf("state = %s, want Errored", r.State())
	}
	if !errors.Is(r.Err(), cause) {
		t.Fatalf("Err() = %v, want %v", r.Err(), cause)
	}
}

func TestRunInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		prep func(r *Run)
		act  func(r *Run) error
	}{
		{
			name: "succeed from pending",
			prep: func(r *Run) {},
			act:  func(r *Run) error { return r.Succeed() },
		},
		{
			name: "fail from pending",
			prep: func(r *Run) {},
			act:  func(r *Run) error { return r.Fail(1) },
		},
		{
			name: "start after succeeded",
			prep: func(r *Run) {
				if err := r.Start(0); err != nil {
					t.Fatal(err)
				}
				if err := r.Succeed(); err != nil {
					t.Fatal(err)
				}
			},
			act: func(r *Run) error { return r.Start(1) },
		},
		{
			name: "error after failed",
			prep: func(r *Run) {
				if err := r.Start(0); err != nil {
					t.Fatal(err)
				}
				if err := r.Fail(2); err != nil {
					t.Fatal(err)
				}
			},
			act: func(r *Run) error { return r.Error(errors.New("late")) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRun()
			tt.prep(r)
			if err := tt.act(r); err == nil {
				t.Fatal("expected transition error, got nil")
			}
		})
	}
}
