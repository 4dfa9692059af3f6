package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/Mad-Pixels/ci-actions/internal/alog"
	"github.com/Mad-Pixels/ci-actions/internal/masker"
	"github.com/Mad-Pixels/ci-actions/internal/output"
)

func init() {
	alog.Discard()
}

// testRunner builds a runner writing to the returned buffers, masking
// "password=<word>" with "****".
func testRunner(t *testing.T) (*Runner, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	re, err := masker.NewRegex([]string{`password=\w+`}, "****")
	if err != nil {
		t.Fatalf("NewRegex() error: %v", err)
	}
	var out, errOut bytes.Buffer
	router := output.NewRouter(
		masker.NewPipeline(re),
		output.NewWriterSink(&out),
		output.NewWriterSink(&errOut),
	)
	return New(router, StandardValidator()), &out, &errOut
}

func TestExecuteSuccess(t *testing.T) {
	r, out, _ := testRunner(t)

	code, err := r.Execute(context.Background(), Request{
		Command: []string{"echo", "hello"},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if out.String() != "hello\n" {
		t.Errorf("stdout sink got %q", out.String())
	}
}

func TestExecuteMasksOutput(t *testing.T) {
	r, out, _ := testRunner(t)

	_, err := r.Execute(context.Background(), Request{
		Command: []string{"sh", "-c", "echo password=hunter2"},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if strings.Contains(out.String(), "hunter2") {
		t.Fatalf("secret leaked to sink: %q", out.String())
	}
	if out.String() != "****\n" {
		t.Errorf("stdout sink got %q", out.String())
	}
}

func TestExecuteNonZeroExitIsNotError(t *testing.T) {
	r, _, _ := testRunner(t)

	code, err := r.Execute(context.Background(), Request{
		Command: []string{"sh", "-c", "exit 3"},
	})
	if err != nil {
		t.Fatalf("non-zero exit must not be an error, got %v", err)
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestExecuteValidationRejectsBeforeSpawn(t *testing.T) {
	r, out, errOut := testRunner(t)

	_, err := r.Execute(context.Background(), Request{})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if out.Len() != 0 || errOut.Len() != 0 {
		t.Error("no output should be produced for a rejected request")
	}
}

func TestExecuteSpawnFailure(t *testing.T) {
	r, _, _ := testRunner(t)

	_, err := r.Execute(context.Background(), Request{
		Command: []string{"/nonexistent-binary-for-test"},
	})

	var eerr *ExecutionError
	if !errors.As(err, &eerr) {
		t.Fatalf("expected *ExecutionError, got %v", err)
	}
	if eerr.Stage != "spawn" {
		t.Errorf("stage = %q, want %q", eerr.Stage, "spawn")
	}
}

func TestExecuteTimeout(t *testing.T) {
	r, _, _ := testRunner(t)

	start := time.Now()
	_, err := r.Execute(context.Background(), Request{
		Command: []string{"sh", "-c", "echo started; sleep 5"},
		Timeout: 200 * time.Millisecond,
	})
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if elapsed > 3*time.Second {
		t.Errorf("call took %v; the child was not killed at the deadline", elapsed)
	}
}

func TestExecuteLineIntegrity(t *testing.T) {
	r, out, errOut := testRunner(t)

	script := "for i in 1 2 3; do echo out-$i; done; for i in 1 2; do echo err-$i 1>&2; done"
	code, err := r.Execute(context.Background(), Request{
		Command: []string{"sh", "-c", script},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}

	outLines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	errLines := strings.Split(strings.TrimRight(errOut.String(), "\n"), "\n")
	if len(outLines) != 3 {
		t.Fatalf("stdout sink has %d lines: %v", len(outLines), outLines)
	}
	if len(errLines) != 2 {
		t.Fatalf("stderr sink has %d lines: %v", len(errLines), errLines)
	}
	for i, want := range []string{"out-1", "out-2", "out-3"} {
		if outLines[i] != want {
			t.Errorf("stdout line %d = %q, want %q (intra-stream order)", i, outLines[i], want)
		}
	}
	for i, want := range []string{"err-1", "err-2"} {
		if errLines[i] != want {
			t.Errorf("stderr line %d = %q, want %q (intra-stream order)", i, errLines[i], want)
		}
	}
}

func TestExecuteWorkingDirectory(t *testing.T) {
	r, out, _ := testRunner(t)
	dir := t.TempDir()

	code, err := r.Execute(context.Background(), Request{
		Command: []string{"pwd"},
		Dir:     dir,
	})
	if err != nil || code != 0 {
		t.Fatalf("Execute() = %d, %v", code, err)
	}
	// On some systems TempDir is behind a symlink; compare the basename.
	got := strings.TrimSpace(out.String())
	if !strings.HasSuffix(got, filepath.Base(dir)) {
		t.Errorf("pwd = %q, want dir ending in %q", got, filepath.Base(dir))
	}
}

func TestExecuteEnvOverrides(t *testing.T) {
	r, out, _ := testRunner(t)

	code, err := r.Execute(context.Background(), Request{
		Command: []string{"sh", "-c", "echo $ACTION_TEST_VALUE"},
		Env:     map[string]string{"ACTION_TEST_VALUE": "injected"},
	})
	if err != nil || code != 0 {
		t.Fatalf("Execute() = %d, %v", code, err)
	}
	if strings.TrimSpace(out.String()) != "injected" {
		t.Errorf("child did not see env override, got %q", out.String())
	}
}

func TestExecuteSignalDeathUsesFallbackCode(t *testing.T) {
	r, _, _ := testRunner(t)

	code, err := r.Execute(context.Background(), Request{
		Command: []string{"sh", "-c", fmt.Sprintf("kill -%d $$", syscall.SIGKILL)},
	})
	if err != nil {
		t.Fatalf("signal death must not be an error: %v", err)
	}
	if code != fallbackExitCode {
		t.Errorf("exit code = %d, want fallback %d", code, fallbackExitCode)
	}
}

func TestExecuteStdinIsClosed(t *testing.T) {
	r, out, _ := testRunner(t)

	// cat with a null stdin sees immediate EOF instead of blocking.
	code, err := r.Execute(context.Background(), Request{
		Command: []string{"sh", "-c", "cat; echo done"},
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d", code)
	}
	if strings.TrimSpace(out.String()) != "done" {
		t.Errorf("stdout sink got %q", out.String())
	}
}
