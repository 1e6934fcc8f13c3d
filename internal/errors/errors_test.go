package errors

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
	if got := Format(errors.New("schedule not found")); got != "Error: schedule not found" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed to load day %s", "2025-01-06")
	if got != "Error: failed to load day 2025-01-06" {
		t.Errorf("Formatf = %q", got)
	}
}

// Fatal exits the process, so exercise it in a subprocess.
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(errors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	e, ok := err.(*exec.ExitError)
	if !ok || e.Success() {
		t.Fatalf("Fatal() did not exit with error: %v", err)
	}
	if e.ExitCode() != 1 {
		t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Error: test error") {
		t.Errorf("Fatal() stderr = %q", stderr.String())
	}
}

func TestFatalNilErrorReturns(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalNilErrorReturns")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")
	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit: %v", err)
	}
}
