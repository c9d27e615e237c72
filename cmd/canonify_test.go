package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunCanonifyWritesCanonicalLinesToStdout(t *testing.T) {
	cmd := findCommand(t, "canonify")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader("A1\nA/2\n"))

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "A\nA/\n"; out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestRunCanonifyReportsFailuresWithoutStopping(t *testing.T) {
	cmd := findCommand(t, "canonify")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader("A\n\"unterminated\nA2\n"))

	err := cmd.RunE(cmd, nil)
	if err == nil {
		t.Fatal("expected an error summarizing the failed line(s)")
	}
	if want := "A\nA2\n"; out.String() != want {
		t.Fatalf("expected successful lines on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "line 2") {
		t.Fatalf("expected stderr to report the failing line number, got %q", errOut.String())
	}
}
