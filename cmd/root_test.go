package cmd

import (
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestBindEnvOverridesUnchangedFlag(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	c.Flags().String("addr", ":8080", "")

	os.Setenv("ABCDB_ADDR", ":9090")
	defer os.Unsetenv("ABCDB_ADDR")

	if err := bindEnv(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := c.Flags().GetString("addr"); got != ":9090" {
		t.Fatalf("expected env override to win, got %q", got)
	}
}

func TestBindEnvDoesNotOverrideExplicitFlag(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	c.Flags().String("addr", ":8080", "")
	if err := c.Flags().Set("addr", ":1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	os.Setenv("ABCDB_ADDR", ":9090")
	defer os.Unsetenv("ABCDB_ADDR")

	if err := bindEnv(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := c.Flags().GetString("addr"); got != ":1234" {
		t.Fatalf("expected explicit flag value to win, got %q", got)
	}
}
