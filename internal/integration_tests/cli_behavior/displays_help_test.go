package integration_tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/specialistvlad/daysbetween/internal/cli"
)

// Test for: displays help
func TestCLI_DisplaysHelp_WhenHelpFlagIsProvided(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	outW := &bytes.Buffer{}

	// --- Act ---
	appConfig, shouldExit, err := cli.Parse([]string{"-help"}, outW)

	// --- Assert ---
	if err != nil {
		t.Fatalf("cli.Parse() returned an unexpected error: %v", err)
	}
	if !shouldExit {
		t.Fatal("cli.Parse() should have indicated an exit, but it did not")
	}
	if appConfig != nil {
		t.Errorf("expected no config on exit, got %+v", appConfig)
	}
	if !strings.Contains(outW.String(), "Usage:") {
		t.Errorf("expected output to contain 'Usage:', but got:\n%s", outW.String())
	}
}
