//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/readlater-labs/readlater/internal/cli"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir  string // HOME, holds .readlater/config.yaml
	ListPath string // READLATER_FILE
}

// setupTestEnv points HOME and READLATER_FILE at temp locations so no test
// touches the real list. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{HomeDir: t.TempDir()}
	env.ListPath = filepath.Join(env.HomeDir, "reading", "list.txt")

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("USERPROFILE", env.HomeDir)
	t.Setenv("READLATER_FILE", env.ListPath)
	t.Setenv("READLATER_COLOR", "false")
	return env
}

// runCLI runs the command tree and returns stdout, failing the test on error.
func runCLI(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	if err := cli.Run(args, strings.NewReader(stdin), &out, &errOut); err != nil {
		t.Fatalf("%v: %v\nstderr: %s", args, err, errOut.String())
	}
	return out.String()
}

func readList(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading list %s: %v", path, err)
	}
	return string(data)
}
