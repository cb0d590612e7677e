package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runCommand runs a command and returns stdout, stderr, and error.
func runCommand(dir string, name string, args ...string) (string, string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// buildHelper builds the sso-cfn-helper binary for testing.
// Returns the absolute path to the binary.
func buildHelper(t *testing.T) string {
	t.Helper()

	rootDir, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get absolute path to root: %v", err)
	}

	outputPath := filepath.Join(rootDir, "bin", "sso-cfn-helper-test")
	if isWindows() {
		outputPath += ".exe"
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		t.Fatalf("failed to create bin dir: %v", err)
	}

	cmd := exec.Command("go", "build", "-o", outputPath, "./cmd/sso-cfn-helper")
	cmd.Dir = rootDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build sso-cfn-helper: %v\noutput: %s", err, out)
	}

	return outputPath
}

func isWindows() bool {
	return filepath.Separator == '\\'
}
