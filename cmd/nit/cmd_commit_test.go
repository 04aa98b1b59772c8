package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/okrauss/nit/pkg/repo"
)

func TestCommitCmd_RecordsStagedFiles(t *testing.T) {
	dir := initWorkRepo(t)
	writeRepoFile(t, dir, "a.txt", "hello")

	runCommand(t, dir, newAddCmd(), "a.txt")
	output := runCommand(t, dir, newCommitCmd(), "-m", "add a", "--author", "tester")

	if !strings.Contains(output, "[main ") {
		t.Fatalf("commit output missing branch prefix:\n%s", output)
	}
	if !strings.Contains(output, "add a") {
		t.Fatalf("commit output missing message:\n%s", output)
	}
}

func TestCommitCmd_NothingStagedIsRecoverable(t *testing.T) {
	dir := initWorkRepo(t)

	output := runCommand(t, dir, newCommitCmd(), "-m", "empty")
	if !strings.Contains(output, "nothing staged") {
		t.Fatalf("expected nothing-staged notice, got:\n%s", output)
	}
}

func TestCommitCmd_RequiresMessage(t *testing.T) {
	dir := initWorkRepo(t)
	writeRepoFile(t, dir, "a.txt", "hello")
	runCommand(t, dir, newAddCmd(), "a.txt")

	err := runCommandErr(t, dir, newCommitCmd())
	if err == nil {
		t.Fatal("expected error for missing -m")
	}
}

func TestAddCmd_MissingFileDoesNotFail(t *testing.T) {
	dir := initWorkRepo(t)
	writeRepoFile(t, dir, "a.txt", "hello")

	output := runCommand(t, dir, newAddCmd(), "ghost.txt", "a.txt")
	if !strings.Contains(output, "staged a.txt") {
		t.Fatalf("existing file was not staged:\n%s", output)
	}
}

// initWorkRepo creates a temp directory with an initialized repository
// and returns its path.
func initWorkRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if _, err := repo.Init(dir); err != nil {
		t.Fatalf("repo.Init: %v", err)
	}
	return dir
}

func writeRepoFile(t *testing.T, root, relPath, content string) {
	t.Helper()

	absPath := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): %v", relPath, err)
	}
	if err := os.WriteFile(absPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): %v", relPath, err)
	}
}

// runCommand executes a command from inside repoDir and returns its
// combined output, failing the test on error.
func runCommand(t *testing.T, repoDir string, cmd *cobra.Command, args ...string) string {
	t.Helper()

	output, err := executeCommand(t, repoDir, cmd, args...)
	if err != nil {
		t.Fatalf("%s command failed (%v): %v\noutput:\n%s", cmd.Name(), args, err, output)
	}
	return output
}

// runCommandErr is runCommand for cases where the error itself is under
// test.
func runCommandErr(t *testing.T, repoDir string, cmd *cobra.Command, args ...string) error {
	t.Helper()

	_, err := executeCommand(t, repoDir, cmd, args...)
	return err
}

func executeCommand(t *testing.T, repoDir string, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(repoDir); err != nil {
		t.Fatalf("Chdir(%q): %v", repoDir, err)
	}
	defer func() {
		if err := os.Chdir(prevWD); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	}()

	cmd.SetArgs(args)

	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)

	execErr := cmd.Execute()
	return output.String(), execErr
}

func nonEmptyLines(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
