package main

import (
	"strings"
	"testing"
)

func TestLogCmd_EmptyHistory(t *testing.T) {
	dir := initWorkRepo(t)

	output := runCommand(t, dir, newLogCmd())
	if !strings.Contains(output, "no commits yet") {
		t.Fatalf("expected empty-history notice, got:\n%s", output)
	}
}

func TestLogCmd_OnelineNewestFirst(t *testing.T) {
	dir := initWorkRepo(t)

	writeRepoFile(t, dir, "a.txt", "1")
	runCommand(t, dir, newAddCmd(), "a.txt")
	runCommand(t, dir, newCommitCmd(), "-m", "first", "--author", "tester")

	writeRepoFile(t, dir, "a.txt", "2")
	runCommand(t, dir, newAddCmd(), "a.txt")
	runCommand(t, dir, newCommitCmd(), "-m", "second", "--author", "tester")

	output := runCommand(t, dir, newLogCmd(), "--oneline")
	lines := nonEmptyLines(output)
	if len(lines) != 2 {
		t.Fatalf("log returned %d lines, want 2\noutput:\n%s", len(lines), output)
	}
	if !strings.Contains(lines[0], "second") || !strings.Contains(lines[1], "first") {
		t.Fatalf("log order wrong:\n%s", output)
	}
}

func TestLogCmd_Limit(t *testing.T) {
	dir := initWorkRepo(t)

	for _, msg := range []string{"first", "second", "third"} {
		writeRepoFile(t, dir, "a.txt", msg)
		runCommand(t, dir, newAddCmd(), "a.txt")
		runCommand(t, dir, newCommitCmd(), "-m", msg, "--author", "tester")
	}

	output := runCommand(t, dir, newLogCmd(), "--oneline", "-n", "1")
	lines := nonEmptyLines(output)
	if len(lines) != 1 {
		t.Fatalf("log returned %d lines, want 1\noutput:\n%s", len(lines), output)
	}
	if !strings.Contains(lines[0], "third") {
		t.Fatalf("limited log should show newest commit:\n%s", output)
	}
}

func TestLogCmd_FullFormat(t *testing.T) {
	dir := initWorkRepo(t)

	writeRepoFile(t, dir, "a.txt", "1")
	runCommand(t, dir, newAddCmd(), "a.txt")
	runCommand(t, dir, newCommitCmd(), "-m", "first", "--author", "alice")

	output := runCommand(t, dir, newLogCmd())
	if !strings.Contains(output, "commit ") {
		t.Fatalf("missing commit header:\n%s", output)
	}
	if !strings.Contains(output, "author alice ") {
		t.Fatalf("missing author line:\n%s", output)
	}
	if !strings.Contains(output, "    first") {
		t.Fatalf("missing indented message:\n%s", output)
	}
}
