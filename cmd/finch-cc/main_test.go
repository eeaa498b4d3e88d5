package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.c")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmdDumpsYAML(t *testing.T) {
	file := writeSource(t, "int x;\n")
	out, _, err := execute(t, file)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"kind: Program", "GlobalVariableDeclaration", "name: x"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRootCmdDumpsJSON(t *testing.T) {
	file := writeSource(t, "int x;\n")
	out, _, err := execute(t, "--format", "json", file)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `"kind": "Program"`) {
		t.Errorf("output not JSON:\n%s", out)
	}
}

func TestRootCmdDumpsSource(t *testing.T) {
	file := writeSource(t, "int   x   ;\n")
	out, _, err := execute(t, "--dsource", file)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "int x;\n" {
		t.Errorf("source dump wrong: %q", out)
	}
}

func TestRootCmdReportsParseError(t *testing.T) {
	file := writeSource(t, "struct S {};\n")
	_, errOut, err := execute(t, file)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "struct is not supported") {
		t.Errorf("stderr missing message: %q", errOut)
	}
}

func TestRootCmdErrorFormat(t *testing.T) {
	file := writeSource(t, "int x")
	_, errOut, err := execute(t, file)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "Line number 1: Expect ;") {
		t.Errorf("stderr missing message: %q", errOut)
	}
}

func TestRootCmdWritesOutputFile(t *testing.T) {
	file := writeSource(t, "int x;\n")
	outPath := filepath.Join(t.TempDir(), "ast.yaml")
	_, _, err := execute(t, "-o", outPath, file)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "GlobalVariableDeclaration") {
		t.Errorf("output file wrong:\n%s", data)
	}
}
