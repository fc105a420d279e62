package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"imageorganizer/internal/batch"
	"imageorganizer/internal/classify"
	"imageorganizer/internal/grouping"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := executeCommand(t, "classify", "jsmith_front.jpg", "dl_back_scan.jpg", "selfie_of_me.jpg", "random.jpg")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	for _, want := range []string{"DL Front", "DL Back", "Selfie", "Unknown", "js_mith"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderClusterTableCountsRoles(t *testing.T) {
	engine := grouping.NewEngine(nil)
	result := engine.Group([]*batch.Image{
		{ID: "1", Filename: "jane_doe_front.jpg", Role: classify.RoleFront},
		{ID: "2", Filename: "jane_doe_back.jpg", Role: classify.RoleBack},
	})

	out := renderClusterTable(result)
	for _, want := range []string{"Person", "Jane Doe", "Front", "Identified", "no"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	row := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Jane Doe") {
			row = line
		}
	}
	if row == "" {
		t.Fatalf("no row for Jane Doe:\n%s", out)
	}
	for _, count := range []string{" 2 ", " 1 "} {
		if !strings.Contains(row, count) {
			t.Fatalf("row missing count %q: %s", count, row)
		}
	}
}

func TestRenderTableEmptyColumns(t *testing.T) {
	if out := renderTable(nil, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestConfigShowDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")
	out, err := executeCommand(t, "config", "show", "--config", missing)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "showing defaults") {
		t.Fatalf("expected defaults notice:\n%s", out)
	}
	if !strings.Contains(out, "output_dir") {
		t.Fatalf("expected rendered config:\n%s", out)
	}
}

func TestConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := executeCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("expected written path in output:\n%s", out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	if _, err := executeCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("second init must refuse to overwrite")
	}
}
