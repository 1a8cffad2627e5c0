package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildCommand_TwoFiles(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "v1.txt")
	newPath := filepath.Join(dir, "v2.txt")
	outPath := filepath.Join(dir, "out", "index.html")

	writeFile(t, oldPath, "SEC. 1. Short title.\nThis Act may be cited as the Test Act.")
	writeFile(t, newPath, "SEC. 1. Short title.\nThis Act may be cited as the Test Act.\n"+
		"SEC. 2. Funding.\nThere is appropriated $5,000,000.")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"build", "--old", oldPath, "--new", newPath, "--out", outPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if !strings.Contains(out.String(), "1 added") {
		t.Errorf("summary line missing counts: %q", out.String())
	}

	page, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "Added: <strong>1</strong>") {
		t.Errorf("page missing added count")
	}
	if !strings.Contains(html, "v1.txt") {
		t.Errorf("default stage label should use the filename")
	}
}

func TestBuildCommand_FromDataDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bill_v1.txt"),
		"SEC. 1. Short title.\nCited as the Test Act.")
	writeFile(t, filepath.Join(dir, "bill_v2.txt"),
		"SEC. 1. Short title.\nCited as the Test Act.")
	meta, _ := json.Marshal(billMeta{
		Label: "H.R. 1 (119th) — Test Bill", V1: "ih", V2: "enr",
		Congress: 119, Chamber: "house", Number: 1, FetchedAt: time.Now(),
	})
	writeFile(t, filepath.Join(dir, "meta.json"), string(meta))

	outPath := filepath.Join(dir, "index.html")
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"build", "--data", dir, "--out", outPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	page, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	html := string(page)
	if !strings.Contains(html, "H.R. 1 (119th)") {
		t.Errorf("label from meta.json missing")
	}
	if !strings.Contains(html, "Introduced (House)") || !strings.Contains(html, "Enrolled") {
		t.Errorf("stage labels from meta.json missing")
	}
}

func TestBuildCommand_MissingInputs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"build"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error without inputs")
	}
}

func TestBuildCommand_BadProfile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "v.txt")
	writeFile(t, p, "SEC. 1. A.\nBody.")

	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"build", "--old", p, "--new", p, "--profile", "loose"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid profile") {
		t.Fatalf("expected profile error, got %v", err)
	}
}

func TestFetchCommand_RequiresTarget(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"fetch", "--out", t.TempDir()})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error without preset or bill identity")
	}
}

func TestFetchCommand_UnknownPreset(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"fetch", "--preset", "hr0-000", "--out", t.TempDir()})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Fatalf("expected unknown-preset error, got %v", err)
	}
}
