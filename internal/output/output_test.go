package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegister_LastSetWins(t *testing.T) {
	var r Register

	if _, ok := r.Value(); ok {
		t.Fatal("fresh register should be unset")
	}

	r.Set("https://example.com/a.bin")
	r.Set("https://example.com/b.bin")

	got, ok := r.Value()
	if !ok {
		t.Fatal("register should be set")
	}
	if got != "https://example.com/b.bin" {
		t.Fatalf("Value() = %q, want last set value", got)
	}
}

func TestWriteOutput_AppendsToGitHubOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gh_output")
	t.Setenv("GITHUB_OUTPUT", path)

	var console bytes.Buffer
	if err := WriteOutput(&console, BrowserDownloadURL, "https://example.com/a.bin"); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if err := WriteOutput(&console, BrowserDownloadURL, "https://example.com/b.bin"); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := "browser_download_url=https://example.com/a.bin\nbrowser_download_url=https://example.com/b.bin\n"
	if string(data) != want {
		t.Fatalf("output file = %q, want %q", data, want)
	}
	if console.Len() != 0 {
		t.Fatalf("console should stay clean in runner mode, got %q", console.String())
	}
}

func TestWriteOutput_FallsBackToConsole(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")

	var console bytes.Buffer
	if err := WriteOutput(&console, BrowserDownloadURL, "https://example.com/a.bin"); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	if !strings.Contains(console.String(), "browser_download_url=https://example.com/a.bin") {
		t.Fatalf("console output = %q", console.String())
	}
}
