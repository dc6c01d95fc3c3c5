package target

import (
	"strings"
	"testing"
)

func TestResolve_EmptyOverrideReturnsAmbient(t *testing.T) {
	ambient := RepoRef{Owner: "acme", Repo: "widgets"}
	got, err := Resolve("", ambient)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != ambient {
		t.Fatalf("expected ambient %v unchanged, got %v", ambient, got)
	}
}

func TestResolve_OverrideSplitsOnFirstSlash(t *testing.T) {
	tests := []struct {
		name     string
		override string
		want     RepoRef
	}{
		{"simple", "octo/repo", RepoRef{Owner: "octo", Repo: "repo"}},
		{"extra slashes kept in repo", "octo/repo/extra", RepoRef{Owner: "octo", Repo: "repo/extra"}},
		{"trailing content", "a/b/c/d", RepoRef{Owner: "a", Repo: "b/c/d"}},
	}
	ambient := RepoRef{Owner: "ignored", Repo: "ignored"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.override, ambient)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.override, err)
			}
			if got != tt.want {
				t.Fatalf("Resolve(%q) = %v, want %v", tt.override, got, tt.want)
			}
		})
	}
}

func TestResolve_InvalidOverrides(t *testing.T) {
	tests := []struct {
		name     string
		override string
		wantMsg  string
	}{
		{"no slash", "justaname", "could not extract owner"},
		{"empty owner", "/repo", "could not extract owner"},
		{"empty repo", "owner/", "could not extract repo"},
	}
	ambient := RepoRef{Owner: "acme", Repo: "widgets"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.override, ambient)
			if err == nil {
				t.Fatalf("Resolve(%q) expected error", tt.override)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("Resolve(%q) error = %q, want substring %q", tt.override, err, tt.wantMsg)
			}
		})
	}
}

func TestAmbient(t *testing.T) {
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
	got, err := Ambient()
	if err != nil {
		t.Fatalf("Ambient failed: %v", err)
	}
	if got != (RepoRef{Owner: "acme", Repo: "widgets"}) {
		t.Fatalf("unexpected ambient: %v", got)
	}

	t.Setenv("GITHUB_REPOSITORY", "")
	if _, err := Ambient(); err == nil {
		t.Fatal("expected error for unset GITHUB_REPOSITORY")
	}

	t.Setenv("GITHUB_REPOSITORY", "noslash")
	if _, err := Ambient(); err == nil {
		t.Fatal("expected error for malformed GITHUB_REPOSITORY")
	}
}
