// Package target resolves which GitHub repository every API call is
// addressed to. The ambient repository (the one the workflow runs in) is
// read exactly once, here; everything downstream receives an explicit
// RepoRef instead of consulting the environment.
package target

import (
	"fmt"
	"os"
	"strings"
)

// RepoRef identifies a repository as an owner/repo pair. Both fields are
// non-empty once constructed and the value is never mutated.
type RepoRef struct {
	Owner string
	Repo  string
}

func (r RepoRef) String() string {
	return r.Owner + "/" + r.Repo
}

// Resolve returns the repository all asset calls should target.
//
// An empty override returns ambient unchanged without any parsing. A
// non-empty override is split on the first '/': the part before is the
// owner, everything after (further slashes included) is the repo. No
// character validation beyond non-emptiness is performed.
func Resolve(override string, ambient RepoRef) (RepoRef, error) {
	if override == "" {
		return ambient, nil
	}

	owner, repo, ok := strings.Cut(override, "/")
	if !ok || owner == "" {
		return RepoRef{}, fmt.Errorf("could not extract owner from repo name %q", override)
	}
	if repo == "" {
		return RepoRef{}, fmt.Errorf("could not extract repo from repo name %q", override)
	}
	return RepoRef{Owner: owner, Repo: repo}, nil
}

// Ambient reads the invoking workflow's repository from GITHUB_REPOSITORY.
// This is the only place the process consults the ambient value.
func Ambient() (RepoRef, error) {
	raw := strings.TrimSpace(os.Getenv("GITHUB_REPOSITORY"))
	if raw == "" {
		return RepoRef{}, fmt.Errorf("GITHUB_REPOSITORY is not set")
	}
	owner, repo, ok := strings.Cut(raw, "/")
	if !ok || owner == "" || repo == "" {
		return RepoRef{}, fmt.Errorf("GITHUB_REPOSITORY %q is not of the form owner/repo", raw)
	}
	return RepoRef{Owner: owner, Repo: repo}, nil
}
