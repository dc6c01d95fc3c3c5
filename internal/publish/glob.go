package publish

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoFilesMatched is returned when a glob pattern expands to nothing.
// The message is part of the tool's contract; callers surface it verbatim.
var ErrNoFilesMatched = errors.New("No files matching the glob pattern found.")

// ResolveFiles turns the file input into the ordered list of paths to
// publish. In literal mode the path is passed through untouched, existence
// unchecked (the publisher skips non-files itself). In glob mode the pattern
// is expanded; matches keep the order the walk produced them in.
func ResolveFiles(pattern string, globMode bool) ([]string, error) {
	if !globMode {
		return []string{pattern}, nil
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, ErrNoFilesMatched
	}
	return matches, nil
}
