// Package output reports the published download URL: a last-outcome
// register updated once per file, flushed to the Actions output file (or
// the console) when the run ends.
package output

// Register holds the most recently produced download URL. In glob mode
// every processed file writes it, so the last file wins; skipped files
// never write. It replaces what would otherwise be a bare mutable global.
type Register struct {
	url string
	set bool
}

func (r *Register) Set(url string) {
	r.url = url
	r.set = true
}

// Value returns the registered URL and whether any file set one.
func (r *Register) Value() (string, bool) {
	return r.url, r.set
}
