package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// documentation. Keeping these as constants helps avoid drift between Cobra
// flag wiring and other code paths that need to reference flags.
// IMPORTANT: These are flag *names* without leading dashes.
const (
	FlagToken     = "token"
	FlagFile      = "file"
	FlagAssetName = "asset-name"
	FlagReleaseID = "release-id"
	FlagFileGlob  = "file-glob"
	FlagOverwrite = "overwrite"
	FlagRepo      = "repo"
)
