package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "assetpush",
	Short: "Upload local files as GitHub release assets",
	Long: `AssetPush uploads one or more local files as assets of an existing GitHub
release via the REST API and reports the resulting download URL.

AssetPush does not create releases or manage tags; it targets exactly one
release per invocation, identified by its numeric release id.

Examples:
	# Show available commands and global flags
	assetpush --help

	# Upload a single file
	assetpush upload --file dist/app.tar.gz --asset-name app.tar.gz --release-id 12345

	# Upload every match of a glob pattern
	assetpush upload --file "dist/*.tar.gz" --asset-name app.tar.gz --release-id 12345 --file-glob

	# Print build info
	assetpush version

Output:
	The uploaded asset's browser_download_url is appended to the file named by
	$GITHUB_OUTPUT when running as an Actions step, or printed to stdout.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging (prints every GitHub API call and full error details)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
