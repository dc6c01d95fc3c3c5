package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"assetpush/internal/config"
	"assetpush/internal/flags"
	gh "assetpush/internal/github"
	"assetpush/internal/output"
	"assetpush/internal/publish"
	"assetpush/internal/target"

	"github.com/spf13/cobra"
)

var cfg = config.New()

const uploadHelpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}Usage:
  {{.UseLine}}

{{if .HasAvailableLocalFlags}}Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableInheritedFlags}}Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}Environment:
	AssetPush authenticates to GitHub using an access token.

	Sources (in order):
	1) --token flag
	2) GITHUB_TOKEN environment variable
	3) GitHub CLI (gh) authentication via gh auth token (if gh is installed and logged in)

	GITHUB_REPOSITORY (owner/repo) identifies the invoking repository; the
	Actions runner sets it automatically. --repo redirects asset calls to
	another repository.

	When launched as an Actions step, inputs arrive as INPUT_* environment
	variables (repo_token, file, asset_name, release_id, file_glob,
	overwrite, repo_name) and take precedence over flags.

  Examples:
    # macOS/Linux
    export GITHUB_TOKEN="<your_token>"
    assetpush upload --file dist/app.tar.gz --asset-name app.tar.gz --release-id 12345

		# GitHub CLI auth
		gh auth login
		assetpush upload --file dist/app.tar.gz --asset-name app.tar.gz --release-id 12345
`

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload file(s) as assets of an existing release",
	Long: `Upload one or more local files as assets of an existing GitHub release.

The release is identified by its numeric id. A glob pattern (--file-glob)
uploads every match sequentially under the same asset name; the reported
browser_download_url is the last processed file's. An existing asset of the
same name fails the upload unless --overwrite is set, in which case it is
deleted first.

Paths that are not regular files are skipped, never failed. The first API
error stops the run; there is no retry.

Exit codes:
	0 = all files processed (uploaded or skipped)
	1 = upload failed (conflict, API error, no glob matches)
	2 = configuration error (missing input, bad repo name, no token)
`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && cmd.Flags().NFlag() == 0 && !config.InActionMode() {
			_ = cmd.Help()
			return
		}

		runCfg := cfg
		if config.InActionMode() {
			actionCfg, err := config.FromActionEnv()
			if err != nil {
				fatal(2, err)
			}
			actionCfg.Verbose = cfg.Verbose
			runCfg = actionCfg
		} else if err := runCfg.Validate(); err != nil {
			fatal(2, err)
		}

		ctx := context.Background()
		token, _, err := gh.ResolveAuthToken(ctx, runCfg.Token)
		if err != nil {
			fatal(2, fmt.Errorf("failed to resolve GitHub auth token: %w", err))
		}
		if strings.TrimSpace(token) == "" {
			fatal(2, fmt.Errorf("GitHub auth token is required (set GITHUB_TOKEN or run 'gh auth login')"))
		}

		// The ambient repository may be absent in terminal runs; that is
		// only fatal when no --repo override can stand in for it.
		ambient, ambientErr := target.Ambient()
		if ambientErr != nil && runCfg.RepoName == "" {
			fatal(2, ambientErr)
		}
		repoRef, err := target.Resolve(runCfg.RepoName, ambient)
		if err != nil {
			fatal(2, err)
		}
		if ambientErr != nil {
			ambient = repoRef
		}

		client, err := gh.NewClient(ctx, token, gh.WithVerbose(runCfg.Verbose, nil))
		if err != nil {
			fatal(2, fmt.Errorf("failed to create GitHub client: %w", err))
		}

		publisher := &publish.Publisher{
			API:       publish.NewGitHubReleases(client),
			Repo:      repoRef,
			Ambient:   ambient,
			ReleaseID: runCfg.ReleaseIDNum,
			Overwrite: runCfg.Overwrite,
		}
		if runCfg.Verbose {
			publisher.Debug = os.Stderr
		}

		var register output.Register
		runErr := publish.Run(ctx, publisher, &register, os.Stderr, runCfg.File, runCfg.AssetName, runCfg.FileGlob)

		// The conflict outcome carries the existing asset's URL, so the
		// output is published even when the run then fails.
		if url, ok := register.Value(); ok {
			if err := output.WriteOutput(os.Stdout, output.BrowserDownloadURL, url); err != nil {
				fatal(1, err)
			}
		}
		if runErr != nil {
			fatal(1, runErr)
		}
		if url, ok := register.Value(); ok {
			output.Successf(os.Stderr, "done: %s\n", url)
		}
	},
}

func fatal(code int, err error) {
	output.Errorf(os.Stderr, "Error: %v\n", err)
	os.Exit(code)
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.SetHelpTemplate(uploadHelpTemplate)

	uploadCmd.Flags().StringVar(&cfg.Token, flags.FlagToken, "", "GitHub access token (falls back to GITHUB_TOKEN, then gh CLI auth)")
	uploadCmd.Flags().StringVar(&cfg.File, flags.FlagFile, "", "Path of the file to upload, or a glob pattern with --file-glob")
	uploadCmd.Flags().StringVar(&cfg.AssetName, flags.FlagAssetName, "", "Name assigned to the uploaded asset (reused for every glob match)")
	uploadCmd.Flags().StringVar(&cfg.ReleaseID, flags.FlagReleaseID, "", "Numeric id of the target release")
	uploadCmd.Flags().BoolVar(&cfg.FileGlob, flags.FlagFileGlob, false, "Treat --file as a glob pattern and upload every match")
	uploadCmd.Flags().BoolVar(&cfg.Overwrite, flags.FlagOverwrite, false, "Replace an existing asset of the same name instead of failing")
	uploadCmd.Flags().StringVar(&cfg.RepoName, flags.FlagRepo, "", "Target repository as OWNER/REPO (default: the invoking repository)")
}
