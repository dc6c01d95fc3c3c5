// Package publish implements the asset-upload-with-conflict-resolution
// sequence: check the local file, list the release's existing assets, apply
// the duplicate policy, fetch the release's upload endpoint, and upload the
// bytes.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"assetpush/internal/target"
)

// ErrAssetExists is returned when an asset with the requested name already
// exists on the release and overwriting is disabled. The accompanying
// Outcome still carries the existing asset's download URL.
var ErrAssetExists = errors.New("asset already exists")

type Status string

const (
	// StatusSkipped means the path was not a regular file; nothing was
	// uploaded and nothing failed.
	StatusSkipped Status = "skipped"

	// StatusConflict means a same-named asset already exists and overwrite
	// is disabled. URL holds the existing asset's download URL.
	StatusConflict Status = "conflict"

	// StatusUploaded means the upload succeeded. URL holds the new asset's
	// download URL.
	StatusUploaded Status = "uploaded"
)

// Outcome is the per-file result of a publish attempt.
type Outcome struct {
	Status Status
	URL    string
}

// Publisher uploads files as assets of one release. It runs each publish
// strictly in order with no concurrency; a Publisher itself holds no mutable
// state between calls.
type Publisher struct {
	API       ReleasesAPI
	Repo      target.RepoRef
	ReleaseID int64
	Overwrite bool

	// Ambient is the invoking workflow's own repository. The release
	// metadata fetch uses it instead of Repo; see DESIGN.md for why this
	// asymmetry is kept.
	Ambient target.RepoRef

	// Debug receives skip diagnostics. Nil silences them.
	Debug io.Writer
}

// Publish uploads filePath as an asset named assetName.
//
// Non-regular and missing paths are skipped, never failed. A same-named
// existing asset either gets deleted first (Overwrite) or aborts the publish
// with ErrAssetExists while still reporting the existing URL. Any API error
// propagates verbatim; there is no retry.
func (p *Publisher) Publish(ctx context.Context, filePath, assetName string) (Outcome, error) {
	fi, err := os.Stat(filePath)
	if err != nil || !fi.Mode().IsRegular() {
		p.debugf("skipping %s: not a regular file\n", filePath)
		return Outcome{Status: StatusSkipped}, nil
	}

	// Whole file in memory; the declared content length must match the
	// byte count exactly, zero-byte files included.
	content, err := os.ReadFile(filePath)
	if err != nil {
		return Outcome{}, fmt.Errorf("reading %s: %w", filePath, err)
	}

	assets, err := p.API.ListAssets(ctx, p.Repo, p.ReleaseID)
	if err != nil {
		return Outcome{}, err
	}
	for _, asset := range assets {
		if asset.GetName() != assetName {
			continue
		}
		if !p.Overwrite {
			return Outcome{Status: StatusConflict, URL: asset.GetBrowserDownloadURL()},
				fmt.Errorf("%w: %s", ErrAssetExists, assetName)
		}
		// Deletion is not verified beyond the call succeeding; a silently
		// ineffective delete is left to the upload's own conflict behavior.
		if err := p.API.DeleteAsset(ctx, p.Repo, asset.GetID()); err != nil {
			return Outcome{}, err
		}
		break
	}

	// The upload endpoint is only known from the release itself, so this
	// fetch happens even when no duplicate existed.
	release, err := p.API.GetRelease(ctx, p.Ambient, p.ReleaseID)
	if err != nil {
		return Outcome{}, err
	}

	uploaded, err := p.API.UploadAsset(ctx, release.GetUploadURL(), assetName, content)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Status: StatusUploaded, URL: uploaded.GetBrowserDownloadURL()}, nil
}

func (p *Publisher) debugf(format string, args ...any) {
	if p.Debug != nil {
		_, _ = fmt.Fprintf(p.Debug, format, args...)
	}
}
