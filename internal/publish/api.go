package publish

import (
	"context"

	"assetpush/internal/target"

	"github.com/google/go-github/v81/github"
)

// ReleasesAPI is the capability set the publisher needs from the platform:
// list the assets of a release, delete one by id, fetch a release to learn
// its upload endpoint, and upload raw bytes to that endpoint. Implementations
// are assumed to be already authenticated.
type ReleasesAPI interface {
	// ListAssets returns every asset of the release, pagination merged,
	// in the order the platform returns them.
	ListAssets(ctx context.Context, repo target.RepoRef, releaseID int64) ([]*github.ReleaseAsset, error)

	DeleteAsset(ctx context.Context, repo target.RepoRef, assetID int64) error

	GetRelease(ctx context.Context, repo target.RepoRef, releaseID int64) (*github.RepositoryRelease, error)

	// UploadAsset performs a binary upload to the release's upload endpoint
	// (a URI template as returned by GetRelease) and returns the new asset.
	UploadAsset(ctx context.Context, uploadURL, assetName string, content []byte) (*github.ReleaseAsset, error)
}
