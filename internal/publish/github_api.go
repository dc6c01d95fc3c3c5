package publish

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	gh "assetpush/internal/github"
	"assetpush/internal/target"

	"github.com/google/go-github/v81/github"
)

// uploadContentType is what the platform stores as the asset's media type.
const uploadContentType = "binary/octet-stream"

const assetsPerPage = 100

// GitHubReleases implements ReleasesAPI against the real GitHub REST API.
type GitHubReleases struct {
	client *gh.Client
}

func NewGitHubReleases(client *gh.Client) *GitHubReleases {
	return &GitHubReleases{client: client}
}

func (g *GitHubReleases) ListAssets(ctx context.Context, repo target.RepoRef, releaseID int64) ([]*github.ReleaseAsset, error) {
	var all []*github.ReleaseAsset
	opts := &github.ListOptions{PerPage: assetsPerPage}
	for {
		assets, resp, err := g.client.REST.Repositories.ListReleaseAssets(ctx, repo.Owner, repo.Repo, releaseID, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, assets...)
		if resp == nil || resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

func (g *GitHubReleases) DeleteAsset(ctx context.Context, repo target.RepoRef, assetID int64) error {
	_, err := g.client.REST.Repositories.DeleteReleaseAsset(ctx, repo.Owner, repo.Repo, assetID)
	return err
}

func (g *GitHubReleases) GetRelease(ctx context.Context, repo target.RepoRef, releaseID int64) (*github.RepositoryRelease, error) {
	release, _, err := g.client.REST.Repositories.GetRelease(ctx, repo.Owner, repo.Repo, releaseID)
	return release, err
}

func (g *GitHubReleases) UploadAsset(ctx context.Context, uploadURL, assetName string, content []byte) (*github.ReleaseAsset, error) {
	endpoint := expandUploadEndpoint(uploadURL, assetName)
	req, err := g.client.REST.NewUploadRequest(endpoint, bytes.NewReader(content), int64(len(content)), uploadContentType)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	asset := new(github.ReleaseAsset)
	if _, err := g.client.REST.Do(ctx, req, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// expandUploadEndpoint turns the release's templated upload URL
// (".../assets{?name,label}") into a concrete endpoint carrying the asset
// name.
func expandUploadEndpoint(uploadURL, assetName string) string {
	base, _, _ := strings.Cut(uploadURL, "{")
	return base + "?name=" + url.QueryEscape(assetName)
}
