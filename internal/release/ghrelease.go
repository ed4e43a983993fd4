package release

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-github/v50/github"

	"github.com/shearwater-tools/cutter/internal/gh"
	"github.com/shearwater-tools/cutter/pkg/freight"
	"github.com/shearwater-tools/cutter/pkg/news"
)

// ReleasesService is the slice of the GitHub API the ghrelease activity
// needs.
type ReleasesService interface {
	CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, *github.Response, error)
	UploadReleaseAsset(ctx context.Context, owner, repo string, id int64, opt *github.UploadOptions, file *os.File) (*github.ReleaseAsset, *github.Response, error)
}

// GHRelease creates the release entry for the tag with the rendered
// changelog section as its body and attaches the source tarball.
type GHRelease struct {
	Collaborators struct {
		InitOnce sync.Once
		ReleasesService
	}
}

func (activity *GHRelease) Name() string { return freight.ActivityGHRelease }

func (activity *GHRelease) init(ctx context.Context, run *Run) error {
	var initErr error
	activity.Collaborators.InitOnce.Do(func() {
		if activity.Collaborators.ReleasesService != nil {
			return
		}
		client, err := gh.Client(ctx, run.Cutterfile.GitHub.Host, run.GitHubToken)
		if err != nil {
			initErr = err
			return
		}
		activity.Collaborators.ReleasesService = client.Repositories
	})
	return initErr
}

func (activity *GHRelease) Check(_ context.Context, run *Run) error {
	if run.GitHubToken == "" && activity.Collaborators.ReleasesService == nil {
		return errors.New("github access token is absent (set GITHUB_TOKEN)")
	}
	if _, _, err := ownerAndRepository(run.Cutterfile); err != nil {
		return err
	}
	if _, err := os.Stat(run.TarballPath()); err != nil {
		return fmt.Errorf("source tarball %q does not exist; run the sdist activity first: %w", run.TarballPath(), err)
	}
	return nil
}

func (activity *GHRelease) Do(ctx context.Context, run *Run) error {
	if err := activity.init(ctx, run); err != nil {
		return err
	}

	owner, repoName, err := ownerAndRepository(run.Cutterfile)
	if err != nil {
		return err
	}

	notes, err := releaseNotes(run)
	if err != nil {
		return err
	}

	created, _, err := activity.Collaborators.CreateRelease(ctx, owner, repoName, &github.RepositoryRelease{
		TagName:    github.String(run.TagName()),
		Name:       github.String(run.TagName()),
		Body:       github.String(notes),
		Draft:      github.Bool(run.Cutterfile.GitHub.Draft),
		Prerelease: github.Bool(run.Cutterfile.GitHub.Prerelease.ForVersion(run.Version)),
	})
	if err != nil {
		return fmt.Errorf("failed to create release for %s: %w", run.TagName(), err)
	}
	run.Logger.Printf("created release %s", created.GetHTMLURL())

	f, err := os.Open(run.TarballPath())
	if err != nil {
		return fmt.Errorf("failed to open source tarball %q: %w", run.TarballPath(), err)
	}
	defer closeAndIgnoreError(f)

	asset, _, err := activity.Collaborators.UploadReleaseAsset(ctx, owner, repoName, created.GetID(), &github.UploadOptions{
		Name: filepath.Base(run.TarballPath()),
	}, f)
	if err != nil {
		return fmt.Errorf("failed to attach %s to release %s: %w", filepath.Base(run.TarballPath()), run.TagName(), err)
	}
	run.Logger.Printf("attached release asset %s", asset.GetBrowserDownloadURL())
	return nil
}

// ownerAndRepository resolves where the release lives. An explicitly
// configured repository URL wins over the owner/project convention.
func ownerAndRepository(cf freight.Cutterfile) (owner, repo string, err error) {
	if cf.Repository != "" {
		return gh.OwnerAndRepositoryFromRemote(cf.Repository)
	}
	if cf.Owner == "" || cf.Project == "" {
		return "", "", errors.New("owner and project must be set to locate the repository")
	}
	return cf.Owner, cf.Project, nil
}

// releaseNotes returns the section rendered by the changelog activity. On a
// resumed run the in-memory section is gone, so it is recovered from the
// changelog file; a project without a changelog gets an empty body.
func releaseNotes(run *Run) (string, error) {
	if run.NotesSection.Notes != "" {
		return run.NotesSection.Notes, nil
	}
	if run.Cutterfile.Changelog.File == "" {
		return "", nil
	}
	content, err := os.ReadFile(filepath.Join(run.RepoDir, run.Cutterfile.Changelog.File))
	if err != nil {
		return "", fmt.Errorf("unable to read changelog %q: %w", run.Cutterfile.Changelog.File, err)
	}
	page, err := news.ParsePage(string(content))
	if err != nil {
		return "", fmt.Errorf("unable to parse changelog %q: %w", run.Cutterfile.Changelog.File, err)
	}
	for _, section := range page.Sections {
		if section.Version == run.Version {
			return section.Notes, nil
		}
	}
	run.Logger.Printf("no changelog section found for %s; the release body will be empty", run.TagName())
	return "", nil
}
