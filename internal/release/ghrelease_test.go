package release_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-github/v50/github"
	Ω "github.com/onsi/gomega"

	"github.com/shearwater-tools/cutter/internal/release"
	"github.com/shearwater-tools/cutter/internal/release/fakes"
	"github.com/shearwater-tools/cutter/pkg/freight"
	"github.com/shearwater-tools/cutter/pkg/news"
)

func TestGHRelease(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	cf := freight.Cutterfile{
		Project: "fixie-data",
		Owner:   "fixie",
		GitHub:  freight.GitHubConfig{Draft: true},
	}
	run, out := newRun(cf, "0.2.0", nil, t.TempDir())
	run.NotesSection = news.Section{
		Version: "0.2.0",
		Notes:   "## v0.2.0 (2026-05-01)\n\n### Added\n\n* Parquet export.\n",
	}
	writeTarball(t, run, []byte("tarball"))

	service := new(fakes.ReleasesService)
	service.CreateReleaseCall.Returns.Release = &github.RepositoryRelease{
		ID:      github.Int64(42),
		HTMLURL: github.String("https://github.com/fixie/fixie-data/releases/tag/v0.2.0"),
	}
	service.UploadReleaseAssetCall.Returns.Asset = &github.ReleaseAsset{
		BrowserDownloadURL: github.String("https://github.com/fixie/fixie-data/releases/download/v0.2.0/fixie-data-0.2.0.tar.gz"),
	}

	activity := new(release.GHRelease)
	activity.Collaborators.ReleasesService = service

	please.Expect(activity.Check(context.Background(), run)).To(Ω.Succeed())
	please.Expect(activity.Do(context.Background(), run)).To(Ω.Succeed())

	please.Expect(service.CreateReleaseCall.CallCount).To(Ω.Equal(1))
	please.Expect(service.CreateReleaseCall.Receives.Owner).To(Ω.Equal("fixie"))
	please.Expect(service.CreateReleaseCall.Receives.Repo).To(Ω.Equal("fixie-data"))
	created := service.CreateReleaseCall.Receives.Release
	please.Expect(created.GetTagName()).To(Ω.Equal("v0.2.0"))
	please.Expect(created.GetName()).To(Ω.Equal("v0.2.0"))
	please.Expect(created.GetBody()).To(Ω.ContainSubstring("Parquet export"))
	please.Expect(created.GetDraft()).To(Ω.BeTrue())
	please.Expect(created.GetPrerelease()).To(Ω.BeFalse())

	please.Expect(service.UploadReleaseAssetCall.CallCount).To(Ω.Equal(1))
	please.Expect(service.UploadReleaseAssetCall.Receives.ID).To(Ω.Equal(int64(42)))
	please.Expect(service.UploadReleaseAssetCall.Receives.Options.Name).To(Ω.Equal("fixie-data-0.2.0.tar.gz"))

	please.Expect(out.String()).To(Ω.ContainSubstring("created release https://github.com/fixie/fixie-data/releases/tag/v0.2.0"))
	please.Expect(out.String()).To(Ω.ContainSubstring("attached release asset"))
}

func TestGHRelease_PrereleaseFollowsVersion(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	cf := freight.Cutterfile{Project: "fixie-data", Owner: "fixie"}
	run, _ := newRun(cf, "1.0.0-rc.1", nil, t.TempDir())
	writeTarball(t, run, []byte("tarball"))

	service := new(fakes.ReleasesService)
	service.CreateReleaseCall.Returns.Release = &github.RepositoryRelease{ID: github.Int64(7)}
	activity := new(release.GHRelease)
	activity.Collaborators.ReleasesService = service

	please.Expect(activity.Do(context.Background(), run)).To(Ω.Succeed())
	please.Expect(service.CreateReleaseCall.Receives.Release.GetPrerelease()).To(Ω.BeTrue())

	run, _ = newRun(freight.Cutterfile{
		Project: "fixie-data",
		Owner:   "fixie",
		GitHub:  freight.GitHubConfig{Prerelease: freight.PrereleaseFalse},
	}, "1.0.0-rc.1", nil, t.TempDir())
	writeTarball(t, run, []byte("tarball"))
	please.Expect(activity.Do(context.Background(), run)).To(Ω.Succeed())
	please.Expect(service.CreateReleaseCall.Receives.Release.GetPrerelease()).To(Ω.BeFalse())
}

func TestGHRelease_NotesRecoveredFromChangelog(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	cf := freight.Cutterfile{
		Project:   "fixie-data",
		Owner:     "fixie",
		Changelog: freight.ChangelogConfig{File: "CHANGELOG.md"},
	}
	run, _ := newRun(cf, "0.2.0", nil, t.TempDir())
	writeTarball(t, run, []byte("tarball"))
	changelog := "# fixie-data Change Log\n\n<!-- current developments -->\n" +
		"## v0.2.0 (2026-05-01)\n\n### Fixed\n\n* Retry backoff.\n\n" +
		"## v0.1.0 (2026-04-01)\n\n### Added\n\n* Initial release.\n"
	please.Expect(os.WriteFile(filepath.Join(run.RepoDir, "CHANGELOG.md"), []byte(changelog), 0o644)).To(Ω.Succeed())

	service := new(fakes.ReleasesService)
	service.CreateReleaseCall.Returns.Release = &github.RepositoryRelease{ID: github.Int64(7)}
	activity := new(release.GHRelease)
	activity.Collaborators.ReleasesService = service

	please.Expect(activity.Do(context.Background(), run)).To(Ω.Succeed())

	body := service.CreateReleaseCall.Receives.Release.GetBody()
	please.Expect(body).To(Ω.ContainSubstring("Retry backoff"))
	please.Expect(body).NotTo(Ω.ContainSubstring("Initial release"))
}

func TestGHRelease_ExplicitRepository(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	cf := freight.Cutterfile{
		Project:    "fixie-data",
		Owner:      "fixie",
		Repository: "git@github.com:acme/widgets.git",
	}
	run, _ := newRun(cf, "0.2.0", nil, t.TempDir())
	writeTarball(t, run, []byte("tarball"))

	service := new(fakes.ReleasesService)
	service.CreateReleaseCall.Returns.Release = &github.RepositoryRelease{ID: github.Int64(7)}
	activity := new(release.GHRelease)
	activity.Collaborators.ReleasesService = service

	please.Expect(activity.Do(context.Background(), run)).To(Ω.Succeed())
	please.Expect(service.CreateReleaseCall.Receives.Owner).To(Ω.Equal("acme"))
	please.Expect(service.CreateReleaseCall.Receives.Repo).To(Ω.Equal("widgets"))
}

func TestGHRelease_CheckFailures(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	cf := freight.Cutterfile{Project: "fixie-data", Owner: "fixie"}

	run, _ := newRun(cf, "0.2.0", nil, t.TempDir())
	please.Expect(new(release.GHRelease).Check(context.Background(), run)).To(
		Ω.MatchError(Ω.ContainSubstring("github access token is absent (set GITHUB_TOKEN)")))

	run, _ = newRun(freight.Cutterfile{Project: "fixie-data"}, "0.2.0", nil, t.TempDir())
	run.GitHubToken = "gh-token"
	please.Expect(new(release.GHRelease).Check(context.Background(), run)).To(
		Ω.MatchError(Ω.ContainSubstring("owner and project must be set")))

	run, _ = newRun(cf, "0.2.0", nil, t.TempDir())
	run.GitHubToken = "gh-token"
	please.Expect(new(release.GHRelease).Check(context.Background(), run)).To(
		Ω.MatchError(Ω.ContainSubstring("run the sdist activity first")))
}

func TestGHRelease_CreateFailureAborts(t *testing.T) {
	t.Parallel()
	please := Ω.NewWithT(t)

	run, _ := newRun(freight.Cutterfile{Project: "fixie-data", Owner: "fixie"}, "0.2.0", nil, t.TempDir())
	writeTarball(t, run, []byte("tarball"))

	service := new(fakes.ReleasesService)
	service.CreateReleaseCall.Returns.Err = errors.New("lemon")
	activity := new(release.GHRelease)
	activity.Collaborators.ReleasesService = service

	please.Expect(activity.Do(context.Background(), run)).To(
		Ω.MatchError(Ω.ContainSubstring("failed to create release for v0.2.0: lemon")))
	please.Expect(service.UploadReleaseAssetCall.CallCount).To(Ω.BeZero())
}
