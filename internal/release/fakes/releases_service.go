package fakes

import (
	"context"
	"os"

	"github.com/google/go-github/v50/github"
)

type ReleasesService struct {
	CreateReleaseCall struct {
		CallCount int
		Receives  struct {
			Owner   string
			Repo    string
			Release *github.RepositoryRelease
		}
		Returns struct {
			Release  *github.RepositoryRelease
			Response *github.Response
			Err      error
		}
	}
	UploadReleaseAssetCall struct {
		CallCount int
		Receives  struct {
			Owner   string
			Repo    string
			ID      int64
			Options *github.UploadOptions
			File    *os.File
		}
		Returns struct {
			Asset    *github.ReleaseAsset
			Response *github.Response
			Err      error
		}
	}
}

func (mock *ReleasesService) CreateRelease(_ context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, *github.Response, error) {
	mock.CreateReleaseCall.CallCount++
	mock.CreateReleaseCall.Receives.Owner = owner
	mock.CreateReleaseCall.Receives.Repo = repo
	mock.CreateReleaseCall.Receives.Release = release
	return mock.CreateReleaseCall.Returns.Release, mock.CreateReleaseCall.Returns.Response, mock.CreateReleaseCall.Returns.Err
}

func (mock *ReleasesService) UploadReleaseAsset(_ context.Context, owner, repo string, id int64, opt *github.UploadOptions, file *os.File) (*github.ReleaseAsset, *github.Response, error) {
	mock.UploadReleaseAssetCall.CallCount++
	mock.UploadReleaseAssetCall.Receives.Owner = owner
	mock.UploadReleaseAssetCall.Receives.Repo = repo
	mock.UploadReleaseAssetCall.Receives.ID = id
	mock.UploadReleaseAssetCall.Receives.Options = opt
	mock.UploadReleaseAssetCall.Receives.File = file
	return mock.UploadReleaseAssetCall.Returns.Asset, mock.UploadReleaseAssetCall.Returns.Response, mock.UploadReleaseAssetCall.Returns.Err
}
