package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

const DefaultRemote = "origin"

// Repository wraps a git worktree with the handful of operations a release
// needs. Pushes go to the configured remote (DefaultRemote unless overridden
// with WithRemote); when a token is set and the remote is an http(s) URL it
// is used as basic auth, otherwise the transport defaults (ssh agent and
// friends) apply.
type Repository struct {
	repo   *git.Repository
	remote string
	token  string
}

type Option func(*Repository)

func WithToken(token string) Option {
	return func(r *Repository) {
		r.token = token
	}
}

func WithRemote(name string) Option {
	return func(r *Repository) {
		if name != "" {
			r.remote = name
		}
	}
}

func Open(path string, options ...Option) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("unable to open git repository at %q: %w", path, err)
	}
	return New(repo, options...), nil
}

func New(repo *git.Repository, options ...Option) *Repository {
	r := &Repository{repo: repo, remote: DefaultRemote}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Repository) Git() *git.Repository {
	return r.repo
}

func (r *Repository) Root() (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", err
	}
	return wt.Filesystem.Root(), nil
}

func (r *Repository) HeadBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("unable to resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch (detached at %s)", head.Hash().String()[:7])
	}
	return head.Name().Short(), nil
}

func (r *Repository) WorktreeClean() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, err
	}
	status, err := wt.Status()
	if err != nil {
		return false, err
	}
	return status.IsClean(), nil
}

// CommitPaths stages the given worktree relative paths and commits them.
func (r *Repository) CommitPaths(message string, paths []string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", err
	}
	for _, path := range paths {
		if _, err := wt.Add(path); err != nil {
			return "", fmt.Errorf("unable to stage %q: %w", path, err)
		}
	}
	hash, err := wt.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf("unable to commit: %w", err)
	}
	return hash.String(), nil
}

// CommitAll stages every worktree change, deletions included, and commits.
func (r *Repository) CommitAll(message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", err
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return "", fmt.Errorf("unable to stage changes: %w", err)
	}
	hash, err := wt.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf("unable to commit: %w", err)
	}
	return hash.String(), nil
}

// CreateTag creates an annotated tag at HEAD.
func (r *Repository) CreateTag(name, message string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("unable to resolve HEAD: %w", err)
	}
	_, err = r.repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{Message: message})
	if err != nil {
		return fmt.Errorf("unable to create tag %q: %w", name, err)
	}
	return nil
}

func (r *Repository) TagExists(name string) (bool, error) {
	_, err := r.repo.Tag(name)
	if errors.Is(err, git.ErrTagNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// LatestVersionTag reports the highest v prefixed semver tag, if any.
func (r *Repository) LatestVersionTag() (string, bool, error) {
	tags, err := r.repo.Tags()
	if err != nil {
		return "", false, err
	}
	var latest *semver.Version
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !strings.HasPrefix(name, "v") {
			return nil
		}
		v, err := semver.NewVersion(strings.TrimPrefix(name, "v"))
		if err != nil {
			return nil
		}
		if latest == nil || v.GreaterThan(latest) {
			latest = v
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}
	if latest == nil {
		return "", false, nil
	}
	return latest.String(), true, nil
}

func (r *Repository) PushTag(ctx context.Context, name string) error {
	return r.push(ctx, config.RefSpec(fmt.Sprintf("refs/tags/%s:refs/tags/%s", name, name)))
}

func (r *Repository) PushBranch(ctx context.Context, name string) error {
	return r.push(ctx, config.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", name, name)))
}

func (r *Repository) push(ctx context.Context, refSpec config.RefSpec) error {
	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: r.remote,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       r.auth(),
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to push %s: %w", refSpec, err)
	}
	return nil
}

func (r *Repository) auth() transport.AuthMethod {
	if r.token == "" {
		return nil
	}
	url, err := r.RemoteURL()
	if err != nil || !strings.HasPrefix(url, "http") {
		return nil
	}
	return &githttp.BasicAuth{Username: "x-access-token", Password: r.token}
}

func (r *Repository) RemoteURL() (string, error) {
	remote, err := r.repo.Remote(r.remote)
	if err != nil {
		return "", fmt.Errorf("unable to look up remote %q: %w", r.remote, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL", r.remote)
	}
	return urls[0], nil
}
