// Package release executes a Cutterfile's activity sequence for one version.
//
// Activities run strictly in configured order and the first failure aborts
// the run. Completed activities are recorded in a ledger under the project's
// .cutter directory so an interrupted release resumes where it stopped.
package release

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/shearwater-tools/cutter/internal/gitrepo"
	"github.com/shearwater-tools/cutter/pkg/freight"
	"github.com/shearwater-tools/cutter/pkg/news"
)

// Activity is one step of a release. Check verifies preconditions without
// changing anything; Do performs the step.
type Activity interface {
	Name() string
	Check(ctx context.Context, run *Run) error
	Do(ctx context.Context, run *Run) error
}

// Run carries the state shared by the activities of a single release:
// configuration, the resolved version, the repository, and artifacts
// produced along the way.
type Run struct {
	Cutterfile freight.Cutterfile

	// Version has no v prefix. Tags and section headings add their own.
	Version string

	// RepoDir is the project root, which Cutterfile paths are relative to.
	RepoDir string

	Repository *gitrepo.Repository

	Logger *log.Logger
	Writer io.Writer

	GitHubToken string
	SlackToken  string

	// Environment is passed through to the check activity's container.
	Environment []string

	// NotesSection is set by the changelog activity and read by ghrelease
	// and announce. On resumed runs it may be empty; readers fall back to
	// the changelog file.
	NotesSection news.Section
}

func (run *Run) TagName() string {
	return "v" + run.Version
}

// TarballPath is where the sdist activity leaves the source tarball and
// where publish and ghrelease expect to find it.
func (run *Run) TarballPath() string {
	return filepath.Join(run.RepoDir, "dist", run.Cutterfile.TarballName(run.Version))
}

// New constructs the activity registered under name.
func New(name string) (Activity, error) {
	switch name {
	case freight.ActivityVersionBump:
		return new(VersionBump), nil
	case freight.ActivityChangelog:
		return new(Changelog), nil
	case freight.ActivityTag:
		return new(Tag), nil
	case freight.ActivityPushTag:
		return new(PushTag), nil
	case freight.ActivitySdist:
		return new(Sdist), nil
	case freight.ActivityPublish:
		return new(Publish), nil
	case freight.ActivityGHRelease:
		return new(GHRelease), nil
	case freight.ActivityCheck:
		return new(ContainerCheck), nil
	case freight.ActivityAnnounce:
		return new(Announce), nil
	}
	return nil, fmt.Errorf("activity %q is not registered", name)
}

// Resolve maps activity names to activities in order, dropping names listed
// in skip.
func Resolve(names, skip []string) ([]Activity, error) {
	skipSet := make(map[string]struct{}, len(skip))
	for _, name := range skip {
		if !freight.IsRecognizedActivity(name) {
			return nil, fmt.Errorf("cannot skip unrecognized activity %q", name)
		}
		skipSet[name] = struct{}{}
	}

	activities := make([]Activity, 0, len(names))
	for _, name := range names {
		if _, ok := skipSet[name]; ok {
			continue
		}
		activity, err := New(name)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, nil
}
