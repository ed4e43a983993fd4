package release

import (
	"context"
	"fmt"

	"github.com/shearwater-tools/cutter/pkg/freight"
)

// Tag creates the annotated release tag at HEAD.
type Tag struct{}

func (Tag) Name() string { return freight.ActivityTag }

func (Tag) Check(_ context.Context, run *Run) error {
	exists, err := run.Repository.TagExists(run.TagName())
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("tag %s already exists", run.TagName())
	}
	return nil
}

func (Tag) Do(_ context.Context, run *Run) error {
	message := fmt.Sprintf("%s %s", run.Cutterfile.Project, run.TagName())
	if err := run.Repository.CreateTag(run.TagName(), message); err != nil {
		return err
	}
	run.Logger.Printf("tagged HEAD as %s", run.TagName())
	return nil
}

// PushTag pushes the release tag and the release branch to the remote.
type PushTag struct{}

func (PushTag) Name() string { return freight.ActivityPushTag }

func (PushTag) Check(_ context.Context, run *Run) error {
	if _, err := run.Repository.RemoteURL(); err != nil {
		return err
	}
	exists, err := run.Repository.TagExists(run.TagName())
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("tag %s does not exist; run the tag activity first", run.TagName())
	}
	return nil
}

func (PushTag) Do(ctx context.Context, run *Run) error {
	branch, err := run.Repository.HeadBranch()
	if err != nil {
		return err
	}
	if err := run.Repository.PushBranch(ctx, branch); err != nil {
		return err
	}
	if err := run.Repository.PushTag(ctx, run.TagName()); err != nil {
		return err
	}
	run.Logger.Printf("pushed %s and %s", branch, run.TagName())
	return nil
}
