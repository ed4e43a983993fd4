package release

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shearwater-tools/cutter/internal/sdist"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

// Sdist builds the source tarball from the tagged tree.
type Sdist struct{}

func (Sdist) Name() string { return freight.ActivitySdist }

func (Sdist) Check(_ context.Context, run *Run) error {
	exists, err := run.Repository.TagExists(run.TagName())
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("tag %s does not exist; run the tag activity first", run.TagName())
	}
	return nil
}

func (Sdist) Do(_ context.Context, run *Run) error {
	archive, err := sdist.Build(
		run.Repository.Git(),
		run.TagName(),
		run.Cutterfile.Project,
		run.Version,
		filepath.Join(run.RepoDir, "dist"),
	)
	if err != nil {
		return err
	}
	run.Logger.Printf("wrote %s (%d bytes, sha256 %s)", archive.Path, archive.Size, archive.SHA256)
	return nil
}
