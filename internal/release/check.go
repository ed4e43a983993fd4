package release

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/shearwater-tools/cutter/internal/check"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

// CheckFunc runs the containerized checks. It matches check.Run.
type CheckFunc func(ctx context.Context, w io.Writer, configuration check.Configuration) error

// ContainerCheck runs the project's install and check commands inside the
// configured container image.
type ContainerCheck struct {
	RunCheck CheckFunc
}

func (*ContainerCheck) Name() string { return freight.ActivityCheck }

func (*ContainerCheck) Check(_ context.Context, run *Run) error {
	if run.Cutterfile.Container.Image == "" {
		return errors.New("container.image must be set")
	}
	if run.Cutterfile.Container.CheckCommand == "" {
		return errors.New("container.check_command must be set")
	}
	return nil
}

func (activity *ContainerCheck) Do(ctx context.Context, run *Run) error {
	fn := activity.RunCheck
	if fn == nil {
		fn = check.Run
	}

	dir, err := filepath.Abs(run.RepoDir)
	if err != nil {
		return err
	}
	return fn(ctx, run.Writer, check.Configuration{
		AbsoluteProjectDirectory: dir,
		Container:                run.Cutterfile.Container,
		Environment:              run.Environment,
	})
}
