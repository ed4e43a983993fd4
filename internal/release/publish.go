package release

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shearwater-tools/cutter/internal/upload"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

// Publish uploads the source tarball to every configured destination.
// Destinations may be pre-set for tests; otherwise they are built from the
// Cutterfile.
type Publish struct {
	Destinations []upload.Destination
}

func (*Publish) Name() string { return freight.ActivityPublish }

func (activity *Publish) Check(_ context.Context, run *Run) error {
	if len(run.Cutterfile.Publish) == 0 && len(activity.Destinations) == 0 {
		return errors.New("no publish destinations are configured")
	}
	if err := activity.init(run); err != nil {
		return err
	}
	if _, err := os.Stat(run.TarballPath()); err != nil {
		return fmt.Errorf("source tarball %q does not exist; run the sdist activity first: %w", run.TarballPath(), err)
	}
	if _, err := run.Cutterfile.TarballURL(run.Version); err != nil {
		return err
	}
	return nil
}

func (activity *Publish) Do(ctx context.Context, run *Run) error {
	if err := activity.init(run); err != nil {
		return err
	}

	artifact, err := describeTarball(run)
	if err != nil {
		return err
	}

	for _, destination := range activity.Destinations {
		location, err := destination.Upload(ctx, run.Logger, artifact)
		if err != nil {
			return err
		}
		run.Logger.Printf("published %s to %s destination %q at %s", artifact.Name, destination.Type(), destination.ID(), location)
	}
	return nil
}

func (activity *Publish) init(run *Run) error {
	if activity.Destinations != nil {
		return nil
	}
	destinations, err := upload.All(run.Cutterfile.Publish)
	if err != nil {
		return err
	}
	activity.Destinations = destinations
	return nil
}

func describeTarball(run *Run) (upload.Artifact, error) {
	path := run.TarballPath()
	f, err := os.Open(path)
	if err != nil {
		return upload.Artifact{}, fmt.Errorf("failed to open source tarball %q: %w", path, err)
	}
	defer closeAndIgnoreError(f)

	sum := sha256.New()
	size, err := io.Copy(sum, f)
	if err != nil {
		return upload.Artifact{}, fmt.Errorf("failed to read source tarball %q: %w", path, err)
	}

	data := run.Cutterfile.TemplateContext(run.Version)
	return upload.Artifact{
		Project: data.Project,
		Owner:   data.Owner,
		Version: data.Version,
		Name:    run.Cutterfile.TarballName(run.Version),
		Path:    path,
		SHA256:  hex.EncodeToString(sum.Sum(nil)),
		Size:    size,
	}, nil
}

func closeAndIgnoreError(c io.Closer) {
	_ = c.Close()
}
