package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pivotal-cf/jhanda"

	"github.com/shearwater-tools/cutter/internal/check"
	"github.com/shearwater-tools/cutter/internal/commands/flags"
)

// Check runs the Cutterfile's containerized dependency checks on demand,
// outside of a release.
type Check struct {
	Options struct {
		flags.Standard
		EnvironmentVariables []string `short:"e" long:"environment-variable" description:"environment variable passed to the check container (repeatable)"`
	}

	RunCheck func(ctx context.Context, w io.Writer, configuration check.Configuration) error
	Writer   io.Writer
}

var _ jhanda.Command = (*Check)(nil)

func NewCheck(writer io.Writer) Check {
	return Check{
		RunCheck: check.Run,
		Writer:   writer,
	}
}

func (command Check) Execute(args []string) error {
	if _, err := jhanda.Parse(&command.Options, args); err != nil {
		return err
	}

	cf, err := command.Options.Standard.LoadCutterfile(nil, nil)
	if err != nil {
		return fmt.Errorf("failed to load Cutterfile: %w", err)
	}

	dir, err := filepath.Abs(command.Options.ProjectDirectory())
	if err != nil {
		return err
	}

	// check.Run installs its own SIGINT handler so the container gets
	// stopped before the process exits.
	return command.RunCheck(context.Background(), command.Writer, check.Configuration{
		AbsoluteProjectDirectory: dir,
		Container:                cf.Container,
		Environment:              command.Options.EnvironmentVariables,
	})
}

func (command Check) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Check builds a container image from the Cutterfile's container section and runs the install and check commands in it with the project directory mounted.",
		ShortDescription: "run the containerized dependency checks",
		Flags:            command.Options,
	}
}
