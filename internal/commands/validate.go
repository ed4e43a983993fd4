package commands

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/shearwater-tools/cutter/internal/commands/flags"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

// Validate checks a Cutterfile for common mistakes, both the file itself and
// the worktree files it references.
type Validate struct {
	Options struct {
		flags.Standard
		SkipWorktree bool `long:"skip-worktree-checks" description:"only validate the Cutterfile, not the files it references"`
	}

	FS billy.Filesystem
}

var _ jhanda.Command = (*Validate)(nil)

func NewValidate(fs billy.Filesystem) Validate {
	return Validate{
		FS: fs,
	}
}

func (v Validate) Execute(args []string) error {
	_, err := flags.LoadWithDefaultFilePaths(&v.Options, args, v.FS.Stat)
	if err != nil {
		return err
	}

	cf, err := v.Options.Standard.LoadCutterfile(v.FS, nil)
	if err != nil {
		return fmt.Errorf("failed to load Cutterfile: %w", err)
	}

	errs := freight.Validate(cf)

	if !v.Options.SkipWorktree {
		projectFS, err := v.FS.Chroot(v.Options.ProjectDirectory())
		if err != nil {
			return err
		}
		errs = append(errs, freight.ValidateAgainstWorktree(projectFS, cf)...)
	}

	if len(errs) > 0 {
		return errorList(errs)
	}

	return nil
}

type errorList []error

func (list errorList) Error() string {
	messages := make([]string, 0, len(list))
	for _, err := range list {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "\n")
}

func (v Validate) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Validate checks for common Cutterfile mistakes and verifies that every file the Cutterfile references exists in the project tree.",
		ShortDescription: "validate the Cutterfile",
		Flags:            v.Options,
	}
}
