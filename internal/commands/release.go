package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/shearwater-tools/cutter/internal/commands/flags"
	"github.com/shearwater-tools/cutter/internal/gitrepo"
	"github.com/shearwater-tools/cutter/internal/release"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

// Release runs the Cutterfile's activity sequence for a new version.
type Release struct {
	Options struct {
		flags.Standard
		DryRun               bool     `long:"dry-run"   description:"print the planned activities without executing them"`
		Skip                 []string `long:"skip"      description:"activity to leave out of this run (repeatable)"`
		NoResume             bool     `long:"no-resume" description:"run every activity even when the ledger records it as completed"`
		Remote               string   `long:"remote"    description:"git remote tags and branches are pushed to (default origin)"`
		EnvironmentVariables []string `short:"e" long:"environment-variable" description:"environment variable passed to the check container (repeatable)"`
	}

	OutLogger *log.Logger
	Writer    io.Writer
}

var _ jhanda.Command = (*Release)(nil)

func NewRelease(outLogger *log.Logger, writer io.Writer) Release {
	return Release{
		OutLogger: outLogger,
		Writer:    writer,
	}
}

func (command Release) Execute(args []string) error {
	versionArgs, err := jhanda.Parse(&command.Options, args)
	if err != nil {
		return err
	}
	if len(versionArgs) != 1 {
		return errors.New("expected exactly one version argument (a semver, or one of major, minor, patch)")
	}

	templateVariables, err := command.Options.TemplateVariables(nil, nil)
	if err != nil {
		return err
	}
	cf, err := command.Options.Standard.LoadCutterfile(nil, nil)
	if err != nil {
		return fmt.Errorf("failed to load Cutterfile: %w", err)
	}
	cf, err = cf.ConfigureSecrets(templateVariables)
	if err != nil {
		return err
	}

	githubToken, err := freight.ResolveSecret("", "github_token", "GITHUB_TOKEN", templateVariables)
	if err != nil {
		return err
	}
	slackToken, err := freight.ResolveSecret("", "slack_token", "SLACK_TOKEN", templateVariables)
	if err != nil {
		return err
	}

	dir := command.Options.ProjectDirectory()
	errs := freight.Validate(cf)
	errs = append(errs, freight.ValidateAgainstWorktree(osfs.New(dir), cf)...)
	if len(errs) > 0 {
		return errorList(errs)
	}

	repo, err := gitrepo.Open(dir, gitrepo.WithToken(githubToken), gitrepo.WithRemote(command.Options.Remote))
	if err != nil {
		return err
	}
	version, err := release.ResolveVersion(versionArgs[0], repo)
	if err != nil {
		return err
	}

	ledger, err := release.LoadLedger(dir)
	if err != nil {
		return err
	}
	activities, err := release.Resolve(cf.Activities, command.Options.Skip)
	if err != nil {
		return err
	}

	runner := release.Runner{
		Activities: activities,
		Ledger:     ledger,
		Resume:     !command.Options.NoResume,
		DryRun:     command.Options.DryRun,
	}

	// The check activity installs its own SIGINT handler; a canceled
	// context would race with its container teardown.
	return runner.Run(context.Background(), &release.Run{
		Cutterfile:  cf,
		Version:     version,
		RepoDir:     dir,
		Repository:  repo,
		Logger:      command.OutLogger,
		Writer:      command.Writer,
		GitHubToken: githubToken,
		SlackToken:  slackToken,
		Environment: command.Options.EnvironmentVariables,
	})
}

func (command Release) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description: "Release runs the Cutterfile's activities in order for a new version. " +
			"The version argument is a semver greater than the latest v tag, or one of major, minor, and patch to bump from it. " +
			"Completed activities are recorded in .cutter/ledger.json; re-running after a failure resumes where the run stopped.",
		ShortDescription: "cut a release",
		Flags:            command.Options,
	}
}
