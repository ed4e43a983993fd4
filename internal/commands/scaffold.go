package commands

import (
	"fmt"
	"log"

	"github.com/go-git/go-billy/v5/util"
	"github.com/pivotal-cf/jhanda"
	"gopkg.in/yaml.v2"

	"github.com/shearwater-tools/cutter/internal/commands/flags"
	"github.com/shearwater-tools/cutter/pkg/freight"
	"github.com/shearwater-tools/cutter/pkg/news"
)

// Init scaffolds a Cutterfile and the release files it references into a
// project directory. It refuses to clobber anything that already exists.
type Init struct {
	Options struct {
		Dir     string `short:"d" long:"directory" default:"."  description:"path to the directory where release files should be written"`
		Project string `short:"p" long:"project"   required:"true" description:"project name used for tarballs and upload paths"`
		Owner   string `short:"o" long:"owner"     required:"true" description:"GitHub organization or user that owns the repository"`
	}

	FS     flags.FileSystem
	Logger *log.Logger
}

var _ jhanda.Command = (*Init)(nil)

func NewInit(fs flags.FileSystem, logger *log.Logger) Init {
	return Init{
		FS:     fs,
		Logger: logger,
	}
}

const (
	scaffoldChangelogName = "CHANGELOG.md"
	scaffoldNewsDirectory = "news"
	scaffoldVersionName   = "VERSION"

	scaffoldVersionContent   = "0.0.0\n"
	scaffoldChangelogContent = "# Release Notes\n\n" + news.DefaultSentinel

	scaffoldFragmentTemplate = `---
category: Added
---

Describe the change in a sentence or two. The file name becomes the entry
slug; delete this template text before committing.
`
)

func (command Init) Execute(args []string) error {
	if _, err := jhanda.Parse(&command.Options, args); err != nil {
		return err
	}

	cf := freight.Cutterfile{
		Project:    command.Options.Project,
		Owner:      command.Options.Owner,
		Activities: freight.DefaultActivities(),
		VersionBump: []freight.BumpRule{{
			File:    scaffoldVersionName,
			Pattern: `\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?`,
			Replace: "{{.Version}}",
		}},
		Changelog: freight.ChangelogConfig{
			File:          scaffoldChangelogName,
			NewsDirectory: scaffoldNewsDirectory,
		},
		Tarball: freight.TarballConfig{
			URLTemplate: freight.DefaultTarballURLTemplate,
		},
	}
	cutterfileYAML, err := yaml.Marshal(cf)
	if err != nil {
		return err
	}

	dir := command.Options.Dir
	files := []struct {
		path    string
		content []byte
	}{
		{path: command.FS.Join(dir, "Cutterfile"), content: cutterfileYAML},
		{path: command.FS.Join(dir, scaffoldVersionName), content: []byte(scaffoldVersionContent)},
		{path: command.FS.Join(dir, scaffoldChangelogName), content: []byte(scaffoldChangelogContent)},
		{path: command.FS.Join(dir, scaffoldNewsDirectory, "TEMPLATE.md"), content: []byte(scaffoldFragmentTemplate)},
	}

	for _, file := range files {
		if _, err := command.FS.Stat(file.path); err == nil {
			return fmt.Errorf("refusing to overwrite existing file %q", file.path)
		}
	}

	if err := command.FS.MkdirAll(command.FS.Join(dir, scaffoldNewsDirectory), 0o755); err != nil {
		return fmt.Errorf("failed to create news directory: %w", err)
	}

	for _, file := range files {
		if err := util.WriteFile(command.FS, file.path, file.content, 0o644); err != nil {
			return fmt.Errorf("failed to write %q: %w", file.path, err)
		}
		command.Logger.Printf("wrote %s", file.path)
	}

	return nil
}

func (command Init) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "Init scaffolds a Cutterfile with the default activity sequence, a changelog with the section sentinel, and a news directory for changelog fragments.",
		ShortDescription: "scaffold a Cutterfile for a project",
		Flags:            command.Options,
	}
}
