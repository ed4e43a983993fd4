package commands

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/pivotal-cf/jhanda"

	"github.com/shearwater-tools/cutter/internal/commands/flags"
	"github.com/shearwater-tools/cutter/pkg/news"
)

// News adds a changelog fragment to the news directory. The fragment is
// folded into the changelog by the next release's changelog activity.
type News struct {
	Options struct {
		flags.Standard
		Category string `short:"c" long:"category" description:"changelog category for the entry" required:"true"`
		Author   string `short:"a" long:"author"   description:"author credited in the changelog entry"`
		Issue    string `short:"i" long:"issue"    description:"issue or pull request reference"`
		Slug     string `short:"s" long:"slug"     description:"fragment file name (derived from the summary when unset)"`
		Edit     bool   `short:"e" long:"edit"     description:"open the new fragment in $EDITOR"`
	}

	FS     flags.FileSystem
	Logger *log.Logger

	// EditFunc opens a fragment for editing. Overridable for tests; the
	// default execs $EDITOR.
	EditFunc func(path string) error
}

var _ jhanda.Command = (*News)(nil)

func NewNews(fs flags.FileSystem, logger *log.Logger) News {
	return News{
		FS:     fs,
		Logger: logger,
	}
}

func (command News) Execute(args []string) error {
	summaryArgs, err := jhanda.Parse(&command.Options, args)
	if err != nil {
		return err
	}
	summary := strings.TrimSpace(strings.Join(summaryArgs, " "))
	if summary == "" {
		return errors.New("missing summary argument (usage: cutter news [flags] <summary>)")
	}

	cf, err := command.Options.Standard.LoadCutterfile(command.FS, nil)
	if err != nil {
		return fmt.Errorf("failed to load Cutterfile: %w", err)
	}

	categories := cf.ChangelogCategories()
	if !contains(categories, command.Options.Category) {
		return fmt.Errorf("category %q is not configured (configured categories: %s)",
			command.Options.Category, strings.Join(categories, ", "))
	}

	slug := command.Options.Slug
	if slug == "" {
		slug = slugify(summary)
	}
	if slug == "" {
		return fmt.Errorf("could not derive a fragment slug from %q; pass --slug", summary)
	}

	fragment := news.Fragment{
		Slug:     slug,
		Category: command.Options.Category,
		Author:   command.Options.Author,
		Issue:    command.Options.Issue,
		Body:     summary,
	}

	dir := command.FS.Join(command.Options.ProjectDirectory(), cf.NewsDirectory())
	if err := command.FS.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create news directory %q: %w", dir, err)
	}
	path := command.FS.Join(dir, slug+".md")
	if _, err := command.FS.Stat(path); err == nil {
		return fmt.Errorf("news fragment %q already exists", path)
	}

	if err := writeFragment(command.FS, path, fragment); err != nil {
		return err
	}
	command.Logger.Printf("added news fragment %s", path)

	if command.Options.Edit {
		edit := command.EditFunc
		if edit == nil {
			edit = editWithEditor
		}
		return edit(path)
	}
	return nil
}

func writeFragment(fs flags.FileSystem, path string, fragment news.Fragment) error {
	content, err := fragment.Encode()
	if err != nil {
		return err
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create news fragment %q: %w", path, err)
	}
	defer closeAndIgnoreError(f)
	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("failed to write news fragment %q: %w", path, err)
	}
	return nil
}

func closeAndIgnoreError(c interface{ Close() error }) {
	_ = c.Close()
}

func editWithEditor(path string) error {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return errors.New("EDITOR is not set")
	}
	cmd := exec.Command(editor, path)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a summary line into a file name friendly slug, keeping the
// first handful of words.
func slugify(summary string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(summary), "-")
	slug = strings.Trim(slug, "-")
	parts := strings.Split(slug, "-")
	if len(parts) > 6 {
		parts = parts[:6]
	}
	return strings.Join(parts, "-")
}

func contains(list []string, value string) bool {
	for _, element := range list {
		if element == value {
			return true
		}
	}
	return false
}

func (command News) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "News records a changelog entry as a fragment file in the news directory. Accumulated fragments are grouped by category and folded into the changelog when a release is cut.",
		ShortDescription: "add a changelog fragment",
		Flags:            command.Options,
	}
}
