package release

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/shearwater-tools/cutter/pkg/freight"
	"github.com/shearwater-tools/cutter/pkg/news"
)

// Changelog folds accumulated news fragments into a release section of the
// changelog, removes the consumed fragments, and commits both.
type Changelog struct{}

func (Changelog) Name() string { return freight.ActivityChangelog }

func (Changelog) Check(_ context.Context, run *Run) error {
	cf := run.Cutterfile
	if cf.Changelog.File == "" {
		return errors.New("changelog.file is not set")
	}
	if _, err := os.Stat(filepath.Join(run.RepoDir, cf.Changelog.File)); err != nil {
		return fmt.Errorf("changelog file %q cannot be read: %w", cf.Changelog.File, err)
	}
	if _, err := sectionTemplate(run); err != nil {
		return err
	}

	fs := osfs.New(run.RepoDir)
	if _, err := news.Collect(fs, cf.NewsDirectory(), cf.ChangelogCategories()); err != nil {
		return err
	}
	return nil
}

func (Changelog) Do(_ context.Context, run *Run) error {
	cf := run.Cutterfile
	fs := osfs.New(run.RepoDir)

	fragments, err := news.Collect(fs, cf.NewsDirectory(), cf.ChangelogCategories())
	if err != nil {
		return err
	}

	t, err := sectionTemplate(run)
	if err != nil {
		return err
	}
	section, err := news.RenderSection(t, news.SectionData{
		Version:    run.Version,
		Date:       time.Now().Format("2006-01-02"),
		Project:    cf.Project,
		Categories: news.GroupFragments(fragments, cf.ChangelogCategories()),
	})
	if err != nil {
		return err
	}

	if err := news.UpdateChangelog(filepath.Join(run.RepoDir, cf.Changelog.File), section); err != nil {
		return err
	}

	// Staging a directory does not stage deletions, so each consumed
	// fragment path is committed explicitly.
	fragmentPaths, err := fragmentPaths(fs, cf.NewsDirectory(), fragments)
	if err != nil {
		return err
	}
	paths := append([]string{cf.Changelog.File}, fragmentPaths...)
	if err := news.RemoveFragments(fs, cf.NewsDirectory(), fragments); err != nil {
		return err
	}

	hash, err := run.Repository.CommitPaths(fmt.Sprintf("update changelog for v%s", run.Version), paths)
	if err != nil {
		return err
	}

	run.NotesSection = section
	run.Logger.Printf("folded %d news fragment(s) into %s, commit %.7s", len(fragments), cf.Changelog.File, hash)
	return nil
}

func fragmentPaths(fs news.FileSystem, dir string, fragments []news.Fragment) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read news directory %q: %w", dir, err)
	}
	slugs := make(map[string]struct{}, len(fragments))
	for _, fragment := range fragments {
		slugs[fragment.Slug] = struct{}{}
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, ok := slugs[strings.TrimSuffix(name, path.Ext(name))]; ok {
			paths = append(paths, fs.Join(dir, name))
		}
	}
	return paths, nil
}

// sectionTemplate loads the configured changelog template from the worktree,
// falling back to the built-in one.
func sectionTemplate(run *Run) (*template.Template, error) {
	text := ""
	if name := run.Cutterfile.Changelog.Template; name != "" {
		buf, err := os.ReadFile(filepath.Join(run.RepoDir, name))
		if err != nil {
			return nil, fmt.Errorf("unable to read changelog template %q: %w", name, err)
		}
		text = string(buf)
	}
	t, err := news.ParseSectionTemplate(text)
	if err != nil {
		return nil, fmt.Errorf("changelog template failed to parse: %w", err)
	}
	return t, nil
}
