package release

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/shearwater-tools/cutter/pkg/freight"
)

// VersionBump rewrites the version strings named by the Cutterfile's
// version_bump rules and commits the result.
type VersionBump struct{}

func (VersionBump) Name() string { return freight.ActivityVersionBump }

func (VersionBump) Check(_ context.Context, run *Run) error {
	if len(run.Cutterfile.VersionBump) == 0 {
		return errors.New("no version_bump rules are configured")
	}

	fs := osfs.New(run.RepoDir)
	data := run.Cutterfile.TemplateContext(run.Version)
	for _, rule := range run.Cutterfile.VersionBump {
		compiled, err := rule.Compile()
		if err != nil {
			return err
		}
		content, err := util.ReadFile(fs, rule.File)
		if err != nil {
			return fmt.Errorf("version_bump rule file %q cannot be read: %w", rule.File, err)
		}
		_, matches, err := compiled.Apply(string(content), data)
		if err != nil {
			return err
		}
		if matches == 0 {
			return fmt.Errorf("version_bump pattern %q does not match anything in %q", rule.Pattern, rule.File)
		}
	}
	return nil
}

func (VersionBump) Do(_ context.Context, run *Run) error {
	fs := osfs.New(run.RepoDir)
	data := run.Cutterfile.TemplateContext(run.Version)
	if err := freight.ApplyBumpRules(fs, run.Cutterfile, data); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(run.Cutterfile.VersionBump))
	var paths []string
	for _, rule := range run.Cutterfile.VersionBump {
		if _, ok := seen[rule.File]; ok {
			continue
		}
		seen[rule.File] = struct{}{}
		paths = append(paths, rule.File)
	}

	hash, err := run.Repository.CommitPaths(fmt.Sprintf("bump version to %s", run.Version), paths)
	if err != nil {
		return err
	}
	run.Logger.Printf("bumped version to %s in %d file(s), commit %.7s", run.Version, len(paths), hash)
	return nil
}
