package freight

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"text/template"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Validate checks a Cutterfile for configuration mistakes that do not
// require looking at the worktree. It returns every problem found rather
// than stopping at the first one.
func Validate(cf Cutterfile) []error {
	var result []error

	if cf.Project == "" {
		result = append(result, fmt.Errorf("project must be set"))
	} else if strings.ContainsAny(cf.Project, `/\`) {
		result = append(result, fmt.Errorf("project %q must not contain path separators", cf.Project))
	}
	if cf.Owner == "" {
		result = append(result, fmt.Errorf("owner must be set"))
	}

	result = append(result, validateActivities(cf)...)
	result = append(result, validateBumpRules(cf)...)
	result = append(result, validateChangelog(cf)...)
	result = append(result, validateContainer(cf)...)
	result = append(result, validateTarball(cf)...)
	result = append(result, validatePublish(cf)...)
	result = append(result, validateAnnounce(cf)...)

	if len(result) > 0 {
		return result
	}

	return nil
}

func validateActivities(cf Cutterfile) []error {
	var result []error

	if len(cf.Activities) == 0 {
		result = append(result, fmt.Errorf("activities must list at least one activity"))
		return result
	}

	seen := make(map[string]int, len(cf.Activities))
	for index, name := range cf.Activities {
		if !IsRecognizedActivity(name) {
			result = append(result, fmt.Errorf("activity at index %d has unrecognized name %q (recognized names: %s)",
				index, name, strings.Join(RecognizedActivities(), ", ")))
			continue
		}
		if first, ok := seen[name]; ok {
			result = append(result, fmt.Errorf("activity %q appears more than once (indexes %d and %d)", name, first, index))
			continue
		}
		seen[name] = index
	}

	return result
}

func validateBumpRules(cf Cutterfile) []error {
	var result []error

	if cf.HasActivity(ActivityVersionBump) && len(cf.VersionBump) == 0 {
		result = append(result, fmt.Errorf("version_bump activity is configured but no version_bump rules are set"))
	}

	for index, rule := range cf.VersionBump {
		if rule.File == "" {
			result = append(result, fmt.Errorf("version_bump rule at index %d missing file", index))
			continue
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			result = append(result, fmt.Errorf("version_bump rule for %q has invalid pattern: %w", rule.File, err))
		}
		if _, err := template.New("replace").Parse(rule.Replace); err != nil {
			result = append(result, fmt.Errorf("version_bump rule for %q has invalid replacement: %w", rule.File, err))
			continue
		}
		if !strings.Contains(rule.Replace, ".Version") {
			result = append(result, fmt.Errorf("version_bump rule for %q replacement never references {{.Version}}", rule.File))
		}
	}

	return result
}

func validateChangelog(cf Cutterfile) []error {
	var result []error

	if !cf.HasActivity(ActivityChangelog) {
		return nil
	}

	if cf.Changelog.File == "" {
		result = append(result, fmt.Errorf("changelog activity is configured but changelog.file is not set"))
	}
	if cf.Changelog.Template != "" && cf.Changelog.File == "" {
		result = append(result, fmt.Errorf("changelog.template is set but changelog.file is not"))
	}
	for index, category := range cf.Changelog.Categories {
		if strings.TrimSpace(category) == "" {
			result = append(result, fmt.Errorf("changelog.categories entry at index %d is blank", index))
		}
	}

	return result
}

func validateContainer(cf Cutterfile) []error {
	var result []error

	if !cf.HasActivity(ActivityCheck) {
		return nil
	}

	if cf.Container.CheckCommand == "" {
		result = append(result, fmt.Errorf("check activity is configured but container.check_command is not set"))
	}

	return result
}

func validateTarball(cf Cutterfile) []error {
	var result []error

	if cf.Tarball.URLTemplate == "" {
		if cf.HasActivity(ActivityGHRelease) || cf.HasActivity(ActivityPublish) {
			result = append(result, fmt.Errorf("tarball.url_template must be set when publish or ghrelease activities are configured"))
		}
		return result
	}

	if _, err := ParseTarballURLTemplate(cf.Tarball.URLTemplate); err != nil {
		result = append(result, fmt.Errorf("tarball.url_template is invalid: %w", err))
		return result
	}

	// A template can parse fine and still render garbage, so render it for a
	// sample version and insist on an absolute URL.
	rendered, err := cf.TarballURL("0.0.0")
	if err != nil {
		result = append(result, fmt.Errorf("tarball.url_template is invalid: %w", err))
		return result
	}
	if u, err := url.Parse(rendered); err != nil || u.Scheme == "" || u.Host == "" {
		result = append(result, fmt.Errorf("tarball.url_template renders to %q, which is not an absolute URL", rendered))
	}

	return result
}

func validatePublish(cf Cutterfile) []error {
	var result []error

	if cf.HasActivity(ActivityPublish) && len(cf.Publish) == 0 {
		result = append(result, fmt.Errorf("publish activity is configured but no publish destinations are set"))
	}

	for index, dest := range cf.Publish {
		switch dest.Type {
		case PublishDestinationTypeS3:
			if dest.Bucket == "" {
				result = append(result, fmt.Errorf("publish destination at index %d missing bucket", index))
			}
		case PublishDestinationTypeArtifactory:
			if dest.Host == "" {
				result = append(result, fmt.Errorf("publish destination at index %d missing host", index))
			}
			if dest.Repo == "" {
				result = append(result, fmt.Errorf("publish destination at index %d missing repo", index))
			}
		case "":
			result = append(result, fmt.Errorf("publish destination at index %d missing type", index))
		default:
			result = append(result, fmt.Errorf("publish destination at index %d has unknown type %q (known types: %s, %s)",
				index, dest.Type, PublishDestinationTypeS3, PublishDestinationTypeArtifactory))
		}

		if dest.PathTemplate != "" {
			if _, err := template.New("path_template").Parse(dest.PathTemplate); err != nil {
				result = append(result, fmt.Errorf("publish destination %q has invalid path_template: %w", dest.Identifier(), err))
			}
		}
	}

	return result
}

func validateAnnounce(cf Cutterfile) []error {
	if cf.HasActivity(ActivityAnnounce) && cf.Announce.SlackChannel == "" {
		return []error{fmt.Errorf("announce activity is configured but announce.slack_channel is not set")}
	}
	return nil
}

// ValidateAgainstWorktree checks the parts of a Cutterfile that reference
// files in the project tree: every version_bump rule must name an existing
// file whose current contents the pattern matches, and the changelog file,
// changelog template, and news directory must exist when the changelog
// activity is configured. These run before any activity so a release never
// rewrites files and then trips over a missing template.
func ValidateAgainstWorktree(fs billy.Basic, cf Cutterfile) []error {
	var result []error

	for _, rule := range cf.VersionBump {
		if rule.File == "" {
			continue
		}
		pattern, err := regexp.Compile(rule.Pattern)
		if err != nil {
			continue
		}
		content, err := util.ReadFile(fs, rule.File)
		if err != nil {
			result = append(result, fmt.Errorf("version_bump rule file %q cannot be read: %w", rule.File, err))
			continue
		}
		if !pattern.Match(content) {
			result = append(result, fmt.Errorf("version_bump pattern %q does not match anything in %q", rule.Pattern, rule.File))
		}
	}

	if cf.HasActivity(ActivityChangelog) {
		if cf.Changelog.File != "" {
			if _, err := fs.Stat(cf.Changelog.File); err != nil {
				result = append(result, fmt.Errorf("changelog file %q cannot be read: %w", cf.Changelog.File, err))
			}
		}
		if cf.Changelog.Template != "" {
			if _, err := fs.Stat(cf.Changelog.Template); err != nil {
				result = append(result, fmt.Errorf("changelog template %q cannot be read: %w", cf.Changelog.Template, err))
			}
		}
		if dir := cf.NewsDirectory(); dir != "" {
			info, err := fs.Stat(dir)
			if err != nil {
				result = append(result, fmt.Errorf("news directory %q cannot be read: %w", dir, err))
			} else if !info.IsDir() {
				result = append(result, fmt.Errorf("news directory %q is not a directory", dir))
			}
		}
	}

	if len(result) > 0 {
		return result
	}

	return nil
}
