package freight

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Cutterfile is the declarative description of how a project gets released.
// It carries no behavior of its own; the activity sequence in Activities is
// interpreted by the release runner in configured order.
type Cutterfile struct {
	// Project is a required field and must be set with the package name
	// used for tarballs, upload paths, and the tarball URL.
	Project string `yaml:"project"`

	// Owner is the organization or user that owns the repository.
	Owner string `yaml:"owner"`

	// Repository may be set when the remote does not follow the
	// https://github.com/<owner>/<project> convention. SSH and HTTPS
	// forms are both accepted.
	Repository string `yaml:"repository,omitempty"`

	// Activities run in exactly this order. Order is significant.
	Activities []string `yaml:"activities"`

	VersionBump []BumpRule      `yaml:"version_bump,omitempty"`
	Changelog   ChangelogConfig `yaml:"changelog,omitempty"`
	Container   ContainerConfig `yaml:"container,omitempty"`
	Tarball     TarballConfig   `yaml:"tarball,omitempty"`

	Publish  []PublishDestination `yaml:"publish,omitempty"`
	GitHub   GitHubConfig         `yaml:"github,omitempty"`
	Announce AnnounceConfig       `yaml:"announce,omitempty"`
}

// BumpRule rewrites a version string in place. Pattern is an RE2 regular
// expression matched against the target file line by line; Replace is a
// template with a {{.Version}} placeholder substituted before the rewrite.
type BumpRule struct {
	File    string `yaml:"file"`
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

type ChangelogConfig struct {
	// File is the changelog maintained across releases.
	File string `yaml:"file,omitempty"`

	// Template provides the boilerplate merged with accumulated news
	// fragments when a release section is rendered. When empty the
	// built-in template is used.
	Template string `yaml:"template,omitempty"`

	// NewsDirectory holds one fragment file per change between releases.
	NewsDirectory string `yaml:"news_directory,omitempty"`

	// Categories orders fragment groups inside a release section.
	Categories []string `yaml:"categories,omitempty"`
}

type ContainerConfig struct {
	Image          string   `yaml:"image,omitempty"`
	AptPackages    []string `yaml:"apt_packages,omitempty"`
	PipPackages    []string `yaml:"pip_packages,omitempty"`
	InstallCommand string   `yaml:"install_command,omitempty"`
	CheckCommand   string   `yaml:"check_command,omitempty"`
}

type TarballConfig struct {
	// URLTemplate renders the public download location of the source
	// tarball. It has the sprig function map available in addition to
	// {{.Project}}, {{.Owner}}, and {{.Version}}.
	URLTemplate string `yaml:"url_template,omitempty"`
}

// PublishDestination configures one artifact upload target for the publish
// activity. Type selects the implementation; the remaining fields are
// interpreted per type.
type PublishDestination struct {
	Type string `yaml:"type"`
	ID   string `yaml:"id,omitempty"`

	Bucket          string `yaml:"bucket,omitempty"`
	Region          string `yaml:"region,omitempty"`
	Endpoint        string `yaml:"endpoint,omitempty"`
	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`

	Host     string `yaml:"host,omitempty"`
	Repo     string `yaml:"repo,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	PathTemplate string `yaml:"path_template,omitempty"`
}

const (
	PublishDestinationTypeS3          = "s3"
	PublishDestinationTypeArtifactory = "artifactory"
)

type GitHubConfig struct {
	// Host may be set for GitHub Enterprise. Empty means github.com.
	Host       string         `yaml:"host,omitempty"`
	Draft      bool           `yaml:"draft,omitempty"`
	Prerelease PrereleaseMode `yaml:"prerelease,omitempty"`
}

// PrereleaseMode controls whether the GitHub release is marked prerelease.
// The default, auto, marks it prerelease exactly when the version carries a
// pre-release segment (1.0.0-rc.1 is a prerelease, 1.0.0 is not). The YAML
// field also accepts plain booleans to force it either way.
type PrereleaseMode string

const (
	PrereleaseAuto  PrereleaseMode = "auto"
	PrereleaseTrue  PrereleaseMode = "true"
	PrereleaseFalse PrereleaseMode = "false"
)

func (mode *PrereleaseMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		if b {
			*mode = PrereleaseTrue
		} else {
			*mode = PrereleaseFalse
		}
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch PrereleaseMode(s) {
	case PrereleaseAuto, PrereleaseTrue, PrereleaseFalse:
		*mode = PrereleaseMode(s)
	case "":
		*mode = PrereleaseAuto
	default:
		return fmt.Errorf("github.prerelease must be %q, %q, or %q (got %q)",
			PrereleaseAuto, PrereleaseTrue, PrereleaseFalse, s)
	}
	return nil
}

// ForVersion reports whether a release for the given version should be
// marked prerelease under this mode.
func (mode PrereleaseMode) ForVersion(version string) bool {
	switch mode {
	case PrereleaseTrue:
		return true
	case PrereleaseFalse:
		return false
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false
	}
	return v.Prerelease() != ""
}

type AnnounceConfig struct {
	SlackChannel string `yaml:"slack_channel,omitempty"`
}

// RepositoryURL returns the configured repository location, falling back to
// the github.com convention derived from Owner and Project.
func (cf Cutterfile) RepositoryURL() string {
	if cf.Repository != "" {
		return cf.Repository
	}
	host := cf.GitHub.Host
	if host == "" {
		host = "github.com"
	}
	return fmt.Sprintf("https://%s/%s/%s", host, cf.Owner, cf.Project)
}

func (dest PublishDestination) Identifier() string {
	if dest.ID != "" {
		return dest.ID
	}
	switch dest.Type {
	case PublishDestinationTypeS3:
		return dest.Bucket
	case PublishDestinationTypeArtifactory:
		return dest.Repo
	}
	return dest.Type
}

func (cf Cutterfile) HasActivity(name string) bool {
	for _, a := range cf.Activities {
		if a == name {
			return true
		}
	}
	return false
}

// NewsDirectory returns the configured fragment directory or the default.
func (cf Cutterfile) NewsDirectory() string {
	if cf.Changelog.NewsDirectory != "" {
		return cf.Changelog.NewsDirectory
	}
	return "news"
}

// ChangelogCategories returns the configured fragment categories or the
// default keep-a-changelog set.
func (cf Cutterfile) ChangelogCategories() []string {
	if len(cf.Changelog.Categories) > 0 {
		return cf.Changelog.Categories
	}
	return []string{"Added", "Changed", "Deprecated", "Removed", "Fixed", "Security"}
}

// TemplateContext is the data every Cutterfile template renders against.
type TemplateContext struct {
	Project string
	Owner   string
	Version string
}

func (cf Cutterfile) TemplateContext(version string) TemplateContext {
	return TemplateContext{
		Project: cf.Project,
		Owner:   cf.Owner,
		Version: strings.TrimPrefix(version, "v"),
	}
}
