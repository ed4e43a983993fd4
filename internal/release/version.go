package release

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/shearwater-tools/cutter/internal/gitrepo"
)

// ResolveVersion interprets the version argument of a release. It accepts an
// explicit semver (with or without a v prefix), or one of major, minor, and
// patch to bump from the latest version tag. Explicit versions must be
// greater than the latest tag when one exists.
func ResolveVersion(arg string, repo *gitrepo.Repository) (string, error) {
	latest, hasLatest, err := repo.LatestVersionTag()
	if err != nil {
		return "", fmt.Errorf("unable to list version tags: %w", err)
	}

	switch arg {
	case "major", "minor", "patch":
		if !hasLatest {
			return "", fmt.Errorf("no version tags exist to bump %s from; pass an explicit version", arg)
		}
		current, err := semver.NewVersion(latest)
		if err != nil {
			return "", fmt.Errorf("latest tag v%s is not a valid version: %w", latest, err)
		}
		var next semver.Version
		switch arg {
		case "major":
			next = current.IncMajor()
		case "minor":
			next = current.IncMinor()
		case "patch":
			next = current.IncPatch()
		}
		return next.String(), nil
	}

	version, err := semver.StrictNewVersion(strings.TrimPrefix(arg, "v"))
	if err != nil {
		return "", fmt.Errorf("version %q is not valid semver: %w", arg, err)
	}
	if hasLatest {
		current, err := semver.NewVersion(latest)
		if err == nil && !version.GreaterThan(current) {
			return "", fmt.Errorf("version %s is not greater than the latest tag v%s", version, latest)
		}
	}
	return version.String(), nil
}
