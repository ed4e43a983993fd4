package gh

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

var sshRemoteExp = regexp.MustCompile(`(?m)git@(?P<host>.*):(?P<owner>[^/]+)/(?P<name>.*?)(?:\.git)?$`)

// OwnerAndRepositoryFromRemote parses the owner and repository name out of a
// git remote URL. Both ssh (git@host:owner/name.git) and http(s) forms are
// accepted.
func OwnerAndRepositoryFromRemote(urlStr string) (owner, repo string, err error) {
	wrapError := func(urlStr string, err error) error {
		return fmt.Errorf("failed to parse owner and repo name from URI %q: %w", urlStr, err)
	}

	if m := sshRemoteExp.FindStringSubmatch(urlStr); m != nil {
		owner = m[sshRemoteExp.SubexpIndex("owner")]
		repo = m[sshRemoteExp.SubexpIndex("name")]
		return owner, repo, nil
	}
	u, err := url.Parse(urlStr)
	if err != nil {
		return "", "", wrapError(urlStr, err)
	}
	if filepath.Ext(u.Path) == ".git" {
		u.Path = strings.TrimSuffix(u.Path, ".git")
	}
	owner, repo, found := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
	if !found || owner == "" || repo == "" {
		return owner, repo, wrapError(urlStr, fmt.Errorf("path missing expected parts"))
	}
	return owner, repo, nil
}
