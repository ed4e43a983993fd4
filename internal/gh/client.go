package gh

import (
	"context"
	"errors"
	"strings"

	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

// Client builds a GitHub API client for the given host. An empty host or
// "github.com" means the public API; anything else is treated as a GitHub
// Enterprise base host.
func Client(ctx context.Context, host, accessToken string) (*github.Client, error) {
	if accessToken == "" {
		return nil, errors.New("github access token is absent")
	}
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	if host == "" || host == "github.com" {
		return github.NewClient(httpClient), nil
	}
	if !strings.HasPrefix(host, "http") {
		host = "https://" + host
	}
	return github.NewEnterpriseClient(host, host, httpClient)
}
