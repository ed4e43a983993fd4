package upload

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/shearwater-tools/cutter/pkg/freight"
)

const headerChecksumSHA256 = "X-Checksum-Sha256"

// ArtifactoryDestination uploads artifacts to an Artifactory repository.
type ArtifactoryDestination struct {
	Config freight.PublishDestination
	Client *http.Client
}

func (dst *ArtifactoryDestination) ID() string {
	if dst.Config.ID != "" {
		return dst.Config.ID
	}
	return dst.Config.Repo
}

func (dst *ArtifactoryDestination) Type() string { return freight.PublishDestinationTypeArtifactory }

func (dst *ArtifactoryDestination) Upload(ctx context.Context, logger *log.Logger, artifact Artifact) (string, error) {
	remotePath, err := remotePath(dst.Config, artifact)
	if err != nil {
		return "", err
	}

	file, err := os.Open(artifact.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open artifact %q: %w", artifact.Path, err)
	}
	defer closeAndIgnoreError(file)

	uploadURL := strings.TrimSuffix(dst.Config.Host, "/") + "/artifactory/" + dst.Config.Repo + "/" + remotePath

	logger.Printf("uploading %q to artifactory repository %q at %q...\n", artifact.Name, dst.Config.Repo, remotePath)

	request, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return "", err
	}
	request.SetBasicAuth(dst.Config.Username, dst.Config.Password)
	if artifact.Size > 0 {
		request.ContentLength = artifact.Size
	}
	if artifact.SHA256 != "" {
		request.Header.Set(headerChecksumSHA256, artifact.SHA256)
	}

	client := dst.Client
	if client == nil {
		client = http.DefaultClient
	}
	response, err := client.Do(request)
	if err != nil {
		return "", err
	}
	defer closeAndIgnoreError(response.Body)

	if response.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("failed to upload %s to artifactory with status %s", artifact.Name, response.Status)
	}

	return uploadURL, nil
}
