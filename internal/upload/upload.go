// Package upload pushes release artifacts to configured publish destinations.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"text/template"

	"github.com/masterminds/sprig"

	"github.com/shearwater-tools/cutter/pkg/freight"
)

// Artifact is a file to publish, usually a source tarball.
type Artifact struct {
	Project string
	Owner   string
	Version string

	Name   string
	Path   string
	SHA256 string
	Size   int64
}

//counterfeiter:generate -o ./fakes/destination.go --fake-name Destination . Destination

// Destination pushes artifacts to one configured publish target.
type Destination interface {
	ID() string
	Type() string

	// Upload sends the artifact and returns its remote location.
	Upload(ctx context.Context, logger *log.Logger, artifact Artifact) (string, error)
}

// New picks the Destination implementation for a publish target.
func New(config freight.PublishDestination) (Destination, error) {
	switch config.Type {
	case freight.PublishDestinationTypeS3:
		return &S3Destination{Config: config}, nil
	case freight.PublishDestinationTypeArtifactory:
		return &ArtifactoryDestination{Config: config, Client: http.DefaultClient}, nil
	default:
		return nil, fmt.Errorf("publish destination type %q is not supported", config.Type)
	}
}

// All builds a Destination for every configured publish target.
func All(configs []freight.PublishDestination) ([]Destination, error) {
	destinations := make([]Destination, 0, len(configs))
	for _, config := range configs {
		destination, err := New(config)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, destination)
	}
	return destinations, nil
}

type pathData struct {
	freight.TemplateContext
	Name string
}

func remotePath(config freight.PublishDestination, artifact Artifact) (string, error) {
	if config.PathTemplate == "" {
		return artifact.Name, nil
	}
	t, err := template.New("path_template").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(config.PathTemplate)
	if err != nil {
		return "", fmt.Errorf("unable to parse path_template: %w", err)
	}
	pathBuf := new(bytes.Buffer)
	err = t.Execute(pathBuf, pathData{
		TemplateContext: freight.TemplateContext{
			Project: artifact.Project,
			Owner:   artifact.Owner,
			Version: artifact.Version,
		},
		Name: artifact.Name,
	})
	if err != nil {
		return "", fmt.Errorf("unable to evaluate path_template: %w", err)
	}
	return pathBuf.String(), nil
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
