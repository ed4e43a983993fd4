package check

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/shearwater-tools/cutter/pkg/freight"
)

//go:embed Dockerfile.tmpl
var dockerfileTemplate string

func dockerfileContents(config freight.ContainerConfig) (string, error) {
	if config.Image == "" {
		return "", errors.New("container.image must be set")
	}
	t, err := template.New("Dockerfile").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(dockerfileTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse Dockerfile template: %w", err)
	}
	var buf strings.Builder
	if err := t.Execute(&buf, config); err != nil {
		return "", fmt.Errorf("failed to render Dockerfile: %w", err)
	}
	return buf.String(), nil
}
