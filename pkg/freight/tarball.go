package freight

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/masterminds/sprig"
)

// DefaultTarballURLTemplate points at the canonical PyPI source location.
// The single letter path segment is the first letter of the project name,
// which the template derives with trunc so projects do not have to repeat
// themselves.
const DefaultTarballURLTemplate = "https://pypi.io/packages/source/{{ trunc 1 .Project }}/{{.Project}}/{{.Project}}-{{.Version}}.tar.gz"

func ParseTarballURLTemplate(text string) (*template.Template, error) {
	return template.New("url_template").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(text)
}

// TarballName is the file name of the source distribution for a release.
func (cf Cutterfile) TarballName(version string) string {
	data := cf.TemplateContext(version)
	return fmt.Sprintf("%s-%s.tar.gz", data.Project, data.Version)
}

// TarballURL renders the public download location of the release tarball.
func (cf Cutterfile) TarballURL(version string) (string, error) {
	text := cf.Tarball.URLTemplate
	if text == "" {
		text = DefaultTarballURLTemplate
	}
	t, err := ParseTarballURLTemplate(text)
	if err != nil {
		return "", fmt.Errorf("tarball url_template failed to parse: %w", err)
	}
	var buf strings.Builder
	if err := t.Execute(&buf, cf.TemplateContext(version)); err != nil {
		return "", fmt.Errorf("tarball url_template failed to render: %w", err)
	}
	return buf.String(), nil
}
