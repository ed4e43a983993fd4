package variables

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"
)

// Interpolator substitutes $( variable "name" ) references in a Cutterfile
// before it is parsed as YAML. The non-standard delimiters keep Go template
// syntax out of the way of the {{ }} templates a Cutterfile itself carries
// in its replace and url_template fields.
type Interpolator struct{}

func NewInterpolator() Interpolator {
	return Interpolator{}
}

func (i Interpolator) Interpolate(name string, in []byte, templateVariables map[string]interface{}) ([]byte, error) {
	t, err := template.New(name).
		Funcs(i.functions(templateVariables)).
		Delims("$(", ")").
		Option("missingkey=error").
		Parse(string(in))
	if err != nil {
		return nil, fmt.Errorf("failed when parsing %s: %w", name, err)
	}

	var buffer bytes.Buffer
	err = t.Execute(&buffer, templateVariables)
	if err != nil {
		return nil, fmt.Errorf("failed when rendering %s: %w", name, err)
	}

	return buffer.Bytes(), nil
}

func (i Interpolator) functions(templateVariables map[string]interface{}) template.FuncMap {
	return template.FuncMap{
		"variable": func(key string) (string, error) {
			if templateVariables == nil {
				return "", errors.New("--variable or --variables-file must be specified")
			}
			val, ok := templateVariables[key]
			if !ok {
				return "", fmt.Errorf("could not find variable with key %q", key)
			}
			return fmt.Sprintf("%v", val), nil
		},
	}
}
