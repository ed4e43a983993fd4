package freight

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// CompiledBumpRule is a BumpRule with its pattern and replacement parsed.
type CompiledBumpRule struct {
	Rule    BumpRule
	pattern *regexp.Regexp
	replace *template.Template
}

// Compile parses the rule's regular expression and replacement template.
// The replacement is a text/template body; after rendering it is expanded
// with regexp.Regexp.ReplaceAllString semantics, so $1 style references
// still refer to capture groups in the pattern.
func (rule BumpRule) Compile() (CompiledBumpRule, error) {
	pattern, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return CompiledBumpRule{}, fmt.Errorf("version_bump pattern for %q failed to compile: %w", rule.File, err)
	}
	replace, err := template.New("replace").Parse(rule.Replace)
	if err != nil {
		return CompiledBumpRule{}, fmt.Errorf("version_bump replacement for %q failed to parse: %w", rule.File, err)
	}
	return CompiledBumpRule{Rule: rule, pattern: pattern, replace: replace}, nil
}

// Render produces the literal replacement text for a release.
func (rule CompiledBumpRule) Render(data TemplateContext) (string, error) {
	var buf strings.Builder
	if err := rule.replace.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("version_bump replacement for %q failed to render: %w", rule.Rule.File, err)
	}
	return buf.String(), nil
}

// Apply rewrites every pattern match in content and reports how many
// matches were rewritten.
func (rule CompiledBumpRule) Apply(content string, data TemplateContext) (string, int, error) {
	replacement, err := rule.Render(data)
	if err != nil {
		return "", 0, err
	}
	matches := len(rule.pattern.FindAllStringIndex(content, -1))
	if matches == 0 {
		return content, 0, nil
	}
	return rule.pattern.ReplaceAllString(content, replacement), matches, nil
}

// ApplyBumpRules rewrites the version in every file named by the
// Cutterfile's version_bump rules. A rule whose pattern matches nothing in
// its file is an error; a silent no-op there would leave the old version
// behind in the released tree.
func ApplyBumpRules(fs billy.Basic, cf Cutterfile, data TemplateContext) error {
	for _, rule := range cf.VersionBump {
		compiled, err := rule.Compile()
		if err != nil {
			return err
		}
		content, err := util.ReadFile(fs, rule.File)
		if err != nil {
			return fmt.Errorf("version_bump could not read %q: %w", rule.File, err)
		}
		updated, matches, err := compiled.Apply(string(content), data)
		if err != nil {
			return err
		}
		if matches == 0 {
			return fmt.Errorf("version_bump pattern %q matched nothing in %q", rule.Pattern, rule.File)
		}
		if err := util.WriteFile(fs, rule.File, []byte(updated), 0o644); err != nil {
			return fmt.Errorf("version_bump could not write %q: %w", rule.File, err)
		}
	}
	return nil
}
