package news

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/masterminds/sprig"
)

//go:embed section.go.md
var defaultTemplate string

func DefaultTemplate() string {
	return defaultTemplate
}

func DefaultTemplateFunctions(t *template.Template) *template.Template {
	return t.Funcs(sprig.TxtFuncMap()).Funcs(template.FuncMap{
		"removeEmptyLines": removeEmptyLines,
	})
}

func removeEmptyLines(input string) string {
	lines := strings.Split(input, "\n")
	var b strings.Builder

	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}

		b.WriteString(l)
		b.WriteRune('\n')
	}
	return b.String()
}

// SectionData is what a changelog section template renders against.
type SectionData struct {
	Version    string
	Date       string
	Project    string
	Categories []CategoryFragments
}

type CategoryFragments struct {
	Name      string
	Fragments []Fragment
}

// GroupFragments orders fragments by the configured category order,
// dropping categories with no entries. Categories outside the configured
// list trail in name order; Collect already rejects them when a category
// list is configured, so that only happens for unrestricted collections.
func GroupFragments(fragments []Fragment, categories []string) []CategoryFragments {
	byCategory := make(map[string][]Fragment)
	for _, fragment := range fragments {
		byCategory[fragment.Category] = append(byCategory[fragment.Category], fragment)
	}

	var grouped []CategoryFragments
	for _, name := range categories {
		if entries, ok := byCategory[name]; ok {
			grouped = append(grouped, CategoryFragments{Name: name, Fragments: entries})
			delete(byCategory, name)
		}
	}

	var rest []string
	for name := range byCategory {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		grouped = append(grouped, CategoryFragments{Name: name, Fragments: byCategory[name]})
	}

	return grouped
}

// ParseSectionTemplate parses a changelog section template, falling back to
// the built-in one when text is empty. Sprig functions are available.
func ParseSectionTemplate(text string) (*template.Template, error) {
	if text == "" {
		text = DefaultTemplate()
	}
	return DefaultTemplateFunctions(template.New("section")).Parse(text)
}

func RenderSection(t *template.Template, data SectionData) (Section, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return Section{}, fmt.Errorf("unable to render changelog section for %s: %w", data.Version, err)
	}
	return Section{
		Version: data.Version,
		Notes:   buf.String(),
	}, nil
}
