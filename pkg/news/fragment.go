package news

import (
	"bytes"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

type FileSystem interface {
	billy.Basic
	billy.Dir
}

// Fragment is one pending changelog entry, written as a file in the news
// directory between releases and consumed when a release section is cut.
type Fragment struct {
	Slug     string `yaml:"-"`
	Category string `yaml:"category"`
	Author   string `yaml:"author,omitempty"`
	Issue    string `yaml:"issue,omitempty"`
	Body     string `yaml:"-"`
}

const frontMatterFence = "---\n"

// Encode renders a fragment to its file form: front matter between ---
// fences, a blank line, then the body. The result round-trips through
// ParseFragment.
func (fragment Fragment) Encode() ([]byte, error) {
	meta, err := yaml.Marshal(fragment)
	if err != nil {
		return nil, fmt.Errorf("unable to encode news fragment %q front matter: %w", fragment.Slug, err)
	}
	var buf bytes.Buffer
	buf.WriteString(frontMatterFence)
	buf.Write(meta)
	buf.WriteString(frontMatterFence)
	buf.WriteString("\n")
	buf.WriteString(strings.TrimRight(fragment.Body, " \t\n"))
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// ParseFragment reads a fragment file: YAML front matter between --- fences,
// then a Markdown body. Unknown front matter keys are an error so typos in
// category do not silently drop an entry from the changelog.
func ParseFragment(slug string, content []byte) (Fragment, error) {
	rest, ok := strings.CutPrefix(string(content), frontMatterFence)
	if !ok {
		return Fragment{}, fmt.Errorf("news fragment %q must start with a %q front matter fence", slug, strings.TrimSpace(frontMatterFence))
	}
	meta, body, ok := strings.Cut(rest, "\n"+frontMatterFence)
	if !ok {
		return Fragment{}, fmt.Errorf("news fragment %q front matter is never closed", slug)
	}

	fragment := Fragment{Slug: slug}
	dec := yaml.NewDecoder(bytes.NewReader([]byte(meta)))
	dec.KnownFields(true)
	if err := dec.Decode(&fragment); err != nil {
		return Fragment{}, fmt.Errorf("news fragment %q has invalid front matter: %w", slug, err)
	}
	if fragment.Category == "" {
		return Fragment{}, fmt.Errorf("news fragment %q missing category", slug)
	}

	fragment.Body = strings.TrimRight(strings.TrimLeft(body, "\n"), " \t\n")
	if fragment.Body == "" {
		return Fragment{}, fmt.Errorf("news fragment %q has no body", slug)
	}
	return fragment, nil
}

// Collect parses every fragment in the news directory. The fragment
// boilerplate (TEMPLATE.*), dotfiles, and README files are skipped. When
// categories is non-empty a fragment with a category outside the list is an
// error. Fragments come back sorted by slug so rendering is deterministic.
func Collect(fs FileSystem, dir string, categories []string) ([]Fragment, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read news directory %q: %w", dir, err)
	}

	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}

	var fragments []Fragment
	for _, entry := range entries {
		if entry.IsDir() || skipFragmentFile(entry.Name()) {
			continue
		}
		content, err := util.ReadFile(fs, fs.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("unable to read news fragment %q: %w", entry.Name(), err)
		}
		fragment, err := ParseFragment(fragmentSlug(entry.Name()), content)
		if err != nil {
			return nil, err
		}
		if len(allowed) > 0 {
			if _, ok := allowed[fragment.Category]; !ok {
				return nil, fmt.Errorf("news fragment %q has category %q, expected one of: %s",
					fragment.Slug, fragment.Category, strings.Join(categories, ", "))
			}
		}
		fragments = append(fragments, fragment)
	}

	sort.Slice(fragments, func(i, j int) bool {
		return fragments[i].Slug < fragments[j].Slug
	})

	return fragments, nil
}

// RemoveFragments deletes consumed fragment files after their content has
// been folded into the changelog.
func RemoveFragments(fs FileSystem, dir string, fragments []Fragment) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read news directory %q: %w", dir, err)
	}
	bySlug := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		bySlug[fragmentSlug(entry.Name())] = entry.Name()
	}
	for _, fragment := range fragments {
		name, ok := bySlug[fragment.Slug]
		if !ok {
			continue
		}
		if err := fs.Remove(fs.Join(dir, name)); err != nil {
			return fmt.Errorf("unable to remove consumed news fragment %q: %w", name, err)
		}
	}
	return nil
}

func skipFragmentFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	upper := strings.ToUpper(name)
	return strings.HasPrefix(upper, "TEMPLATE") || strings.HasPrefix(upper, "README")
}

func fragmentSlug(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
