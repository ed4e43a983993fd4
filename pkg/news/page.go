package news

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/blang/semver/v4"
)

// DefaultSentinel marks where release sections get inserted in a changelog
// that has none yet. Everything above it stays untouched.
const DefaultSentinel = "<!-- current developments -->\n"

var sectionExp = regexp.MustCompile(`(?m)(?P<notes>^## v?(?P<version>\d+\.\d+\.\d+(?:-[\w.]+)?)[^\n]*\n(?:###[^\n]*\n|[^#\n][^\n]*\n|\n)*)`)

// Page is a changelog split around its release sections. Prefix holds the
// title boilerplate through the sentinel, Suffix whatever trails the oldest
// release section.
type Page struct {
	Exp *regexp.Regexp

	Prefix, Suffix string
	Sections       []Section
}

func ParsePage(input string) (Page, error) {
	return ParsePageWithExpressionAndSentinel(input, sectionExp.String(), DefaultSentinel)
}

func ParsePageWithExpressionAndSentinel(input, sectionRegularExpression, sentinel string) (Page, error) {
	const (
		versionCaptureGroup = "version"
		notesCaptureGroup   = "notes"
	)

	exp, err := regexp.Compile(sectionRegularExpression)
	if err != nil {
		return Page{}, fmt.Errorf("section regular expression parse failure: %w", err)
	}
	if !slices.Contains(exp.SubexpNames(), versionCaptureGroup) {
		return Page{}, fmt.Errorf("section regular expression must contain named capture group %q", versionCaptureGroup)
	}
	if !slices.Contains(exp.SubexpNames(), notesCaptureGroup) {
		return Page{}, fmt.Errorf("section regular expression must contain named capture group %q", notesCaptureGroup)
	}

	page := Page{
		Exp: exp,
	}

	matchIndices := page.Exp.FindAllStringSubmatchIndex(input, -1)

	switch len(matchIndices) {
	case 0:
		index := strings.Index(input, sentinel)
		if index < 0 {
			return Page{}, fmt.Errorf("sentinel not found: expected changelog to contain %q or at least one release section", strings.TrimSpace(sentinel))
		}
		page.Prefix = input[:index+len(sentinel)]
		page.Suffix = input[index+len(sentinel):]
	default:
		versionIndex := page.Exp.SubexpIndex(versionCaptureGroup)
		notesIndex := page.Exp.SubexpIndex(notesCaptureGroup)
		matchStrings := page.Exp.FindAllStringSubmatch(input, -1)

		for _, match := range matchStrings {
			page.Sections = append(page.Sections, Section{
				Version: match[versionIndex],
				Notes:   match[notesIndex],
			})
		}

		page.Prefix = input[:matchIndices[0][2*notesIndex]]
		page.Suffix = input[matchIndices[len(matchIndices)-1][2*notesIndex+1]:]
	}

	return page, nil
}

func (page *Page) validateSection(section Section) error {
	_, err := section.version()
	if err != nil {
		return fmt.Errorf("invalid version: %w", err)
	}
	if !page.Exp.MatchString(section.Notes) {
		return fmt.Errorf("section notes do not match expression")
	}
	return nil
}

// Add inserts a release section keeping sections sorted newest first. A
// section with an already listed version replaces it.
func (page *Page) Add(section Section) error {
	err := page.validateSection(section)
	if err != nil {
		return err
	}

	if len(page.Sections) == 0 {
		page.Sections = []Section{section}
		return nil
	}

	nv, _ := section.version()
	for i, s := range page.Sections {
		sv, err := s.version()
		if err != nil {
			continue
		}
		if nv.EQ(sv) {
			page.Sections[i] = section
			return nil
		}
		if !nv.GT(sv) {
			continue
		}
		page.Sections = append(page.Sections[:i], append([]Section{section}, page.Sections[i:]...)...)
		return nil
	}

	page.Sections = append(page.Sections, section)

	return nil
}

func (page *Page) WriteTo(w io.Writer) (int64, error) {
	buf := new(bytes.Buffer)
	n, err := buf.WriteString(page.Prefix)
	if err != nil {
		return int64(n), err
	}
	for _, s := range page.Sections {
		n, err = buf.WriteString(s.Notes)
		if err != nil {
			return int64(n), err
		}
	}
	n, err = buf.WriteString(page.Suffix)
	if err != nil {
		return int64(n), err
	}
	return buf.WriteTo(w)
}

type Section struct {
	Version string
	Notes   string
}

func (section Section) version() (semver.Version, error) {
	return semver.ParseTolerant(section.Version)
}

// InitialChangelog is the page a scaffolded project starts from.
func InitialChangelog(project string) string {
	return fmt.Sprintf("# %s Change Log\n\n%s", project, DefaultSentinel)
}
