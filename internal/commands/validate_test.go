package commands_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"

	"github.com/shearwater-tools/cutter/internal/commands"
)

var _ = Describe("validate", func() {
	var (
		validate  commands.Validate
		directory billy.Filesystem
	)

	BeforeEach(func() {
		directory = memfs.New()
	})

	JustBeforeEach(func() {
		validate = commands.NewValidate(directory)
	})

	When("the Cutterfile and its referenced files are in order", func() {
		BeforeEach(func() {
			Expect(fsWriteFile(directory, "Cutterfile", `---
project: fixie-data
owner: ergs
activities: [version_bump, changelog, tag, push_tag]
version_bump:
  - file: setup.py
    pattern: 'VERSION\s*=.*'
    replace: "VERSION = '{{.Version}}'"
changelog:
  file: CHANGELOG.md
`)).To(Succeed())
			Expect(fsWriteFile(directory, "setup.py", "VERSION = '0.0.2'\n")).To(Succeed())
			Expect(fsWriteFile(directory, "CHANGELOG.md", "# Release Notes\n\n<!-- current developments -->\n")).To(Succeed())
			Expect(directory.MkdirAll("news", 0o755)).To(Succeed())
		})

		It("does not fail", func() {
			Expect(validate.Execute(nil)).To(Succeed())
		})
	})

	When("the activity list has a duplicate", func() {
		BeforeEach(func() {
			Expect(fsWriteFile(directory, "Cutterfile", `---
project: fixie-data
owner: ergs
activities: [tag, tag]
`)).To(Succeed())
		})

		It("reports the duplicate", func() {
			err := validate.Execute(nil)
			Expect(err).To(MatchError(ContainSubstring(`activity "tag" appears more than once`)))
		})
	})

	When("a version_bump pattern matches nothing in its file", func() {
		BeforeEach(func() {
			Expect(fsWriteFile(directory, "Cutterfile", `---
project: fixie-data
owner: ergs
activities: [version_bump, tag]
version_bump:
  - file: setup.py
    pattern: '__version__\s*=.*'
    replace: "__version__ = '{{.Version}}'"
`)).To(Succeed())
			Expect(fsWriteFile(directory, "setup.py", "VERSION = '0.0.2'\n")).To(Succeed())
		})

		It("reports the unmatched pattern", func() {
			err := validate.Execute(nil)
			Expect(err).To(MatchError(ContainSubstring("does not match anything")))
		})

		It("passes when worktree checks are skipped", func() {
			Expect(validate.Execute([]string{"--skip-worktree-checks"})).To(Succeed())
		})
	})

	When("the Cutterfile does not exist", func() {
		It("fails to load", func() {
			err := validate.Execute(nil)
			Expect(err).To(MatchError(ContainSubstring("failed to load Cutterfile")))
		})
	})
})
