package commands_test

import (
	"io"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/shearwater-tools/cutter/internal/commands"
	"github.com/shearwater-tools/cutter/pkg/news"
)

var _ = Describe("news", func() {
	var (
		directory billy.Filesystem
		command   commands.News
	)

	BeforeEach(func() {
		directory = memfs.New()
		command = commands.NewNews(directory, log.New(io.Discard, "", 0))

		Expect(fsWriteFile(directory, "Cutterfile", `---
project: fixie-data
owner: ergs
activities: [changelog, tag]
changelog:
  file: CHANGELOG.md
  news_directory: news
`)).To(Succeed())
	})

	It("writes a fragment that parses back", func() {
		err := command.Execute([]string{"--category", "Added", "--author", "scopatz", "support tarball checksums"})
		Expect(err).NotTo(HaveOccurred())

		content, err := util.ReadFile(directory, "news/support-tarball-checksums.md")
		Expect(err).NotTo(HaveOccurred())

		fragment, err := news.ParseFragment("support-tarball-checksums", content)
		Expect(err).NotTo(HaveOccurred())
		Expect(fragment.Category).To(Equal("Added"))
		Expect(fragment.Author).To(Equal("scopatz"))
		Expect(fragment.Body).To(Equal("support tarball checksums"))
	})

	It("honors an explicit slug", func() {
		err := command.Execute([]string{"--category", "Fixed", "--slug", "gh-42", "handle empty news directories"})
		Expect(err).NotTo(HaveOccurred())

		_, err = directory.Stat("news/gh-42.md")
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a category outside the configured list", func() {
		err := command.Execute([]string{"--category", "Misc", "some change"})
		Expect(err).To(MatchError(ContainSubstring(`category "Misc" is not configured`)))
	})

	It("refuses to overwrite an existing fragment", func() {
		Expect(command.Execute([]string{"--category", "Added", "--slug", "dup", "first"})).To(Succeed())

		err := command.Execute([]string{"--category", "Added", "--slug", "dup", "second"})
		Expect(err).To(MatchError(ContainSubstring("already exists")))
	})

	It("requires a summary", func() {
		err := command.Execute([]string{"--category", "Added"})
		Expect(err).To(MatchError(ContainSubstring("missing summary")))
	})

	It("opens the fragment in an editor when asked", func() {
		var edited string
		command.EditFunc = func(path string) error {
			edited = path
			return nil
		}

		err := command.Execute([]string{"--category", "Added", "--edit", "add an editor hook"})
		Expect(err).NotTo(HaveOccurred())
		Expect(edited).To(Equal("news/add-an-editor-hook.md"))
	})
})
