package commands_test

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-git/go-git/v5"

	"github.com/shearwater-tools/cutter/internal/commands"
)

var _ = Describe("release", func() {
	var (
		dir     string
		writer  strings.Builder
		command commands.Release
	)

	cutterfileArg := func() string { return filepath.Join(dir, "Cutterfile") }

	initProjectRepo := func() {
		repo, err := git.PlainInit(dir, false)
		Expect(err).NotTo(HaveOccurred())
		cfg, err := repo.Config()
		Expect(err).NotTo(HaveOccurred())
		cfg.User.Name = "cutter"
		cfg.User.Email = "cutter@example.com"
		Expect(repo.SetConfig(cfg)).To(Succeed())

		Expect(os.WriteFile(filepath.Join(dir, "Cutterfile"), []byte(`---
project: fixie-data
owner: ergs
activities: [version_bump, tag]
version_bump:
  - file: setup.py
    pattern: 'VERSION\s*=.*'
    replace: "VERSION = '{{.Version}}'"
`), 0o644)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "setup.py"), []byte("VERSION = '0.0.2'\n"), 0o644)).To(Succeed())

		wt, err := repo.Worktree()
		Expect(err).NotTo(HaveOccurred())
		for _, name := range []string{"Cutterfile", "setup.py"} {
			_, err = wt.Add(name)
			Expect(err).NotTo(HaveOccurred())
		}
		_, err = wt.Commit("initial", &git.CommitOptions{})
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		writer.Reset()
		command = commands.NewRelease(log.New(&writer, "", 0), &writer)
	})

	It("requires exactly one version argument", func() {
		err := command.Execute([]string{"--cutterfile", cutterfileArg()})
		Expect(err).To(MatchError(ContainSubstring("expected exactly one version argument")))
	})

	It("rejects a version that is not semver", func() {
		initProjectRepo()
		err := command.Execute([]string{"--cutterfile", cutterfileArg(), "not-a-version"})
		Expect(err).To(MatchError(ContainSubstring("not valid semver")))
	})

	It("rejects skipping an unrecognized activity", func() {
		initProjectRepo()
		err := command.Execute([]string{"--cutterfile", cutterfileArg(), "--skip", "deploy", "0.1.0"})
		Expect(err).To(MatchError(ContainSubstring(`cannot skip unrecognized activity "deploy"`)))
	})

	It("prints the plan on a dry run without touching the repository", func() {
		initProjectRepo()

		err := command.Execute([]string{"--cutterfile", cutterfileArg(), "--dry-run", "0.1.0"})
		Expect(err).NotTo(HaveOccurred())

		Expect(writer.String()).To(ContainSubstring("planned activities for fixie-data v0.1.0"))
		Expect(writer.String()).To(ContainSubstring("1. version_bump"))
		Expect(writer.String()).To(ContainSubstring("2. tag"))

		content, err := os.ReadFile(filepath.Join(dir, "setup.py"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal("VERSION = '0.0.2'\n"))
	})

	It("runs the configured activities and records them in the ledger", func() {
		initProjectRepo()

		err := command.Execute([]string{"--cutterfile", cutterfileArg(), "0.1.0"})
		Expect(err).NotTo(HaveOccurred())

		content, err := os.ReadFile(filepath.Join(dir, "setup.py"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal("VERSION = '0.1.0'\n"))

		repo, err := git.PlainOpen(dir)
		Expect(err).NotTo(HaveOccurred())
		_, err = repo.Tag("v0.1.0")
		Expect(err).NotTo(HaveOccurred())

		ledger, err := os.ReadFile(filepath.Join(dir, ".cutter", "ledger.json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(string(ledger)).To(ContainSubstring(`"version_bump"`))
		Expect(string(ledger)).To(ContainSubstring(`"tag"`))

		Expect(writer.String()).To(ContainSubstring("released fixie-data v0.1.0"))
	})

	It("refuses to release a version at or below the latest tag", func() {
		initProjectRepo()
		Expect(command.Execute([]string{"--cutterfile", cutterfileArg(), "0.1.0"})).To(Succeed())

		err := command.Execute([]string{"--cutterfile", cutterfileArg(), "0.1.0"})
		Expect(err).To(MatchError(ContainSubstring("not greater than the latest tag v0.1.0")))
	})

	It("surfaces Cutterfile validation failures before doing anything", func() {
		initProjectRepo()
		Expect(os.WriteFile(filepath.Join(dir, "Cutterfile"), []byte(`---
project: fixie-data
owner: ergs
activities: [tag, tag]
`), 0o644)).To(Succeed())

		err := command.Execute([]string{"--cutterfile", cutterfileArg(), "0.1.0"})
		Expect(err).To(MatchError(ContainSubstring(`activity "tag" appears more than once`)))
	})
})
