package commands_test

import (
	"io"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v2"

	"github.com/shearwater-tools/cutter/internal/commands"
	"github.com/shearwater-tools/cutter/pkg/freight"
)

var _ = Describe("init", func() {
	var (
		directory billy.Filesystem
		scaffold  commands.Init
	)

	BeforeEach(func() {
		directory = memfs.New()
		scaffold = commands.NewInit(directory, log.New(io.Discard, "", 0))
	})

	It("scaffolds a Cutterfile, changelog, and news directory", func() {
		err := scaffold.Execute([]string{"--project", "fixie-data", "--owner", "ergs"})
		Expect(err).NotTo(HaveOccurred())

		buf, err := util.ReadFile(directory, "Cutterfile")
		Expect(err).NotTo(HaveOccurred())
		var cf freight.Cutterfile
		Expect(yaml.Unmarshal(buf, &cf)).To(Succeed())
		Expect(cf.Project).To(Equal("fixie-data"))
		Expect(cf.Owner).To(Equal("ergs"))
		Expect(cf.Activities).To(Equal(freight.DefaultActivities()))
		Expect(cf.Changelog.File).To(Equal("CHANGELOG.md"))
		Expect(cf.VersionBump).To(HaveLen(1))
		Expect(cf.VersionBump[0].File).To(Equal("VERSION"))

		version, err := util.ReadFile(directory, "VERSION")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(version)).To(Equal("0.0.0\n"))

		// the only thing left to configure should be where publish uploads
		errs := freight.Validate(cf)
		Expect(errs).To(HaveLen(1))
		Expect(errs[0]).To(MatchError(ContainSubstring("no publish destinations")))
		Expect(freight.ValidateAgainstWorktree(directory, cf)).To(BeEmpty())

		changelog, err := util.ReadFile(directory, "CHANGELOG.md")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(changelog)).To(ContainSubstring("<!-- current developments -->"))

		_, err = directory.Stat("news/TEMPLATE.md")
		Expect(err).NotTo(HaveOccurred())
	})

	It("writes into the directory flag", func() {
		err := scaffold.Execute([]string{"--project", "fixie-data", "--owner", "ergs", "--directory", "sub/project"})
		Expect(err).NotTo(HaveOccurred())

		_, err = directory.Stat("sub/project/Cutterfile")
		Expect(err).NotTo(HaveOccurred())
	})

	It("refuses to clobber an existing Cutterfile", func() {
		Expect(fsWriteFile(directory, "Cutterfile", "project: something-else\n")).To(Succeed())

		err := scaffold.Execute([]string{"--project", "fixie-data", "--owner", "ergs"})
		Expect(err).To(MatchError(ContainSubstring("refusing to overwrite")))
	})

	It("requires the project and owner flags", func() {
		Expect(scaffold.Execute(nil)).To(HaveOccurred())
	})
})
