package commands_test

import (
	"context"
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/shearwater-tools/cutter/internal/check"
	"github.com/shearwater-tools/cutter/internal/commands"
)

var _ = Describe("check", func() {
	var (
		dir     string
		command commands.Check
		got     *check.Configuration
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		got = nil
		command = commands.NewCheck(io.Discard)
		command.RunCheck = func(_ context.Context, _ io.Writer, configuration check.Configuration) error {
			got = &configuration
			return nil
		}

		Expect(os.WriteFile(filepath.Join(dir, "Cutterfile"), []byte(`---
project: fixie-data
owner: ergs
activities: [check]
container:
  image: python:3.11-bookworm
  apt_packages: [git, libhdf5-dev]
  pip_packages: [fixie, fixie-creds]
  install_command: pip install --no-deps .
  check_command: pytest
`), 0o644)).To(Succeed())
	})

	It("hands the container configuration to the check runner", func() {
		err := command.Execute([]string{
			"--cutterfile", filepath.Join(dir, "Cutterfile"),
			"--environment-variable", "FIXIE_ENV=test",
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(got).NotTo(BeNil())
		Expect(got.AbsoluteProjectDirectory).To(Equal(dir))
		Expect(got.Container.Image).To(Equal("python:3.11-bookworm"))
		Expect(got.Container.AptPackages).To(Equal([]string{"git", "libhdf5-dev"}))
		Expect(got.Container.PipPackages).To(Equal([]string{"fixie", "fixie-creds"}))
		Expect(got.Container.CheckCommand).To(Equal("pytest"))
		Expect(got.Environment).To(Equal([]string{"FIXIE_ENV=test"}))
	})

	It("fails when the Cutterfile cannot be read", func() {
		err := command.Execute([]string{"--cutterfile", filepath.Join(dir, "missing", "Cutterfile")})
		Expect(err).To(MatchError(ContainSubstring("failed to load Cutterfile")))
	})
})
