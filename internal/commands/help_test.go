package commands_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pivotal-cf/jhanda"

	"github.com/shearwater-tools/cutter/internal/commands"
)

var _ = Describe("Help", func() {
	var commandSet jhanda.CommandSet

	BeforeEach(func() {
		commandSet = jhanda.CommandSet{}
		commandSet["version"] = commands.NewVersion(nil, "0.0.0")
		commandSet["validate"] = commands.NewValidate(nil)
	})

	Describe("Execute", func() {
		It("prints the command list grouped by topic", func() {
			var writer strings.Builder
			help := commands.NewHelp(&writer, "--help  prints help", commandSet, map[string][]string{
				"configuration": {"validate"},
				"info":          {"version"},
			})

			err := help.Execute(nil)
			Expect(err).NotTo(HaveOccurred())

			output := writer.String()
			Expect(output).To(ContainSubstring("Usage: cutter [options] <command> [<args>]"))
			Expect(output).To(ContainSubstring("configuration:"))
			Expect(output).To(ContainSubstring("validate  validate the Cutterfile"))
			Expect(output).To(ContainSubstring("info:"))
			Expect(output).To(ContainSubstring("version  prints the cutter release version"))
		})

		It("prints flag usage for a single command", func() {
			var writer strings.Builder
			help := commands.NewHelp(&writer, "", commandSet, nil)

			err := help.Execute([]string{"validate"})
			Expect(err).NotTo(HaveOccurred())

			output := writer.String()
			Expect(output).To(ContainSubstring("cutter validate"))
			Expect(output).To(ContainSubstring("Usage: cutter [options] validate [<args>]"))
			Expect(output).To(ContainSubstring("--cutterfile"))
		})

		It("errors on an unknown command", func() {
			help := commands.NewHelp(&strings.Builder{}, "", commandSet, nil)
			Expect(help.Execute([]string{"bogus"})).To(HaveOccurred())
		})
	})
})
