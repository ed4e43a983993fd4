package main

import (
	"log"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/shearwater-tools/cutter/internal/commands"
)

var version = "unknown"

func main() {
	outLogger := log.New(os.Stdout, "", 0)

	var global struct {
		Help    bool `short:"h" long:"help"    description:"prints this usage information"     default:"false"`
		Version bool `short:"v" long:"version" description:"prints the cutter release version" default:"false"`
	}

	args, err := jhanda.Parse(&global, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	globalFlagsUsage, err := jhanda.PrintUsage(global)
	if err != nil {
		log.Fatal(err)
	}

	var command string
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	if global.Version {
		command = "version"
	}

	if global.Help {
		command = "help"
	}

	if command == "" {
		command = "help"
	}

	fs := osfs.New("")

	commandSet := jhanda.CommandSet{}
	commandSet["help"] = commands.NewHelp(os.Stdout, globalFlagsUsage, commandSet, map[string][]string{
		"configuration": {"init", "validate", "news"},
		"release":       {"release", "check"},
		"info":          {"help", "version"},
	})
	commandSet["version"] = commands.NewVersion(outLogger, version)
	commandSet["init"] = commands.NewInit(fs, outLogger)
	commandSet["validate"] = commands.NewValidate(fs)
	commandSet["news"] = commands.NewNews(fs, outLogger)
	commandSet["release"] = commands.NewRelease(outLogger, os.Stdout)
	commandSet["check"] = commands.NewCheck(os.Stdout)

	err = commandSet.Execute(command, args)
	if err != nil {
		log.Fatal(err)
	}
}
