package cmd

import (
	"fmt"
	"os"

	"locus/report"

	"github.com/ComedicChimera/olive"
	"github.com/samber/do"
)

// Version is the current version of the compiler.
const Version = "0.1.0"

// Execute runs the `locus` application.
func Execute() {
	cli := olive.NewCLI("locus", "locus compiles Locus source files to LLVM IR", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})

	buildCmd := cli.AddSubcommand("build", "compile source files to LLVM IR", true)
	buildCmd.AddPrimaryArg("source-path", "the path to the source file or directory to compile", true)
	buildCmd.AddStringArg("output", "o", "the output file, or directory when compiling a directory", false)
	buildCmd.AddStringArg("profile", "p", "the path to the build profile", false)
	buildCmd.AddFlag("lenient", "l", "report non-exhaustive matches as warnings")

	checkCmd := cli.AddSubcommand("check", "check source files for errors", true)
	checkCmd.AddPrimaryArg("source-path", "the path to the source file or directory to check", true)
	checkCmd.AddStringArg("profile", "p", "the path to the build profile", false)
	checkCmd.AddFlag("lenient", "l", "report non-exhaustive matches as warnings")

	cli.AddSubcommand("version", "print the Locus version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelError)
		report.ReportFatal("CLI usage error: %s", err)
	}

	loglevel := ""
	if llArg, ok := result.Arguments["loglevel"]; ok {
		loglevel = llArg.(string)
	}

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		execCompileCommand(subResult, loglevel, true)
	case "check":
		execCompileCommand(subResult, loglevel, false)
	case "version":
		fmt.Println("locus", Version)
	}
}

// execCompileCommand executes the build or check subcommand.
func execCompileCommand(result *olive.ArgParseResult, loglevel string, build bool) {
	srcPath, _ := result.PrimaryArg()

	profPath := ""
	if profArg, ok := result.Arguments["profile"]; ok {
		profPath = profArg.(string)
	}

	// Errors loading the profile are displayed at the default log level.
	report.InitReporter(report.LogLevelVerbose)

	profile, err := selectProfile(srcPath, profPath)
	if err != nil {
		report.ReportFatal("failed to load build profile: %s", err)
	}

	if err := applyArgs(profile, result, loglevel); err != nil {
		report.ReportFatal("%s", err)
	}

	report.InitReporter(profile.LogLevel)

	injector := newInjector(profile)
	c := do.MustInvoke[*Compiler](injector)

	if err := c.AddSources(srcPath); err != nil {
		report.ReportFatal("failed to load sources: %s", err)
	}

	if outArg, ok := result.Arguments["output"]; ok && build {
		c.SetOutputPath(outArg.(string))
	}

	if build {
		c.Build()
	} else {
		c.Check()
	}

	report.ReportFinished()

	if report.AnyErrors() {
		os.Exit(1)
	}
}

// applyArgs applies the command line arguments which override values of the
// build profile.
func applyArgs(profile *BuildProfile, result *olive.ArgParseResult, loglevel string) error {
	if loglevel != "" {
		lvl, err := report.ParseLogLevel(loglevel)
		if err != nil {
			return err
		}

		profile.LogLevel = lvl
	}

	if result.HasFlag("lenient") {
		profile.StrictMatch = false
	}

	return nil
}
