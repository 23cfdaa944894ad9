package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metal3d/jarrange/javasource"
	logger "github.com/metal3d/jarrange/log"
	"github.com/metal3d/jarrange/project"
)

func buildMainCommand() *cobra.Command {

	cmd := cobra.Command{
		Use:          "jarrange [flags] [file.java|directory|stdin]",
		Short:        "jarrange arranges the fields, constructors, methods... of Java types.",
		Example:      fmt.Sprintf(strings.Join(examples, "\n"), filepath.Base(os.Args[0])),
		Long:         fmt.Sprintf(usage, filepath.Base(os.Args[0])),
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeViper(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("You need to specify a command or an option")
		},
	}

	config := &ArrangeConfig{
		LineEnding: "keep",
	}
	arrangeCommand := buildArrangeCommand(config)
	cmd.AddCommand(arrangeCommand)
	cmd.AddCommand(buildPrintConfigCommand(config, arrangeCommand))
	cmd.AddCommand(buildCompletionCommand())
	return &cmd
}

func buildPrintConfigCommand(config *ArrangeConfig, arrangeCommand *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "print-config",
		Short: "Print the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeViper(arrangeCommand); err != nil {
				return err
			}
			return printConfigFile(config, defaultOutput)
		},
	}
}

func buildArrangeCommand(config *ArrangeConfig) *cobra.Command {
	arrangeCommand := &cobra.Command{
		Use:   "arrange [flags] [file.java|directory|stdin]",
		Short: "Arrange fields, initializers, constructors, methods and nested types of Java source files.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate(config); err != nil {
				return err
			}
			logger.SetVerbose(config.Verbose)
			return run(cmd, config, args...)
		},
	}

	arrangeCommand.Flags().BoolVarP(
		&config.Write,
		"write", "w", config.Write,
		"Write result to (source) file instead of stdout")
	arrangeCommand.Flags().BoolVarP(
		&config.Verbose,
		"verbose", "v", config.Verbose,
		"Verbose output")
	arrangeCommand.Flags().BoolVarP(
		&config.Diff,
		"diff", "d", config.Diff,
		"Make a diff instead of rewriting the file")
	arrangeCommand.Flags().BoolVarP(
		&config.Check,
		"check", "c", config.Check,
		"Only report the files that are not arranged, fail if there are some")
	arrangeCommand.Flags().IntVarP(
		&config.Jobs,
		"jobs", "j", config.Jobs,
		"Number of files processed in parallel, 0 means the number of CPUs")
	arrangeCommand.Flags().StringVarP(
		&config.LineEnding,
		"line-ending", "l", config.LineEnding,
		`Line ending of the arranged files. "keep" leaves the source line endings as
they are, "lf" and "crlf" convert them. Allowed values are: `+strings.Join(javasource.LineEndings, ", "))
	arrangeCommand.Flags().BoolVarP(
		&config.KeepBlankLines,
		"keep-blank-lines", "k", config.KeepBlankLines,
		`Keep the blank lines following an opening brace in arranged files. They are
removed by default`)
	arrangeCommand.Flags().BoolVar(
		&config.Skip,
		"skip", config.Skip,
		"Skip the arrangement of the project, only used without file or directory")
	arrangeCommand.Flags().StringSliceVarP(
		&config.SourceDirs,
		"source-dirs", "s", config.SourceDirs,
		`Source directories of the project, relative to the current directory. By default
they are read from pom.xml, or are `+strings.Join(project.DefaultSourceDirs, " and "))
	registerArrangeCompletions(arrangeCommand)
	return arrangeCommand

}

func validate(config *ArrangeConfig) error {
	// only one output mode
	modes := 0
	for _, set := range []bool{config.Write, config.Diff, config.Check} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return errors.New("--write, --diff and --check cannot be used together")
	}

	valid := config.LineEnding == javasource.LineEndingKeep
	for _, le := range javasource.LineEndings {
		if config.LineEnding == le {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("Invalid line ending %q, valid line endings are %v", config.LineEnding, javasource.LineEndings)
	}

	if config.Jobs < 0 {
		return fmt.Errorf("Invalid number of jobs %d", config.Jobs)
	}
	return nil
}

func mode(config *ArrangeConfig) project.Mode {
	switch {
	case config.Write:
		return project.ModeWrite
	case config.Diff:
		return project.ModeDiff
	case config.Check:
		return project.ModeCheck
	default:
		return project.ModePrint
	}
}

// run arranges stdin, the files and directories in args or, when there is
// none of them, the project of the current directory.
func run(cmd *cobra.Command, config *ArrangeConfig, args ...string) error {
	ctx := cmd.Context()
	options := project.Options{
		Jobs:           config.Jobs,
		Mode:           mode(config),
		KeepBlankLines: config.KeepBlankLines,
		LineEnding:     config.LineEnding,
		Output:         defaultOutput,
	}

	var (
		result project.Result
		err    error
	)
	if len(args) > 0 {
		result, err = project.NewRunner(options, log).Run(ctx, args...)
		log.Debug(result.String())
	} else if input, readErr := readStdin(); readErr != nil {
		return readErr
	} else if len(input) > 0 {
		if config.Write {
			log.Debug("Processing stdin, write is set to false")
			options.Mode = project.ModePrint
		}
		result, err = project.NewRunner(options, log).RunSource(ctx, "stdin.java", input)
	} else {
		result, err = project.NewRunner(options, log).RunProject(ctx, project.ProjectOptions{
			Dir:        ".",
			Skip:       config.Skip,
			SourceDirs: config.SourceDirs,
		})
	}
	if err != nil {
		return err
	}

	if config.Check && result.Arranged > 0 {
		return fmt.Errorf("%d of %d files are not arranged", result.Arranged, result.Total)
	}
	return nil
}

// readStdin returns the content streamed to stdin, nil if stdin is a
// terminal.
func readStdin() ([]byte, error) {
	if stdin == nil {
		return nil, nil
	}
	stat, err := stdin.Stat()
	if err != nil || (stat.Mode()&os.ModeCharDevice) != 0 {
		return nil, nil
	}
	return io.ReadAll(stdin)
}
