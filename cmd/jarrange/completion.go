package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metal3d/jarrange/javasource"
)

// completionOptions are the flags of the completion command.
type completionOptions struct {
	noDocumentation bool
	bashv1          bool
}

type completionWriter func(root *cobra.Command, out io.Writer, options completionOptions) error

var completionWriters = map[string]completionWriter{
	"bash": func(root *cobra.Command, out io.Writer, options completionOptions) error {
		if options.bashv1 {
			return root.GenBashCompletion(out)
		}
		return root.GenBashCompletionV2(out, !options.noDocumentation)
	},
	"zsh": func(root *cobra.Command, out io.Writer, options completionOptions) error {
		if options.noDocumentation {
			return root.GenZshCompletionNoDesc(out)
		}
		return root.GenZshCompletion(out)
	},
	"fish": func(root *cobra.Command, out io.Writer, options completionOptions) error {
		return root.GenFishCompletion(out, !options.noDocumentation)
	},
	"powershell": func(root *cobra.Command, out io.Writer, options completionOptions) error {
		if options.noDocumentation {
			return root.GenPowerShellCompletion(out)
		}
		return root.GenPowerShellCompletionWithDesc(out)
	},
}

func shells() []string {
	names := make([]string, 0, len(completionWriters))
	for name := range completionWriters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildCompletionCommand() *cobra.Command {
	options := completionOptions{}
	completionCmd := &cobra.Command{
		Use:       fmt.Sprintf("completion [%s]", strings.Join(shells(), "|")),
		ValidArgs: shells(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Short:     "Generates completion scripts",
		Example:   fmt.Sprintf(strings.Join(completionExamples, "\n"), filepath.Base(os.Args[0])),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionWriters[args[0]](cmd.Root(), defaultOutput, options)
		},
	}
	completionCmd.Flags().BoolVar(
		&options.noDocumentation,
		"no-documentation", options.noDocumentation,
		"Do not include documentation")
	completionCmd.Flags().BoolVar(
		&options.bashv1,
		"bashv1", options.bashv1,
		"Use bash version 1 completion")

	return completionCmd
}

// registerArrangeCompletions makes the shells propose Java files and
// directories as arguments, and the accepted values of the arrange flags.
func registerArrangeCompletions(arrangeCommand *cobra.Command) {
	arrangeCommand.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"java"}, cobra.ShellCompDirectiveFilterFileExt
	}
	_ = arrangeCommand.RegisterFlagCompletionFunc("line-ending",
		cobra.FixedCompletions(javasource.LineEndings, cobra.ShellCompDirectiveNoFileComp))
	_ = arrangeCommand.RegisterFlagCompletionFunc("source-dirs",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		})
}
