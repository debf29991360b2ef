// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	pipeCmdUsage = "pype [flags] COMMAND [IN_STREAM]"
	pipeCmdShort = "apply a pipeline of expressions to every line of a stream"
	pipeCmdLong  = `Apply a pipeline of expressions to every line of a stream.

	COMMAND is a list of stages separated by ||. Every line read from IN_STREAM,
	or from the standard input when IN_STREAM is missing or -, goes through the
	stages in order and the result of the last one is written to the standard output.

	Inside a stage the placeholder (? by default) is replaced by the running value,
	terminator of the line included. A stage without placeholder is called with
	the running value as its only argument, so upper is the same as upper(?).

	Stages are Risor expressions: calls, attribute access, indexing, slicing,
	arithmetic, comparisons, lambdas and if expressions are available, together
	with quoted strings, backtick templates, [a, b] lists and {k: v} objects.
	Strings and lists carry methods such as to_upper, trim_space and map. The
	sequence || always separates stages, use or for a logical disjunction.
	Further namespaces can be imported with --import, use the namespaces
	command to list them.`

	pipeCmdExample = `# Uppercase every line of a file
	pype upper input.txt

	# Print the length of every line without its terminator
	pype 'strip || len || str(?) + "\n"' input.txt

	# Extract a field from JSON lines read from the standard input
	cat events.jsonl | pype -i json 'json.loads || ?["name"] + "\n"'`

	namespacesCmdUsage = "namespaces [NAME...]"
	namespacesCmdShort = "list the namespaces available to the stages"
	namespacesCmdLong  = `List the namespaces that can be imported with --import, together
	with their members.

	When one or more names are provided only those namespaces are listed. The
	members of the builtins namespace are always available without an import.`

	namespacesCmdExample = `# List every namespace
	pype namespaces

	# List the members of the json and strings namespaces
	pype namespaces json strings`
)

// PipeCmd returns the Cobra command that runs a pipeline. The input stream is read
// from fs.
func PipeCmd(fs afero.Fs) *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:     pipeCmdUsage,
		Short:   heredoc.Doc(pipeCmdShort),
		Long:    heredoc.Doc(pipeCmdLong),
		Example: heredoc.Doc(pipeCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.RangeArgs(0, 2),
		ValidArgsFunction: pipeCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.toOptions(cmd, args, fs)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// NamespacesCmd returns the Cobra command that lists the importable namespaces.
func NamespacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     namespacesCmdUsage,
		Short:   heredoc.Doc(namespacesCmdShort),
		Long:    heredoc.Doc(namespacesCmdLong),
		Example: heredoc.Doc(namespacesCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		ValidArgsFunction: namespaceCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := listNamespaces(cmd.Context(), cmd.OutOrStdout(), args); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}
}
