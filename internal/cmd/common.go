// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mia-platform/pype/internal/namespace"
)

var (
	errNoArguments        = errors.New("no command provided")
	errInvalidPlaceholder = errors.New("invalid placeholder")
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errNoArguments):
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return nil
	case errors.Is(err, errInvalidPlaceholder), errors.Is(err, ErrEnvVariablesNotValid):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}

// namespaceCompletion completes every argument with the names of the namespaces
// not already listed.
func namespaceCompletion(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var comps []string
	for _, name := range namespace.Available() {
		if strings.HasPrefix(name, toComplete) && !slices.Contains(args, name) {
			comps = append(comps, cobra.CompletionWithDesc(name, namespace.Description(name)))
		}
	}

	return comps, cobra.ShellCompDirectiveNoFileComp
}

// pipeCompletion leaves the command to the user and completes the input stream with
// file names.
func pipeCompletion(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 1 {
		return nil, cobra.ShellCompDirectiveDefault
	}

	return nil, cobra.ShellCompDirectiveNoFileComp
}
