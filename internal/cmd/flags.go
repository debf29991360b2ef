// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	importFlagName  = "import"
	importFlagShort = "i"
	importFlagUsage = "Namespace to make available to the command. Can be specified multiple times or as a comma separated list."

	placeholderFlagName  = "placeholder"
	placeholderFlagShort = "p"
	placeholderFlagUsage = "Token marking where the running value is used in a stage."
)

// flags collects the CLI options of the pipe command.
type flags struct {
	imports     []string
	placeholder string
}

// addFlags registers the CLI flags on cmd.
func (f *flags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(
		&f.imports,
		importFlagName,
		importFlagShort,
		nil,
		importFlagUsage)

	cmd.Flags().StringVarP(&f.placeholder, placeholderFlagName, placeholderFlagShort, "", placeholderFlagUsage)
}

// toOptions builds an options instance from the parsed flags and CLI arguments,
// falling back to the environment configuration for every flag not set.
func (f *flags) toOptions(cmd *cobra.Command, args []string, fs afero.Fs) (*options, error) {
	if len(args) == 0 {
		return nil, errNoArguments
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	imports := config.Imports
	if cmd.Flags().Changed(importFlagName) {
		imports = make([]string, 0, len(f.imports))
		for _, name := range f.imports {
			if name = strings.TrimSpace(name); name != "" {
				imports = append(imports, name)
			}
		}
	}

	placeholder := config.Placeholder
	if cmd.Flags().Changed(placeholderFlagName) {
		placeholder = f.placeholder
	}

	inStream := ""
	if len(args) > 1 {
		inStream = args[1]
	}

	return &options{
		command:     args[0],
		inStream:    inStream,
		imports:     imports,
		placeholder: placeholder,
		fs:          fs,
		stdin:       cmd.InOrStdin(),
		stdout:      cmd.OutOrStdout(),
	}, nil
}
