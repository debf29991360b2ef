// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	internalcmd "github.com/mia-platform/pype/internal/cmd"
	"github.com/mia-platform/pype/internal/info"
	"github.com/mia-platform/pype/internal/logger"
)

var (
	// Version is injected at build time via the Makefile.
	Version = info.Version
	// BuildDate is injected at build time via the Makefile.
	BuildDate = info.BuildDate

	appName      = info.AppName
	versionShort = "Display the " + appName + " version"
)

const (
	logLevelFlagName      = "log-level"
	logLevelShortFlagName = "v"

	logJSONFlagName  = "log-json"
	logJSONFlagUsage = "write diagnostic messages as JSON lines"

	versionCmdName = "version"
)

var (
	allLoggerLevels = []string{
		logger.TRACE.String(),
		logger.DEBUG.String(),
		logger.INFO.String(),
		logger.WARN.String(),
		logger.ERROR.String(),
	}
	logLevelDefaultValue = logger.WARN.String()
	logLevelFlagUsage    = "set the logging level (possible values: " + strings.Join(allLoggerLevels, ", ") + ")"
)

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel string
	logJSON  bool
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, logLevelFlagName, logLevelShortFlagName, logLevelDefaultValue, heredoc.Doc(logLevelFlagUsage))
	flags.BoolVar(&f.logJSON, logJSONFlagName, false, logJSONFlagUsage)
}

// configureLogger applies the logging flags, falling back to the environment for
// the flags not set, and stores the resulting logger in the command context.
func (f *rootFlags) configureLogger(cmd *cobra.Command) {
	level := f.logLevel
	logJSON := f.logJSON
	if config, err := internalcmd.LoadConfig(); err == nil {
		if !cmd.Flags().Changed(logLevelFlagName) {
			level = config.LogLevel
		}
		if !cmd.Flags().Changed(logJSONFlagName) {
			logJSON = config.LogJSON
		}
	}

	log := logger.FromContext(cmd.Context())
	if logJSON {
		log = logger.NewJSONLogger(cmd.ErrOrStderr())
		cmd.SetContext(logger.WithContext(cmd.Context(), log))
	}
	log.SetLevel(logger.LevelFromString(level))
}

func main() {
	cmd := rootCmd(afero.NewOsFs())
	log := logger.NewLogger(cmd.ErrOrStderr())
	ctx, stop := signal.NotifyContext(logger.WithContext(context.Background(), log), os.Interrupt)

	exitCode := 0
	if err := cmd.ExecuteContext(ctx); err != nil {
		exitCode = 1
	}

	stop()
	os.Exit(exitCode)
}

// rootCmd constructs the root Cobra command with shared configuration. The root
// command runs the pipeline itself, reading the input stream from fs.
func rootCmd(fs afero.Fs) *cobra.Command {
	flag := &rootFlags{}

	cmd := internalcmd.PipeCmd(fs)
	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		flag.configureLogger(cmd)
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		_ = c.Usage()
		return err
	})

	flag.addFlags(cmd)
	cmd.AddCommand(
		internalcmd.NamespacesCmd(),
		versionCmd(),
	)

	return cmd
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   versionCmdName,
		Short: heredoc.Doc(versionShort),

		Args: func(cmd *cobra.Command, args []string) error {
			err := cobra.NoArgs(cmd, args)
			if err != nil {
				cmd.PrintErrln(err)
				_ = cmd.Usage()
			}

			return err
		},
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
