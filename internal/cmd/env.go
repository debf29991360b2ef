// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mia-platform/pype/internal/logger"
	"github.com/mia-platform/pype/internal/pipeline"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds the defaults read from the environment. Command line flags take
// precedence over every value.
type Config struct {
	Imports     []string `env:"PYPE_IMPORTS" envSeparator:","`
	Placeholder string   `env:"PYPE_PLACEHOLDER" envDefault:"?"`
	LogLevel    string   `env:"PYPE_LOG_LEVEL" envDefault:"WARN"`
	LogJSON     bool     `env:"PYPE_LOG_JSON" envDefault:"false"`
}

// LoadConfig parses and validates the PYPE_* environment variables.
func LoadConfig() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func validateEnvironmentVariables(envVars *Config) error {
	envError := make([]string, 0)

	if err := validatePlaceholder(envVars.Placeholder); err != nil {
		envError = append(envError, "PYPE_PLACEHOLDER "+err.Error())
	}

	if _, err := logger.ParseLevel(envVars.LogLevel); err != nil {
		envError = append(envError, "PYPE_LOG_LEVEL "+err.Error())
	}

	imports := make([]string, 0, len(envVars.Imports))
	for _, name := range envVars.Imports {
		if name = strings.TrimSpace(name); name != "" {
			imports = append(imports, name)
		}
	}
	envVars.Imports = imports

	if len(envError) > 0 {
		return fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, strings.Join(envError, ", "))
	}
	return nil
}

// validatePlaceholder rejects the placeholders that cannot be told apart from the
// rest of a command. Whitespace is a valid placeholder.
func validatePlaceholder(placeholder string) error {
	switch {
	case placeholder == "":
		return errors.New("cannot be empty")
	case strings.Contains(placeholder, pipeline.Separator):
		return fmt.Errorf("cannot contain the stage separator %q", pipeline.Separator)
	default:
		return nil
	}
}
