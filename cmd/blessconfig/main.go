// Package main implements blessconfig, which loads and validates a BLESS
// deployment config for one AWS region and prints the effective settings.
// The region password is never printed.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/phrazzld/bless-config/internal/config"
	"github.com/phrazzld/bless-config/internal/redact"
)

const (
	exitOK          = 0
	exitConfigError = 1
	exitUsage       = 2
)

// report is the JSON document written to stdout on success.
type report struct {
	Region          string              `json:"region"`
	ConfigPath      string              `json:"config_path"`
	PasswordOption  string              `json:"password_option"`
	PasswordPresent bool                `json:"password_present"`
	Settings        *config.Settings    `json:"settings"`
	Sections        map[string][]string `json:"sections,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	boot, err := loadBootstrap(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "blessconfig: %v\n", err)
		return exitUsage
	}

	store, err := config.NewConfigStore(boot.Region, boot.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "blessconfig: failed to load configuration: %s\n", redact.Error(err))
		return exitConfigError
	}

	setupAppLogger(store, stderr)

	settings, err := store.Settings()
	if err != nil {
		slog.Error("configuration validation failed",
			"region", store.Region(),
			"path", store.Path(),
			"error", err)
		return exitConfigError
	}

	slog.Info("configuration loaded",
		"region", store.Region(),
		"path", store.Path(),
		"certificate_type", settings.CertificateType,
		"certificate_validity", settings.CertificateValidity.String())

	out := report{
		Region:          store.Region(),
		ConfigPath:      store.Path(),
		PasswordOption:  store.PasswordOption(),
		PasswordPresent: store.Password() != "",
		Settings:        settings,
	}
	if boot.ShowOptions {
		out.Sections = make(map[string][]string)
		for _, section := range store.Sections() {
			out.Sections[section] = store.Options(section)
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("failed to write report", "error", err)
		return exitConfigError
	}

	return exitOK
}
