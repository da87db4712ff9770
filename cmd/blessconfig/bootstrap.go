package main

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// defaultConfigPath is where the deployment package places the config.
const defaultConfigPath = "bless_deploy.cfg"

// bootstrapConfig holds what is needed before the BLESS config can be read.
type bootstrapConfig struct {
	Region      string `mapstructure:"region" validate:"required"`
	ConfigPath  string `mapstructure:"config" validate:"required"`
	ShowOptions bool   `mapstructure:"show_options"`
}

// loadBootstrap resolves the region and config path from flags, then
// BLESS_REGION / AWS_REGION and BLESS_CONFIG. Flags set explicitly win.
func loadBootstrap(args []string, stderr io.Writer) (*bootstrapConfig, error) {
	fs := pflag.NewFlagSet("blessconfig", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("region", "", "AWS region the CA is deployed to (env BLESS_REGION, AWS_REGION)")
	fs.String("config", defaultConfigPath, "path to the BLESS INI config file (env BLESS_CONFIG)")
	fs.Bool("show-options", false, "list the options set in each section")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("config", defaultConfigPath)

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"region", "region"},
		{"config", "config"},
		{"show_options", "show-options"},
	}
	for _, b := range bindFlags {
		if err := v.BindPFlag(b.key, fs.Lookup(b.flag)); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", b.flag, err)
		}
	}

	bindEnvs := []struct {
		key     string
		envVars []string
	}{
		{"region", []string{"BLESS_REGION", "AWS_REGION"}},
		{"config", []string{"BLESS_CONFIG"}},
	}
	for _, b := range bindEnvs {
		input := append([]string{b.key}, b.envVars...)
		if err := v.BindEnv(input...); err != nil {
			return nil, fmt.Errorf("error binding environment variables %v: %w", b.envVars, err)
		}
	}

	var cfg bootstrapConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bootstrap configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("bootstrap validation failed (set --region or AWS_REGION): %w", err)
	}

	return &cfg, nil
}
