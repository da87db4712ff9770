// Package testutils provides helpers shared by tests across the module:
// temporary BLESS config files and environment setup.
package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempConfigFile writes contents to a bless_deploy.cfg inside a
// per-test temporary directory and returns its path.
func CreateTempConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bless_deploy.cfg")
	err := os.WriteFile(path, []byte(contents), 0o600)
	require.NoError(t, err, "Failed to write temp config file")
	return path
}

// SamplePassword returns the placeholder ciphertext SampleConfig uses for region.
func SamplePassword(region string) string {
	return "ciphertext-for-" + region + "=="
}

// SampleConfig renders a minimal valid config with a CA section holding a
// password for each region and no options section.
func SampleConfig(regions ...string) string {
	var b strings.Builder
	b.WriteString("[Bless CA]\n")
	b.WriteString("ca_private_key_file = /etc/bless/ca.pem\n")
	b.WriteString("kms_key_id = alias/bless\n")
	for _, r := range regions {
		fmt.Fprintf(&b, "%s_password = %s\n", r, SamplePassword(r))
	}
	return b.String()
}

// SetupEnv sets environment variables for the duration of the test. Values
// are restored automatically by t.Setenv.
func SetupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for name, value := range envVars {
		t.Setenv(name, value)
	}
}
