package config_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/phrazzld/bless-config/internal/config"
	"github.com/phrazzld/bless-config/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Defaults(t *testing.T) {
	path := testutils.CreateTempConfigFile(t, testutils.SampleConfig("eu-west-1"))
	store, err := config.NewConfigStore("eu-west-1", path)
	require.NoError(t, err)

	settings, err := store.Settings()
	require.NoError(t, err)

	assert.Equal(t, &config.Settings{
		Region:              "eu-west-1",
		CertificateValidity: 2 * time.Minute,
		EntropyMinimumBits:  2048,
		RandomSeedBytes:     256,
		LoggingLevel:        config.LogLevelInfo,
		CertificateType:     config.CertificateTypeUser,
		CAPrivateKeyFile:    "/etc/bless/ca.pem",
		KMSKeyID:            "alias/bless",
		Password:            testutils.SamplePassword("eu-west-1"),
	}, settings)
}

func TestSettings_PasswordNotSerialized(t *testing.T) {
	path := testutils.CreateTempConfigFile(t, testutils.SampleConfig("us-east-1"))
	store, err := config.NewConfigStore("us-east-1", path)
	require.NoError(t, err)

	settings, err := store.Settings()
	require.NoError(t, err)

	out, err := json.Marshal(settings)
	require.NoError(t, err)
	assert.NotContains(t, string(out), testutils.SamplePassword("us-east-1"))
	assert.Contains(t, string(out), `"region":"us-east-1"`)
}

func TestSettings_ReportsAllProblems(t *testing.T) {
	path := testutils.CreateTempConfigFile(t, `[Bless Options]
certificate_validity_seconds = soon
certificate_type = robot

[Bless CA]
us-east-1_password = blob
`)
	store, err := config.NewConfigStore("us-east-1", path)
	require.NoError(t, err)

	settings, err := store.Settings()
	require.Error(t, err)
	assert.Nil(t, settings)
	assert.ErrorIs(t, err, config.ErrInvalidOption)
	assert.ErrorIs(t, err, config.ErrMissingOption)
	assert.Contains(t, err.Error(), config.CertificateValiditySecondsOption)
	assert.Contains(t, err.Error(), config.CertificateTypeOption)
	assert.Contains(t, err.Error(), config.CAPrivateKeyFileOption)
}

func TestSettings_ValidatesRoleARN(t *testing.T) {
	path := testutils.CreateTempConfigFile(t,
		"[Bless Options]\ncross_account_role_arn = role/bless\n\n"+testutils.SampleConfig("us-east-1"))
	store, err := config.NewConfigStore("us-east-1", path)
	require.NoError(t, err)

	_, err = store.Settings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestSettings_OptionalKMSKeyID(t *testing.T) {
	path := testutils.CreateTempConfigFile(t,
		"[Bless CA]\nca_private_key_file = /x\nus-east-1_password = blob\n")
	store, err := config.NewConfigStore("us-east-1", path)
	require.NoError(t, err)

	settings, err := store.Settings()
	require.NoError(t, err)
	assert.Empty(t, settings.KMSKeyID)
	assert.Equal(t, "blob", settings.Password)
}

func TestSettings_MarshalJSON(t *testing.T) {
	settings := config.Settings{
		Region:              "us-east-1",
		CertificateValidity: 5 * time.Minute,
		LoggingLevel:        config.LogLevelDebug,
		CertificateType:     config.CertificateTypeHost,
		Password:            "secret-blob",
	}

	out, err := json.Marshal(settings)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, float64(300), decoded["certificate_validity_seconds"])
	assert.Equal(t, "DEBUG", decoded["logging_level"])
	assert.Equal(t, "host", decoded["certificate_type"])
	assert.NotContains(t, decoded, "cross_account_role_arn")
	assert.NotContains(t, string(out), "secret-blob")
}
