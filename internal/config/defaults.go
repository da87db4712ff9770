package config

import (
	"sort"
	"strconv"
)

// Section names understood by the store.
const (
	OptionsSection = "Bless Options"
	CASection      = "Bless CA"
)

// Options recognized in the options section.
const (
	CertificateValiditySecondsOption = "certificate_validity_seconds"
	EntropyMinimumBitsOption         = "entropy_minimum_bits"
	RandomSeedBytesOption            = "random_seed_bytes"
	CrossAccountRoleARNOption        = "cross_account_role_arn"
	LoggingLevelOption               = "logging_level"
	CertificateTypeOption            = "certificate_type"
	KMSAuthKeyIDOption               = "kmsauth_key_id"
	KMSAuthContextOption             = "kmsauth_context"
)

// Options read from the CA section. They have no defaults.
const (
	CAPrivateKeyFileOption = "ca_private_key_file"
	KMSKeyIDOption         = "kms_key_id"

	// RegionPasswordSuffix is appended to the region to name its password option.
	RegionPasswordSuffix = "_password"
)

const (
	defaultCertificateValiditySeconds = 60 * 2
	defaultEntropyMinimumBits         = 2048
	defaultRandomSeedBytes            = 256
	defaultLoggingLevel               = "INFO"
	defaultCertificateType            = "user"
)

// OptionDefault declares a recognized option in the options section and its
// fallback. Absent options are recognized but have no fallback value.
type OptionDefault struct {
	Option string
	Value  string
	Absent bool
}

// Defaults is an immutable table of option defaults. The zero value
// recognizes nothing.
type Defaults struct {
	values map[string]OptionDefault
}

// NewDefaults builds a defaults table. Later entries for the same option win.
func NewDefaults(entries ...OptionDefault) Defaults {
	values := make(map[string]OptionDefault, len(entries))
	for _, e := range entries {
		values[e.Option] = e
	}
	return Defaults{values: values}
}

// StandardDefaults returns the defaults used by NewConfigStore.
func StandardDefaults() Defaults {
	return NewDefaults(
		OptionDefault{Option: CertificateValiditySecondsOption, Value: strconv.Itoa(defaultCertificateValiditySeconds)},
		OptionDefault{Option: EntropyMinimumBitsOption, Value: strconv.Itoa(defaultEntropyMinimumBits)},
		OptionDefault{Option: RandomSeedBytesOption, Value: strconv.Itoa(defaultRandomSeedBytes)},
		OptionDefault{Option: CrossAccountRoleARNOption, Absent: true},
		OptionDefault{Option: LoggingLevelOption, Value: defaultLoggingLevel},
		OptionDefault{Option: CertificateTypeOption, Value: defaultCertificateType},
		OptionDefault{Option: KMSAuthKeyIDOption, Absent: true},
		OptionDefault{Option: KMSAuthContextOption, Absent: true},
	)
}

// Lookup returns the default for option. ok is false when the option is
// unknown or declared without a value.
func (d Defaults) Lookup(option string) (value string, ok bool) {
	e, found := d.values[option]
	if !found || e.Absent {
		return "", false
	}
	return e.Value, true
}

// Recognized reports whether option is declared, with or without a value.
func (d Defaults) Recognized(option string) bool {
	_, ok := d.values[option]
	return ok
}

// Options returns the declared option names in sorted order.
func (d Defaults) Options() []string {
	names := make([]string, 0, len(d.values))
	for name := range d.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
