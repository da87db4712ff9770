package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CertificateType is the kind of SSH certificate the CA issues.
type CertificateType string

const (
	CertificateTypeUser CertificateType = "user"
	CertificateTypeHost CertificateType = "host"
)

// LogLevel is a severity name as written in logging_level, canonicalized to
// upper case.
type LogLevel string

const (
	LogLevelCritical LogLevel = "CRITICAL"
	LogLevelFatal    LogLevel = "FATAL"
	LogLevelError    LogLevel = "ERROR"
	LogLevelWarning  LogLevel = "WARNING"
	LogLevelWarn     LogLevel = "WARN"
	LogLevelInfo     LogLevel = "INFO"
	LogLevelDebug    LogLevel = "DEBUG"
	LogLevelNotSet   LogLevel = "NOTSET"
)

var (
	errNotPositive     = errors.New("must be a positive integer")
	errUnknownLogLevel = errors.New("unknown log level")
)

// CertificateValidity returns certificate_validity_seconds as a duration.
func (s *Store) CertificateValidity() (time.Duration, error) {
	n, err := s.positiveInt(CertificateValiditySecondsOption)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

// EntropyMinimumBits returns entropy_minimum_bits.
func (s *Store) EntropyMinimumBits() (int, error) {
	return s.positiveInt(EntropyMinimumBitsOption)
}

// RandomSeedBytes returns random_seed_bytes.
func (s *Store) RandomSeedBytes() (int, error) {
	return s.positiveInt(RandomSeedBytesOption)
}

// LoggingLevel returns logging_level, matched case-insensitively.
func (s *Store) LoggingLevel() (LogLevel, error) {
	raw, err := s.Get(OptionsSection, LoggingLevelOption)
	if err != nil {
		return "", err
	}
	level := LogLevel(strings.ToUpper(strings.TrimSpace(raw)))
	switch level {
	case LogLevelCritical, LogLevelFatal, LogLevelError, LogLevelWarning,
		LogLevelWarn, LogLevelInfo, LogLevelDebug, LogLevelNotSet:
		return level, nil
	}
	return "", &InvalidOptionError{
		Section: OptionsSection,
		Option:  LoggingLevelOption,
		Value:   raw,
		Err:     errUnknownLogLevel,
	}
}

// CertificateType returns certificate_type.
func (s *Store) CertificateType() (CertificateType, error) {
	raw, err := s.Get(OptionsSection, CertificateTypeOption)
	if err != nil {
		return "", err
	}
	ct := CertificateType(strings.ToLower(strings.TrimSpace(raw)))
	switch ct {
	case CertificateTypeUser, CertificateTypeHost:
		return ct, nil
	}
	return "", &InvalidOptionError{
		Section: OptionsSection,
		Option:  CertificateTypeOption,
		Value:   raw,
		Err:     fmt.Errorf("want %q or %q", CertificateTypeUser, CertificateTypeHost),
	}
}

// CrossAccountRoleARN returns cross_account_role_arn. ok is false when unset.
func (s *Store) CrossAccountRoleARN() (string, bool) {
	return s.optional(CrossAccountRoleARNOption)
}

// KMSAuthKeyID returns kmsauth_key_id. ok is false when unset.
func (s *Store) KMSAuthKeyID() (string, bool) {
	return s.optional(KMSAuthKeyIDOption)
}

// KMSAuthContext returns kmsauth_context. ok is false when unset.
func (s *Store) KMSAuthContext() (string, bool) {
	return s.optional(KMSAuthContextOption)
}

// CAPrivateKeyFile returns ca_private_key_file from the CA section.
func (s *Store) CAPrivateKeyFile() (string, error) {
	return s.Get(CASection, CAPrivateKeyFileOption)
}

// KMSKeyID returns kms_key_id from the CA section.
func (s *Store) KMSKeyID() (string, error) {
	return s.Get(CASection, KMSKeyIDOption)
}

func (s *Store) positiveInt(option string) (int, error) {
	raw, err := s.Get(OptionsSection, option)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidOptionError{Section: OptionsSection, Option: option, Value: raw, Err: err}
	}
	if n <= 0 {
		return 0, &InvalidOptionError{Section: OptionsSection, Option: option, Value: raw, Err: errNotPositive}
	}
	return n, nil
}

// optional treats an empty file value the same as an unset option.
func (s *Store) optional(option string) (string, bool) {
	v, ok, err := s.Lookup(OptionsSection, option)
	if err != nil || !ok || v == "" {
		return "", false
	}
	return v, true
}
