package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Settings is a typed, validated snapshot of every option the certificate
// authority consumes. Optional options are empty when unset.
type Settings struct {
	Region              string          `json:"region" validate:"required"`
	CertificateValidity time.Duration   `json:"-" validate:"gt=0"`
	EntropyMinimumBits  int             `json:"entropy_minimum_bits" validate:"gt=0"`
	RandomSeedBytes     int             `json:"random_seed_bytes" validate:"gt=0"`
	LoggingLevel        LogLevel        `json:"logging_level" validate:"oneof=CRITICAL FATAL ERROR WARNING WARN INFO DEBUG NOTSET"`
	CertificateType     CertificateType `json:"certificate_type" validate:"oneof=user host"`
	CrossAccountRoleARN string          `json:"cross_account_role_arn,omitempty" validate:"omitempty,startswith=arn:"`
	KMSAuthKeyID        string          `json:"kmsauth_key_id,omitempty"`
	KMSAuthContext      string          `json:"kmsauth_context,omitempty"`
	CAPrivateKeyFile    string          `json:"ca_private_key_file" validate:"required"`
	KMSKeyID            string          `json:"kms_key_id,omitempty"`

	// Password is the encrypted blob for Region. It is never serialized.
	Password string `json:"-" validate:"required"`
}

// Settings resolves every typed option and validates the result. All
// resolution problems are reported together.
func (s *Store) Settings() (*Settings, error) {
	out := &Settings{
		Region:   s.region,
		Password: s.Password(),
	}

	var errs []error
	var err error

	if out.CertificateValidity, err = s.CertificateValidity(); err != nil {
		errs = append(errs, err)
	}
	if out.EntropyMinimumBits, err = s.EntropyMinimumBits(); err != nil {
		errs = append(errs, err)
	}
	if out.RandomSeedBytes, err = s.RandomSeedBytes(); err != nil {
		errs = append(errs, err)
	}
	if out.LoggingLevel, err = s.LoggingLevel(); err != nil {
		errs = append(errs, err)
	}
	if out.CertificateType, err = s.CertificateType(); err != nil {
		errs = append(errs, err)
	}
	if out.CAPrivateKeyFile, err = s.CAPrivateKeyFile(); err != nil {
		errs = append(errs, err)
	}
	// kms_key_id is only needed by deployments that decrypt with an explicit key.
	if v, ok, _ := s.Lookup(CASection, KMSKeyIDOption); ok {
		out.KMSKeyID = v
	}

	out.CrossAccountRoleARN, _ = s.CrossAccountRoleARN()
	out.KMSAuthKeyID, _ = s.KMSAuthKeyID()
	out.KMSAuthContext, _ = s.KMSAuthContext()

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if err := validate.Struct(out); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return out, nil
}

// MarshalJSON renders CertificateValidity in whole seconds, the unit of the
// underlying option.
func (s Settings) MarshalJSON() ([]byte, error) {
	type plain Settings
	return json.Marshal(struct {
		plain
		CertificateValiditySeconds int64 `json:"certificate_validity_seconds"`
	}{
		plain:                      plain(s),
		CertificateValiditySeconds: int64(s.CertificateValidity / time.Second),
	})
}
