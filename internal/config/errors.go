package config

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the config package. The concrete error types
// below match them with errors.Is.
var (
	// ErrEmptyRegion is returned when a store is built without a region.
	ErrEmptyRegion = errors.New("aws region must not be empty")

	// ErrFileAccess is returned when the config file cannot be read or parsed.
	ErrFileAccess = errors.New("can't read config file")

	// ErrMissingSection is returned when a required section is absent.
	ErrMissingSection = errors.New("missing required section")

	// ErrMissingRegionCredential is returned when the CA section has no
	// password for the configured region.
	ErrMissingRegionCredential = errors.New("no region specific password provided")

	// ErrMissingOption is returned when an option has neither a file value
	// nor a default.
	ErrMissingOption = errors.New("missing option")

	// ErrInvalidOption is returned when a typed getter cannot coerce a value.
	ErrInvalidOption = errors.New("invalid option value")
)

// FileAccessError reports a config file that could not be read or parsed.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%v at %s: %v", ErrFileAccess, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

func (e *FileAccessError) Is(target error) bool { return target == ErrFileAccess }

// MissingSectionError reports a required section absent from the file.
type MissingSectionError struct {
	Section string
	Path    string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("%v [%s] in %s", ErrMissingSection, e.Section, e.Path)
}

func (e *MissingSectionError) Is(target error) bool { return target == ErrMissingSection }

// MissingRegionCredentialError reports that the CA section lacks the
// password option for the region. Option is the name operators need to add.
type MissingRegionCredentialError struct {
	Region string
	Option string
}

func (e *MissingRegionCredentialError) Error() string {
	return fmt.Sprintf("%v: expected option %q in [%s] for region %s",
		ErrMissingRegionCredential, e.Option, CASection, e.Region)
}

func (e *MissingRegionCredentialError) Is(target error) bool {
	return target == ErrMissingRegionCredential
}

// MissingOptionError is returned lazily by queries, never by construction.
type MissingOptionError struct {
	Section string
	Option  string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("%v %q in section [%s]", ErrMissingOption, e.Option, e.Section)
}

func (e *MissingOptionError) Is(target error) bool { return target == ErrMissingOption }

// InvalidOptionError reports a value that does not fit its option's type.
type InvalidOptionError struct {
	Section string
	Option  string
	Value   string
	Err     error
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("%v for %q in section [%s]: %q: %v",
		ErrInvalidOption, e.Option, e.Section, e.Value, e.Err)
}

func (e *InvalidOptionError) Unwrap() error { return e.Err }

func (e *InvalidOptionError) Is(target error) bool { return target == ErrInvalidOption }
