package config

import (
	"sort"
)

// Store is the loaded configuration for one region. It is immutable once
// returned by New and safe for concurrent use.
type Store struct {
	region   string
	path     string
	defaults Defaults
	sections sections
}

// NewConfigStore loads path for region using StandardDefaults.
func NewConfigStore(region, path string) (*Store, error) {
	return New(region, path, StandardDefaults())
}

// New parses the INI file at path, layers defaults over the options section
// and checks that the CA section holds a password for region.
//
// Errors match ErrEmptyRegion, ErrFileAccess, ErrMissingSection or
// ErrMissingRegionCredential. No store is returned on error.
func New(region, path string, defaults Defaults) (*Store, error) {
	if region == "" {
		return nil, ErrEmptyRegion
	}

	secs, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	if _, ok := secs[OptionsSection]; !ok {
		secs[OptionsSection] = map[string]string{}
	}

	ca, ok := secs[CASection]
	if !ok {
		return nil, &MissingSectionError{Section: CASection, Path: path}
	}

	option := region + RegionPasswordSuffix
	if _, ok := ca[option]; !ok {
		return nil, &MissingRegionCredentialError{Region: region, Option: option}
	}

	return &Store{
		region:   region,
		path:     path,
		defaults: defaults,
		sections: secs,
	}, nil
}

// Region returns the AWS region the store was built for.
func (s *Store) Region() string { return s.region }

// Path returns the file the store was loaded from.
func (s *Store) Path() string { return s.path }

// PasswordOption returns the CA section option holding this region's password.
func (s *Store) PasswordOption() string { return s.region + RegionPasswordSuffix }

// Get returns the raw value of option in section.
//
// File values always win. Options in the options section fall back to their
// default. Recognized options declared without a default resolve to "" with
// a nil error; use Lookup to tell them apart from an empty file value.
// Anything else yields a *MissingOptionError.
func (s *Store) Get(section, option string) (string, error) {
	v, _, err := s.Lookup(section, option)
	return v, err
}

// Lookup is Get with an explicit presence flag. ok is false only for
// recognized optional options that have neither a file value nor a default.
func (s *Store) Lookup(section, option string) (value string, ok bool, err error) {
	if opts, found := s.sections[section]; found {
		if v, found := opts[option]; found {
			return v, true, nil
		}
	}

	if section == OptionsSection {
		if v, found := s.defaults.Lookup(option); found {
			return v, true, nil
		}
		if s.defaults.Recognized(option) {
			return "", false, nil
		}
	}

	return "", false, &MissingOptionError{Section: section, Option: option}
}

// Password returns the region's KMS-encrypted password blob exactly as it
// appears in the file. It is not decoded here.
func (s *Store) Password() string {
	// Presence was checked in New.
	return s.sections[CASection][s.PasswordOption()]
}

// HasSection reports whether section exists. The options section always does.
func (s *Store) HasSection(section string) bool {
	_, ok := s.sections[section]
	return ok
}

// HasOption reports whether the file sets option in section. Defaults are
// not considered.
func (s *Store) HasOption(section, option string) bool {
	_, ok := s.sections[section][option]
	return ok
}

// Sections returns the section names in sorted order.
func (s *Store) Sections() []string {
	names := make([]string, 0, len(s.sections))
	for name := range s.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options returns the option names the file sets in section, sorted.
func (s *Store) Options(section string) []string {
	opts := s.sections[section]
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
