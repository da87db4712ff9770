// Package config loads the BLESS deployment configuration for a single AWS
// region. The configuration is an INI file with an optional "Bless Options"
// section, whose options all have defaults, and a required "Bless CA" section
// that must carry an encrypted password for the region the service runs in.
//
// A Store is built once at startup and is read-only afterwards, so it can be
// shared freely between goroutines.
package config
