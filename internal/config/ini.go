package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

var (
	errRewrittenValue       = errors.New("value opens with a quote the parser would rewrite")
	errDuplicateOption      = errors.New("duplicate option")
	errOptionOutsideSection = errors.New("option appears before any section header")
)

// sections is the parsed file content: section name to option name to raw value.
// Names are case-sensitive as written in the file.
type sections map[string]map[string]string

// iniLoadOptions keeps values as literal as the file format allows.
// Ciphertext blobs must come back exactly as written.
var iniLoadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// parseFile reads the INI file at path into a plain section map.
func parseFile(path string) (sections, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	if err := checkRawLines(data); err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	f, err := ini.LoadSources(iniLoadOptions, data)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return fromINI(f), nil
}

// checkRawLines rejects content ini.v1 would accept but not return verbatim:
// values opening with a backtick or triple quote, repeated options, and
// options outside any section.
func checkRawLines(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)

	section := ""
	inSection := false
	seen := make(map[string]map[string]bool)

	for n := 1; scanner.Scan(); n++ {
		line := scanner.Text()
		if n == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		if line[0] == '[' {
			if end := strings.LastIndexByte(line, ']'); end > 0 {
				section = line[1:end]
				inSection = true
				if seen[section] == nil {
					seen[section] = make(map[string]bool)
				}
			}
			continue
		}

		idx := strings.IndexAny(line, "=:")
		if idx < 0 {
			// ini.v1 reports the missing delimiter.
			continue
		}
		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])

		if !inSection {
			return fmt.Errorf("line %d: %q: %w", n, key, errOptionOutsideSection)
		}
		if seen[section][key] {
			return fmt.Errorf("line %d: %q in [%s]: %w", n, key, section, errDuplicateOption)
		}
		seen[section][key] = true

		if strings.HasPrefix(value, "`") || strings.HasPrefix(value, `"""`) {
			return fmt.Errorf("line %d: %q: %w", n, key, errRewrittenValue)
		}
	}
	return scanner.Err()
}

func fromINI(f *ini.File) sections {
	out := make(sections)
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		// The library always creates an implicit default section.
		if sec.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}
		opts := make(map[string]string, len(keys))
		for _, k := range keys {
			opts[k.Name()] = k.Value()
		}
		out[sec.Name()] = opts
	}
	return out
}
