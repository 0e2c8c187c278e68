// Package config loads the esv command's optional TOML settings file.
//
// Example file:
//
//	separator    = "😀"      # or "U+1F600"
//	headers      = true
//	strict       = false
//	always_quote = false
//	line_ending  = "crlf"    # lf | crlf
//	format       = "json-pretty"
//
// Every key is optional. Flags given on the command line override file
// values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that selects a config file.
const EnvVar = "ESV_CONFIG"

// File holds the settings read from a config file. Booleans are pointers so
// that an absent key is distinguishable from false.
type File struct {
	Separator   string `toml:"separator"`
	Headers     *bool  `toml:"headers"`
	Strict      *bool  `toml:"strict"`
	AlwaysQuote *bool  `toml:"always_quote"`
	LineEnding  string `toml:"line_ending"`
	Format      string `toml:"format"`

	// Path is where the file was read from, empty when no file was used.
	Path string `toml:"-"`
}

// Load reads and decodes the TOML file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	f, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Decode decodes TOML text. Unknown keys are rejected so that typos
// surface instead of being ignored.
func Decode(data string) (*File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if f.Separator != "" {
		if _, err := ParseSeparator(f.Separator); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// Locate returns the config file to load. An explicit path, then $ESV_CONFIG,
// are used as given and must exist. Otherwise $XDG_CONFIG_HOME/esv/config.toml
// (or ~/.config/esv/config.toml) is used when present. An empty result
// means no file.
func Locate(explicit string) (path string, required bool) {
	if explicit != "" {
		return explicit, true
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env, true
	}

	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		dir = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(dir, "esv", "config.toml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate, false
	}
	return "", false
}

// Resolve locates and loads the config file. It returns an empty File when
// no file applies.
func Resolve(explicit string) (*File, error) {
	path, required := Locate(explicit)
	if path == "" {
		return &File{}, nil
	}
	if !required {
		if _, err := os.Stat(path); err != nil {
			return &File{}, nil
		}
	}
	return Load(path)
}

// ParseSeparator parses a separator setting: either exactly one scalar
// value ("😀", ";") or a code point in U+XXXX form ("U+1F600").
func ParseSeparator(s string) (rune, error) {
	if hex, ok := cutPrefixFold(s, "U+"); ok && len(hex) >= 4 {
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("separator %q: invalid code point", s)
		}
		return rune(n), nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("separator %q: must be exactly one character", s)
	}
	return r, nil
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}
