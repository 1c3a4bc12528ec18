// Package conf reads and writes a small key/value configuration format.
//
// A configuration file is a flat list of "key = value" statements, one
// per line. Values are integers, floats, booleans, double-quoted strings,
// or bracketed lists of values. '#' starts a comment that runs to the end
// of the line; blank lines are permitted.
//
//	# example
//	logfile = "error.log"
//	width   = 1024
//	scale   = 1.5
//	debug   = false
//	levels  = [1, 2, 3]
//
// Parse reports every syntax fault in one pass instead of stopping at the
// first, Validate reconciles parsed data against a schema of defaults,
// and Write serializes data back to the same format.
package conf

import (
	"os"
	"path/filepath"
)

// ParseFile reads and parses the configuration file at path. A read
// failure is reported as a single ErrExternal parse error.
func ParseFile(path string) (Data, []ParseError) {
	text, err := os.ReadFile(path)
	if err != nil {
		return Data{}, []ParseError{externalError(err)}
	}
	return Parse(string(text))
}

// ParseOrCreateFile parses the configuration file at path if it exists.
// If the file cannot be read, the defaults are written to path and
// returned. A failure to persist the defaults is reported as an
// ErrExternal parse error, but the defaults still come back as usable
// in-memory data.
func ParseOrCreateFile(path string, defaults Data) (Data, []ParseError) {
	text, err := os.ReadFile(path)
	if err == nil {
		return Parse(string(text))
	}
	if err := Write(path, defaults); err != nil {
		return defaults.Clone(), []ParseError{externalError(err)}
	}
	return defaults.Clone(), nil
}

// ParseOrCreate resolves the conventional config file for the named
// application, creating the application's config directory if needed,
// and behaves like ParseOrCreateFile on the resolved path.
func ParseOrCreate(app string, defaults Data) (Data, []ParseError) {
	dir, err := ConfigPath(app)
	if err != nil {
		return defaults.Clone(), []ParseError{externalError(err)}
	}
	return ParseOrCreateFile(filepath.Join(dir, app+".conf"), defaults)
}

// ConfigPath returns the per-application configuration directory,
// creating it if absent.
func ConfigPath(app string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// FindFile probes the conventional per-user locations for an existing
// configuration file named after the application, in priority order:
// the user config directory, a home-directory dotdir, then a plain
// home-directory file. The second result is false if none exists.
func FindFile(name string) (string, bool) {
	var paths []string
	if base, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(base, name, name+".conf"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, "."+name, name+".conf"),
			filepath.Join(home, name+".conf"),
		)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}
