package conf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteTo renders data in the on-disk format: one aligned "key = value"
// line per entry, keys sorted, padded to the longest key.
func WriteTo(w io.Writer, data Data) error {
	width := 0
	for k := range data {
		if len(k) > width {
			width = len(k)
		}
	}
	for _, k := range data.Keys() {
		if _, err := fmt.Fprintf(w, "%-*s = %s\n", width, k, data[k].Format()); err != nil {
			return err
		}
	}
	return nil
}

// Write serializes data to the file at path, creating or truncating it.
// A failure to open the destination surfaces the underlying I/O error;
// no partial-file cleanup is attempted.
func Write(path string, data Data) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTo(f, data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// WriteApp serializes data to the conventional per-application config
// file, creating the application's config directory if needed.
func WriteApp(app string, data Data) error {
	dir, err := ConfigPath(app)
	if err != nil {
		return err
	}
	return Write(filepath.Join(dir, app+".conf"), data)
}
