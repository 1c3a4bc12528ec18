package schema

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/drape-io/conf"
)

// Load loads a schema from a TOML file. Every top-level key maps to its
// default value; the defaults double as type templates for validation.
// Nested tables are rejected: the conf format is flat.
func Load(path string) (conf.Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema file: %w", err)
	}

	out := make(conf.Data, len(raw))
	for key, value := range raw {
		v, ok := conf.FromInterface(value)
		if !ok {
			return nil, fmt.Errorf("unsupported value for key %q (nested tables are not allowed)", key)
		}
		out[key] = v
	}

	return out, nil
}
