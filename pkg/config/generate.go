package config

import (
	"bytes"

	"github.com/arthur-debert/capstyle/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# capstyle configuration
# Save as $XDG_CONFIG_HOME/capstyle/config.toml or pass with --config.

`

// Generate renders cfg as a TOML config file
func Generate(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrSerialize, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}
