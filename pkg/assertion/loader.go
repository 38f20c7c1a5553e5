package assertion

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// bankFile is the on-disk structure for a bank of assertion
// definitions. JSON banks parse too, since JSON is valid YAML.
type bankFile struct {
	Version    string       `yaml:"version"`
	Assertions []Definition `yaml:"assertions"`
}

// LoadDefinitions reads a YAML or JSON file holding a bank of
// assertion definitions.
func LoadDefinitions(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(
			err, "failed to read definitions file %s", path,
		)
	}

	defs, err := ParseDefinitions(data)
	if err != nil {
		return nil, errors.Wrapf(err, "definitions from %s", path)
	}
	return defs, nil
}

// ParseDefinitions decodes a bank of assertion definitions. Every
// definition must name a type and a target.
func ParseDefinitions(data []byte) ([]Definition, error) {
	var bank bankFile
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, errors.Wrap(err, "failed to parse definitions")
	}

	for i, def := range bank.Assertions {
		if def.Type == "" {
			return nil, errors.Newf("assertion %d: missing type", i)
		}
		if def.Target == "" {
			return nil, errors.Newf(
				"assertion %d (%s): missing target", i, def.Type,
			)
		}
	}

	return bank.Assertions, nil
}
