package rules

import (
	"errors"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

// Load reads YAML rules from r. Fields that are absent keep their default
// values; unknown fields are an error.
func Load(r io.Reader) (*Rules, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, pfx.Err(err)
	}

	return New(cfg)
}

// LoadFile is Load on the file at path. An empty path yields Default().
func LoadFile(path string) (*Rules, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	return Load(f)
}

// Marshal renders r as YAML in the form Load accepts.
func Marshal(r *Rules) ([]byte, error) {
	return yaml.Marshal(r.Config())
}
