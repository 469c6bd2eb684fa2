package rope

import (
	"os"

	"gopkg.in/yaml.v3"
)

// config.go loads Traits from a YAML file, the same format an editor
// or service embedding this package would use for its own settings
// file. This is an ambient convenience, not part of the core
// algorithms: every tree function still takes its *Traits explicitly,
// this just gives a process a way to populate one from disk instead
// of constructing it in code.

// configFile mirrors the on-disk shape; it exists separately from
// Traits so the YAML tags don't leak onto the hot-path struct.
type configFile struct {
	BranchFactor int  `yaml:"branch_factor"`
	BufSize      int  `yaml:"buf_size"`
	Debug        bool `yaml:"debug"`
}

// LoadTraits reads a YAML file describing a Traits value. Any field
// left unset in the file falls back to DefaultTraits.
func LoadTraits(path string) (*Traits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTraits(data)
}

// ParseTraits decodes a YAML document describing a Traits value.
func ParseTraits(data []byte) (*Traits, error) {
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	traits := &Traits{
		BranchFactor: cfg.BranchFactor,
		BufSize:      cfg.BufSize,
		Debug:        cfg.Debug,
	}
	if traits.BranchFactor == 0 {
		traits.BranchFactor = DefaultTraits.BranchFactor
	}
	if traits.BufSize == 0 {
		traits.BufSize = DefaultTraits.BufSize
	}
	return traits, nil
}

// MarshalYAML lets a Traits value round-trip through yaml.Marshal.
func (t *Traits) MarshalYAML() (interface{}, error) {
	return configFile{BranchFactor: t.BranchFactor, BufSize: t.BufSize, Debug: t.Debug}, nil
}
