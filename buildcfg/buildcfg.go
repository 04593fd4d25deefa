// Package buildcfg carries the backend configuration shared by lowering
// passes. It is loaded once per compilation from a YAML document the build
// layer provides.
package buildcfg

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// MemoryModel governs whether values may be freely shared across threads or
// require explicit sharing markers.
type MemoryModel int

const (
	memoryModelInvalid MemoryModel = iota

	// MemoryModelRelaxed lets any value cross threads; no extra tagging
	// is required for precomputed singletons.
	MemoryModelRelaxed

	// MemoryModelStrict requires every value shared across threads to be
	// explicitly marked; precomputed singleton fields get the
	// shared-immutable-after-init tag regardless of annotations.
	MemoryModelStrict
)

func (m MemoryModel) String() string {
	v, err := m.MarshalText()
	if err != nil {
		return fmt.Sprintf("memory-model-invalid(%d)", int(m))
	}

	return string(v)
}

var _ encoding.TextUnmarshaler = (*MemoryModel)(nil)

func (m *MemoryModel) UnmarshalText(b []byte) error {
	switch string(b) {
	case "relaxed":
		*m = MemoryModelRelaxed
		return nil
	case "strict":
		*m = MemoryModelStrict
		return nil
	default:
		return fmt.Errorf("unknown memory model %q", b)
	}
}

func (m MemoryModel) MarshalText() ([]byte, error) {
	switch m {
	case MemoryModelRelaxed:
		return []byte("relaxed"), nil
	case MemoryModelStrict:
		return []byte("strict"), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid MemoryModel(%d)", int(m))
	}
}

// Config is the backend configuration.
type Config struct {
	MemoryModel MemoryModel `yaml:"memory_model"`
}

// Default returns the configuration used when the build layer provides none.
func Default() Config {
	return Config{
		MemoryModel: MemoryModelRelaxed,
	}
}

// Load reads a configuration document. Unknown fields and unknown memory
// model names are errors; an empty document yields [Default].
func Load(r io.Reader) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("decode backend config: %w", err)
	}

	if cfg.MemoryModel == memoryModelInvalid {
		cfg.MemoryModel = MemoryModelRelaxed
	}

	return cfg, nil
}

// LoadFile reads a configuration document from a file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open backend config: %w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("read backend config %s: %w", path, err)
	}

	return cfg, nil
}
