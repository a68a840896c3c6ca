// Package config loads jvmdis.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file searched for from the working directory up.
const FileName = "jvmdis.toml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
	FormatDump = "dump"
)

// Config holds defaults for the command line. Flags override every field.
type Config struct {
	Base     uint32 `toml:"base" json:"base" jsonschema:"title=Base Address,description=Method-relative address of the first code byte,default=0"`
	Format   string `toml:"format" json:"format" jsonschema:"title=Output Format,description=Listing format,enum=text,enum=json,enum=cbor,enum=dump,default=text"`
	Color    bool   `toml:"color" json:"color" jsonschema:"title=Color,description=Colorize text listings on terminals,default=true"`
	Lint     bool   `toml:"lint" json:"lint" jsonschema:"title=Lint,description=Run the detectors after decoding"`
	RawBytes bool   `toml:"raw_bytes" json:"rawBytes" jsonschema:"title=Raw Bytes,description=Show encoded bytes next to each instruction"`
	LogLevel string `toml:"log_level" json:"logLevel" jsonschema:"title=Log Level,description=Log level when JVMDIS_LOG_LEVEL is unset,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Workers  int    `toml:"workers" json:"workers,omitempty" jsonschema:"title=Workers,description=Concurrent decodes in batch mode; 0 means one per CPU,minimum=0"`

	// Path is the file the values came from, empty for defaults.
	Path string `toml:"-" json:"-"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Format:   FormatText,
		Color:    true,
		LogLevel: "info",
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatCBOR, FormatDump:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Find walks up from startDir looking for FileName. It returns "" when
// there is none.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// FindAndLoad returns the nearest configuration above startDir, or the
// defaults when there is none.
func FindAndLoad(startDir string) (Config, error) {
	path, err := Find(startDir)
	if err != nil {
		return Default(), err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
