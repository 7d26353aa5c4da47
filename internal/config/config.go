package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/riordanpawley/memento-mori/internal/domain"
)

// FileName is the name of the config file kept next to the executable
const FileName = "config.json"

// DefaultColor is the days-lived color used until the user picks one
const DefaultColor = "#BB443E"

// Config represents the persisted memento-mori configuration
type Config struct {
	Color     string  `json:"color"`
	Birthdate *string `json:"birthdate"`

	// Extra holds keys this tool does not use, written back unchanged
	Extra map[string]json.RawMessage `json:"-"`
}

// HasBirthdate reports whether a non-empty birthdate is set
func (c Config) HasBirthdate() bool {
	return c.Birthdate != nil && *c.Birthdate != ""
}

// WithBirthdate returns a copy of c with the birthdate set to s
func (c Config) WithBirthdate(s string) Config {
	c.Birthdate = &s
	return c
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Color:     DefaultColor,
		Birthdate: nil,
	}
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg Config) Config {
	defaults := DefaultConfig()

	if cfg.Color == "" {
		cfg.Color = defaults.Color
	}

	return cfg
}

// DefaultPath returns the config file path alongside the running executable
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Store reads and writes the config file at Path
type Store struct {
	Path   string
	logger *slog.Logger
}

// NewStore creates a store for the config file at path
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{Path: path, logger: logger}
}

// Load reads the config file. Any read or parse failure yields DefaultConfig.
func (s *Store) Load() Config {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no config file, using defaults", "path", s.Path)
		} else {
			s.logger.Debug("failed to read config, using defaults", "path", s.Path, "error", err)
		}
		return DefaultConfig()
	}

	cfg, err := Parse(data)
	if err != nil {
		s.logger.Debug("failed to parse config, using defaults", "path", s.Path, "error", err)
		return DefaultConfig()
	}

	s.logger.Debug("loaded config", "path", s.Path, "color", cfg.Color, "has_birthdate", cfg.HasBirthdate())
	return cfg
}

// Save overwrites the config file with cfg
func (s *Store) Save(cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return &domain.ConfigError{Op: "marshal", Err: err}
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return &domain.ConfigError{Op: "write", Path: s.Path, Err: err}
	}

	s.logger.Debug("saved config", "path", s.Path)
	return nil
}

// Parse decodes a config document and fills in defaults. A field holding the
// wrong JSON type falls back to its default without discarding the others.
func Parse(data []byte) (Config, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	var cfg Config
	for key, value := range raw {
		switch key {
		case "color":
			var color string
			if err := json.Unmarshal(value, &color); err == nil {
				cfg.Color = color
			}
		case "birthdate":
			var birthdate *string
			if err := json.Unmarshal(value, &birthdate); err == nil {
				cfg.Birthdate = birthdate
			}
		default:
			if cfg.Extra == nil {
				cfg.Extra = make(map[string]json.RawMessage)
			}
			cfg.Extra[key] = value
		}
	}

	return MergeWithDefaults(cfg), nil
}

// Marshal encodes cfg as 2-space indented JSON: color, birthdate, then any
// extra keys in sorted order. HTML characters are not escaped.
func Marshal(cfg Config) ([]byte, error) {
	type field struct {
		key   string
		value any
	}
	fields := []field{
		{"color", cfg.Color},
		{"birthdate", cfg.Birthdate},
	}
	for _, key := range slices.Sorted(maps.Keys(cfg.Extra)) {
		fields = append(fields, field{key, cfg.Extra[key]})
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := encodeValue(&compact, f.key); err != nil {
			return nil, err
		}
		compact.WriteByte(':')
		if err := encodeValue(&compact, f.value); err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", f.key, err)
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
