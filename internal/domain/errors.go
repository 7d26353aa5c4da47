package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidBirthdate = errors.New("invalid birthdate")
	ErrUserCanceled     = errors.New("user canceled")
	ErrNoInput          = errors.New("no input")
)

// ConfigError represents a failure reading or writing the config file
type ConfigError struct {
	Op   string // Operation: "read", "parse", "write", etc.
	Path string // Config file path
	Err  error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s [%s]: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
