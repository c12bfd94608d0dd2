package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration validation.
var (
	// ErrInvalidWidth indicates a non-positive map width.
	ErrInvalidWidth = errors.New("generator: width must be positive")
	// ErrInvalidHeight indicates a non-positive map height.
	ErrInvalidHeight = errors.New("generator: height must be positive")
	// ErrNoiseScaleRange indicates a noise scale outside [0,1].
	ErrNoiseScaleRange = errors.New("generator: noise scale must be within [0,1]")
	// ErrThresholdRange indicates a land threshold outside [0,1].
	ErrThresholdRange = errors.New("generator: threshold must be within [0,1]")
	// ErrUnknownNoise indicates a noise kind with no implementation.
	ErrUnknownNoise = errors.New("generator: unknown noise kind")
	// ErrInputSize indicates a pipeline input map that does not match the config.
	ErrInputSize = errors.New("generator: input map size mismatch")
)

// ConfigError reports which configuration field failed validation.
// Generation is never attempted with an invalid configuration.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (%s=%v)", e.Err, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
