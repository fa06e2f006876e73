package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// inconsistent. The returned error wraps one of them together with details.
var (
	// ErrInvalidAppConfigs indicates invalid reveal protocol settings
	// (for example, an empty system key or a non-positive countdown).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive tick interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid terminal client settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
