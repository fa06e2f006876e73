// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"
)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Storage.validate(),
		cfg.Server.validate(),
		cfg.Workers.validate(),
	)
}

// validateClient checks only what the terminal client uses.
func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: server address is empty", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if cfg.Workers.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (a App) validate() error {
	switch {
	case a.SystemKey == "":
		return fmt.Errorf("%w: system key is empty", ErrInvalidAppConfigs)
	case a.CommissionerPassword == "" && a.CommissionerPasswordHash == "":
		return fmt.Errorf("%w: commissioner password is not set", ErrInvalidAppConfigs)
	case a.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	case a.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case a.MinKeepers < 0 || a.MaxKeepers < a.MinKeepers:
		return fmt.Errorf("%w: keeper bounds %d..%d", ErrInvalidAppConfigs, a.MinKeepers, a.MaxKeepers)
	case a.TeamBudget <= 0:
		return fmt.Errorf("%w: team budget must be positive", ErrInvalidAppConfigs)
	case a.MinPasswordLength < 1:
		return fmt.Errorf("%w: minimal password length must be positive", ErrInvalidAppConfigs)
	case a.CountdownDuration < time.Second:
		return fmt.Errorf("%w: countdown must last at least one second", ErrInvalidAppConfigs)
	case a.CountdownStaleThreshold <= 0:
		return fmt.Errorf("%w: stale threshold must be positive", ErrInvalidAppConfigs)
	case a.AutoStartWindow <= 0:
		return fmt.Errorf("%w: auto-start window must be positive", ErrInvalidAppConfigs)
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverPostgres, DriverSQLite:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, s.Driver)
		}
	case DriverFile:
		if s.File.Path == "" {
			return fmt.Errorf("%w: file driver needs a path", ErrInvalidStorageConfigs)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	if s.DB.Timeout <= 0 {
		return fmt.Errorf("%w: store timeout must be positive", ErrInvalidStorageConfigs)
	}

	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidServerConfigs)
	}
	if s.RequestTimeout <= 0 || s.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (w Workers) validate() error {
	if w.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
