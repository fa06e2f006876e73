package config

import "time"

// Defaults for the reveal protocol. The system key default only obscures
// passwords from casual readers of the store.
const (
	DefaultSystemKey               = "SYSTEM_KEY_2024"
	DefaultMaxKeepers              = 10
	DefaultTeamBudget              = 300
	DefaultMinPasswordLength       = 4
	DefaultCountdownDuration       = 10 * time.Second
	DefaultCountdownStaleThreshold = 10 * time.Second
	DefaultAutoStartWindow         = 24 * time.Hour
	DefaultTickInterval            = time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SystemKey:               DefaultSystemKey,
			TokenIssuer:             "keeper-reveal",
			TokenDuration:           12 * time.Hour,
			MaxKeepers:              DefaultMaxKeepers,
			TeamBudget:              DefaultTeamBudget,
			MinPasswordLength:       DefaultMinPasswordLength,
			CountdownDuration:       DefaultCountdownDuration,
			CountdownStaleThreshold: DefaultCountdownStaleThreshold,
			AutoStartWindow:         DefaultAutoStartWindow,
			Version:                 "dev",
			LogLevel:                "debug",
		},
		Storage: Storage{
			Driver: DriverMemory,
			DB:     DB{Timeout: 5 * time.Second},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Broker: Broker{
			Subject: "keeper-reveal.events",
		},
		Workers: Workers{
			TickInterval: DefaultTickInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
			LogFile:        "keeper-client.log",
		},
	}
}
