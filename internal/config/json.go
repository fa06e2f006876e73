package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SystemKey                string   `json:"system_key"`
		CommissionerPassword     string   `json:"commissioner_password"`
		CommissionerPasswordHash string   `json:"commissioner_password_hash"`
		TokenSignKey             string   `json:"token_sign_key"`
		TokenIssuer              string   `json:"token_issuer"`
		TokenDuration            Duration `json:"token_duration"`
		MaxKeepers               int      `json:"max_keepers"`
		MinKeepers               int      `json:"min_keepers"`
		TeamBudget               int      `json:"team_budget"`
		MinPasswordLength        int      `json:"min_password_length"`
		CountdownDuration        Duration `json:"countdown_duration"`
		CountdownStaleThreshold  Duration `json:"countdown_stale_threshold"`
		AutoStartWindow          Duration `json:"auto_start_window"`
		Version                  string   `json:"version"`
		LogLevel                 string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN     string   `json:"dsn"`
			Timeout Duration `json:"timeout"`
		} `json:"db,omitempty"`
		File struct {
			Path string `json:"path"`
		} `json:"file,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Broker struct {
		NATSURL string `json:"nats_url"`
		Subject string `json:"subject"`
	} `json:"broker,omitempty"`

	Workers struct {
		TickInterval Duration `json:"tick_interval"`
	} `json:"workers,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		LogFile        string   `json:"log_file"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SystemKey:                j.App.SystemKey,
			CommissionerPassword:     j.App.CommissionerPassword,
			CommissionerPasswordHash: j.App.CommissionerPasswordHash,
			TokenSignKey:             j.App.TokenSignKey,
			TokenIssuer:              j.App.TokenIssuer,
			TokenDuration:            time.Duration(j.App.TokenDuration),
			MaxKeepers:               j.App.MaxKeepers,
			MinKeepers:               j.App.MinKeepers,
			TeamBudget:               j.App.TeamBudget,
			MinPasswordLength:        j.App.MinPasswordLength,
			CountdownDuration:        time.Duration(j.App.CountdownDuration),
			CountdownStaleThreshold:  time.Duration(j.App.CountdownStaleThreshold),
			AutoStartWindow:          time.Duration(j.App.AutoStartWindow),
			Version:                  j.App.Version,
			LogLevel:                 j.App.LogLevel,
		},
		Storage: Storage{
			Driver: j.Storage.Driver,
			DB: DB{
				DSN:     j.Storage.DB.DSN,
				Timeout: time.Duration(j.Storage.DB.Timeout),
			},
			File: File{Path: j.Storage.File.Path},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
			AllowedOrigins:  j.Server.AllowedOrigins,
		},
		Broker: Broker{
			NATSURL: j.Broker.NATSURL,
			Subject: j.Broker.Subject,
		},
		Workers: Workers{
			TickInterval: time.Duration(j.Workers.TickInterval),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			LogFile:        j.Adapter.LogFile,
		},
	}, nil
}

// Duration is a time.Duration that unmarshals from "10s"-style strings or
// from a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
