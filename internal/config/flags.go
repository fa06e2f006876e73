package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver storage driver (postgres, sqlite, file, memory)
//	-file snapshot file for the file driver
//	-c/-config json file path with configs
//	-system-key key used to encode team passwords
//	-commissioner-password commissioner password
//	-token-sign-key token signing key
//	-countdown countdown duration (e.g. "10s")
//	-stale-threshold countdown staleness threshold
//	-auto-start-window how long after the deadline the countdown still starts
//	-nats NATS server URL
//	-server server base URL used by the terminal client
//	-log-file terminal client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("keeper-reveal", flag.ContinueOnError)

	var serverAddress NetAddress
	var (
		databaseDSN, driver, filePath, jsonConfigPath string
		systemKey, commissionerPassword, tokenSignKey string
		natsURL, adapterAddress, logFile              string
		countdown, staleThreshold, autoStartWindow    time.Duration
		requestTimeout                                time.Duration
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Storage driver")
	fs.StringVar(&filePath, "file", "", "Snapshot file for the file driver")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&systemKey, "system-key", "", "System key")
	fs.StringVar(&commissionerPassword, "commissioner-password", "", "Commissioner password")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.DurationVar(&countdown, "countdown", 0, "Countdown duration (e.g. 10s)")
	fs.DurationVar(&staleThreshold, "stale-threshold", 0, "Countdown staleness threshold")
	fs.DurationVar(&autoStartWindow, "auto-start-window", 0, "Auto-start window after the deadline")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.StringVar(&natsURL, "nats", "", "NATS server URL")
	fs.StringVar(&adapterAddress, "server", "", "Server base URL for the terminal client")
	fs.StringVar(&logFile, "log-file", "", "Terminal client log file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SystemKey:               systemKey,
			CommissionerPassword:    commissionerPassword,
			TokenSignKey:            tokenSignKey,
			CountdownDuration:       countdown,
			CountdownStaleThreshold: staleThreshold,
			AutoStartWindow:         autoStartWindow,
		},
		Storage: Storage{
			Driver: driver,
			DB:     DB{DSN: databaseDSN},
			File:   File{Path: filePath},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Broker: Broker{NATSURL: natsURL},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
			LogFile:     logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
