// Package config loads keeper-reveal configuration.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetStructuredConfig] validates everything the server needs;
// [GetClientConfig] validates only the terminal client settings.
package config
