// Package server runs the reveal server: the HTTP listener and the background
// workers share one lifecycle, started together and stopped together on a
// termination signal.
package server
