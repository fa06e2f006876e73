// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal watch client runtime.
//
// It checks that the reveal server answers and then runs the watch board
// until the user quits or the process receives a termination signal.
package client
