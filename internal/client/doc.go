// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Secret Panel Authors

// Package client implements the interactive panel application runtime.
//
// It wires the store adapter, the list controller, background refresh, and
// the terminal UI into a single process lifecycle.
package client
