// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires session hydration, the terminal UI and the background health
// probe into a single process lifecycle.
package client
