// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault application runtime.
//
// It opens the configured storage, wires the vault services on top of it and
// runs the interactive terminal UI until the user quits.
package client
