// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the deed keeper server process.
//
// It wires storages, the deed extractor, services, handlers, the HTTP server
// and background workers into a single lifecycle.
package app
