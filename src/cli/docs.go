// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the command-line interface for the TLS CA exporter.
// It wires URL parsing, chain retrieval, classification, file output, and
// guide generation into a single cobra command.
package cli
