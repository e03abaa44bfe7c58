// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package export

import "errors"

// Stage sentinels for the export pipeline. Every failure wraps exactly one of
// these, so callers can tell a bad URL from an unreachable host from a refused
// handshake from a full disk with [errors.Is]. None of them is retried; the
// run aborts at the failing stage.
var (
	// ErrInput indicates a malformed target URL. It is reported before any
	// network or filesystem activity.
	ErrInput = errors.New("export: invalid input")

	// ErrConnection indicates the TCP connection to the target could not be
	// established (DNS failure, refused, timeout).
	ErrConnection = errors.New("export: connection failed")

	// ErrHandshake indicates the TLS handshake could not complete, or the
	// peer presented no certificates.
	ErrHandshake = errors.New("export: TLS handshake failed")

	// ErrWrite indicates an output artifact could not be created or failed
	// round-trip verification after writing.
	ErrWrite = errors.New("export: write failed")
)
