// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package guide renders the markdown installation guide for a classified
// certificate chain. The guide names the source server, summarizes the chain,
// tabulates every certificate with its output file, and walks through
// installing the CA certificates in the client trust store, including
// command-line equivalents.
//
// Rendering is pure data-to-text over an embedded template, so it is testable
// without any network activity.
package guide
