// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package export implements retrieval and classification of [X.509] certificate
// chains served by remote TLS endpoints. It provides capabilities to:
//   - Parse an HTTPS URL into a dialable host and port.
//   - Fetch the peer chain exactly as transmitted during the handshake,
//     without verifying it, so unverifiable chains can still be inspected.
//   - Classify each certificate as leaf or Certificate Authority by its
//     position in the chain and assign stable output filenames.
//   - Write every certificate of the chain to its own PEM file.
//
// Classification is positional: index 0 is the leaf, everything after it a CA
// candidate. The chain is reported as served; it is never re-sorted, completed
// via AIA fetching, or validated for issuance order.
//
// [X.509]: https://grokipedia.com/page/X.509
package export
