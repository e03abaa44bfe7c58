// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// tls-ca-exporter is a command-line tool that retrieves the certificate
// chain an HTTPS server presents during the TLS handshake, saves every
// certificate as a PEM file, and generates a guide for installing the CA
// certificates in a client trust store.
//
// The handshake deliberately skips certificate verification so chains a
// normal client would reject (private CAs, self-signed roots, corporate
// middleboxes) can still be inspected. The tool is a one-shot local
// diagnostic; it never modifies any trust store itself.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-ca-exporter/cmd/tls-ca-exporter@latest
//
// # Usage
//
//	tls-ca-exporter URL [FLAGS]
//
// # Flags
//
//	-o, --output-dir  Output directory (default from config, or "certificates")
//	-t, --timeout     TCP connect and TLS handshake bound (default from config, or 10s)
//	    --config      Config file (default $TLS_CA_EXPORTER_CONFIG_FILE)
//
// # Examples
//
// Export the CA certificates of an internal server:
//
//	tls-ca-exporter https://internal.example.com
//
// Use a non-standard port and a custom output directory:
//
//	tls-ca-exporter https://internal.example.com:8443 -o /tmp/internal-ca
//
// A three-certificate chain [leaf, intermediate, root] produces
// leaf_certificate.pem, ca_certificate_0.pem, ca_certificate_1.pem, and
// INSTALL_GUIDE.md listing the two CA files for installation.
//
// # Exit status
//
// 0 on success; 1 on any input, connection, handshake, or write failure,
// with a message naming the failing stage; 130 when interrupted.
package main
