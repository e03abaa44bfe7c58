// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package export

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"strconv"
	"time"
)

// DefaultTimeout bounds the TCP dial and the TLS handshake. The tool is
// interactive, so an unreachable host must fail within this bound instead
// of hanging.
const DefaultTimeout = 10 * time.Second

// FetchPeerChain establishes a TLS connection to host:port and returns the
// certificate chain exactly as the peer transmitted it during the handshake,
// leaf first.
//
// Certificate verification is deliberately disabled: the whole point of this
// tool is to inspect chains a normal client would reject (self-signed roots,
// corporate middleboxes, private CAs). This relaxation is scoped to a single
// one-shot diagnostic connection and must not be reused in any long-lived or
// security-sensitive connection path.
//
// The chain is reported as served. Missing intermediates are not fetched via
// AIA, and no system roots are appended.
//
// Failures are staged: a TCP-level failure wraps [ErrConnection], while a
// failure during the handshake itself (or an empty peer certificate list)
// wraps [ErrHandshake]. The connection is always closed before returning.
func FetchPeerChain(ctx context.Context, host string, port int, timeout time.Duration) ([]*x509.Certificate, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))

	dialer := &net.Dialer{Timeout: timeout}
	rawConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConnection, addr, err)
	}

	conn := tls.Client(rawConn, &tls.Config{
		ServerName: host,
		// Accept whatever chain the peer presents; see FetchPeerChain doc.
		InsecureSkipVerify: true,
	})
	defer conn.Close() // also closes rawConn

	hsCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := conn.HandshakeContext(hsCtx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrHandshake, addr, err)
	}

	peerCerts := conn.ConnectionState().PeerCertificates
	if len(peerCerts) == 0 {
		return nil, fmt.Errorf("%w: %s: no certificates received from server", ErrHandshake, addr)
	}

	return peerCerts, nil
}
