// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package export

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultPort is the port used when the target URL does not specify one.
const DefaultPort = 443

// ParseTarget extracts the hostname and port from an HTTPS URL.
//
// The URL must carry an https scheme and a non-empty host. The port defaults
// to [DefaultPort] when the URL does not specify one. Any violation is
// reported under [ErrInput] before the caller performs I/O.
func ParseTarget(rawURL string) (host string, port int, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", 0, fmt.Errorf("%w: parse URL %q: %v", ErrInput, rawURL, err)
	}

	if !strings.EqualFold(u.Scheme, "https") {
		return "", 0, fmt.Errorf("%w: URL %q must use the https scheme", ErrInput, rawURL)
	}

	host = u.Hostname()
	if host == "" {
		return "", 0, fmt.Errorf("%w: URL %q has no hostname", ErrInput, rawURL)
	}

	port = DefaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return "", 0, fmt.Errorf("%w: URL %q has invalid port %q", ErrInput, rawURL, p)
		}
	}

	return host, port, nil
}
