// Package sipuri parses the narrow slice of RFC 3261 SIP/SIPS URI syntax
// that target resolution needs: scheme, host (including a bracketed IPv6
// literal), an optional port, and an optional "transport" URI parameter.
//
// This is intentionally not a general SIP grammar engine — RFC 3261's full
// URI grammar (user-info, other params, headers) is out of scope for
// target resolution and is the one component in this module built on the
// standard library rather than a third-party parser, justified in
// DESIGN.md.
package sipuri

import (
	"net"
	"strconv"
	"strings"

	"github.com/resolvesip/rfc3263dns/internal/errs"
	"github.com/resolvesip/rfc3263dns/transport"
)

// ErrInvalidURI reports a URI this package cannot parse into a (scheme,
// host, port, transport) tuple.
const ErrInvalidURI errs.Error = "sipuri: invalid SIP URI"

// URI is the parsed subset of a SIP/SIPS URI that target resolution acts
// on.
type URI struct {
	Secure bool // true for a "sips" scheme
	Host   string
	// Port is the explicit port, if any. Zero means "not specified".
	Port uint16
	// Transport is the explicit ";transport=" parameter, if any. The zero
	// value means "not specified".
	Transport transport.Transport
}

// Parse parses raw into a URI. Only the "sip" and "sips" schemes are
// accepted.
func Parse(raw string) (URI, error) {
	scheme, rest, ok := strings.Cut(raw, ":")
	if !ok {
		return URI{}, ErrInvalidURI
	}
	var u URI
	switch strings.ToLower(scheme) {
	case "sip":
		u.Secure = false
	case "sips":
		u.Secure = true
	default:
		return URI{}, ErrInvalidURI
	}

	// Drop user-info ("alice@") if present; resolution never needs it.
	if _, after, ok := strings.Cut(rest, "@"); ok {
		rest = after
	}

	// Split off URI parameters (";transport=tcp;..."), then headers
	// ("?...") which resolution never needs.
	hostport := rest
	var params string
	if i := strings.IndexByte(hostport, '?'); i >= 0 {
		hostport = hostport[:i]
	}
	if i := strings.IndexByte(hostport, ';'); i >= 0 {
		params = hostport[i+1:]
		hostport = hostport[:i]
	}
	if hostport == "" {
		return URI{}, ErrInvalidURI
	}

	host, port, err := splitHostPort(hostport)
	if err != nil {
		return URI{}, ErrInvalidURI
	}
	u.Host = host
	u.Port = port

	if params != "" {
		for _, p := range strings.Split(params, ";") {
			name, value, ok := strings.Cut(p, "=")
			if ok && strings.EqualFold(name, "transport") {
				u.Transport = transport.Transport(strings.ToUpper(value))
			}
		}
	}

	return u, nil
}

// splitHostPort parses "host", "host:port", or "[v6]:port", tolerating a
// bare bracketed IPv6 literal with no port.
func splitHostPort(hostport string) (host string, port uint16, err error) {
	if strings.HasPrefix(hostport, "[") {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			return "", 0, ErrInvalidURI
		}
		host = hostport[1:end]
		rest := hostport[end+1:]
		if rest == "" {
			return host, 0, nil
		}
		if !strings.HasPrefix(rest, ":") {
			return "", 0, ErrInvalidURI
		}
		p, err := strconv.ParseUint(rest[1:], 10, 16)
		if err != nil {
			return "", 0, ErrInvalidURI
		}
		return host, uint16(p), nil
	}

	if h, p, err := net.SplitHostPort(hostport); err == nil {
		port, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return "", 0, ErrInvalidURI
		}
		return h, uint16(port), nil
	}
	return hostport, 0, nil
}
