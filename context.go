package rfc3263

import (
	"net/netip"
	"slices"

	"github.com/resolvesip/rfc3263dns/dnsclient"
	"github.com/resolvesip/rfc3263dns/resolve"
	"github.com/resolvesip/rfc3263dns/sipuri"
	"github.com/resolvesip/rfc3263dns/transport"
)

// Context interprets a request URI against a supported-transport set and
// decides which resolution branch applies.
type Context struct {
	client dnsclient.Client

	secure    bool
	host      string
	port      uint16             // 0 means "not specified"
	transport transport.Transport // "" means "not specified"

	supported []transport.Transport
}

// NewContext builds a Context from a parsed URI, a DNS client, and the
// caller's supported-transport set. It fails with [ErrInvalidURI] when the
// URI has no host, or when the URI names a transport outside supported.
func NewContext(uri sipuri.URI, client dnsclient.Client, supported []transport.Transport) (*Context, error) {
	if uri.Host == "" {
		return nil, ErrInvalidURI
	}
	if uri.Transport != "" && !slices.ContainsFunc(supported, uri.Transport.Equal) {
		return nil, ErrInvalidURI
	}

	return &Context{
		client:    client,
		secure:    uri.Secure || transport.IsSecured(uri.Transport),
		host:      uri.Host,
		port:      uri.Port,
		transport: uri.Transport,
		supported: supported,
	}, nil
}

// Secure reports whether the connection must be TLS-protected: true iff
// the scheme was "sips" or the explicit transport is TLS-family.
func (c *Context) Secure() bool { return c.secure }

// Host is the URI's host component (domain name or IP literal).
func (c *Context) Host() string { return c.host }

// Port is the URI's explicit port, or 0 if unspecified.
func (c *Context) Port() uint16 { return c.port }

// Transport is the URI's explicit transport, or "" if unspecified.
func (c *Context) Transport() transport.Transport { return c.transport }

// AvailableProtocols returns the subset of the supported-transport set
// whose security (TLS-family or not) matches c.Secure().
func (c *Context) AvailableProtocols() []transport.Transport {
	out := make([]transport.Transport, 0, len(c.supported))
	for _, t := range c.supported {
		if transport.IsSecured(t) == c.secure {
			out = append(out, t)
		}
	}
	return out
}

// AvailableTransports returns the transport set NAPTR service matching
// and SRV fallback construction may choose among — the security-narrowed
// supported set.
func (c *Context) AvailableTransports() []transport.Transport {
	return c.AvailableProtocols()
}

func (c *Context) defaultTransport() transport.Transport {
	return transport.DefaultTransport(c.secure)
}

func (c *Context) defaultPort() uint16 {
	return transport.DefaultPort(c.defaultTransport())
}

// Resolvable builds the root [resolve.Resolvable] for this Context,
// applying a decision table over host/port/transport (first matching row
// wins).
func (c *Context) Resolvable() resolve.Resolvable {
	if ip, err := netip.ParseAddr(c.host); err == nil {
		tr := c.transport
		if tr == "" {
			tr = c.defaultTransport()
		}
		port := c.port
		if port == 0 {
			port = transport.DefaultPort(tr)
		}
		return resolve.NewIP(ip, port, tr)
	}

	switch {
	case c.transport != "" && c.port != 0:
		return resolve.NewAddrRecord(c.client, c.host, c.port, c.transport)
	case c.transport != "":
		return resolve.NewSrvRecord(c.client, transport.NewSrvDomain(c.transport, c.host))
	case c.port != 0:
		return resolve.NewAddrRecord(c.client, c.host, c.port, c.defaultTransport())
	default:
		return resolve.NewJustDomainLookup(c.client, c.host, c.AvailableTransports(), c.defaultTransport(), c.defaultPort())
	}
}
