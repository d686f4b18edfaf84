// Package rfc3263 implements RFC 3263 ("Locating SIP Servers") target
// selection over DNS: given a SIP request URI and a supported-transport
// set, it yields an ordered, lazy sequence of dialable targets.
package rfc3263

import (
	"net/netip"

	"github.com/resolvesip/rfc3263dns/target"
	"github.com/resolvesip/rfc3263dns/transport"
)

// Target is the terminal (ip, port, transport, ttl) tuple the pipeline
// yields.
type Target = target.Target

// NewTarget builds a Target with [target.DefaultTTL].
func NewTarget(ip netip.Addr, port uint16, t transport.Transport) Target {
	return target.New(ip, port, t)
}

// NewTargetWithTTL builds a Target with an explicit TTL.
func NewTargetWithTTL(ip netip.Addr, port uint16, t transport.Transport, ttl uint32) Target {
	return target.NewWithTTL(ip, port, t, ttl)
}
