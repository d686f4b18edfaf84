// Package transport defines the transport protocols RFC 3263 target
// resolution knows about, their SIP/SIPS defaults, and the SrvDomain triple
// used to build SRV query names.
package transport

import "strings"

// Transport identifies a SIP transport protocol.
type Transport string

// The seven transports this package enumerates. TLSSCTP renders as
// "TLS-SCTP".
const (
	UDP     Transport = "UDP"
	TCP     Transport = "TCP"
	TLS     Transport = "TLS"
	WS      Transport = "WS"
	WSS     Transport = "WSS"
	SCTP    Transport = "SCTP"
	TLSSCTP Transport = "TLS-SCTP"
)

// All returns every transport this package knows about, in the order they
// are listed in.
func All() []Transport {
	return []Transport{UDP, TCP, TLS, WS, WSS, SCTP, TLSSCTP}
}

// ToUpper returns t normalized to upper-case, for use in switch statements
// that must be tolerant of caller-supplied casing.
func (t Transport) ToUpper() Transport { return Transport(strings.ToUpper(string(t))) }

// String implements fmt.Stringer.
func (t Transport) String() string { return string(t) }

// Equal reports whether t and other name the same transport, ignoring case.
func (t Transport) Equal(other Transport) bool {
	return strings.EqualFold(string(t), string(other))
}

// DefaultPort returns the SIP default port for t: 5061 for TLS-family
// transports, 5060 for everything else.
func DefaultPort(t Transport) uint16 {
	if IsSecured(t) {
		return 5061
	}
	return 5060
}

// Network returns the network kind ("udp" or "tcp") used to dial/listen
// for t.
func Network(t Transport) string {
	switch t.ToUpper() {
	case UDP:
		return "udp"
	case TCP, TLS, WS, WSS, SCTP, TLSSCTP:
		return "tcp"
	default:
		return ""
	}
}

// IsReliable reports whether t is a stream-oriented transport.
func IsReliable(t Transport) bool {
	switch t.ToUpper() {
	case TCP, TLS, WS, WSS, SCTP, TLSSCTP:
		return true
	default:
		return false
	}
}

// IsSecured reports whether t implies a TLS-protected connection. Only
// secured transports may be paired with a Context whose Secure flag is
// true.
func IsSecured(t Transport) bool {
	switch t.ToUpper() {
	case TLS, WSS, TLSSCTP:
		return true
	default:
		return false
	}
}

// DefaultTransport returns the RFC 3263 §4.2 default transport for the
// given security requirement: TLS when secure, UDP otherwise.
func DefaultTransport(secure bool) Transport {
	if secure {
		return TLS
	}
	return UDP
}

// Decompose splits t into the (secure, base protocol) pair used to build a
// SrvDomain: TLS decomposes to (true, TCP), WSS to (true, WS), TLS-SCTP to
// (true, SCTP); every other transport decomposes to (false, t). The
// mapping is total over every value this package defines.
func Decompose(t Transport) (secure bool, protocol Transport) {
	switch t.ToUpper() {
	case TLS:
		return true, TCP
	case WSS:
		return true, WS
	case TLSSCTP:
		return true, SCTP
	default:
		return false, t.ToUpper()
	}
}

// protoToken is the lower-case IANA token used in SRV query names
// (_sip._<proto>.<domain>). SIP SRV records name the underlying network
// protocol, never "tls"/"wss"/"tls-sctp" directly — TLS rides over a TCP
// SRV name, WSS over a WS one.
func protoToken(protocol Transport) string {
	switch protocol.ToUpper() {
	case UDP:
		return "udp"
	case TCP, TLS:
		return "tcp"
	case WS, WSS:
		return "ws"
	case SCTP, TLSSCTP:
		return "sctp"
	default:
		return strings.ToLower(string(protocol))
	}
}

// SrvDomain is the (secure, protocol, domain) triple identifying an SRV
// RRset. Protocol is always a base (non-TLS-flavored)
// transport; pair it with Secure to recover the full transport via
// [SrvDomain.Transport].
type SrvDomain struct {
	Secure   bool
	Protocol Transport
	Domain   string
}

// NewSrvDomain builds the SrvDomain that names t's SRV RRset under domain.
func NewSrvDomain(t Transport, domain string) SrvDomain {
	secure, protocol := Decompose(t)
	return SrvDomain{Secure: secure, Protocol: protocol, Domain: domain}
}

// Transport returns the full transport this SrvDomain denotes, inverting
// [Decompose].
func (d SrvDomain) Transport() Transport {
	_, protocol := Decompose(d.Protocol) // normalize caller-supplied casing/flavor
	if !d.Secure {
		return protocol
	}
	switch protocol {
	case WS:
		return WSS
	case SCTP:
		return TLSSCTP
	default:
		return TLS
	}
}

// String renders the SRV query name "_<service>._<proto>.<domain>", where
// <service> is "sips" when Secure, else "sip".
func (d SrvDomain) String() string {
	service := "sip"
	if d.Secure {
		service = "sips"
	}
	return "_" + service + "._" + protoToken(d.Protocol) + "." + strings.TrimSuffix(d.Domain, ".")
}

// ParseSrvDomain recovers the (secure, protocol, domain) triple from a
// wire SRV owner name such as "_sip._udp.example.com." or
// "_sips._tcp.example.com" — the form a NAPTR record's replacement field
// already takes for an "S"-flagged entry, and the form an SRV RRset's
// owner name takes on the wire.
func ParseSrvDomain(name string) (SrvDomain, bool) {
	name = strings.TrimSuffix(name, ".")
	labels := strings.SplitN(name, ".", 3)
	if len(labels) < 3 {
		return SrvDomain{}, false
	}
	service, proto, domain := labels[0], labels[1], labels[2]
	if len(service) == 0 || service[0] != '_' || len(proto) == 0 || proto[0] != '_' {
		return SrvDomain{}, false
	}

	var secure bool
	switch strings.ToLower(service[1:]) {
	case "sip":
		secure = false
	case "sips":
		secure = true
	default:
		return SrvDomain{}, false
	}

	var base Transport
	switch strings.ToLower(proto[1:]) {
	case "udp":
		base = UDP
	case "tcp":
		base = TCP
	case "ws":
		base = WS
	case "sctp":
		base = SCTP
	default:
		return SrvDomain{}, false
	}

	return SrvDomain{Secure: secure, Protocol: base, Domain: domain}, true
}
