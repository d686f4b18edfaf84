package records

import (
	"cmp"
	"slices"
	"strings"

	"github.com/resolvesip/rfc3263dns/transport"
)

// NaptrFlags is the NAPTR flags field (RFC 3403 §4.1). Only [NaptrFlagS] is
// ever honored by the resolution core; the rest are recognized so callers
// and tests can observe what a wire response actually said, even though
// only the S branch is ever acted on.
type NaptrFlags struct {
	kind  naptrFlagKind
	other []byte
}

type naptrFlagKind uint8

const (
	naptrFlagOther naptrFlagKind = iota
	naptrFlagS
	naptrFlagA
	naptrFlagU
	naptrFlagP
)

var (
	// NaptrFlagS selects the SRV-lookup branch — the only one the core
	// resolves.
	NaptrFlagS = NaptrFlags{kind: naptrFlagS}
	// NaptrFlagA selects the direct-A/AAAA-lookup branch. Recognized but
	// deferred.
	NaptrFlagA = NaptrFlags{kind: naptrFlagA}
	// NaptrFlagU is the terminal, regexp-rewrite branch. Recognized but
	// deferred.
	NaptrFlagU = NaptrFlags{kind: naptrFlagU}
	// NaptrFlagP is a protocol-specific flag outside RFC 3403's base set.
	NaptrFlagP = NaptrFlags{kind: naptrFlagP}
)

// ParseNaptrFlags interprets a wire NAPTR flags field.
func ParseNaptrFlags(raw []byte) NaptrFlags {
	switch {
	case len(raw) == 1 && (raw[0] == 'S' || raw[0] == 's'):
		return NaptrFlagS
	case len(raw) == 1 && (raw[0] == 'A' || raw[0] == 'a'):
		return NaptrFlagA
	case len(raw) == 1 && (raw[0] == 'U' || raw[0] == 'u'):
		return NaptrFlagU
	case len(raw) == 1 && (raw[0] == 'P' || raw[0] == 'p'):
		return NaptrFlagP
	default:
		cp := make([]byte, len(raw))
		copy(cp, raw)
		return NaptrFlags{kind: naptrFlagOther, other: cp}
	}
}

// IsS reports whether these are the "S" flags the core resolves.
func (f NaptrFlags) IsS() bool { return f.kind == naptrFlagS }

// String renders the flags as they'd appear on the wire.
func (f NaptrFlags) String() string {
	switch f.kind {
	case naptrFlagS:
		return "S"
	case naptrFlagA:
		return "A"
	case naptrFlagU:
		return "U"
	case naptrFlagP:
		return "P"
	default:
		return string(f.other)
	}
}

// NaptrServices is the NAPTR services field for SIP, e.g. "SIP+D2T".
type NaptrServices string

// The eight SIP/SIPS NAPTR service tokens RFC 3263 §4.1 defines.
const (
	SipD2t  NaptrServices = "SIP+D2T"
	SipD2u  NaptrServices = "SIP+D2U"
	SipD2s  NaptrServices = "SIP+D2S"
	SipD2w  NaptrServices = "SIP+D2W"
	SipsD2t NaptrServices = "SIPS+D2T"
	SipsD2u NaptrServices = "SIPS+D2U"
	SipsD2s NaptrServices = "SIPS+D2S"
	SipsD2w NaptrServices = "SIPS+D2W"
)

// ParseNaptrServices normalizes a wire services string to one of the known
// constants, or returns it unchanged when it isn't one of the eight
// SIP/SIPS tokens.
func ParseNaptrServices(raw string) NaptrServices {
	switch strings.ToUpper(raw) {
	case string(SipD2t):
		return SipD2t
	case string(SipD2u):
		return SipD2u
	case string(SipD2s):
		return SipD2s
	case string(SipD2w):
		return SipD2w
	case string(SipsD2t):
		return SipsD2t
	case string(SipsD2u):
		return SipsD2u
	case string(SipsD2s):
		return SipsD2s
	case string(SipsD2w):
		return SipsD2w
	default:
		return NaptrServices(raw)
	}
}

// Transport returns the single transport this services token carries, and
// whether it maps to one at all. SIPS+D2U has no corresponding entry in
// [transport.Transport] (there is no secured-datagram transport in this
// model) and so reports ok=false; every other recognized token maps to
// exactly one transport and reports ok=true.
func (s NaptrServices) Transport() (t transport.Transport, ok bool) {
	switch s {
	case SipD2t:
		return transport.TCP, true
	case SipD2u:
		return transport.UDP, true
	case SipD2s:
		return transport.SCTP, true
	case SipD2w:
		return transport.WS, true
	case SipsD2t:
		return transport.TLS, true
	case SipsD2s:
		return transport.TLSSCTP, true
	case SipsD2w:
		return transport.WSS, true
	case SipsD2u:
		return "", false
	default:
		return "", false
	}
}

// NaptrEntry is a single NAPTR resource record.
type NaptrEntry struct {
	Order       uint16
	Preference  uint16
	Flags       NaptrFlags
	Services    NaptrServices
	Regexp      []byte
	Replacement string
}

// SrvDomain parses this entry's Replacement — already a full SRV owner
// name such as "_sips._tcp.example.com" for an "S"-flagged entry — into
// the SrvDomain triple it names. ok is false when Replacement isn't a
// well-formed SRV owner name.
func (e NaptrEntry) SrvDomain() (d transport.SrvDomain, ok bool) {
	return transport.ParseSrvDomain(e.Replacement)
}

// NaptrRecord is the owning container for a NAPTR RRset.
type NaptrRecord struct {
	Domain  string
	TTL     uint32
	Entries []NaptrEntry
	// AdditionalSRVs holds SRV records observed in the DNS ADDITIONAL
	// section, keyed by the SrvDomain they answer. Populated only by a
	// recursive-capable DNS client.
	AdditionalSRVs map[transport.SrvDomain]*SrvRecord
}

// SortEntries sorts entries by ascending Order, then ascending Preference,
// ties broken by input order (a stable sort).
func SortEntries(entries []NaptrEntry) []NaptrEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b NaptrEntry) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.Preference, b.Preference)
	})
	return out
}

// AdditionalSRV returns the glue SRV record for d, if the DNS client
// populated one.
func (r *NaptrRecord) AdditionalSRV(d transport.SrvDomain) (*SrvRecord, bool) {
	if r == nil || r.AdditionalSRVs == nil {
		return nil, false
	}
	srv, ok := r.AdditionalSRVs[d]
	return srv, ok
}

// FilterByTransport returns, in NAPTR order, the entries that carry the
// "S" flag and whose service transport is present in available. This is
// the filter [resolve.NaptrRecord] applies before building SRV children.
func (r *NaptrRecord) FilterByTransport(available []transport.Transport) []NaptrEntry {
	if r == nil {
		return nil
	}
	out := make([]NaptrEntry, 0, len(r.Entries))
	for _, e := range SortEntries(r.Entries) {
		if !e.Flags.IsS() {
			continue
		}
		t, ok := e.Services.Transport()
		if !ok || !slices.ContainsFunc(available, t.Equal) {
			continue
		}
		out = append(out, e)
	}
	return out
}
