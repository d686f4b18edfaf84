package records

import (
	"cmp"
	"slices"

	"github.com/resolvesip/rfc3263dns/transport"
)

// SrvEntry is a single SRV resource record (RFC 2782).
type SrvEntry struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

// totalWeightKey computes a deterministic ordering key in place of RFC
// 2782's randomized weighted pick: key = (10_000 - Priority) + Weight,
// higher sorts first. Lower Priority numbers are preferred in RFC 2782,
// hence the inversion.
func (e SrvEntry) totalWeightKey() int {
	return (10_000 - int(e.Priority)) + int(e.Weight)
}

// SrvRecord is the owning container for an SRV RRset.
type SrvRecord struct {
	Domain  transport.SrvDomain
	TTL     uint32
	Entries []SrvEntry
	// AdditionalHosts holds A/AAAA records observed in the DNS ADDITIONAL
	// section, keyed by target hostname — the glue short-circuit that lets
	// a recursive client skip a follow-up A/AAAA query entirely.
	AdditionalHosts map[string]*AddrRecord
}

// Sorted returns entries ordered by descending total-weight key, ties
// broken by input order (a stable sort).
func (r *SrvRecord) Sorted() []SrvEntry {
	if r == nil {
		return nil
	}
	out := slices.Clone(r.Entries)
	slices.SortStableFunc(out, func(a, b SrvEntry) int {
		return cmp.Compare(b.totalWeightKey(), a.totalWeightKey())
	})
	return out
}

// AdditionalHost returns the glue A/AAAA record for target, if the DNS
// client populated one.
func (r *SrvRecord) AdditionalHost(target string) (*AddrRecord, bool) {
	if r == nil || r.AdditionalHosts == nil {
		return nil, false
	}
	a, ok := r.AdditionalHosts[target]
	return a, ok
}

// HasCompleteAdditionals reports whether every entry in the record has a
// corresponding glue A/AAAA record: when true, the resolver can satisfy
// every entry from ADDITIONAL-section glue alone and never needs to issue
// a follow-up A/AAAA query.
func (r *SrvRecord) HasCompleteAdditionals() bool {
	if r == nil {
		return false
	}
	for _, e := range r.Entries {
		if _, ok := r.AdditionalHost(e.Target); !ok {
			return false
		}
	}
	return true
}

// AdditionalCoverage reports how many of the record's entries are covered
// by ADDITIONAL-section glue, as (covered, total). Used for diagnostics
// and by tests asserting partial-glue behavior.
func (r *SrvRecord) AdditionalCoverage() (covered, total int) {
	if r == nil {
		return 0, 0
	}
	total = len(r.Entries)
	for _, e := range r.Entries {
		if _, ok := r.AdditionalHost(e.Target); ok {
			covered++
		}
	}
	return covered, total
}
