package resolve

import (
	"context"

	"github.com/resolvesip/rfc3263dns/dnsclient"
	"github.com/resolvesip/rfc3263dns/records"
	"github.com/resolvesip/rfc3263dns/target"
	"github.com/resolvesip/rfc3263dns/transport"
)

// SrvRecord resolves an SRV RRset into an ordered vector of child
// A/AAAA resolvables, one per entry.
type SrvRecord struct {
	client dnsclient.Client
	domain transport.SrvDomain

	state    State
	children *Vector
}

var _ Resolvable = (*SrvRecord)(nil)

// NewSrvRecord builds an SrvRecord that queries client on first use.
func NewSrvRecord(client dnsclient.Client, domain transport.SrvDomain) *SrvRecord {
	return &SrvRecord{client: client, domain: domain, state: Unset}
}

// NewSrvRecordFromGlue builds an SrvRecord already initialized from a
// pre-fetched record (NAPTR ADDITIONAL-section glue). client is still
// needed for any entry whose target isn't itself covered by glue in rec.
func NewSrvRecordFromGlue(client dnsclient.Client, rec *records.SrvRecord) *SrvRecord {
	s := &SrvRecord{client: client, domain: rec.Domain}
	s.build(rec)
	return s
}

func (s *SrvRecord) build(rec *records.SrvRecord) {
	if rec == nil || len(rec.Entries) == 0 {
		s.state = Empty
		return
	}
	tr := rec.Domain.Transport()
	children := make([]Resolvable, 0, len(rec.Entries))
	for _, e := range rec.Sorted() {
		if glue, ok := rec.AdditionalHost(e.Target); ok {
			children = append(children, NewAddrRecordFromGlue(glue, e.Port, tr))
			continue
		}
		children = append(children, NewAddrRecord(s.client, e.Target, e.Port, tr))
	}
	s.children = NewVector(children)
	s.state = NonEmpty
}

// State implements Resolvable.
func (s *SrvRecord) State() State { return s.state }

// ResolveNext implements Resolvable.
func (s *SrvRecord) ResolveNext(ctx context.Context) (target.Target, bool, error) {
	if err := ctx.Err(); err != nil {
		return target.Target{}, false, err
	}

	if s.state == Unset {
		rec, found, err := s.client.LookupSRV(ctx, s.domain)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return target.Target{}, false, ctxErr
			}
			s.state = Empty
			return target.Target{}, false, nil
		}
		if !found {
			s.state = Empty
			return target.Target{}, false, nil
		}
		s.build(rec)
	}

	if s.children == nil {
		s.state = Empty
		return target.Target{}, false, nil
	}
	t, ok, err := s.children.ResolveNext(ctx)
	if !ok {
		s.state = Empty
	}
	return t, ok, err
}
