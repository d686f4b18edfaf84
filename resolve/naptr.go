package resolve

import (
	"context"

	"github.com/resolvesip/rfc3263dns/dnsclient"
	"github.com/resolvesip/rfc3263dns/target"
	"github.com/resolvesip/rfc3263dns/transport"
)

// NaptrRecord resolves a NAPTR RRset into an ordered vector of child SRV
// resolvables, one per surviving entry.
type NaptrRecord struct {
	client             dnsclient.Client
	domain             string
	availableTransports []transport.Transport

	state    State
	children *Vector
	// observedRecord reports whether the NAPTR lookup actually returned
	// any entries, as opposed to the RRset being absent. The just-domain
	// state machine needs this distinction to decide whether to fall back
	// to SRV.
	observedRecord bool
}

var _ Resolvable = (*NaptrRecord)(nil)

// NewNaptrRecord builds a NaptrRecord that queries client on first use,
// filtering entries to those whose transport is in availableTransports.
func NewNaptrRecord(client dnsclient.Client, domain string, availableTransports []transport.Transport) *NaptrRecord {
	return &NaptrRecord{client: client, domain: domain, availableTransports: availableTransports, state: Unset}
}

// ObservedRecord reports whether the underlying NAPTR RRset was present
// (regardless of whether any entry survived the transport filter). Valid
// only once State() is no longer Unset.
func (n *NaptrRecord) ObservedRecord() bool { return n.observedRecord }

// State implements Resolvable.
func (n *NaptrRecord) State() State { return n.state }

// ResolveNext implements Resolvable.
func (n *NaptrRecord) ResolveNext(ctx context.Context) (target.Target, bool, error) {
	if err := ctx.Err(); err != nil {
		return target.Target{}, false, err
	}

	if n.state == Unset {
		rec, found, err := n.client.LookupNAPTR(ctx, n.domain)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return target.Target{}, false, ctxErr
			}
			n.state = Empty
			return target.Target{}, false, nil
		}
		if !found {
			n.state = Empty
			return target.Target{}, false, nil
		}
		n.observedRecord = true

		entries := rec.FilterByTransport(n.availableTransports)
		if len(entries) == 0 {
			n.state = Empty
			return target.Target{}, false, nil
		}
		children := make([]Resolvable, 0, len(entries))
		for _, e := range entries {
			d, ok := e.SrvDomain()
			if !ok {
				continue
			}
			if glue, ok := rec.AdditionalSRV(d); ok {
				children = append(children, NewSrvRecordFromGlue(n.client, glue))
				continue
			}
			children = append(children, NewSrvRecord(n.client, d))
		}
		if len(children) == 0 {
			n.state = Empty
			return target.Target{}, false, nil
		}
		n.children = NewVector(children)
		n.state = NonEmpty
	}

	if n.children == nil {
		n.state = Empty
		return target.Target{}, false, nil
	}
	t, ok, err := n.children.ResolveNext(ctx)
	if !ok {
		n.state = Empty
	}
	return t, ok, err
}
