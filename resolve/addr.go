package resolve

import (
	"context"

	"github.com/resolvesip/rfc3263dns/dnsclient"
	"github.com/resolvesip/rfc3263dns/records"
	"github.com/resolvesip/rfc3263dns/target"
	"github.com/resolvesip/rfc3263dns/transport"
)

// AddrRecord resolves a single hostname's A/AAAA RRset into a sequence of
// Targets sharing the record's port, transport, and TTL.
type AddrRecord struct {
	client    dnsclient.Client
	domain    string
	port      uint16
	transport transport.Transport

	state State
	// targets holds the materialized IP-literal targets once resolved;
	// next indexes the one to yield on the following call.
	targets []target.Target
	next    int
}

var _ Resolvable = (*AddrRecord)(nil)

// NewAddrRecord builds an AddrRecord that queries client on first use.
func NewAddrRecord(client dnsclient.Client, domain string, port uint16, tr transport.Transport) *AddrRecord {
	return &AddrRecord{client: client, domain: domain, port: port, transport: tr, state: Unset}
}

// NewAddrRecordFromGlue builds an AddrRecord already initialized from an
// ADDITIONAL-section glue record — no pending I/O.
func NewAddrRecordFromGlue(rec *records.AddrRecord, port uint16, tr transport.Transport) *AddrRecord {
	a := &AddrRecord{port: port, transport: tr}
	a.fill(rec)
	return a
}

func (a *AddrRecord) fill(rec *records.AddrRecord) {
	if rec == nil || len(rec.Addrs) == 0 {
		a.state = Empty
		return
	}
	a.targets = make([]target.Target, len(rec.Addrs))
	for i, ip := range rec.Addrs {
		a.targets[i] = target.NewWithTTL(ip, a.port, a.transport, rec.TTL)
	}
	a.state = NonEmpty
}

// State implements Resolvable.
func (a *AddrRecord) State() State { return a.state }

// ResolveNext implements Resolvable.
func (a *AddrRecord) ResolveNext(ctx context.Context) (target.Target, bool, error) {
	if err := ctx.Err(); err != nil {
		return target.Target{}, false, err
	}

	if a.state == Unset {
		rec, found, err := a.client.LookupAddr(ctx, a.domain)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return target.Target{}, false, ctxErr
			}
			a.state = Empty
			return target.Target{}, false, nil
		}
		if !found {
			a.state = Empty
			return target.Target{}, false, nil
		}
		a.fill(rec)
	}

	if a.next >= len(a.targets) {
		a.state = Empty
		return target.Target{}, false, nil
	}
	t := a.targets[a.next]
	a.next++
	if a.next >= len(a.targets) {
		a.state = Empty
	}
	return t, true, nil
}
