package rfc3263_test

import (
	"context"

	"github.com/resolvesip/rfc3263dns/records"
	"github.com/resolvesip/rfc3263dns/transport"
)

// fakeClient is a canned-table dnsclient.Client used by the end-to-end
// scenario tests, without pulling in gomock for data this simple.
type fakeClient struct {
	naptr map[string]*records.NaptrRecord
	srv   map[transport.SrvDomain]*records.SrvRecord
	addr  map[string]*records.AddrRecord

	calls []string
}

func (f *fakeClient) LookupNAPTR(_ context.Context, domain string) (*records.NaptrRecord, bool, error) {
	f.calls = append(f.calls, "NAPTR:"+domain)
	rec, ok := f.naptr[domain]
	return rec, ok, nil
}

func (f *fakeClient) LookupSRV(_ context.Context, d transport.SrvDomain) (*records.SrvRecord, bool, error) {
	f.calls = append(f.calls, "SRV:"+d.String())
	rec, ok := f.srv[d]
	return rec, ok, nil
}

func (f *fakeClient) LookupAddr(_ context.Context, domain string) (*records.AddrRecord, bool, error) {
	f.calls = append(f.calls, "ADDR:"+domain)
	rec, ok := f.addr[domain]
	return rec, ok, nil
}
