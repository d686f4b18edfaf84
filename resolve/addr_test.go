package resolve_test

import (
	"context"
	"net/netip"
	"testing"

	"github.com/resolvesip/rfc3263dns/records"
	"github.com/resolvesip/rfc3263dns/resolve"
	"github.com/resolvesip/rfc3263dns/transport"
)

func TestAddrRecord_LiveLookup(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		addr: map[string]*records.AddrRecord{
			"example.com": {Domain: "example.com", TTL: 120, Addrs: []netip.Addr{netip.MustParseAddr("198.51.100.1"), netip.MustParseAddr("198.51.100.2")}},
		},
	}
	r := resolve.NewAddrRecord(client, "example.com", 5060, transport.UDP)

	if r.State() != resolve.Unset {
		t.Fatalf("State() = %v, want Unset", r.State())
	}

	first, ok, err := r.ResolveNext(context.Background())
	if err != nil || !ok || first.TTL != 120 || first.IPAddr.String() != "198.51.100.1" {
		t.Fatalf("first = (%+v, %v, %v)", first, ok, err)
	}
	second, ok, err := r.ResolveNext(context.Background())
	if err != nil || !ok || second.IPAddr.String() != "198.51.100.2" {
		t.Fatalf("second = (%+v, %v, %v)", second, ok, err)
	}
	_, ok, _ = r.ResolveNext(context.Background())
	if ok {
		t.Fatal("expected exhaustion after two addresses")
	}
	if len(client.calls) != 1 {
		t.Errorf("issued %d DNS calls, want exactly 1 (cached after first lookup)", len(client.calls))
	}
}

func TestAddrRecord_Absent(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	r := resolve.NewAddrRecord(client, "example.com", 5060, transport.UDP)
	_, ok, err := r.ResolveNext(context.Background())
	if ok || err != nil {
		t.Fatalf("ResolveNext() = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
	if r.State() != resolve.Empty {
		t.Errorf("State() = %v, want Empty", r.State())
	}
}

func TestAddrRecord_FromGlue_NoQuery(t *testing.T) {
	t.Parallel()

	glue := &records.AddrRecord{Domain: "glue.example.com", TTL: 45, Addrs: []netip.Addr{netip.MustParseAddr("203.0.113.1")}}
	r := resolve.NewAddrRecordFromGlue(glue, 5061, transport.TLS)

	if r.State() != resolve.NonEmpty {
		t.Fatalf("State() = %v, want NonEmpty", r.State())
	}
	got, ok, err := r.ResolveNext(context.Background())
	if err != nil || !ok {
		t.Fatalf("ResolveNext() = (%+v, %v, %v)", got, ok, err)
	}
	if got.TTL != 45 || got.Port != 5061 || got.Transport != transport.TLS {
		t.Errorf("got = %+v, want TTL=45 Port=5061 Transport=TLS", got)
	}
}
