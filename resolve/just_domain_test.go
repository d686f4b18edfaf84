package resolve_test

import (
	"context"
	"net/netip"
	"testing"

	"github.com/resolvesip/rfc3263dns/records"
	"github.com/resolvesip/rfc3263dns/resolve"
	"github.com/resolvesip/rfc3263dns/transport"
)

func TestJustDomainLookup_NaptrSuccessSkipsSrvAndAddr(t *testing.T) {
	t.Parallel()

	srvDomain := transport.NewSrvDomain(transport.TLS, "example.com")
	client := &fakeClient{
		naptr: map[string]*records.NaptrRecord{
			"example.com": {
				Domain:  "example.com",
				TTL:     600,
				Entries: []records.NaptrEntry{{Order: 0, Preference: 0, Flags: records.NaptrFlagS, Services: records.SipsD2t, Replacement: "_sips._tcp.example.com"}},
			},
		},
		srv: map[transport.SrvDomain]*records.SrvRecord{
			srvDomain: {
				Domain:  srvDomain,
				TTL:     400,
				Entries: []records.SrvEntry{{Priority: 0, Weight: 0, Port: 10000, Target: "tcp1.example.com"}},
			},
		},
		addr: map[string]*records.AddrRecord{
			"tcp1.example.com": {Domain: "tcp1.example.com", TTL: 300, Addrs: []netip.Addr{netip.MustParseAddr("203.0.113.10")}},
		},
	}

	j := resolve.NewJustDomainLookup(client, "example.com", []transport.Transport{transport.TLS}, transport.UDP, 5060)
	got, ok, err := j.ResolveNext(context.Background())
	if err != nil || !ok {
		t.Fatalf("ResolveNext() = (%+v, %v, %v)", got, ok, err)
	}
	_, ok, err = j.ResolveNext(context.Background())
	if ok || err != nil {
		t.Fatalf("second ResolveNext() = (ok=%v, err=%v), want exhaustion", ok, err)
	}
	for _, c := range client.calls {
		if c == "ADDR:example.com" {
			t.Error("queried bare-domain A/AAAA despite NAPTR producing a target")
		}
	}
}

func TestJustDomainLookup_NaptrAbsentFallsBackToSrv(t *testing.T) {
	t.Parallel()

	udpSrv := transport.NewSrvDomain(transport.UDP, "example.com")
	client := &fakeClient{
		srv: map[transport.SrvDomain]*records.SrvRecord{
			udpSrv: {
				Domain:  udpSrv,
				TTL:     60,
				Entries: []records.SrvEntry{{Priority: 0, Weight: 0, Port: 5060, Target: "t.example.com"}},
			},
		},
		addr: map[string]*records.AddrRecord{
			"t.example.com": {Domain: "t.example.com", TTL: 60, Addrs: []netip.Addr{netip.MustParseAddr("198.51.100.9")}},
		},
	}

	j := resolve.NewJustDomainLookup(client, "example.com", []transport.Transport{transport.UDP}, transport.UDP, 5060)
	got, ok, err := j.ResolveNext(context.Background())
	if err != nil || !ok || got.IPAddr.String() != "198.51.100.9" {
		t.Fatalf("ResolveNext() = (%+v, %v, %v)", got, ok, err)
	}
	for _, c := range client.calls {
		if c == "ADDR:example.com" {
			t.Error("queried bare-domain A/AAAA despite SRV fallback producing a target")
		}
	}
}

func TestJustDomainLookup_NaptrObservedButEmptyBlocksSrvFallback(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		naptr: map[string]*records.NaptrRecord{
			// Observed, but offers only a transport that isn't supported:
			// every entry is filtered away.
			"example.com": {
				Domain:  "example.com",
				TTL:     600,
				Entries: []records.NaptrEntry{{Order: 0, Preference: 0, Flags: records.NaptrFlagS, Services: records.SipD2u, Replacement: "_sip._udp.example.com"}},
			},
		},
		srv: map[transport.SrvDomain]*records.SrvRecord{
			transport.NewSrvDomain(transport.TLS, "example.com"): {
				Domain:  transport.NewSrvDomain(transport.TLS, "example.com"),
				TTL:     60,
				Entries: []records.SrvEntry{{Priority: 0, Weight: 0, Port: 5061, Target: "tls.example.com"}},
			},
		},
	}

	j := resolve.NewJustDomainLookup(client, "example.com", []transport.Transport{transport.TLS}, transport.TLS, 5061)
	_, ok, err := j.ResolveNext(context.Background())
	if ok || err != nil {
		t.Fatalf("ResolveNext() = (ok=%v, err=%v), want (false, nil): NAPTR observed must block SRV fallback", ok, err)
	}
	for _, c := range client.calls {
		if c == "SRV:"+transport.NewSrvDomain(transport.TLS, "example.com").String() {
			t.Error("queried SRV fallback despite NAPTR having been observed (even though filtered to zero entries)")
		}
	}
}

func TestJustDomainLookup_FullFallbackToAddr(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		addr: map[string]*records.AddrRecord{
			"example.com": {Domain: "example.com", TTL: 90, Addrs: []netip.Addr{netip.MustParseAddr("198.51.100.5")}},
		},
	}

	j := resolve.NewJustDomainLookup(client, "example.com", []transport.Transport{transport.UDP}, transport.UDP, 5060)
	got, ok, err := j.ResolveNext(context.Background())
	if err != nil || !ok || got.IPAddr.String() != "198.51.100.5" {
		t.Fatalf("ResolveNext() = (%+v, %v, %v)", got, ok, err)
	}

	wantOrder := []string{"NAPTR:example.com", "SRV:" + transport.NewSrvDomain(transport.UDP, "example.com").String(), "ADDR:example.com"}
	if len(client.calls) != len(wantOrder) {
		t.Fatalf("calls = %v, want %v", client.calls, wantOrder)
	}
	for i, want := range wantOrder {
		if client.calls[i] != want {
			t.Errorf("calls[%d] = %q, want %q (NAPTR before SRV before Addr, never reversed or parallel)", i, client.calls[i], want)
		}
	}
}

func TestJustDomainLookup_ExhaustionIsTerminal(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	j := resolve.NewJustDomainLookup(client, "example.com", []transport.Transport{transport.UDP}, transport.UDP, 5060)

	for i := 0; i < 4; i++ {
		_, ok, err := j.ResolveNext(context.Background())
		if ok || err != nil {
			t.Fatalf("call %d = (ok=%v, err=%v), want (false, nil)", i, ok, err)
		}
	}
	if j.State() != resolve.Empty {
		t.Errorf("State() = %v, want Empty", j.State())
	}
}
