package records_test

import (
	"testing"

	"github.com/resolvesip/rfc3263dns/records"
	"github.com/resolvesip/rfc3263dns/transport"
)

func TestNaptrServices_Transport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		svc     records.NaptrServices
		want    transport.Transport
		wantOk  bool
	}{
		{records.SipD2t, transport.TCP, true},
		{records.SipD2u, transport.UDP, true},
		{records.SipD2s, transport.SCTP, true},
		{records.SipD2w, transport.WS, true},
		{records.SipsD2t, transport.TLS, true},
		{records.SipsD2s, transport.TLSSCTP, true},
		{records.SipsD2w, transport.WSS, true},
		{records.SipsD2u, "", false},
		{records.NaptrServices("E2U+SIP"), "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.svc), func(t *testing.T) {
			t.Parallel()
			got, ok := tt.svc.Transport()
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("%v.Transport() = (%v, %v), want (%v, %v)", tt.svc, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestParseNaptrServices_CaseInsensitive(t *testing.T) {
	t.Parallel()

	if got := records.ParseNaptrServices("sip+d2t"); got != records.SipD2t {
		t.Errorf("ParseNaptrServices(%q) = %v, want %v", "sip+d2t", got, records.SipD2t)
	}
}

func TestParseNaptrFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		wantS  bool
		wantStr string
	}{
		{"S", true, "S"},
		{"s", true, "S"},
		{"A", false, "A"},
		{"U", false, "U"},
		{"P", false, "P"},
		{"", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			f := records.ParseNaptrFlags([]byte(tt.raw))
			if f.IsS() != tt.wantS {
				t.Errorf("ParseNaptrFlags(%q).IsS() = %v, want %v", tt.raw, f.IsS(), tt.wantS)
			}
			if got := f.String(); got != tt.wantStr {
				t.Errorf("ParseNaptrFlags(%q).String() = %q, want %q", tt.raw, got, tt.wantStr)
			}
		})
	}
}

func TestSortEntries_OrderThenPreferenceThenInputOrder(t *testing.T) {
	t.Parallel()

	in := []records.NaptrEntry{
		{Order: 2, Preference: 1, Replacement: "c"},
		{Order: 1, Preference: 2, Replacement: "b"},
		{Order: 1, Preference: 1, Replacement: "a"},
		{Order: 1, Preference: 1, Replacement: "a2"}, // ties with "a", must keep input order
	}
	got := records.SortEntries(in)
	want := []string{"a", "a2", "b", "c"}
	for i, w := range want {
		if got[i].Replacement != w {
			t.Fatalf("got[%d].Replacement = %q, want %q (full: %+v)", i, got[i].Replacement, w, got)
		}
	}
}

func TestNaptrRecord_FilterByTransport(t *testing.T) {
	t.Parallel()

	rec := &records.NaptrRecord{
		Domain: "example.com",
		Entries: []records.NaptrEntry{
			{Order: 1, Preference: 1, Flags: records.NaptrFlagS, Services: records.SipsD2t, Replacement: "_sips._tcp.example.com"},
			{Order: 2, Preference: 1, Flags: records.NaptrFlagS, Services: records.SipD2u, Replacement: "_sip._udp.example.com"},
			{Order: 3, Preference: 1, Flags: records.NaptrFlagU, Services: records.SipD2t, Replacement: "sip:bob@example.com"},
			{Order: 4, Preference: 1, Flags: records.NaptrFlagS, Services: records.SipD2s, Replacement: "_sip._sctp.example.com"},
		},
	}

	got := rec.FilterByTransport([]transport.Transport{transport.TLS, transport.UDP})
	if len(got) != 2 {
		t.Fatalf("FilterByTransport = %+v, want 2 entries", got)
	}
	if got[0].Services != records.SipsD2t || got[1].Services != records.SipD2u {
		t.Errorf("FilterByTransport order/contents = %+v", got)
	}
}

func TestNaptrEntry_SrvDomain(t *testing.T) {
	t.Parallel()

	e := records.NaptrEntry{Services: records.SipsD2t, Replacement: "_sips._tcp.sipserver.example.com"}
	d, ok := e.SrvDomain()
	if !ok {
		t.Fatal("SrvDomain() ok = false, want true")
	}
	if want := "_sips._tcp.sipserver.example.com"; d.String() != want {
		t.Errorf("SrvDomain().String() = %q, want %q", d.String(), want)
	}

	_, ok = (records.NaptrEntry{Services: records.SipsD2u, Replacement: "not-an-srv-name"}).SrvDomain()
	if ok {
		t.Error("SrvDomain() ok = true for a malformed replacement, want false")
	}
}
