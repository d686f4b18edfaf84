package dnsclient

import (
	"testing"

	"github.com/resolvesip/rfc3263dns/transport"
)

func TestParseSrvDomainName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    transport.SrvDomain
		wantOk  bool
	}{
		{"udp", "_sip._udp.example.com.", transport.SrvDomain{Secure: false, Protocol: transport.UDP, Domain: "example.com"}, true},
		{"sips tcp", "_sips._tcp.example.com.", transport.SrvDomain{Secure: true, Protocol: transport.TCP, Domain: "example.com"}, true},
		{"no trailing dot", "_sip._sctp.example.com", transport.SrvDomain{Secure: false, Protocol: transport.SCTP, Domain: "example.com"}, true},
		{"subdomain", "_sips._ws.sip.example.com.", transport.SrvDomain{Secure: true, Protocol: transport.WS, Domain: "sip.example.com"}, true},
		{"too short", "example.com.", transport.SrvDomain{}, false},
		{"unknown proto", "_sip._quic.example.com.", transport.SrvDomain{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseSrvDomainName(tt.in)
			if ok != tt.wantOk {
				t.Fatalf("parseSrvDomainName(%q) ok = %v, want %v", tt.in, ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("parseSrvDomainName(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
