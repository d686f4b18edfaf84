package dnsclient

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/netip"
	"time"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/resolvesip/rfc3263dns/internal/errs"
	"github.com/resolvesip/rfc3263dns/internal/log"
	"github.com/resolvesip/rfc3263dns/records"
	"github.com/resolvesip/rfc3263dns/transport"
)

// Resolver is a [Client] that defers A/AAAA lookups to the platform's
// net.Resolver (so it benefits from cgo/NSS/hosts-file integration) while
// using a direct *dns.Client exchange for NAPTR and SRV, which net.Resolver
// doesn't expose. Never populates ADDITIONAL-section glue — use
// [UDPClient] when that matters.
type Resolver struct {
	net.Resolver

	// NameServer is the "host:port" (or bare host, defaulting to port 53)
	// queried for NAPTR/SRV. If empty, /etc/resolv.conf's first server is
	// used. Has no effect on the A/AAAA path, which always goes through
	// the embedded net.Resolver.
	NameServer string
	// Timeout bounds a single NAPTR/SRV query/response exchange. If zero,
	// defaults to 5 seconds.
	Timeout time.Duration
	// Logger receives a warning for every query that ends in a transport
	// failure or an unexpected rcode. If nil, [log.Def] is used.
	Logger *slog.Logger
}

var _ Client = (*Resolver)(nil)

func (r *Resolver) log() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Def
}

func (r *Resolver) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return 5 * time.Second
}

func (r *Resolver) nameserver() (string, error) {
	if r.NameServer != "" {
		if _, _, err := net.SplitHostPort(r.NameServer); err != nil {
			return net.JoinHostPort(r.NameServer, "53"), nil //nolint:nilerr
		}
		return r.NameServer, nil
	}

	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if len(conf.Servers) == 0 {
		return "", errtrace.Wrap(&net.DNSError{
			Err:  "no DNS servers configured",
			Name: "resolv.conf",
		})
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}

// LookupNAPTR implements [Client].
func (r *Resolver) LookupNAPTR(ctx context.Context, domain string) (*records.NaptrRecord, bool, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), dns.TypeNAPTR)
	m.RecursionDesired = true

	nameserver, err := r.nameserver()
	if err != nil {
		return nil, false, errtrace.Wrap(err)
	}

	client := &dns.Client{Timeout: r.timeout()}
	resp, _, err := client.ExchangeContext(ctx, m, nameserver)
	if err != nil {
		r.log().Warn("NAPTR query failed", "domain", domain, "timeout", errs.IsTimeoutErr(err), "error", err)
		return nil, false, errtrace.Wrap(errs.NewWrapperError(ErrTransportFailure, err))
	}
	if resp.Rcode == dns.RcodeNameError {
		return nil, false, nil
	}
	if resp.Rcode != dns.RcodeSuccess {
		r.log().Warn("NAPTR query returned non-success rcode", "domain", domain, "rcode", dns.RcodeToString[resp.Rcode])
		return nil, false, errtrace.Wrap(errs.NewWrapperError(ErrTransportFailure, &net.DNSError{
			Err:  dns.RcodeToString[resp.Rcode],
			Name: domain,
		}))
	}

	rec := &records.NaptrRecord{Domain: domain}
	ttls := make([]uint32, 0, len(resp.Answer))
	for _, ans := range resp.Answer {
		rr, ok := ans.(*dns.NAPTR)
		if !ok {
			continue
		}
		rec.Entries = append(rec.Entries, records.NaptrEntry{
			Order:       rr.Order,
			Preference:  rr.Preference,
			Flags:       records.ParseNaptrFlags([]byte(rr.Flags)),
			Services:    records.ParseNaptrServices(rr.Service),
			Regexp:      []byte(rr.Regexp),
			Replacement: rr.Replacement,
		})
		ttls = append(ttls, rr.Hdr.Ttl)
	}
	if len(rec.Entries) == 0 {
		return nil, false, nil
	}
	rec.TTL = records.MinTTL(ttls...)
	return rec, true, nil
}

// LookupSRV implements [Client].
func (r *Resolver) LookupSRV(ctx context.Context, d transport.SrvDomain) (*records.SrvRecord, bool, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(d.String()), dns.TypeSRV)
	m.RecursionDesired = true

	nameserver, err := r.nameserver()
	if err != nil {
		return nil, false, errtrace.Wrap(err)
	}

	client := &dns.Client{Timeout: r.timeout()}
	resp, _, err := client.ExchangeContext(ctx, m, nameserver)
	if err != nil {
		r.log().Warn("SRV query failed", "domain", d, "timeout", errs.IsTimeoutErr(err), "error", err)
		return nil, false, errtrace.Wrap(errs.NewWrapperError(ErrTransportFailure, err))
	}
	if resp.Rcode == dns.RcodeNameError {
		return nil, false, nil
	}
	if resp.Rcode != dns.RcodeSuccess {
		r.log().Warn("SRV query returned non-success rcode", "domain", d, "rcode", dns.RcodeToString[resp.Rcode])
		return nil, false, errtrace.Wrap(errs.NewWrapperError(ErrTransportFailure, &net.DNSError{
			Err:  dns.RcodeToString[resp.Rcode],
			Name: d.String(),
		}))
	}

	rec := &records.SrvRecord{Domain: d}
	ttls := make([]uint32, 0, len(resp.Answer))
	for _, ans := range resp.Answer {
		rr, ok := ans.(*dns.SRV)
		if !ok {
			continue
		}
		rec.Entries = append(rec.Entries, records.SrvEntry{
			Priority: rr.Priority,
			Weight:   rr.Weight,
			Port:     rr.Port,
			Target:   rr.Target,
		})
		ttls = append(ttls, rr.Hdr.Ttl)
	}
	if len(rec.Entries) == 0 {
		return nil, false, nil
	}
	rec.TTL = records.MinTTL(ttls...)
	return rec, true, nil
}

// LookupAddr implements [Client] via the embedded net.Resolver, merging
// whatever address family(ies) it returns into one [records.AddrRecord].
// net.Resolver doesn't expose per-record TTLs, so the result carries
// [records.DefaultTTL].
func (r *Resolver) LookupAddr(ctx context.Context, domain string) (*records.AddrRecord, bool, error) {
	ips, err := r.Resolver.LookupNetIP(ctx, "ip", domain)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return nil, false, nil
		}
		r.log().Warn("A/AAAA query failed", "domain", domain, "timeout", errs.IsTimeoutErr(err), "error", err)
		return nil, false, errtrace.Wrap(errs.NewWrapperError(ErrTransportFailure, err))
	}
	if len(ips) == 0 {
		return nil, false, nil
	}

	addrs := make([]netip.Addr, len(ips))
	for i, ip := range ips {
		if ip.Is4In6() {
			ip = netip.AddrFrom4(ip.As4())
		}
		addrs[i] = ip
	}
	return &records.AddrRecord{Domain: domain, TTL: records.DefaultTTL, Addrs: addrs}, true, nil
}
