package dnsclient

//go:generate errtrace -w .

import (
	"context"
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

// UDPClient is a [Client] backed directly by the wire DNS protocol via
// miekg/dns: its own message construction and exchange per query, no
// platform resolver involved. Every RRset lookup is a standalone
// query/response pair, and the ADDITIONAL section of each response is
// read opportunistically for glue, matching dns.RR entries against the
// query's owner name and target names.
type UDPClient struct {
	// NameServer is the "host:port" (or bare host, defaulting to port 53)
	// of the DNS server to query. If empty, /etc/resolv.conf's first
	// server is used.
	NameServer string
	// Timeout bounds a single query/response exchange. If zero, defaults
	// to 5 seconds.
	Timeout time.Duration
	// Logger receives a warning for every query that ends in a transport
	// failure or an unexpected rcode, and a debug entry when both the A
	// and AAAA RRsets come back absent. If nil, [log.Def] is used.
	Logger *slog.Logger
}

var _ Client = (*UDPClient)(nil)

func (r *UDPClient) log() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Def
}

func (r *UDPClient) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return 5 * time.Second
}

func (r *UDPClient) nameserver() (string, error) {
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

func (r *UDPClient) exchange(ctx context.Context, qname string, qtype uint16) (*dns.Msg, bool, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(qname), qtype)
	m.RecursionDesired = true

	nameserver, err := r.nameserver()
	if err != nil {
		return nil, false, errtrace.Wrap(err)
	}

	client := &dns.Client{Timeout: r.timeout()}
	resp, _, err := client.ExchangeContext(ctx, m, nameserver)
	if err != nil {
		r.log().Warn("DNS query failed", "qname", qname, "qtype", dns.TypeToString[qtype], "timeout", errs.IsTimeoutErr(err), "error", err)
		return nil, false, errtrace.Wrap(errs.NewWrapperError(ErrTransportFailure, err))
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
		return resp, len(resp.Answer) > 0, nil
	case dns.RcodeNameError:
		return resp, false, nil
	default:
		r.log().Warn("DNS query returned non-success rcode", "qname", qname, "qtype", dns.TypeToString[qtype], "rcode", dns.RcodeToString[resp.Rcode])
		return nil, false, errtrace.Wrap(errs.NewWrapperError(ErrTransportFailure, &net.DNSError{
			Err:  dns.RcodeToString[resp.Rcode],
			Name: qname,
		}))
	}
}

// LookupNAPTR implements [Client].
func (r *UDPClient) LookupNAPTR(ctx context.Context, domain string) (*records.NaptrRecord, bool, error) {
	resp, found, err := r.exchange(ctx, domain, dns.TypeNAPTR)
	if err != nil || !found {
		return nil, found, errtrace.Wrap(err)
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
	rec.AdditionalSRVs = additionalSrvs(resp.Extra)
	return rec, true, nil
}

// LookupSRV implements [Client].
func (r *UDPClient) LookupSRV(ctx context.Context, d transport.SrvDomain) (*records.SrvRecord, bool, error) {
	resp, found, err := r.exchange(ctx, d.String(), dns.TypeSRV)
	if err != nil || !found {
		return nil, found, errtrace.Wrap(err)
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
	rec.AdditionalHosts = additionalHosts(resp.Extra)
	return rec, true, nil
}

// LookupAddr implements [Client], merging the A and AAAA RRsets for domain
// into a single [records.AddrRecord] whose TTL is the minimum of both.
func (r *UDPClient) LookupAddr(ctx context.Context, domain string) (*records.AddrRecord, bool, error) {
	aResp, aFound, err := r.exchange(ctx, domain, dns.TypeA)
	if err != nil {
		return nil, false, errtrace.Wrap(err)
	}
	aaaaResp, aaaaFound, err := r.exchange(ctx, domain, dns.TypeAAAA)
	if err != nil {
		return nil, false, errtrace.Wrap(err)
	}
	if !aFound && !aaaaFound {
		r.log().Debug("A/AAAA RRset absent", "domain", domain)
		return nil, false, nil
	}

	rec := &records.AddrRecord{Domain: domain}
	var ttls []uint32
	if aFound {
		for _, ans := range aResp.Answer {
			if rr, ok := ans.(*dns.A); ok {
				if addr, ok := netip.AddrFromSlice(rr.A.To4()); ok {
					rec.Addrs = append(rec.Addrs, addr)
				}
				ttls = append(ttls, rr.Hdr.Ttl)
			}
		}
	}
	if aaaaFound {
		for _, ans := range aaaaResp.Answer {
			if rr, ok := ans.(*dns.AAAA); ok {
				if addr, ok := netip.AddrFromSlice(rr.AAAA.To16()); ok {
					rec.Addrs = append(rec.Addrs, addr)
				}
				ttls = append(ttls, rr.Hdr.Ttl)
			}
		}
	}
	if len(rec.Addrs) == 0 {
		return nil, false, nil
	}
	rec.TTL = records.MinTTL(ttls...)
	return rec, true, nil
}

// additionalHosts folds ADDITIONAL-section A/AAAA glue into a
// target-hostname-keyed map. Unlike substituting the target string
// in place, keeping the records lets the caller decide whether the
// glue is trustworthy enough to skip a follow-up query.
func additionalHosts(extra []dns.RR) map[string]*records.AddrRecord {
	out := map[string]*records.AddrRecord{}
	for _, rr := range extra {
		switch rr := rr.(type) {
		case *dns.A:
			addr, ok := netip.AddrFromSlice(rr.A.To4())
			if !ok {
				continue
			}
			mergeAddr(out, rr.Hdr.Name, rr.Hdr.Ttl, addr)
		case *dns.AAAA:
			addr, ok := netip.AddrFromSlice(rr.AAAA.To16())
			if !ok {
				continue
			}
			mergeAddr(out, rr.Hdr.Name, rr.Hdr.Ttl, addr)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeAddr(m map[string]*records.AddrRecord, name string, ttl uint32, addr netip.Addr) {
	rec, ok := m[name]
	if !ok {
		rec = &records.AddrRecord{Domain: name, TTL: ttl}
		m[name] = rec
	} else {
		rec.TTL = records.MinTTL(rec.TTL, ttl)
	}
	rec.Addrs = append(rec.Addrs, addr)
}

// additionalSrvs folds ADDITIONAL-section SRV glue (a NAPTR response
// proactively including the SRV RRset it points at) into a
// SrvDomain-keyed map.
func additionalSrvs(extra []dns.RR) map[transport.SrvDomain]*records.SrvRecord {
	byName := map[string][]records.SrvEntry{}
	ttls := map[string][]uint32{}
	for _, rr := range extra {
		srv, ok := rr.(*dns.SRV)
		if !ok {
			continue
		}
		name := srv.Hdr.Name
		byName[name] = append(byName[name], records.SrvEntry{
			Priority: srv.Priority,
			Weight:   srv.Weight,
			Port:     srv.Port,
			Target:   srv.Target,
		})
		ttls[name] = append(ttls[name], srv.Hdr.Ttl)
	}
	if len(byName) == 0 {
		return nil
	}

	hosts := additionalHosts(extra)
	out := map[transport.SrvDomain]*records.SrvRecord{}
	for name, entries := range byName {
		d, ok := parseSrvDomainName(name)
		if !ok {
			continue
		}
		out[d] = &records.SrvRecord{
			Domain:          d,
			TTL:             records.MinTTL(ttls[name]...),
			Entries:         entries,
			AdditionalHosts: hosts,
		}
	}
	return out
}

// parseSrvDomainName recovers the (secure, protocol, domain) triple from a
// wire SRV owner name, delegating to transport.ParseSrvDomain, which drops
// the trailing root label the wire form carries.
func parseSrvDomainName(name string) (transport.SrvDomain, bool) {
	return transport.ParseSrvDomain(dns.Fqdn(name))
}
