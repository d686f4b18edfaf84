// Package dnsclient adapts a DNS transport into the narrow query surface
// RFC 3263 target resolution needs: NAPTR, SRV, and combined A/AAAA lookups,
// each returning the domain package's record types. [UDPClient] folds in
// ADDITIONAL-section glue where the server provided it; [Resolver] does not.
package dnsclient

//go:generate go tool mockgen -destination=dnsclientmock/client_mock.go -package=dnsclientmock github.com/resolvesip/rfc3263dns/dnsclient Client

import (
	"context"

	"github.com/resolvesip/rfc3263dns/internal/errs"
	"github.com/resolvesip/rfc3263dns/records"
	"github.com/resolvesip/rfc3263dns/transport"
)

// ErrTransportFailure wraps the error a [Client] implementation returns for
// a query exchange it could not complete — timeout, connection refused, a
// malformed response, or a non-NXDOMAIN error rcode. An error reading the
// resolver configuration is returned unwrapped. It never wraps an absence
// (NXDOMAIN or empty answer); those are reported as found=false, err=nil.
const ErrTransportFailure errs.Error = "dnsclient: DNS transport failure"

// Client is the DNS query surface a [resolve.Resolvable] node needs.
// Implementations may answer from a live resolver, a cache, or (in tests)
// a canned table.
type Client interface {
	// LookupNAPTR queries the NAPTR RRset for domain. found is false when
	// the RRset is absent (NXDOMAIN or an empty answer); err is non-nil
	// only for a transport-level failure (timeout, refused, malformed
	// response).
	LookupNAPTR(ctx context.Context, domain string) (rec *records.NaptrRecord, found bool, err error)

	// LookupSRV queries the SRV RRset named by d.
	LookupSRV(ctx context.Context, d transport.SrvDomain) (rec *records.SrvRecord, found bool, err error)

	// LookupAddr queries the combined A/AAAA RRset for domain.
	LookupAddr(ctx context.Context, domain string) (rec *records.AddrRecord, found bool, err error)
}
