package rfc3263

import "github.com/resolvesip/rfc3263dns/internal/errs"

// Error taxonomy for target resolution.
const (
	// ErrInvalidURI reports a URI with no host, or a URI naming a
	// transport the caller doesn't support.
	ErrInvalidURI errs.Error = "rfc3263: invalid URI"
	// ErrDNSTransportFailure reports that the DNS client could not
	// obtain a response at all (timeout, network, malformed message).
	ErrDNSTransportFailure errs.Error = "rfc3263: DNS transport failure"
	// ErrDNSRecordAbsent names an authoritative A/AAAA absence. No
	// [dnsclient.Client] implementation in this module returns it:
	// LookupAddr, like LookupNAPTR and LookupSRV, reports an absent RRset
	// as found=false with a nil error.
	ErrDNSRecordAbsent errs.Error = "rfc3263: no A/AAAA record found"
	// ErrConversionFailure reports a wire record that didn't conform to
	// expectations (e.g. unexpected RDATA kind for the requested type).
	ErrConversionFailure errs.Error = "rfc3263: DNS record conversion failure"
)
