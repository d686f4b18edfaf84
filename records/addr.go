package records

import "net/netip"

// AddrRecord is a combined A/AAAA RRset for a single hostname. DNS
// returns A and AAAA as separate RRsets with (potentially) different
// TTLs; callers that merge both into one AddrRecord should pass MinTTL
// the TTLs of whichever RRsets they fetched.
type AddrRecord struct {
	Domain string
	TTL    uint32
	Addrs  []netip.Addr
}
