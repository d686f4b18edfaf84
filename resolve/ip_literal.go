package resolve

import (
	"context"
	"net/netip"

	"github.com/resolvesip/rfc3263dns/target"
	"github.com/resolvesip/rfc3263dns/transport"
)

// IPLiteral emits exactly one Target and performs no I/O.
type IPLiteral struct {
	t     target.Target
	state State
}

var _ Resolvable = (*IPLiteral)(nil)

// NewIPLiteral builds an IPLiteral yielding t once.
func NewIPLiteral(t target.Target) *IPLiteral {
	return &IPLiteral{t: t, state: NonEmpty}
}

// NewIP builds an IPLiteral from its constituent fields, using
// [target.DefaultTTL] unless ttl is supplied.
func NewIP(ip netip.Addr, port uint16, tr transport.Transport, ttl ...uint32) *IPLiteral {
	t := target.New(ip, port, tr)
	if len(ttl) > 0 {
		t.TTL = ttl[0]
	}
	return NewIPLiteral(t)
}

// State implements Resolvable.
func (r *IPLiteral) State() State { return r.state }

// ResolveNext implements Resolvable.
func (r *IPLiteral) ResolveNext(ctx context.Context) (target.Target, bool, error) {
	if err := ctx.Err(); err != nil {
		return target.Target{}, false, err
	}
	if r.state != NonEmpty {
		return target.Target{}, false, nil
	}
	r.state = Empty
	return r.t, true, nil
}
