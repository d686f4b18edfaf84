// Package resolve implements the lazy, resumable resolution pipeline:
// a small family of "Resolvable" nodes (IP-literal, A/AAAA, SRV, NAPTR,
// a vector combinator, and the just-domain fallback state machine) that
// interleave DNS I/O with Target emission.
package resolve

import (
	"context"

	"github.com/resolvesip/rfc3263dns/target"
)

// State is a Resolvable's externally-observable lifecycle stage, queryable
// without triggering I/O.
type State int

const (
	// Unset means the Resolvable has never been driven.
	Unset State = iota
	// Empty means initialization completed and no targets remain.
	Empty
	// NonEmpty means at least one more target may be available.
	NonEmpty
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unset:
		return "Unset"
	case Empty:
		return "Empty"
	case NonEmpty:
		return "NonEmpty"
	default:
		return "Invalid"
	}
}

// Resolvable is a resumable producer of Targets. Implementations are
// stateful and must be driven by a single owner; they are not safe for
// concurrent use.
//
// Contract: once ResolveNext returns ok=false (with err=nil), every
// subsequent call must also return ok=false. A non-nil err is reserved for
// ctx cancellation/deadline — DNS-level absence or failure is absorbed
// into the state transition and reported as ok=false, err=nil.
type Resolvable interface {
	// State reports the current lifecycle stage without performing I/O.
	State() State
	// ResolveNext returns the next Target in the Resolvable's defined
	// order, or ok=false when exhausted. The first call on an Unset
	// Resolvable performs whatever DNS lookups are needed to initialize.
	ResolveNext(ctx context.Context) (t target.Target, ok bool, err error)
}
