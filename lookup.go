package rfc3263

import (
	"context"

	"github.com/resolvesip/rfc3263dns/resolve"
)

// Lookup is the user-facing iterator driving the root resolvable a
// Context selects. The caller drains ResolveNext until ok is false; no
// bulk-collect API is offered, keeping the lazy, resumable-producer shape
// of the underlying resolvable tree.
type Lookup struct {
	root resolve.Resolvable
}

// From builds a Lookup over the root resolvable ctx's decision table
// selects.
func From(ctx *Context) *Lookup {
	return &Lookup{root: ctx.Resolvable()}
}

// ResolveNext returns the next Target, or ok=false once the underlying
// resolvable tree is exhausted. DNS-level failures never surface here —
// a caller who drains to ok=false without a Target learns only that no
// reachable target exists. err is reserved for ctx cancellation/deadline.
func (l *Lookup) ResolveNext(ctx context.Context) (t Target, ok bool, err error) {
	return l.root.ResolveNext(ctx)
}

// State reports the root resolvable's lifecycle stage without I/O.
func (l *Lookup) State() resolve.State {
	return l.root.State()
}
