package resolve

import (
	"context"

	"github.com/resolvesip/rfc3263dns/target"
)

// Vector drives a sequence of child Resolvables left to right, draining
// each fully before advancing.
type Vector struct {
	children []Resolvable
	idx      int
	state    State
}

var _ Resolvable = (*Vector)(nil)

// NewVector builds a Vector over children. An empty or nil slice starts
// Empty; a non-empty one starts Unset.
func NewVector(children []Resolvable) *Vector {
	v := &Vector{children: children}
	if len(children) == 0 {
		v.state = Empty
	} else {
		v.state = Unset
	}
	return v
}

// State implements Resolvable.
func (v *Vector) State() State { return v.state }

// ResolveNext implements Resolvable.
func (v *Vector) ResolveNext(ctx context.Context) (target.Target, bool, error) {
	if err := ctx.Err(); err != nil {
		return target.Target{}, false, err
	}

	for v.idx < len(v.children) {
		t, ok, err := v.children[v.idx].ResolveNext(ctx)
		if err != nil {
			return target.Target{}, false, err
		}
		if ok {
			v.state = NonEmpty
			return t, true, nil
		}
		v.idx++
	}
	v.state = Empty
	return target.Target{}, false, nil
}
