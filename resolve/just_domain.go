package resolve

import (
	"context"

	"github.com/qmuntal/stateless"

	"github.com/resolvesip/rfc3263dns/dnsclient"
	"github.com/resolvesip/rfc3263dns/target"
	"github.com/resolvesip/rfc3263dns/transport"
)

// justDomainState is the just-domain fallback machine's internal stage.
type justDomainState uint8

const (
	stageTryingNaptr justDomainState = iota
	stageTryingSrvFallbacks
	stageTryingAddrFallback
	stageDone
)

func (s justDomainState) String() string {
	switch s {
	case stageTryingNaptr:
		return "TryingNaptr"
	case stageTryingSrvFallbacks:
		return "TryingSrvFallbacks"
	case stageTryingAddrFallback:
		return "TryingAddrFallback"
	default:
		return "Done"
	}
}

type justDomainTrigger uint8

const (
	triggerNaptrExhaustedNoResult justDomainTrigger = iota
	triggerNaptrExhaustedProduced
	triggerSrvFallbacksProduced
	triggerSrvFallbacksExhaustedNoResult
	triggerAddrFallbackExhausted
)

// JustDomainLookup is the RFC 3263 §4.2 bare-domain orchestration: NAPTR
// first; on failure or absence, SRV per supported transport; on total
// failure, A/AAAA on the bare domain. Falls back only when the prior
// stage produced nothing, never once a higher-level method has succeeded.
type JustDomainLookup struct {
	sm *stateless.StateMachine

	naptr        *NaptrRecord
	srvFallbacks *Vector
	srvProduced  bool
	addrFallback *AddrRecord
}

var _ Resolvable = (*JustDomainLookup)(nil)

// NewJustDomainLookup builds the fallback machine for domain.
// supportedTransports drives both the NAPTR entry filter and the ordered
// list of per-transport SRV fallback queries; defaultTransport/defaultPort
// are used for the final A/AAAA fallback (TLS/5061 when secure, else
// UDP/5060).
func NewJustDomainLookup(
	client dnsclient.Client,
	domain string,
	supportedTransports []transport.Transport,
	defaultTransport transport.Transport,
	defaultPort uint16,
) *JustDomainLookup {
	j := &JustDomainLookup{
		naptr: NewNaptrRecord(client, domain, supportedTransports),
	}

	srvChildren := make([]Resolvable, len(supportedTransports))
	for i, t := range supportedTransports {
		srvChildren[i] = NewSrvRecord(client, transport.NewSrvDomain(t, domain))
	}
	j.srvFallbacks = NewVector(srvChildren)
	j.addrFallback = NewAddrRecord(client, domain, defaultPort, defaultTransport)

	j.sm = stateless.NewStateMachine(stageTryingNaptr)
	j.sm.Configure(stageTryingNaptr).
		Permit(triggerNaptrExhaustedNoResult, stageTryingSrvFallbacks).
		Permit(triggerNaptrExhaustedProduced, stageDone)
	j.sm.Configure(stageTryingSrvFallbacks).
		Permit(triggerSrvFallbacksProduced, stageDone).
		Permit(triggerSrvFallbacksExhaustedNoResult, stageTryingAddrFallback)
	j.sm.Configure(stageTryingAddrFallback).
		Permit(triggerAddrFallbackExhausted, stageDone)
	j.sm.Configure(stageDone)

	return j
}

// State implements Resolvable.
func (j *JustDomainLookup) State() State {
	switch j.sm.MustState().(justDomainState) {
	case stageDone:
		return Empty
	default:
		if j.naptr.State() == Unset {
			return Unset
		}
		return NonEmpty
	}
}

// ResolveNext implements Resolvable.
func (j *JustDomainLookup) ResolveNext(ctx context.Context) (target.Target, bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return target.Target{}, false, err
		}

		switch j.sm.MustState().(justDomainState) {
		case stageTryingNaptr:
			t, ok, err := j.naptr.ResolveNext(ctx)
			if err != nil {
				return target.Target{}, false, err
			}
			if ok {
				return t, true, nil
			}
			// NAPTR exhausted. If it ever observed a record (entries
			// present, even if all were filtered out or their children
			// produced nothing), a higher-level method was available and
			// we must not fall back to SRV.
			if j.naptr.ObservedRecord() {
				if err := j.sm.Fire(triggerNaptrExhaustedProduced); err != nil {
					return target.Target{}, false, err
				}
			} else {
				if err := j.sm.Fire(triggerNaptrExhaustedNoResult); err != nil {
					return target.Target{}, false, err
				}
			}

		case stageTryingSrvFallbacks:
			t, ok, err := j.srvFallbacks.ResolveNext(ctx)
			if err != nil {
				return target.Target{}, false, err
			}
			if ok {
				j.srvProduced = true
				return t, true, nil
			}
			if j.srvProduced {
				if err := j.sm.Fire(triggerSrvFallbacksProduced); err != nil {
					return target.Target{}, false, err
				}
			} else {
				if err := j.sm.Fire(triggerSrvFallbacksExhaustedNoResult); err != nil {
					return target.Target{}, false, err
				}
			}

		case stageTryingAddrFallback:
			t, ok, err := j.addrFallback.ResolveNext(ctx)
			if err != nil {
				return target.Target{}, false, err
			}
			if ok {
				return t, true, nil
			}
			if err := j.sm.Fire(triggerAddrFallbackExhausted); err != nil {
				return target.Target{}, false, err
			}

		default: // stageDone
			return target.Target{}, false, nil
		}
	}
}
