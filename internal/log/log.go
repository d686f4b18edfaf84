// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/resolvesip/rfc3263dns/records"
	"github.com/resolvesip/rfc3263dns/transport"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(a netip.Addr) slog.Value {
		return slog.StringValue(a.String())
	}),
	slogformatter.FormatByType(func(d transport.SrvDomain) slog.Value {
		return slog.GroupValue(
			slog.String("owner", d.String()),
			slog.String("protocol", d.Protocol.String()),
			slog.Bool("secure", d.Secure),
		)
	}),
	slogformatter.FormatByType(func(rec *records.NaptrRecord) slog.Value {
		if rec == nil {
			return slog.StringValue("<nil>")
		}
		return slog.GroupValue(
			slog.String("domain", rec.Domain),
			slog.Int("entries", len(rec.Entries)),
			slog.Uint64("ttl", uint64(rec.TTL)),
		)
	}),
	slogformatter.FormatByType(func(rec *records.SrvRecord) slog.Value {
		if rec == nil {
			return slog.StringValue("<nil>")
		}
		return slog.GroupValue(
			slog.String("domain", rec.Domain.String()),
			slog.Int("entries", len(rec.Entries)),
			slog.Uint64("ttl", uint64(rec.TTL)),
		)
	}),
	slogformatter.FormatByType(func(rec *records.AddrRecord) slog.Value {
		if rec == nil {
			return slog.StringValue("<nil>")
		}
		return slog.GroupValue(
			slog.String("domain", rec.Domain),
			slog.Int("addrs", len(rec.Addrs)),
			slog.Uint64("ttl", uint64(rec.TTL)),
		)
	}),
)

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type calcValue struct{ fn func() any }

func (v calcValue) LogValue() slog.Value {
	cv := v.fn()
	switch cv := cv.(type) {
	case slog.Value:
		return cv
	default:
		return slog.AnyValue(cv)
	}
}

// CalcValue returns a value logger that computes a value using a fn.
func CalcValue(fn func() any) slog.LogValuer { return calcValue{fn} }
