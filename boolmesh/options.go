package boolmesh

import (
	"github.com/akmonengine/meshbool/meshmodel"
	"github.com/akmonengine/meshbool/retess"
)

// Tracer receives one notification per notable event during a Boolean
// call: an open case hit, a degenerate-geometry skip, a phase starting.
// None of these are errors (spec.md §7) — they're diagnostic only.
// newConfig starts from noopTracer, so passing no WithTracer option is
// always safe.
type Tracer interface {
	Trace(msg string)
}

type noopTracer struct{}

func (noopTracer) Trace(string) {}

// SliceTracer collects every traced message in call order, for test
// assertions and manual inspection — the one real Tracer implementation,
// mirroring trigger.go's Events accumulate/flush shape rather than a
// structured-logging library.
type SliceTracer struct {
	Messages []string
}

// Trace implements Tracer.
func (t *SliceTracer) Trace(msg string) {
	t.Messages = append(t.Messages, msg)
}

// config holds everything an Option can set, built from functional options
// the way §9 asks for (replacing the source's individual boolean
// parameters and process-wide debug globals with one extensible struct).
type config struct {
	eps         float64
	op          meshmodel.Op
	useSelf     bool
	useSeparate bool
	tracer      Tracer
	cdt         retess.CDT
}

func newConfig(opts []Option) *config {
	c := &config{
		eps:    defaultEps,
		op:     meshmodel.OpNone,
		tracer: noopTracer{},
		cdt:    &retess.Earclip{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a Boolean call.
type Option func(*config)

// WithEps overrides the default epsilon (spec.md §6: "a single scalar
// supplied by the caller, treated as an absolute length").
func WithEps(eps float64) Option {
	return func(c *config) { c.eps = eps }
}

// WithOp selects the constructive solid geometry operation; OpNone (the
// default) stops after the intersect-and-tag phase.
func WithOp(op meshmodel.Op) Option {
	return func(c *config) { c.op = op }
}

// WithSelf overrides the side predicate entirely, putting every face on
// both sides (spec.md §6).
func WithSelf(useSelf bool) Option {
	return func(c *config) { c.useSelf = useSelf }
}

// WithSeparate controls whether coincident-plane parts from opposite sides
// are folded into one retessellation unit (the default, producing a single
// welded face where the two operand surfaces coincide) or kept apart so
// each side's faces retessellate independently and the result keeps both
// surfaces as distinct islands even where they touch. spec.md §6 lists
// use_separate without elaborating its semantics; this is the reasoned
// mapping recorded in DESIGN.md.
func WithSeparate(useSeparate bool) Option {
	return func(c *config) { c.useSeparate = useSeparate }
}

// WithTracer attaches a diagnostic collector. The default is a no-op.
func WithTracer(t Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// WithCDT overrides the constrained-Delaunay triangulator used for
// retessellation. The default is retess.Earclip, this module's own
// Bowyer-Watson triangulation followed by Sloan-style constraint recovery
// (spec.md §6 treats CDT as an external primitive; this option is exactly
// where a real one plugs in).
func WithCDT(cdt retess.CDT) Option {
	return func(c *config) { c.cdt = cdt }
}
