package trace

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"slider/internal/carousel"
)

// Attribute keys set on every navigation span.
const (
	AttrInstance = "slider.carousel.instance"
	AttrPanels   = "slider.carousel.panels"
	AttrMove     = "slider.move.kind"
	AttrTarget   = "slider.move.target"
	AttrFrom     = "slider.move.from"
	AttrTo       = "slider.move.to"
	AttrWrapped  = "slider.move.wrapped"
)

// Observer records one span per carousel transition.
type Observer struct {
	tracer   oteltrace.Tracer
	instance string
	panels   int
	moves    atomic.Int64
}

// Ensure Observer can be attached to an engine.
var _ carousel.Observer = (*Observer)(nil)

// NewObserver creates an observer for a carousel of the given size.
// Each observer gets its own instance id so spans from several carousels can be told apart.
func NewObserver(p *Provider, panels int) *Observer {
	return &Observer{
		tracer:   p.Tracer(),
		instance: uuid.NewString(),
		panels:   panels,
	}
}

// Instance returns the id attached to this observer's spans.
func (o *Observer) Instance() string { return o.instance }

// Moves returns the number of transitions observed, rejected ones included.
func (o *Observer) Moves() int64 { return o.moves.Load() }

// Observe implements carousel.Observer.
func (o *Observer) Observe(t carousel.Transition) {
	o.moves.Add(1)
	attrs := []attribute.KeyValue{
		attribute.String(AttrInstance, o.instance),
		attribute.Int(AttrPanels, o.panels),
		attribute.String(AttrMove, t.Move.Kind.String()),
		attribute.Int(AttrFrom, t.From),
		attribute.Int(AttrTo, t.To),
		attribute.Bool(AttrWrapped, wrapped(t, o.panels)),
	}
	if t.Move.Kind == carousel.MoveGoTo {
		attrs = append(attrs, attribute.Int(AttrTarget, t.Move.Index))
	}
	_, span := o.tracer.Start(context.Background(), "carousel.move", oteltrace.WithAttributes(attrs...))
	if t.Err != nil {
		span.RecordError(t.Err)
		span.SetStatus(codes.Error, t.Err.Error())
	}
	span.End()
}

// wrapped reports whether a step crossed the end of the sequence.
func wrapped(t carousel.Transition, panels int) bool {
	if t.Err != nil || panels < 2 {
		return false
	}
	switch t.Move.Kind {
	case carousel.MoveNext:
		return t.From == panels-1 && t.To == 0
	case carousel.MovePrevious:
		return t.From == 0 && t.To == panels-1
	}
	return false
}
