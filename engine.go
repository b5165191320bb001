package trajectory

import (
	"fmt"
	"sort"
	"time"

	"github.com/theoremus-urban-solutions/transit-trajectory/geometry"
	"github.com/theoremus-urban-solutions/transit-trajectory/network"
	"github.com/theoremus-urban-solutions/transit-trajectory/viewport"
)

// VehiclePosition is the plain data record the engine hands to renderers and
// API consumers. VehicleNumber is empty for the scheduled run itself when a
// journey carries no realtime payload.
type VehiclePosition struct {
	VehicleNumber string         `json:"vehicleNumber,omitempty"`
	Position      geometry.Point `json:"position"`
	Distance      float64        `json:"distance"`
	Status        Status         `json:"status"`
	Prognosed     bool           `json:"prognosed"`
}

// Engine answers trajectory and deviation queries over an immutable network.
// All query methods are safe for concurrent use; the only mutation it ever
// observes is the per-journey realtime payload swap.
type Engine struct {
	net       *network.Network
	projector *viewport.Projector
	now       func() int64
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithViewport parameterizes the engine's projector once from the network's
// stop bounds and the given viewport dimensions.
func WithViewport(width, height float64) EngineOption {
	return func(e *Engine) {
		min, max, ok := e.net.Bounds()
		if ok {
			e.projector = viewport.NewProjector(min, max, width, height)
		}
	}
}

// WithNow overrides the wall-clock source used for the prognosed flag.
func WithNow(now func() int64) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine wraps a built network.
func NewEngine(net *network.Network, opts ...EngineOption) *Engine {
	e := &Engine{
		net: net,
		now: func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Network exposes the underlying model for collaborators (feed ingestion).
func (e *Engine) Network() *network.Network { return e.net }

// ActiveJourneys returns the codes of every vehicle journey whose static or
// observed time window contains t, sorted for deterministic output.
func (e *Engine) ActiveJourneys(t int64) []string {
	codes := make([]string, 0)
	for code, vj := range e.net.VehicleJourneys {
		if vj.ActiveAt(t) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// PositionsAt computes position, distance and timeliness for every vehicle of
// one journey at time t. Live vehicles supersede the scheduled run; with no
// realtime payload the schedule itself is reported as a single unnumbered
// vehicle. The only error is an unknown trip code: queries for any journey
// returned by ActiveJourneys never fail.
func (e *Engine) PositionsAt(tripCode string, t int64) ([]VehiclePosition, error) {
	vj, ok := e.net.VehicleJourneys[tripCode]
	if !ok {
		return nil, fmt.Errorf("no such vehicle journey: %q", tripCode)
	}

	prognosed := t > e.now()
	if rt := vj.Realtime(); rt != nil && len(rt.Vehicles) > 0 {
		out := make([]VehiclePosition, 0, len(rt.Vehicles))
		for _, v := range rt.Vehicles {
			d := DistanceAtTime(v.Observations, t)
			out = append(out, VehiclePosition{
				VehicleNumber: v.Number,
				Position:      PositionAtDistance(vj.Pattern, e.net.Links, d),
				Distance:      d,
				Status:        StatusAt(vj, t, d),
				Prognosed:     prognosed,
			})
		}
		return out, nil
	}

	d := DistanceAtTime(vj.Schedule, t)
	return []VehiclePosition{{
		Position:  PositionAtDistance(vj.Pattern, e.net.Links, d),
		Distance:  d,
		Status:    StatusAt(vj, t, d),
		Prognosed: prognosed,
	}}, nil
}

// ProjectToViewport maps a source point through the engine's projector.
// Identity when no viewport was configured.
func (e *Engine) ProjectToViewport(p geometry.Point) geometry.Point {
	if e.projector == nil {
		return p
	}
	return e.projector.Project(p)
}
