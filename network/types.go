package network

import (
	"github.com/theoremus-urban-solutions/transit-trajectory/geometry"
)

// Stop is a single scheduled stop point. Immutable after Build.
type Stop struct {
	Code     string
	Name     string
	Position geometry.Point
	Area     *StopArea
}

// StopArea is a cluster of nearby stops treated as one node. Center is the
// centroid of the member stop positions, computed once from the full
// membership at build time.
type StopArea struct {
	Code   string
	Stops  []*Stop
	Center geometry.Point
}

// JourneyPattern is a fixed route shape: an ordered stop sequence with the
// cumulative distance from the start at each stop. Distances are
// non-decreasing and start at 0.
type JourneyPattern struct {
	Code      string
	Stops     []*Stop
	Distances []float64
}

// Link is a directed pair of adjacent stops taken from some journey pattern.
// Distinct patterns sharing an adjacent pair map to the same link.
type Link struct {
	From *Stop
	To   *Stop
}

// Segment returns the stop-area-centroid segment of the link. Vehicles are
// placed along area centroids rather than raw stop coordinates so the
// rendered network stays legible.
func (l *Link) Segment() geometry.Segment {
	return geometry.Segment{From: l.From.Area.Center, To: l.To.Area.Center}
}

// LinkKey builds the registry key for an adjacent stop pair.
func LinkKey(fromCode, toCode string) string {
	return fromCode + "|" + toCode
}

// LinkSet is the deduplicated link registry keyed by LinkKey.
type LinkSet map[string]*Link

// Get returns the link for an adjacent stop pair, or nil.
func (ls LinkSet) Get(fromCode, toCode string) *Link {
	return ls[LinkKey(fromCode, toCode)]
}

// TimedPoint is one sample of a time/distance schedule.
type TimedPoint struct {
	Time     int64   `json:"time"`
	Distance float64 `json:"distance"`
}

// LiveVehicle is one tracked vehicle on a journey, with its own observation
// sequence. Observations are monotonic in time but sampled independently of
// stop boundaries.
type LiveVehicle struct {
	Number       string       `json:"vehicleNumber"`
	Observations []TimedPoint `json:"observations"`
}

// Network is the fully built static model, indexed by code.
type Network struct {
	Stops           map[string]*Stop
	StopAreas       map[string]*StopArea
	JourneyPatterns map[string]*JourneyPattern
	Links           LinkSet
	VehicleJourneys map[string]*VehicleJourney
}

// Bounds returns the min and max stop coordinates, used to parameterize
// viewport projection. ok is false when the network has no stops.
func (n *Network) Bounds() (min, max geometry.Point, ok bool) {
	first := true
	for _, s := range n.Stops {
		p := s.Position
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max, !first
}
