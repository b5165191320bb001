package trajectory

import (
	"github.com/theoremus-urban-solutions/transit-trajectory/geometry"
	"github.com/theoremus-urban-solutions/transit-trajectory/network"
)

// DistanceAtTime returns the distance traveled along the route at time t,
// assuming piecewise-linear motion between consecutive schedule samples.
// Queries outside the schedule's time window clamp to the nearest boundary.
func DistanceAtTime(schedule []network.TimedPoint, t int64) float64 {
	n := len(schedule)
	if n == 0 {
		return 0
	}
	last := schedule[n-1]
	// Exact last-sample match first, so the final segment never divides.
	if t == last.Time {
		return last.Distance
	}
	if n == 1 || t <= schedule[0].Time {
		return schedule[0].Distance
	}
	if t >= last.Time {
		return last.Distance
	}
	for i := 0; i+1 < n; i++ {
		lo, hi := schedule[i], schedule[i+1]
		if t < lo.Time || t > hi.Time {
			continue
		}
		// A repeated sample time resolves against the first segment starting
		// there, so a dwell holds the earlier distance instead of dividing by
		// its zero time span.
		if t == lo.Time {
			return lo.Distance
		}
		p := float64(t-lo.Time) / float64(hi.Time-lo.Time)
		return lo.Distance + p*(hi.Distance-lo.Distance)
	}
	return last.Distance
}

// PositionAtDistance maps a distance along a journey pattern to a point on
// the stop-area-centroid segment of the covering link. Distances outside the
// pattern's range clamp to the nearest boundary.
func PositionAtDistance(jp *network.JourneyPattern, links network.LinkSet, distance float64) geometry.Point {
	n := len(jp.Distances)
	lastDist := jp.Distances[n-1]

	if distance >= lastDist {
		// Final distance (or past it): last link at 100%.
		link := links.Get(jp.Stops[n-2].Code, jp.Stops[n-1].Code)
		return link.Segment().At(1)
	}
	if distance < jp.Distances[0] {
		distance = jp.Distances[0]
	}
	for i := 0; i+1 < n; i++ {
		if jp.Distances[i] <= distance && distance < jp.Distances[i+1] {
			span := jp.Distances[i+1] - jp.Distances[i]
			p := 0.0
			if span > 0 {
				p = (distance - jp.Distances[i]) / span
			}
			link := links.Get(jp.Stops[i].Code, jp.Stops[i+1].Code)
			return link.Segment().At(p)
		}
	}
	// Unreachable for well-formed patterns; clamp to the end.
	link := links.Get(jp.Stops[n-2].Code, jp.Stops[n-1].Code)
	return link.Segment().At(1)
}
