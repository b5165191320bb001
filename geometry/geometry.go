package geometry

// Point is a coordinate in the source survey grid (or, after projection,
// in viewport pixels).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a directed straight line between two points.
type Segment struct {
	From Point
	To   Point
}

// At returns the point at fraction pct along the segment. pct is clamped
// to [0,1] so callers never extrapolate past an endpoint.
func (s Segment) At(pct float64) Point {
	if pct < 0 {
		pct = 0
	} else if pct > 1 {
		pct = 1
	}
	return Point{
		X: s.From.X + pct*(s.To.X-s.From.X),
		Y: s.From.Y + pct*(s.To.Y-s.From.Y),
	}
}

// Centroid returns the arithmetic mean of the given points.
// The zero point is returned for an empty slice.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Point{X: sx / n, Y: sy / n}
}
