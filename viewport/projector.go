// Package viewport maps survey-grid coordinates into a bounded drawing
// viewport. One projector is built from the full stop set and reused for every
// point so stops, centroids and vehicles share a single consistent mapping.
package viewport

import (
	"github.com/theoremus-urban-solutions/transit-trajectory/geometry"
)

// Projector scales a source bounding box into a pixel viewport with one
// uniform scale factor, preserving aspect ratio and centering the axis that
// has slack.
type Projector struct {
	min     geometry.Point
	scale   float64
	offsetX float64
	offsetY float64
}

// NewProjector builds a projector from the source bounds and the viewport
// dimensions in pixels. Degenerate bounds (zero extent on both axes) map
// everything to the viewport center.
func NewProjector(min, max geometry.Point, width, height float64) *Projector {
	srcW := max.X - min.X
	srcH := max.Y - min.Y

	p := &Projector{min: min}
	switch {
	case srcW <= 0 && srcH <= 0:
		p.scale = 0
		p.offsetX = width / 2
		p.offsetY = height / 2
	case srcH <= 0 || (srcW > 0 && srcW/srcH > width/height):
		// Source is wider than the viewport: width binds, center vertically.
		p.scale = width / srcW
		p.offsetY = (height - srcH*p.scale) / 2
	default:
		// Height binds, center horizontally.
		p.scale = height / srcH
		p.offsetX = (width - srcW*p.scale) / 2
	}
	return p
}

// Project maps a source point into viewport coordinates.
func (p *Projector) Project(pt geometry.Point) geometry.Point {
	return geometry.Point{
		X: (pt.X-p.min.X)*p.scale + p.offsetX,
		Y: (pt.Y-p.min.Y)*p.scale + p.offsetY,
	}
}
