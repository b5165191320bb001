// Package geometry provides the 2D primitives used by the trajectory engine:
// points in the survey grid, directed segments, linear interpolation along a
// segment, and centroid computation over a set of points.
package geometry
