// Package trajectory answers where every vehicle of a transit network is at
// an arbitrary point in time, and how its progress compares to the static
// schedule.
//
// The static model lives in the network subpackage. On top of it this
// package provides schedule interpolation, timeliness classification against
// an asymmetric tolerance window, an Engine tying the queries together, and
// an HTTP server exposing them.
package trajectory
