package trajectory

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-trajectory/network"
)

func TestDistanceAtTimeInterpolates(t *testing.T) {
	sched := []network.TimedPoint{{Time: 0, Distance: 0}, {Time: 100, Distance: 50}, {Time: 200, Distance: 100}}

	cases := []struct {
		name string
		time int64
		want float64
	}{
		{"before first clamps", -10, 0},
		{"at first", 0, 0},
		{"quarter into first segment", 25, 12.5},
		{"between samples", 75, 37.5},
		{"at middle sample", 100, 50},
		{"in second segment", 150, 75},
		{"at last sample", 200, 100},
		{"after last clamps", 500, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DistanceAtTime(sched, tc.time); got != tc.want {
				t.Errorf("DistanceAtTime(%d) = %v, want %v", tc.time, got, tc.want)
			}
		})
	}
}

// Every sample time must reproduce its own distance exactly.
func TestDistanceAtTimeExactAtSamples(t *testing.T) {
	sched := []network.TimedPoint{{Time: 0, Distance: 0}, {Time: 60, Distance: 13.7}, {Time: 125, Distance: 48.2}, {Time: 300, Distance: 48.2}, {Time: 460, Distance: 90}}
	for i, tp := range sched {
		if got := DistanceAtTime(sched, tp.Time); got != tp.Distance {
			t.Errorf("sample %d: DistanceAtTime(%d) = %v, want %v", i, tp.Time, got, tp.Distance)
		}
	}
}

func TestDistanceAtTimeSingleSample(t *testing.T) {
	sched := []network.TimedPoint{{Time: 50, Distance: 10}}
	for _, q := range []int64{0, 50, 100} {
		if got := DistanceAtTime(sched, q); got != 10 {
			t.Errorf("DistanceAtTime(%d) = %v, want 10", q, got)
		}
	}
}

func TestDistanceAtTimeDwellSegment(t *testing.T) {
	// Two samples share a time; a query at that instant must resolve against
	// the first segment ending there and hold the earlier distance, not fall
	// through to the later one.
	sched := []network.TimedPoint{{Time: 0, Distance: 0}, {Time: 100, Distance: 40}, {Time: 100, Distance: 60}, {Time: 200, Distance: 100}}
	if got := DistanceAtTime(sched, 100); got != 40 {
		t.Errorf("DistanceAtTime(100) = %v, want 40", got)
	}
	if got := DistanceAtTime(sched, 50); got != 20 {
		t.Errorf("DistanceAtTime(50) = %v, want 20", got)
	}
	if got := DistanceAtTime(sched, 150); got != 80 {
		t.Errorf("DistanceAtTime(150) = %v, want 80", got)
	}

	// Three samples at one instant still hold the earliest distance.
	tripleDwell := []network.TimedPoint{{Time: 0, Distance: 0}, {Time: 100, Distance: 40}, {Time: 100, Distance: 60}, {Time: 100, Distance: 75}, {Time: 200, Distance: 100}}
	if got := DistanceAtTime(tripleDwell, 100); got != 40 {
		t.Errorf("DistanceAtTime(100) over a triple dwell = %v, want 40", got)
	}
	if got := DistanceAtTime(tripleDwell, 150); got != 87.5 {
		t.Errorf("DistanceAtTime(150) = %v, want 87.5", got)
	}
}

func TestPositionAtDistance(t *testing.T) {
	net := testNetwork(t)
	jp := net.JourneyPatterns["P1"]

	// Pattern distances [0, 40, 100]; 70 falls halfway through the second
	// link, whose centroid segment runs ALPHA center -> BETA center.
	got := PositionAtDistance(jp, net.Links, 70)
	alpha := net.StopAreas["ALPHA"].Center
	beta := net.StopAreas["BETA"].Center
	wantX := alpha.X + 0.5*(beta.X-alpha.X)
	wantY := alpha.Y + 0.5*(beta.Y-alpha.Y)
	if got.X != wantX || got.Y != wantY {
		t.Errorf("PositionAtDistance(70) = %v, want midpoint {%v %v}", got, wantX, wantY)
	}
}

func TestPositionAtDistanceBoundaries(t *testing.T) {
	net := testNetwork(t)
	jp := net.JourneyPatterns["P1"]
	beta := net.StopAreas["BETA"].Center
	alpha := net.StopAreas["ALPHA"].Center

	if got := PositionAtDistance(jp, net.Links, 100); got != beta {
		t.Errorf("final distance should land on the last centroid, got %v", got)
	}
	if got := PositionAtDistance(jp, net.Links, 150); got != beta {
		t.Errorf("beyond-final distance should clamp to the last centroid, got %v", got)
	}
	if got := PositionAtDistance(jp, net.Links, -5); got != alpha {
		t.Errorf("negative distance should clamp to the start centroid, got %v", got)
	}
}
