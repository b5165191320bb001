package trajectory

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-trajectory/network"
)

// journeyWithSchedule wraps a bare schedule in a VehicleJourney for
// classification tests that need no pattern geometry.
func journeyWithSchedule(sched []network.TimedPoint) *network.VehicleJourney {
	return &network.VehicleJourney{Code: "T", Schedule: sched}
}

func TestStatusAtSingleSegment(t *testing.T) {
	// Segment 1000s/0m -> 1200s/100m; theoretical time at 50m is 1100.
	vj := journeyWithSchedule([]network.TimedPoint{{Time: 1000, Distance: 0}, {Time: 1200, Distance: 100}})

	cases := []struct {
		name string
		time int64
		dist float64
		want Status
	}{
		{"well within window", 1150, 50, StatusOnTime},
		{"lower window edge inclusive", 1085, 50, StatusOnTime},
		{"just under lower edge", 1084, 50, StatusEarly},
		{"clearly early", 1080, 50, StatusEarly},
		{"upper window edge inclusive", 1220, 50, StatusOnTime},
		{"just past upper edge", 1221, 50, StatusLate},
		{"very late", 1500, 50, StatusLate},
		{"distance beyond schedule", 1100, 150, StatusUndefined},
		{"negative distance", 1100, -1, StatusUndefined},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusAt(vj, tc.time, tc.dist); got != tc.want {
				t.Errorf("StatusAt(%d, %v) = %v, want %v", tc.time, tc.dist, got, tc.want)
			}
		})
	}
}

func TestStatusAtSegmentBoundaries(t *testing.T) {
	vj := journeyWithSchedule([]network.TimedPoint{{Time: 0, Distance: 0}, {Time: 100, Distance: 40}, {Time: 200, Distance: 100}})

	// Distance exactly at a shared sample resolves in the first covering
	// segment; theoretical time is the sample's own time either way.
	if got := StatusAt(vj, 100, 40); got != StatusOnTime {
		t.Errorf("on-schedule at sample distance = %v, want ONTIME", got)
	}
	if got := StatusAt(vj, 0, 0); got != StatusOnTime {
		t.Errorf("at origin = %v, want ONTIME", got)
	}
	if got := StatusAt(vj, 200, 100); got != StatusOnTime {
		t.Errorf("at terminus = %v, want ONTIME", got)
	}
}

func TestStatusAtDwellSegment(t *testing.T) {
	// Dwell covers one distance with two times; the earlier time is the
	// theoretical reference.
	vj := journeyWithSchedule([]network.TimedPoint{{Time: 0, Distance: 0}, {Time: 100, Distance: 40}, {Time: 160, Distance: 40}, {Time: 300, Distance: 100}})
	if got := StatusAt(vj, 100, 40); got != StatusOnTime {
		t.Errorf("arriving on the dwell start = %v, want ONTIME", got)
	}
	if got := StatusAt(vj, 300, 40); got != StatusLate {
		t.Errorf("200s past the dwell start = %v, want LATE", got)
	}
}

// For a fixed distance, decreasing time may only move the verdict toward
// EARLY, never back toward LATE.
func TestStatusAtMonotonicInTime(t *testing.T) {
	vj := journeyWithSchedule([]network.TimedPoint{{Time: 1000, Distance: 0}, {Time: 1200, Distance: 100}})

	rank := map[Status]int{StatusEarly: 0, StatusOnTime: 1, StatusLate: 2}
	prev := StatusEarly
	for tm := int64(900); tm <= 1500; tm += 5 {
		got := StatusAt(vj, tm, 50)
		if rank[got] < rank[prev] {
			t.Fatalf("status went backwards at t=%d: %v after %v", tm, got, prev)
		}
		prev = got
	}
}

func TestDeviationAt(t *testing.T) {
	vj := testNetwork(t).VehicleJourneys["T2"]

	// Theoretical time at distance 40 is 1100.
	dev, ok := DeviationAt(vj, 1150, 40)
	if !ok || dev != 50 {
		t.Errorf("DeviationAt(1150, 40) = %d, %v; want 50, true", dev, ok)
	}
	dev, ok = DeviationAt(vj, 1080, 40)
	if !ok || dev != -20 {
		t.Errorf("DeviationAt(1080, 40) = %d, %v; want -20, true", dev, ok)
	}
	if _, ok := DeviationAt(vj, 1100, 150); ok {
		t.Error("distance beyond the schedule must report not ok")
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusEarly:     "EARLY",
		StatusOnTime:    "ONTIME",
		StatusLate:      "LATE",
		StatusUndefined: "UNDEFINED",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("String() = %q, want %q", s.String(), want)
		}
	}
	b, err := StatusLate.MarshalJSON()
	if err != nil || string(b) != `"LATE"` {
		t.Errorf("MarshalJSON = %s, %v", b, err)
	}
}
