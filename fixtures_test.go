package trajectory

import (
	"testing"

	"github.com/theoremus-urban-solutions/transit-trajectory/network"
)

// testNetwork builds the shared fixture: two stop areas (ALPHA with two
// stops centered at {1,1}, BETA with one stop at {10,0}), a three-stop
// pattern with distances [0,40,100], and two journeys.
func testNetwork(t *testing.T) *network.Network {
	t.Helper()
	raw := network.RawNetwork{
		ScheduledStopPoints: map[string]network.RawStop{
			"A1": {Name: "Alpha 1", X: 0, Y: 0, Area: "ALPHA"},
			"A2": {Name: "Alpha 2", X: 2, Y: 2, Area: "ALPHA"},
			"B1": {Name: "Beta 1", X: 10, Y: 0, Area: "BETA"},
		},
		JourneyPatterns: map[string]network.RawJourneyPattern{
			"P1": {PointsInSequence: []string{"A1", "A2", "B1"}, Distances: []float64{0, 40, 100}},
		},
		VehicleJourneys: map[string]network.RawVehicleJourney{
			"T1": {JourneyPatternRef: "P1", Times: []int64{0, 100, 200}},
			"T2": {JourneyPatternRef: "P1", Times: []int64{1000, 1100, 1200}},
		},
	}
	net, err := network.Build(raw)
	if err != nil {
		t.Fatalf("fixture build: %v", err)
	}
	return net
}
