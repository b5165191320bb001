package network

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transit-trajectory/geometry"
)

// Build constructs the full network from a raw dataset.
//
// Stop areas are built before stops so every Stop is created holding its
// final *StopArea; no entity is ever visible half-linked. Any unresolved
// code aborts the build with a *ReferenceError, and any non-monotonic
// schedule aborts with a *InvalidScheduleError.
func Build(raw RawNetwork) (*Network, error) {
	if err := validator.New().Struct(raw); err != nil {
		return nil, err
	}

	net := &Network{
		Stops:           make(map[string]*Stop, len(raw.ScheduledStopPoints)),
		StopAreas:       map[string]*StopArea{},
		JourneyPatterns: make(map[string]*JourneyPattern, len(raw.JourneyPatterns)),
		Links:           LinkSet{},
		VehicleJourneys: make(map[string]*VehicleJourney, len(raw.VehicleJourneys)),
	}

	// Areas first, then stops referencing them directly.
	for code, rs := range raw.ScheduledStopPoints {
		area, ok := net.StopAreas[rs.Area]
		if !ok {
			area = &StopArea{Code: rs.Area}
			net.StopAreas[rs.Area] = area
		}
		stop := &Stop{
			Code:     code,
			Name:     rs.Name,
			Position: geometry.Point{X: rs.X, Y: rs.Y},
			Area:     area,
		}
		area.Stops = append(area.Stops, stop)
		net.Stops[code] = stop
	}
	for _, area := range net.StopAreas {
		pts := make([]geometry.Point, len(area.Stops))
		for i, s := range area.Stops {
			pts[i] = s.Position
		}
		area.Center = geometry.Centroid(pts)
	}

	for code, rp := range raw.JourneyPatterns {
		jp, err := buildPattern(code, rp, net.Stops)
		if err != nil {
			return nil, err
		}
		net.JourneyPatterns[code] = jp
	}

	// Link registry over consecutive stop pairs; re-inserting an existing
	// key is a no-op, so shared pairs across patterns deduplicate.
	for _, jp := range net.JourneyPatterns {
		for i := 0; i+1 < len(jp.Stops); i++ {
			key := LinkKey(jp.Stops[i].Code, jp.Stops[i+1].Code)
			if _, ok := net.Links[key]; !ok {
				net.Links[key] = &Link{From: jp.Stops[i], To: jp.Stops[i+1]}
			}
		}
	}

	for code, rv := range raw.VehicleJourneys {
		vj, err := buildJourney(code, rv, net.JourneyPatterns)
		if err != nil {
			return nil, err
		}
		net.VehicleJourneys[code] = vj
	}

	log.Info().
		Int("stops", len(net.Stops)).
		Int("stop_areas", len(net.StopAreas)).
		Int("journey_patterns", len(net.JourneyPatterns)).
		Int("links", len(net.Links)).
		Int("vehicle_journeys", len(net.VehicleJourneys)).
		Msg("network built")
	return net, nil
}

func buildPattern(code string, rp RawJourneyPattern, stops map[string]*Stop) (*JourneyPattern, error) {
	if len(rp.PointsInSequence) != len(rp.Distances) {
		return nil, &InvalidScheduleError{Code: code, Reason: "stop and distance sequences differ in length"}
	}
	if rp.Distances[0] != 0 {
		return nil, &InvalidScheduleError{Code: code, Reason: "distances must start at 0"}
	}
	for i := 1; i < len(rp.Distances); i++ {
		if rp.Distances[i] < rp.Distances[i-1] {
			return nil, &InvalidScheduleError{Code: code, Reason: "distances must be non-decreasing"}
		}
	}
	jp := &JourneyPattern{
		Code:      code,
		Stops:     make([]*Stop, len(rp.PointsInSequence)),
		Distances: rp.Distances,
	}
	for i, stopCode := range rp.PointsInSequence {
		stop, ok := stops[stopCode]
		if !ok {
			return nil, &ReferenceError{Kind: "stop", Code: stopCode, In: code}
		}
		jp.Stops[i] = stop
	}
	return jp, nil
}

func buildJourney(code string, rv RawVehicleJourney, patterns map[string]*JourneyPattern) (*VehicleJourney, error) {
	jp, ok := patterns[rv.JourneyPatternRef]
	if !ok {
		return nil, &ReferenceError{Kind: "journey pattern", Code: rv.JourneyPatternRef, In: code}
	}
	if len(rv.Times) != len(jp.Stops) {
		return nil, &InvalidScheduleError{Code: code, Reason: "times do not align with the pattern's stop sequence"}
	}
	vj := &VehicleJourney{
		Code:     code,
		Pattern:  jp,
		Schedule: make([]TimedPoint, len(rv.Times)),
	}
	for i, t := range rv.Times {
		if i > 0 && t < rv.Times[i-1] {
			return nil, &InvalidScheduleError{Code: code, Reason: "times must be non-decreasing"}
		}
		vj.Schedule[i] = TimedPoint{Time: t, Distance: jp.Distances[i]}
	}
	if len(rv.Realtime) > 0 {
		vehicles, err := LiveVehiclesFromRaw(code, rv.Realtime)
		if err != nil {
			return nil, err
		}
		vj.SetRealtime(vehicles)
	}
	return vj, nil
}

// LiveVehiclesFromRaw converts raw observation sequences into live vehicles.
// Also used by feed ingestion when a snapshot arrives after load. Vehicle
// numbers are opaque identifiers and are not cross-referenced.
func LiveVehiclesFromRaw(journeyCode string, raw []RawLiveVehicle) ([]LiveVehicle, error) {
	vehicles := make([]LiveVehicle, 0, len(raw))
	for _, rlv := range raw {
		if len(rlv.Times) != len(rlv.Distances) {
			return nil, &InvalidScheduleError{Code: journeyCode, Reason: "vehicle " + rlv.VehicleNumber + ": times and distances differ in length"}
		}
		obs := make([]TimedPoint, len(rlv.Times))
		for i := range rlv.Times {
			if i > 0 && rlv.Times[i] < rlv.Times[i-1] {
				return nil, &InvalidScheduleError{Code: journeyCode, Reason: "vehicle " + rlv.VehicleNumber + ": observation times must be non-decreasing"}
			}
			obs[i] = TimedPoint{Time: rlv.Times[i], Distance: rlv.Distances[i]}
		}
		vehicles = append(vehicles, LiveVehicle{Number: rlv.VehicleNumber, Observations: obs})
	}
	return vehicles, nil
}
