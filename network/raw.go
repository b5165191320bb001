package network

// Raw dataset records as they appear in the input document, keyed by code.
// Codes are resolved to rich entities by Build.

// RawStop is a scheduled stop point record.
type RawStop struct {
	Name string  `json:"name" validate:"required"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Area string  `json:"area" validate:"required"`
}

// RawJourneyPattern is a route shape record. Both sequences have the same
// length and distances increase from 0.
type RawJourneyPattern struct {
	PointsInSequence []string  `json:"pointsInSequence" validate:"min=2"`
	Distances        []float64 `json:"distances" validate:"min=2"`
}

// RawLiveVehicle is one realtime vehicle observation sequence, carried on a
// vehicle journey record. Times and distances are aligned by index.
type RawLiveVehicle struct {
	VehicleNumber string    `json:"vehicleNumber" validate:"required"`
	Times         []int64   `json:"times" validate:"min=1"`
	Distances     []float64 `json:"distances" validate:"min=1"`
}

// RawVehicleJourney is one scheduled run. Times align with the referenced
// pattern's stop sequence.
type RawVehicleJourney struct {
	JourneyPatternRef string           `json:"journeyPatternRef" validate:"required"`
	Times             []int64          `json:"times" validate:"min=2"`
	Realtime          []RawLiveVehicle `json:"realtime,omitempty" validate:"omitempty,dive"`
}

// RawNetwork is the whole input dataset.
type RawNetwork struct {
	ScheduledStopPoints map[string]RawStop           `json:"scheduledStopPoints" validate:"required,min=1,dive"`
	JourneyPatterns     map[string]RawJourneyPattern `json:"journeyPatterns" validate:"omitempty,dive"`
	VehicleJourneys     map[string]RawVehicleJourney `json:"vehicleJourneys" validate:"omitempty,dive"`
}
