package trajectory

import (
	"github.com/theoremus-urban-solutions/transit-trajectory/network"
)

// Status classifies an observed (time, distance) pair against the static
// schedule.
type Status int

const (
	StatusUndefined Status = iota
	StatusEarly
	StatusOnTime
	StatusLate
)

// Tolerance window around the theoretical time. Asymmetric: running early is
// a bigger rider-facing problem than being moderately late.
const (
	earlyToleranceSec = 15
	lateToleranceSec  = 120
)

func (s Status) String() string {
	switch s {
	case StatusEarly:
		return "EARLY"
	case StatusOnTime:
		return "ONTIME"
	case StatusLate:
		return "LATE"
	default:
		return "UNDEFINED"
	}
}

// MarshalJSON renders the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// StatusAt compares an observed time and distance against the journey's
// static schedule. The theoretical time at the observed distance is
// interpolated within the schedule segment covering it; the observation is
// then classified against the [-15s, +120s] window. Distances outside every
// static segment yield StatusUndefined.
func StatusAt(vj *network.VehicleJourney, t int64, distance float64) Status {
	theoretical, ok := theoreticalTimeAt(vj.Schedule, distance)
	if !ok {
		return StatusUndefined
	}
	switch {
	case t < theoretical-earlyToleranceSec:
		return StatusEarly
	case t <= theoretical+lateToleranceSec:
		return StatusOnTime
	default:
		return StatusLate
	}
}

// DeviationAt reports how many seconds the observed time runs behind the
// theoretical time at the observed distance. Negative means running early.
// ok is false where the status would be undefined.
func DeviationAt(vj *network.VehicleJourney, t int64, distance float64) (int64, bool) {
	theoretical, ok := theoreticalTimeAt(vj.Schedule, distance)
	if !ok {
		return 0, false
	}
	return t - theoretical, true
}

// theoreticalTimeAt inverts the schedule interpolation: the time the vehicle
// should have reached the given distance. ok is false when no segment's
// distance range contains it.
func theoreticalTimeAt(schedule []network.TimedPoint, distance float64) (int64, bool) {
	for i := 0; i+1 < len(schedule); i++ {
		lo, hi := schedule[i], schedule[i+1]
		if distance < lo.Distance || distance > hi.Distance {
			continue
		}
		span := hi.Distance - lo.Distance
		// A dwell segment covers a single distance; the earlier time stands.
		if span == 0 {
			return lo.Time, true
		}
		p := (distance - lo.Distance) / span
		return lo.Time + int64(p*float64(hi.Time-lo.Time)+0.5), true
	}
	return 0, false
}
