package network

import "sync/atomic"

// RealtimeState is an immutable snapshot of the live vehicles on a journey.
// A feed update builds a fresh state and installs it in one pointer store, so
// a reader holds either the old or the new snapshot, never a mix.
type RealtimeState struct {
	Vehicles []LiveVehicle
}

// VehicleJourney is one scheduled run of a journey pattern. The static
// schedule pairs each stop of the pattern with a passing time; Schedule and
// Pattern.Distances have the same length. Everything except the realtime
// payload is immutable after Build.
type VehicleJourney struct {
	Code     string
	Pattern  *JourneyPattern
	Schedule []TimedPoint

	realtime atomic.Pointer[RealtimeState]
}

// SetRealtime replaces the whole realtime payload. Passing an empty slice
// clears it.
func (vj *VehicleJourney) SetRealtime(vehicles []LiveVehicle) {
	if len(vehicles) == 0 {
		vj.realtime.Store(nil)
		return
	}
	vj.realtime.Store(&RealtimeState{Vehicles: vehicles})
}

// Realtime returns the current realtime snapshot, or nil when the journey
// carries no live data.
func (vj *VehicleJourney) Realtime() *RealtimeState {
	return vj.realtime.Load()
}

// ActiveAt reports whether t falls inside the closed time window of the
// static schedule or of at least one live vehicle's observations.
func (vj *VehicleJourney) ActiveAt(t int64) bool {
	if n := len(vj.Schedule); n > 0 {
		if vj.Schedule[0].Time <= t && t <= vj.Schedule[n-1].Time {
			return true
		}
	}
	if rt := vj.Realtime(); rt != nil {
		for _, v := range rt.Vehicles {
			if n := len(v.Observations); n > 0 {
				if v.Observations[0].Time <= t && t <= v.Observations[n-1].Time {
					return true
				}
			}
		}
	}
	return false
}
