package feed

import (
	"fmt"
	"io"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"github.com/rs/zerolog/log"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/transit-trajectory/network"
)

// GTFSRTSource polls a GTFS-Realtime TripUpdates feed. Trip ids are matched
// against vehicle journey codes; stop time updates are joined with the
// journey pattern's cumulative distances to produce observation sequences.
type GTFSRTSource struct {
	url        string
	httpClient *http.Client
}

func NewGTFSRTSource(url string, timeout time.Duration) *GTFSRTSource {
	return &GTFSRTSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Refresh fetches the feed once and swaps a fresh snapshot onto every journey
// it mentions. Journeys absent from the feed have their realtime payload
// cleared so stale vehicles do not outlive the feed that reported them.
// Returns the feed header epoch and the number of journeys updated.
func (s *GTFSRTSource) Refresh(net *network.Network) (int64, int, error) {
	fm, err := s.fetch()
	if err != nil {
		return 0, 0, err
	}

	epoch := time.Now().Unix()
	if fm.Header != nil && fm.Header.Timestamp != nil {
		epoch = int64(*fm.Header.Timestamp)
	}

	seen := map[string]struct{}{}
	applied := 0
	for _, e := range fm.Entity {
		tu := e.TripUpdate
		if tu == nil || tu.Trip == nil || tu.Trip.TripId == nil {
			continue
		}
		code := *tu.Trip.TripId
		vj, ok := net.VehicleJourneys[code]
		if !ok {
			log.Debug().Str("trip", code).Msg("trip update for unknown journey")
			continue
		}
		seen[code] = struct{}{}
		lv, ok := liveVehicleFromTripUpdate(vj, tu)
		if !ok {
			continue
		}
		vj.SetRealtime([]network.LiveVehicle{lv})
		applied++
	}

	for code, vj := range net.VehicleJourneys {
		if _, ok := seen[code]; !ok {
			vj.SetRealtime(nil)
		}
	}

	log.Info().Int64("epoch", epoch).Int("applied", applied).Msg("gtfsrt snapshot applied")
	return epoch, applied, nil
}

func (s *GTFSRTSource) fetch() (*gtfsrtpb.FeedMessage, error) {
	resp, err := s.httpClient.Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, s.url)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.url, err)
	}
	return &fm, nil
}

// liveVehicleFromTripUpdate joins stop time updates with the journey
// pattern's distances. Stops are matched in pattern order so a stop visited
// twice resolves to its next occurrence. Updates for unknown stops or with
// backwards timestamps are dropped; ok is false when nothing usable remains.
func liveVehicleFromTripUpdate(vj *network.VehicleJourney, tu *gtfsrtpb.TripUpdate) (network.LiveVehicle, bool) {
	number := vj.Code
	if tu.Vehicle != nil && tu.Vehicle.Id != nil && *tu.Vehicle.Id != "" {
		number = *tu.Vehicle.Id
	}

	obs := make([]network.TimedPoint, 0, len(tu.StopTimeUpdate))
	cursor := 0
	for _, stu := range tu.StopTimeUpdate {
		if stu.StopId == nil {
			continue
		}
		idx := -1
		for i := cursor; i < len(vj.Pattern.Stops); i++ {
			if vj.Pattern.Stops[i].Code == *stu.StopId {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		t, ok := stopTimeEpoch(stu)
		if !ok {
			continue
		}
		if len(obs) > 0 && t < obs[len(obs)-1].Time {
			continue
		}
		obs = append(obs, network.TimedPoint{Time: t, Distance: vj.Pattern.Distances[idx]})
		cursor = idx + 1
	}
	if len(obs) == 0 {
		return network.LiveVehicle{}, false
	}
	return network.LiveVehicle{Number: number, Observations: obs}, true
}

func stopTimeEpoch(stu *gtfsrtpb.TripUpdate_StopTimeUpdate) (int64, bool) {
	if stu.Arrival != nil && stu.Arrival.Time != nil {
		return *stu.Arrival.Time, true
	}
	if stu.Departure != nil && stu.Departure.Time != nil {
		return *stu.Departure.Time, true
	}
	return 0, false
}
