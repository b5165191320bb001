package trajectory

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/transit-trajectory/utils"
	"github.com/theoremus-urban-solutions/transit-trajectory/viewport"
)

type errorResponse struct {
	Error string `json:"error"`
}

type journeyPositions struct {
	Code     string            `json:"code"`
	Vehicles []VehiclePosition `json:"vehicles"`
}

type positionsResponse struct {
	Time     int64              `json:"time"`
	Journeys []journeyPositions `json:"journeys"`
}

type healthResponse struct {
	Status          string `json:"status"`
	Timestamp       string `json:"timestamp"`
	VehicleJourneys int    `json:"vehicle_journeys"`
	Stops           int    `json:"stops"`
	LastFeedEpoch   int64  `json:"last_feed_epoch"`
	LastFeedTime    string `json:"last_feed_time,omitempty"`
	ActiveNow       int    `json:"active_now"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// parseTimeParam reads the required ?time= query parameter.
func parseTimeParam(r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("time"))
	if raw == "" {
		return 0, false
	}
	t, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return t, true
}

// parseViewportParam reads an optional ?viewport=WxH parameter and builds a
// request-scoped projector over the engine's stop bounds.
func (s *Server) parseViewportParam(r *http.Request) *viewport.Projector {
	raw := strings.TrimSpace(r.URL.Query().Get("viewport"))
	if raw == "" {
		return nil
	}
	parts := strings.SplitN(strings.ToLower(raw), "x", 2)
	if len(parts) != 2 {
		return nil
	}
	w, errW := strconv.ParseFloat(parts[0], 64)
	h, errH := strconv.ParseFloat(parts[1], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return nil
	}
	min, max, ok := s.engine.Network().Bounds()
	if !ok {
		return nil
	}
	return viewport.NewProjector(min, max, w, h)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	net := s.engine.Network()
	lastFeed := int64(0)
	if s.collector != nil {
		lastFeed = s.collector.LastFeedEpochValue()
	}
	resp := healthResponse{
		Status:          "ok",
		Timestamp:       utils.Iso8601Now(),
		VehicleJourneys: len(net.VehicleJourneys),
		Stops:           len(net.Stops),
		LastFeedEpoch:   lastFeed,
		ActiveNow:       len(s.engine.ActiveJourneys(time.Now().Unix())),
	}
	if lastFeed > 0 {
		resp.LastFeedTime = utils.Iso8601FromUnixSeconds(lastFeed)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	t, ok := parseTimeParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "time must be an integer number of seconds"})
		return
	}
	key := memoKey("positions", r.URL.RawQuery)
	if buf, ok := s.cache.get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(buf)
		return
	}
	start := time.Now()

	proj := s.parseViewportParam(r)
	resp := positionsResponse{Time: t, Journeys: []journeyPositions{}}
	codes := s.engine.ActiveJourneys(t)
	for _, code := range codes {
		// Cannot fail for codes ActiveJourneys just returned.
		vehicles, _ := s.engine.PositionsAt(code, t)
		if proj != nil {
			for i := range vehicles {
				vehicles[i].Position = proj.Project(vehicles[i].Position)
			}
		}
		resp.Journeys = append(resp.Journeys, journeyPositions{Code: code, Vehicles: vehicles})
	}

	buf, _ := json.Marshal(resp)
	s.cache.set(key, buf)
	if s.collector != nil {
		s.collector.PositionQueries.Inc()
		s.collector.QueryDuration.Observe(time.Since(start).Seconds())
		s.collector.ActiveTrips.Set(float64(len(codes)))
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}

func (s *Server) handleJourneyPositions(w http.ResponseWriter, r *http.Request) {
	t, ok := parseTimeParam(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "time must be an integer number of seconds"})
		return
	}
	code := chi.URLParam(r, "code")
	key := memoKey("journey", code, r.URL.RawQuery)
	if buf, ok := s.cache.get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(buf)
		return
	}

	vehicles, err := s.engine.PositionsAt(code, t)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if proj := s.parseViewportParam(r); proj != nil {
		for i := range vehicles {
			vehicles[i].Position = proj.Project(vehicles[i].Position)
		}
	}
	if s.collector != nil {
		s.collector.PositionQueries.Inc()
	}

	buf, _ := json.Marshal(positionsResponse{
		Time:     t,
		Journeys: []journeyPositions{{Code: code, Vehicles: vehicles}},
	})
	s.cache.set(key, buf)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}
