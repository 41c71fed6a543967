package controllers

import (
	"time"

	"github.com/lintang-b-s/Transitx/pkg/engine"
	"github.com/lintang-b-s/Transitx/pkg/geo"
	"github.com/lintang-b-s/Transitx/pkg/journey"
)

type journeysRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type journeysBatchRequest struct {
	Date  string   `json:"date" validate:"required,datetime=2006-01-02"`
	Froms []string `json:"from" validate:"required,min=1,max=16,dive,required"`
	To    string   `json:"to" validate:"required"`
}

type stationRequest struct {
	Name string `json:"name" validate:"required"`
}

type nearbyStationsRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
	Radius float64 `json:"radius" validate:"gt=0,lte=50"`
	Limit  int     `json:"limit" validate:"gte=0,lte=100"`
}

type stopResponse struct {
	Name     string  `json:"name"`
	Platform string  `json:"platform,omitempty"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

func newStopResponse(s journey.Stop) stopResponse {
	return stopResponse{
		Name:     s.Name,
		Platform: s.PlatformName,
		Lat:      s.Latitude,
		Lon:      s.Longitude,
	}
}

type intermediateStopResponse struct {
	Stop      stopResponse `json:"stop"`
	Arrival   time.Time    `json:"arrival"`
	Departure time.Time    `json:"departure"`
}

type legResponse struct {
	Kind              string                     `json:"kind"`
	From              stopResponse               `json:"from"`
	To                stopResponse               `json:"to"`
	Departure         time.Time                  `json:"departure"`
	Arrival           time.Time                  `json:"arrival"`
	DurationMinutes   int                        `json:"duration_minutes"`
	Vehicle           string                     `json:"vehicle,omitempty"`
	Route             string                     `json:"route,omitempty"`
	Destination       string                     `json:"destination,omitempty"`
	IntermediateStops []intermediateStopResponse `json:"intermediate_stops,omitempty"`
	Polyline          string                     `json:"polyline"`
}

// newLegResponse. the polyline joins the stops of the leg in order.
func newLegResponse(l journey.Leg) legResponse {
	resp := legResponse{
		Kind:            l.Kind().String(),
		From:            newStopResponse(l.DepStop()),
		To:              newStopResponse(l.ArrStop()),
		Departure:       l.DepTime(),
		Arrival:         l.ArrTime(),
		DurationMinutes: int(l.Duration().Minutes()),
	}
	if t, ok := l.(*journey.TransportLeg); ok {
		resp.Vehicle = t.Vehicle.String()
		resp.Route = t.Route
		resp.Destination = t.Destination
	}

	coords := []geo.Coordinate{geo.NewCoordinate(l.DepStop().Latitude, l.DepStop().Longitude)}
	for _, s := range l.IntermediateStops() {
		resp.IntermediateStops = append(resp.IntermediateStops, intermediateStopResponse{
			Stop:      newStopResponse(s.Stop),
			Arrival:   s.ArrTime,
			Departure: s.DepTime,
		})
		coords = append(coords, geo.NewCoordinate(s.Stop.Latitude, s.Stop.Longitude))
	}
	coords = append(coords, geo.NewCoordinate(l.ArrStop().Latitude, l.ArrStop().Longitude))
	resp.Polyline = geo.EncodePolyline(coords)
	return resp
}

type journeyResponse struct {
	Departure       time.Time     `json:"departure"`
	Arrival         time.Time     `json:"arrival"`
	DurationMinutes int           `json:"duration_minutes"`
	Changes         int           `json:"changes"`
	Legs            []legResponse `json:"legs"`
}

func NewJourneysResponse(journeys []*journey.Journey) []journeyResponse {
	resp := make([]journeyResponse, 0, len(journeys))
	for _, j := range journeys {
		legs := make([]legResponse, 0, len(j.Legs()))
		for _, l := range j.Legs() {
			legs = append(legs, newLegResponse(l))
		}
		resp = append(resp, journeyResponse{
			Departure:       j.DepTime(),
			Arrival:         j.ArrTime(),
			DurationMinutes: int(j.Duration().Minutes()),
			Changes:         j.Changes(),
			Legs:            legs,
		})
	}
	return resp
}

type journeysFromResponse struct {
	From     string            `json:"from"`
	Journeys []journeyResponse `json:"journeys"`
}

func NewJourneysFromResponse(froms []string, all [][]*journey.Journey) []journeysFromResponse {
	resp := make([]journeysFromResponse, 0, len(froms))
	for i, from := range froms {
		resp = append(resp, journeysFromResponse{From: from, Journeys: NewJourneysResponse(all[i])})
	}
	return resp
}

type stationResponse struct {
	Id   int     `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func NewStationResponse(s engine.Station) stationResponse {
	return stationResponse{
		Id:   s.Id,
		Name: s.Name,
		Lat:  s.Coord.Lat,
		Lon:  s.Coord.Lon,
	}
}

type nearbyStationResponse struct {
	stationResponse
	DistanceKM     float64 `json:"distance_km"`
	WalkingMinutes int     `json:"walking_minutes"`
}

func NewNearbyStationsResponse(nearby []engine.NearbyStation) []nearbyStationResponse {
	resp := make([]nearbyStationResponse, 0, len(nearby))
	for _, s := range nearby {
		resp = append(resp, nearbyStationResponse{
			stationResponse: NewStationResponse(s.Station),
			DistanceKM:      s.DistKM,
			WalkingMinutes:  s.WalkMins,
		})
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
