package journey

import (
	"time"

	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/util"
)

type LegKind uint8

const (
	FOOT LegKind = iota
	TRANSPORT
)

func (k LegKind) String() string {
	if k == FOOT {
		return "foot"
	}
	return "transport"
}

func (k LegKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Leg is either a *TransportLeg or a *FootLeg.
type Leg interface {
	Kind() LegKind
	DepStop() Stop
	DepTime() time.Time
	ArrStop() Stop
	ArrTime() time.Time
	IntermediateStops() []IntermediateStop
	Duration() time.Duration
}

// IntermediateStop. a stop a vehicle serves between the two ends of a leg.
type IntermediateStop struct {
	Stop    Stop      `json:"stop"`
	ArrTime time.Time `json:"arr_time"`
	DepTime time.Time `json:"dep_time"`
}

func NewIntermediateStop(stop Stop, arrTime, depTime time.Time) (IntermediateStop, error) {
	if depTime.Before(arrTime) {
		return IntermediateStop{}, util.NewErrorf(util.ErrBadParamInput, "intermediate stop %s left at %v before arrival at %v",
			stop, depTime, arrTime)
	}
	return IntermediateStop{Stop: stop, ArrTime: arrTime, DepTime: depTime}, nil
}

type legEnds struct {
	From      Stop      `json:"from"`
	Departure time.Time `json:"departure"`
	To        Stop      `json:"to"`
	Arrival   time.Time `json:"arrival"`
}

func newLegEnds(from Stop, dep time.Time, to Stop, arr time.Time) (legEnds, error) {
	if arr.Before(dep) {
		return legEnds{}, util.NewErrorf(util.ErrBadParamInput, "leg %s -> %s arrives at %v before leaving at %v",
			from, to, arr, dep)
	}
	return legEnds{From: from, Departure: dep, To: to, Arrival: arr}, nil
}

func (e legEnds) DepStop() Stop {
	return e.From
}

func (e legEnds) DepTime() time.Time {
	return e.Departure
}

func (e legEnds) ArrStop() Stop {
	return e.To
}

func (e legEnds) ArrTime() time.Time {
	return e.Arrival
}

func (e legEnds) Duration() time.Duration {
	return e.Arrival.Sub(e.Departure)
}

type TransportLeg struct {
	legEnds
	Stops       []IntermediateStop `json:"intermediate_stops"`
	Vehicle     timetable.Vehicle  `json:"vehicle"`
	Route       string             `json:"route"`
	Destination string             `json:"destination"`
}

func NewTransportLeg(from Stop, dep time.Time, to Stop, arr time.Time, stops []IntermediateStop,
	vehicle timetable.Vehicle, route, destination string) (*TransportLeg, error) {
	ends, err := newLegEnds(from, dep, to, arr)
	if err != nil {
		return nil, err
	}
	return &TransportLeg{
		legEnds:     ends,
		Stops:       append([]IntermediateStop{}, stops...),
		Vehicle:     vehicle,
		Route:       route,
		Destination: destination,
	}, nil
}

func (l *TransportLeg) Kind() LegKind {
	return TRANSPORT
}

func (l *TransportLeg) IntermediateStops() []IntermediateStop {
	return l.Stops
}

type FootLeg struct {
	legEnds
}

func NewFootLeg(from Stop, dep time.Time, to Stop, arr time.Time) (*FootLeg, error) {
	ends, err := newLegEnds(from, dep, to, arr)
	if err != nil {
		return nil, err
	}
	return &FootLeg{legEnds: ends}, nil
}

func (l *FootLeg) Kind() LegKind {
	return FOOT
}

func (l *FootLeg) IntermediateStops() []IntermediateStop {
	return nil
}

// IsTransfer reports whether the walk stays inside one station.
func (l *FootLeg) IsTransfer() bool {
	return l.From.Name == l.To.Name
}
