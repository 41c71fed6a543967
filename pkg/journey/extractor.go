package journey

import (
	"time"

	"github.com/lintang-b-s/Transitx/pkg/datastructure"
	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

type journeyExtractor struct {
	profile     *Profile
	tt          timetable.TimeTable
	connections timetable.Connections
	trips       timetable.Trips
	log         *zap.Logger
}

/*
ExtractJourneys rebuilds one journey per criteria in the front of depStationId, sorted by departure then arrival.

the payload of a criteria holds the first connection to take and the number of further stops to ride on its trip.
after each ride with changes left, the criteria of the next ride is the one with the same arrival and one change
less in the front of the station where the ride ends. a candidate whose chain cannot be followed (missing
criteria or missing transfer) is skipped.
*/
func ExtractJourneys(p *Profile, depStationId int, log *zap.Logger) []*Journey {
	e := &journeyExtractor{
		profile:     p,
		tt:          p.TimeTable(),
		connections: p.Connections(),
		trips:       p.Trips(),
		log:         log,
	}

	var journeys []*Journey
	p.ForStation(depStationId).ForEach(func(c datastructure.PackedCriteria) {
		j, err := e.journey(depStationId, c)
		if err != nil {
			log.Debug("skipping journey candidate",
				zap.Int("station", depStationId),
				zap.Int("arr_mins", c.ArrMins()),
				zap.Int("changes", c.Changes()),
				zap.Error(err))
			return
		}
		journeys = append(journeys, j)
	})

	slices.SortStableFunc(journeys, func(a, b *Journey) int {
		if c := a.DepTime().Compare(b.DepTime()); c != 0 {
			return c
		}
		return a.ArrTime().Compare(b.ArrTime())
	})
	return journeys
}

func (e *journeyExtractor) at(mins int) time.Time {
	d := e.profile.Date()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, mins, 0, 0, d.Location())
}

func (e *journeyExtractor) stop(stopId int) Stop {
	stations := e.tt.Stations()
	stationId := timetable.StationId(e.tt, stopId)
	return Stop{
		Name:         stations.Name(stationId),
		PlatformName: timetable.PlatformName(e.tt, stopId),
		Longitude:    stations.Longitude(stationId),
		Latitude:     stations.Latitude(stationId),
	}
}

func (e *journeyExtractor) journey(depStationId int, c datastructure.PackedCriteria) (*Journey, error) {
	var legs []Leg
	transfers := e.tt.Transfers()
	arrMins, changes := c.ArrMins(), c.Changes()
	connId, hops := datastructure.Unpack24(c.Payload()), datastructure.Unpack8(c.Payload())

	firstStop := e.connections.DepStopId(connId)
	if firstStation := timetable.StationId(e.tt, firstStop); firstStation != depStationId {
		mins, err := transfers.MinutesBetween(depStationId, firstStation)
		if err != nil {
			return nil, err
		}
		depMins := e.connections.DepMins(connId) - mins
		if c.HasDepMins() {
			depMins, _ = c.DepMins()
		}
		walk, err := NewFootLeg(e.stop(depStationId), e.at(depMins), e.stop(firstStop), e.at(depMins+mins))
		if err != nil {
			return nil, err
		}
		legs = append(legs, walk)
	}

	var lastConn int
	for {
		ride, last, err := e.ride(connId, hops)
		if err != nil {
			return nil, err
		}
		legs = append(legs, ride)
		lastConn = last

		if changes == 0 {
			break
		}
		changes--

		rideEnd := e.connections.ArrStopId(lastConn)
		next, err := e.profile.ForStation(timetable.StationId(e.tt, rideEnd)).Get(arrMins, changes)
		if err != nil {
			return nil, err
		}
		connId, hops = datastructure.Unpack24(next.Payload()), datastructure.Unpack8(next.Payload())

		nextStop := e.connections.DepStopId(connId)
		mins := 0
		if nextStop != rideEnd {
			mins, err = transfers.MinutesBetween(timetable.StationId(e.tt, rideEnd), timetable.StationId(e.tt, nextStop))
			if err != nil {
				return nil, err
			}
		}
		walkFrom := e.connections.ArrMins(lastConn)
		walk, err := NewFootLeg(e.stop(rideEnd), e.at(walkFrom), e.stop(nextStop), e.at(walkFrom+mins))
		if err != nil {
			return nil, err
		}
		legs = append(legs, walk)
	}

	lastStop := e.connections.ArrStopId(lastConn)
	arrStationId := e.profile.ArrStationId()
	if lastStation := timetable.StationId(e.tt, lastStop); lastStation != arrStationId {
		mins, err := transfers.MinutesBetween(lastStation, arrStationId)
		if err != nil {
			return nil, err
		}
		walkFrom := e.connections.ArrMins(lastConn)
		walk, err := NewFootLeg(e.stop(lastStop), e.at(walkFrom), e.stop(arrStationId), e.at(walkFrom+mins))
		if err != nil {
			return nil, err
		}
		legs = append(legs, walk)
	}

	return NewJourney(legs)
}

// ride follows hops successors from connId, it returns the leg and the last connection taken.
func (e *journeyExtractor) ride(connId, hops int) (*TransportLeg, int, error) {
	first, cur := connId, connId
	stops := make([]IntermediateStop, 0, hops)
	for i := 0; i < hops; i++ {
		next := e.connections.NextConnectionId(cur)
		if e.connections.TripPos(next) <= e.connections.TripPos(cur) {
			return nil, 0, util.NewErrorf(util.ErrNotFound, "trip of connection %d ends before %d stops", first, hops)
		}
		stop, err := NewIntermediateStop(e.stop(e.connections.ArrStopId(cur)),
			e.at(e.connections.ArrMins(cur)), e.at(e.connections.DepMins(next)))
		if err != nil {
			return nil, 0, err
		}
		stops = append(stops, stop)
		cur = next
	}

	tripId := e.connections.TripId(first)
	routeId := e.trips.RouteId(tripId)
	routes := e.tt.Routes()

	leg, err := NewTransportLeg(
		e.stop(e.connections.DepStopId(first)), e.at(e.connections.DepMins(first)),
		e.stop(e.connections.ArrStopId(cur)), e.at(e.connections.ArrMins(cur)),
		stops, routes.Vehicle(routeId), routes.Name(routeId), e.trips.Destination(tripId))
	if err != nil {
		return nil, 0, err
	}
	return leg, cur, nil
}
