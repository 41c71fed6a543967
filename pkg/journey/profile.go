package journey

import (
	"time"

	"github.com/lintang-b-s/Transitx/pkg/datastructure"
	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/util"
)

// Profile. pareto front of every station towards one arrival station on one day.
type Profile struct {
	timeTable    timetable.TimeTable
	date         time.Time
	arrStationId int
	stationFront []*datastructure.ParetoFront

	connections timetable.Connections
	trips       timetable.Trips
}

// NewProfile copies fronts, stations without a front (or a nil one) get the empty front.
func NewProfile(tt timetable.TimeTable, date time.Time, arrStationId int, fronts []*datastructure.ParetoFront) (*Profile, error) {
	numStations := tt.Stations().Size()
	if arrStationId < 0 || arrStationId >= numStations {
		return nil, util.NewErrorf(util.ErrBadParamInput, "arrival station %d out of range [0, %d)", arrStationId, numStations)
	}
	if len(fronts) > numStations {
		return nil, util.NewErrorf(util.ErrBadParamInput, "%d fronts for %d stations", len(fronts), numStations)
	}

	connections, err := tt.ConnectionsFor(date)
	if err != nil {
		return nil, err
	}
	trips, err := tt.TripsFor(date)
	if err != nil {
		return nil, err
	}

	stationFront := make([]*datastructure.ParetoFront, numStations)
	for i := range stationFront {
		stationFront[i] = datastructure.EmptyParetoFront
		if i < len(fronts) && fronts[i] != nil {
			stationFront[i] = fronts[i]
		}
		if err := checkPayloads(i, stationFront[i], connections.Size()); err != nil {
			return nil, err
		}
	}

	return &Profile{
		timeTable:    tt,
		date:         date,
		arrStationId: arrStationId,
		stationFront: stationFront,
		connections:  connections,
		trips:        trips,
	}, nil
}

// checkPayloads rejects criteria whose payload points past the connections of the day.
func checkPayloads(stationId int, pf *datastructure.ParetoFront, numConnections int) error {
	var err error
	pf.ForEach(func(c datastructure.PackedCriteria) {
		if connId := datastructure.Unpack24(c.Payload()); err == nil && connId >= numConnections {
			err = util.NewErrorf(util.ErrBadParamInput, "station %d: criteria %#x points to connection %d of %d",
				stationId, uint64(c), connId, numConnections)
		}
	})
	return err
}

func (p *Profile) TimeTable() timetable.TimeTable {
	return p.timeTable
}

func (p *Profile) Date() time.Time {
	return p.date
}

func (p *Profile) ArrStationId() int {
	return p.arrStationId
}

func (p *Profile) Connections() timetable.Connections {
	return p.connections
}

func (p *Profile) Trips() timetable.Trips {
	return p.trips
}

func (p *Profile) NumStations() int {
	return len(p.stationFront)
}

func (p *Profile) ForStation(stationId int) *datastructure.ParetoFront {
	return p.stationFront[stationId]
}

/*
ProfileBuilder. one front builder per station and per trip, filled by a search over the connections of the day.
builders are created lazily, each one is owned by its station or trip and never shared.
*/
type ProfileBuilder struct {
	timeTable    timetable.TimeTable
	date         time.Time
	arrStationId int

	stationFront []*datastructure.ParetoFrontBuilder
	tripFront    []*datastructure.ParetoFrontBuilder
}

func NewProfileBuilder(tt timetable.TimeTable, date time.Time, arrStationId int) (*ProfileBuilder, error) {
	numStations := tt.Stations().Size()
	if arrStationId < 0 || arrStationId >= numStations {
		return nil, util.NewErrorf(util.ErrBadParamInput, "arrival station %d out of range [0, %d)", arrStationId, numStations)
	}
	trips, err := tt.TripsFor(date)
	if err != nil {
		return nil, err
	}
	return &ProfileBuilder{
		timeTable:    tt,
		date:         date,
		arrStationId: arrStationId,
		stationFront: make([]*datastructure.ParetoFrontBuilder, numStations),
		tripFront:    make([]*datastructure.ParetoFrontBuilder, trips.Size()),
	}, nil
}

// ForStation returns the builder of a station, nil if none was set.
func (pb *ProfileBuilder) ForStation(stationId int) *datastructure.ParetoFrontBuilder {
	return pb.stationFront[stationId]
}

func (pb *ProfileBuilder) SetForStation(stationId int, b *datastructure.ParetoFrontBuilder) {
	pb.stationFront[stationId] = b
}

// StationBuilder returns the builder of a station, creating an empty one first if needed.
func (pb *ProfileBuilder) StationBuilder(stationId int) *datastructure.ParetoFrontBuilder {
	if pb.stationFront[stationId] == nil {
		pb.stationFront[stationId] = datastructure.NewParetoFrontBuilder()
	}
	return pb.stationFront[stationId]
}

func (pb *ProfileBuilder) ForTrip(tripId int) *datastructure.ParetoFrontBuilder {
	return pb.tripFront[tripId]
}

func (pb *ProfileBuilder) SetForTrip(tripId int, b *datastructure.ParetoFrontBuilder) {
	pb.tripFront[tripId] = b
}

func (pb *ProfileBuilder) TripBuilder(tripId int) *datastructure.ParetoFrontBuilder {
	if pb.tripFront[tripId] == nil {
		pb.tripFront[tripId] = datastructure.NewParetoFrontBuilder()
	}
	return pb.tripFront[tripId]
}

// Build freezes the station builders, the trip builders are search state and are dropped.
func (pb *ProfileBuilder) Build() (*Profile, error) {
	fronts := make([]*datastructure.ParetoFront, len(pb.stationFront))
	for i, b := range pb.stationFront {
		if b != nil {
			fronts[i] = b.Build()
		}
	}
	return NewProfile(pb.timeTable, pb.date, pb.arrStationId, fronts)
}
