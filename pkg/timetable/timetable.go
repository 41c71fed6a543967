package timetable

import (
	"time"

	"github.com/lintang-b-s/Transitx/pkg/datastructure"
)

type Indexed interface {
	Size() int
}

type Stations interface {
	Indexed
	Name(id int) string
	Longitude(id int) float64
	Latitude(id int) float64
}

type StationAliases interface {
	Indexed
	Alias(id int) string
	StationName(id int) string
}

type Platforms interface {
	Indexed
	Name(id int) string
	StationId(id int) int
}

type Routes interface {
	Indexed
	Name(id int) string
	Vehicle(id int) Vehicle
}

type Trips interface {
	Indexed
	RouteId(id int) int
	Destination(id int) string
}

type Connections interface {
	Indexed
	DepStopId(id int) int
	DepMins(id int) int
	ArrStopId(id int) int
	ArrMins(id int) int
	TripId(id int) int
	TripPos(id int) int
	NextConnectionId(id int) int
}

type Transfers interface {
	Indexed
	DepStationId(id int) int
	ArrStationId(id int) int
	Minutes(id int) int
	ArrivingAt(stationId int) datastructure.PackedRange
	MinutesBetween(depStationId, arrStationId int) (int, error)
}

// TimeTable. static tables of a network plus the trips and connections of each service day.
type TimeTable interface {
	Stations() Stations
	StationAliases() StationAliases
	Platforms() Platforms
	Routes() Routes
	Transfers() Transfers
	TripsFor(date time.Time) (Trips, error)
	ConnectionsFor(date time.Time) (Connections, error)
}

// stop ids below the number of stations are stations, the rest are platforms.

func IsStationId(tt TimeTable, stopId int) bool {
	return stopId < tt.Stations().Size()
}

func IsPlatformId(tt TimeTable, stopId int) bool {
	return stopId >= tt.Stations().Size()
}

// StationId returns the station of a stop.
func StationId(tt TimeTable, stopId int) int {
	if IsStationId(tt, stopId) {
		return stopId
	}
	return tt.Platforms().StationId(stopId - tt.Stations().Size())
}

// PlatformName returns the platform name of a stop, empty for a station.
func PlatformName(tt TimeTable, stopId int) string {
	if IsStationId(tt, stopId) {
		return ""
	}
	return tt.Platforms().Name(stopId - tt.Stations().Size())
}

const dateLayout = "2006-01-02"

func DateDir(date time.Time) string {
	return date.Format(dateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
