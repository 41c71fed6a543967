package timetabletest

import (
	"time"

	"github.com/lintang-b-s/Transitx/pkg/timetable"
)

var SampleDate = time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC)

// stop and connection ids of the sample network.
const (
	Lausanne = iota
	Renens
	Morges
	Geneve
	GeneveAeroport

	LausannePl1
	LausannePl3
	GenevePl2
)

const (
	ConnBusGeneve = iota
	ConnIRMorges
	ConnS1Renens
	ConnS1Lausanne
	ConnIRLausanne
)

/*
Sample. a small network around Lake Geneva.

	IR 15   Lausanne pl 1 08:00 -> Morges 08:10, Morges 08:11 -> Geneve pl 2 08:40
	S1      Lausanne pl 3 08:05 -> Renens 08:10, Renens 08:11 -> Morges 08:17
	bus 5   Geneve 08:50 -> Geneve-Aeroport 09:05

connections are listed by decreasing departure time.
*/
func Sample() Dataset {
	return Dataset{
		Stations: []Station{
			{Name: "Lausanne", Lon: 6.629091, Lat: 46.516792},
			{Name: "Renens VD", Lon: 6.578774, Lat: 46.537154},
			{Name: "Morges", Lon: 6.494189, Lat: 46.510743},
			{Name: "Genève", Lon: 6.142296, Lat: 46.210208},
			{Name: "Genève-Aéroport", Lon: 6.109233, Lat: 46.232376},
		},
		Aliases: []Alias{
			{Alias: "Losanna", StationName: "Lausanne"},
			{Alias: "Genf", StationName: "Genève"},
		},
		Platforms: []Platform{
			{Name: "1", StationId: Lausanne},
			{Name: "3", StationId: Lausanne},
			{Name: "2", StationId: Geneve},
		},
		Routes: []Route{
			{Name: "IR 15", Vehicle: timetable.TRAIN},
			{Name: "S1", Vehicle: timetable.TRAIN},
			{Name: "5", Vehicle: timetable.BUS},
		},
		Transfers: []Transfer{
			{DepStationId: Geneve, ArrStationId: GeneveAeroport, Minutes: 25},
			{DepStationId: Lausanne, ArrStationId: Lausanne, Minutes: 5},
			{DepStationId: Renens, ArrStationId: Lausanne, Minutes: 40},
			{DepStationId: Geneve, ArrStationId: Geneve, Minutes: 4},
			{DepStationId: Renens, ArrStationId: Renens, Minutes: 2},
			{DepStationId: Morges, ArrStationId: Morges, Minutes: 2},
			{DepStationId: GeneveAeroport, ArrStationId: Geneve, Minutes: 25},
		},
		Days: []Day{
			{
				Date: SampleDate,
				Trips: []Trip{
					{RouteId: 0, Destination: "Genève-Aéroport"},
					{RouteId: 1, Destination: "Morges"},
					{RouteId: 2, Destination: "Genève-Aéroport"},
				},
				Connections: []Connection{
					{DepStopId: Geneve, DepMins: 530, ArrStopId: GeneveAeroport, ArrMins: 545, TripId: 2, TripPos: 0},
					{DepStopId: Morges, DepMins: 491, ArrStopId: GenevePl2, ArrMins: 520, TripId: 0, TripPos: 1},
					{DepStopId: Renens, DepMins: 491, ArrStopId: Morges, ArrMins: 497, TripId: 1, TripPos: 1},
					{DepStopId: LausannePl3, DepMins: 485, ArrStopId: Renens, ArrMins: 490, TripId: 1, TripPos: 0},
					{DepStopId: LausannePl1, DepMins: 480, ArrStopId: Morges, ArrMins: 490, TripId: 0, TripPos: 0},
				},
			},
		},
	}
}
