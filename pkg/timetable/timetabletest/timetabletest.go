// Package timetabletest writes timetable directories in the binary layout read by package timetable.
package timetabletest

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/lintang-b-s/Transitx/pkg/datastructure"
	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/util"
)

type Station struct {
	Name     string
	Lon, Lat float64
}

type Alias struct {
	Alias       string
	StationName string
}

type Platform struct {
	Name      string
	StationId int
}

type Route struct {
	Name    string
	Vehicle timetable.Vehicle
}

type Transfer struct {
	DepStationId int
	ArrStationId int
	Minutes      int
}

type Trip struct {
	RouteId     int
	Destination string
}

type Connection struct {
	DepStopId int
	DepMins   int
	ArrStopId int
	ArrMins   int
	TripId    int
	TripPos   int
}

type Day struct {
	Date        time.Time
	Trips       []Trip
	Connections []Connection
	// Succ is derived from TripId/TripPos when nil.
	Succ []int
}

type Dataset struct {
	Stations  []Station
	Aliases   []Alias
	Platforms []Platform
	Routes    []Route
	Transfers []Transfer
	Days      []Day
}

type interner struct {
	table []string
	index map[string]int
}

func newInterner() *interner {
	return &interner{index: make(map[string]int)}
}

func (in *interner) id(s string) int {
	if i, ok := in.index[s]; ok {
		return i
	}
	in.index[s] = len(in.table)
	in.table = append(in.table, s)
	return len(in.table) - 1
}

func u16(b []byte, v int) []byte {
	return binary.BigEndian.AppendUint16(b, uint16(v))
}

func s32(b []byte, v int32) []byte {
	return binary.BigEndian.AppendUint32(b, uint32(v))
}

func EncodeConnection(b []byte, c Connection) ([]byte, error) {
	tripPos, err := datastructure.Pack24_8(c.TripId, c.TripPos)
	if err != nil {
		return nil, err
	}
	b = u16(b, c.DepStopId)
	b = u16(b, c.DepMins)
	b = u16(b, c.ArrStopId)
	b = u16(b, c.ArrMins)
	return s32(b, int32(tripPos)), nil
}

// Successors links every connection to the next one of its trip, the last one wraps to the first.
func Successors(conns []Connection) []int {
	byTrip := make(map[int][]int)
	for i, c := range conns {
		byTrip[c.TripId] = append(byTrip[c.TripId], i)
	}
	succ := make([]int, len(conns))
	for _, ids := range byTrip {
		sort.Slice(ids, func(a, b int) bool { return conns[ids[a]].TripPos < conns[ids[b]].TripPos })
		for k, id := range ids {
			succ[id] = ids[(k+1)%len(ids)]
		}
	}
	return succ
}

func encodeStatic(in *interner, ds Dataset) (map[string][]byte, error) {
	var stations, aliases, platforms, routes, transfers []byte
	for _, s := range ds.Stations {
		stations = u16(stations, in.id(s.Name))
		stations = s32(stations, timetable.FixedCoordinate(s.Lon))
		stations = s32(stations, timetable.FixedCoordinate(s.Lat))
	}
	for _, a := range ds.Aliases {
		aliases = u16(aliases, in.id(a.Alias))
		aliases = u16(aliases, in.id(a.StationName))
	}
	for _, p := range ds.Platforms {
		platforms = u16(platforms, in.id(p.Name))
		platforms = u16(platforms, p.StationId)
	}
	for _, r := range ds.Routes {
		routes = u16(routes, in.id(r.Name))
		routes = append(routes, byte(r.Vehicle))
	}

	// grouped by arrival station
	sorted := append([]Transfer(nil), ds.Transfers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ArrStationId < sorted[j].ArrStationId })
	for _, t := range sorted {
		if t.Minutes < 0 || t.Minutes > 255 {
			return nil, util.NewErrorf(util.ErrBadParamInput, "transfer minutes %d do not fit in u8", t.Minutes)
		}
		transfers = u16(transfers, t.DepStationId)
		transfers = u16(transfers, t.ArrStationId)
		transfers = append(transfers, byte(t.Minutes))
	}

	return map[string][]byte{
		timetable.StationsFile:       stations,
		timetable.StationAliasesFile: aliases,
		timetable.PlatformsFile:      platforms,
		timetable.RoutesFile:         routes,
		timetable.TransfersFile:      transfers,
	}, nil
}

func encodeDay(in *interner, d Day) (map[string][]byte, error) {
	var trips, conns, succ []byte
	for _, t := range d.Trips {
		trips = u16(trips, t.RouteId)
		trips = u16(trips, in.id(t.Destination))
	}
	for _, c := range d.Connections {
		var err error
		if conns, err = EncodeConnection(conns, c); err != nil {
			return nil, err
		}
	}
	next := d.Succ
	if next == nil {
		next = Successors(d.Connections)
	}
	for _, n := range next {
		succ = s32(succ, int32(n))
	}
	return map[string][]byte{
		timetable.TripsFile:           trips,
		timetable.ConnectionsFile:     conns,
		timetable.ConnectionsSuccFile: succ,
	}, nil
}

func writeFiles(dir string, files map[string][]byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Write writes ds as a timetable directory under dir.
func Write(dir string, ds Dataset) error {
	in := newInterner()
	static, err := encodeStatic(in, ds)
	if err != nil {
		return err
	}
	if err := writeFiles(dir, static); err != nil {
		return err
	}
	for _, d := range ds.Days {
		files, err := encodeDay(in, d)
		if err != nil {
			return err
		}
		if err := writeFiles(filepath.Join(dir, timetable.DateDir(d.Date)), files); err != nil {
			return err
		}
	}

	strs, err := timetable.EncodeStringTable(in.table)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, timetable.StringsFile), strs, 0o644)
}
