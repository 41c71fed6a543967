package timetable

import (
	"math"
)

const (
	stationNameId = iota
	stationLon
	stationLat
)

// degrees per unit of a fixed-point coordinate, the S32 range covers the full circle.
var coordinateScale = math.Ldexp(360, -32)

var stationStructure = MustNewStructure(
	NewField(stationNameId, U16),
	NewField(stationLon, S32),
	NewField(stationLat, S32),
)

type BufferedStations struct {
	stringTable StringTable
	buf         *StructuredBuffer
}

func NewBufferedStations(stringTable StringTable, raw []byte) (*BufferedStations, error) {
	buf, err := NewStructuredBuffer(stationStructure, raw)
	if err != nil {
		return nil, err
	}
	return &BufferedStations{stringTable: stringTable, buf: buf}, nil
}

func (s *BufferedStations) Size() int {
	return s.buf.Size()
}

func (s *BufferedStations) Name(id int) string {
	return s.stringTable.Get(s.buf.GetU16(stationNameId, id))
}

func (s *BufferedStations) Longitude(id int) float64 {
	return coordinateScale * float64(s.buf.GetS32(stationLon, id))
}

func (s *BufferedStations) Latitude(id int) float64 {
	return coordinateScale * float64(s.buf.GetS32(stationLat, id))
}

// FixedCoordinate converts degrees to the S32 fixed-point representation.
func FixedCoordinate(deg float64) int32 {
	return int32(math.Round(deg / coordinateScale))
}

const (
	aliasId = iota
	aliasStationName
)

var stationAliasStructure = MustNewStructure(
	NewField(aliasId, U16),
	NewField(aliasStationName, U16),
)

// BufferedStationAliases. alternative names of stations, e.g. "Losanna" for "Lausanne".
type BufferedStationAliases struct {
	stringTable StringTable
	buf         *StructuredBuffer
}

func NewBufferedStationAliases(stringTable StringTable, raw []byte) (*BufferedStationAliases, error) {
	buf, err := NewStructuredBuffer(stationAliasStructure, raw)
	if err != nil {
		return nil, err
	}
	return &BufferedStationAliases{stringTable: stringTable, buf: buf}, nil
}

func (a *BufferedStationAliases) Size() int {
	return a.buf.Size()
}

func (a *BufferedStationAliases) Alias(id int) string {
	return a.stringTable.Get(a.buf.GetU16(aliasId, id))
}

func (a *BufferedStationAliases) StationName(id int) string {
	return a.stringTable.Get(a.buf.GetU16(aliasStationName, id))
}
