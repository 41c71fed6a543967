package timetable

import (
	"github.com/lintang-b-s/Transitx/pkg/datastructure"
	"github.com/lintang-b-s/Transitx/pkg/util"
)

const (
	transferDepStationId = iota
	transferArrStationId
	transferMinutes
)

var transferStructure = MustNewStructure(
	NewField(transferDepStationId, U16),
	NewField(transferArrStationId, U16),
	NewField(transferMinutes, U8),
)

/*
BufferedTransfers. walking transfers between stations, grouped by arrival station.
arrivingAt[s] is the range of transfers ending at station s, stations past the table end have none.
*/
type BufferedTransfers struct {
	buf        *StructuredBuffer
	arrivingAt []datastructure.PackedRange
}

func NewBufferedTransfers(raw []byte) (*BufferedTransfers, error) {
	buf, err := NewStructuredBuffer(transferStructure, raw)
	if err != nil {
		return nil, err
	}
	t := &BufferedTransfers{buf: buf}
	if err := t.buildArrivalIndex(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *BufferedTransfers) buildArrivalIndex() error {
	n := t.buf.Size()
	maxStation := -1
	for i := 0; i < n; i++ {
		maxStation = util.Max(maxStation, t.buf.GetU16(transferArrStationId, i))
	}
	t.arrivingAt = make([]datastructure.PackedRange, maxStation+1)
	seen := make([]bool, maxStation+1)

	for start := 0; start < n; {
		station := t.buf.GetU16(transferArrStationId, start)
		if seen[station] {
			return util.NewErrorf(util.ErrBadParamInput, "transfers to station %d are not contiguous", station)
		}
		seen[station] = true

		end := start + 1
		for end < n && t.buf.GetU16(transferArrStationId, end) == station {
			end++
		}
		r, err := datastructure.NewPackedRange(start, end)
		if err != nil {
			return util.WrapErrorf(err, util.ErrBadParamInput, "transfers to station %d", station)
		}
		t.arrivingAt[station] = r
		start = end
	}
	return nil
}

func (t *BufferedTransfers) Size() int {
	return t.buf.Size()
}

func (t *BufferedTransfers) DepStationId(id int) int {
	return t.buf.GetU16(transferDepStationId, id)
}

func (t *BufferedTransfers) ArrStationId(id int) int {
	return t.buf.GetU16(transferArrStationId, id)
}

func (t *BufferedTransfers) Minutes(id int) int {
	return t.buf.GetU8(transferMinutes, id)
}

// ArrivingAt returns the range of transfer indices ending at stationId.
func (t *BufferedTransfers) ArrivingAt(stationId int) datastructure.PackedRange {
	if stationId < 0 {
		panic("negative station id")
	}
	if stationId >= len(t.arrivingAt) {
		return 0
	}
	return t.arrivingAt[stationId]
}

// MinutesBetween returns the walking minutes from depStationId to arrStationId.
func (t *BufferedTransfers) MinutesBetween(depStationId, arrStationId int) (int, error) {
	r := t.ArrivingAt(arrStationId)
	for i := r.StartInclusive(); i < r.EndExclusive(); i++ {
		if t.DepStationId(i) == depStationId {
			return t.Minutes(i), nil
		}
	}
	return 0, util.NewErrorf(util.ErrNotFound, "no transfer from station %d to station %d", depStationId, arrStationId)
}
