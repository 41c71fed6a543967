package timetable_test

import (
	"encoding/binary"
	"testing"

	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/timetable/timetabletest"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedConnectionsDecode(t *testing.T) {
	raw, err := timetabletest.EncodeConnection(nil, timetabletest.Connection{
		DepStopId: 1000, DepMins: 510, ArrStopId: 1005, ArrMins: 515, TripId: 200, TripPos: 3,
	})
	require.NoError(t, err)
	require.Len(t, raw, 12)
	succ := binary.BigEndian.AppendUint32(nil, 0)

	conns, err := timetable.NewBufferedConnections(raw, succ)
	require.NoError(t, err)
	require.Equal(t, 1, conns.Size())
	assert.Equal(t, 1000, conns.DepStopId(0))
	assert.Equal(t, 510, conns.DepMins(0))
	assert.Equal(t, 1005, conns.ArrStopId(0))
	assert.Equal(t, 515, conns.ArrMins(0))
	assert.Equal(t, 200, conns.TripId(0))
	assert.Equal(t, 3, conns.TripPos(0))
	assert.Equal(t, 0, conns.NextConnectionId(0))
	assert.Panics(t, func() { conns.DepMins(1) })

	_, err = timetable.NewBufferedConnections(raw, nil)
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func TestBufferedStations(t *testing.T) {
	strs := timetable.StringTable{"Lausanne", "Genève"}
	var raw []byte
	raw = binary.BigEndian.AppendUint16(raw, 1)
	raw = binary.BigEndian.AppendUint32(raw, uint32(timetable.FixedCoordinate(6.142296)))
	raw = binary.BigEndian.AppendUint32(raw, uint32(timetable.FixedCoordinate(46.210208)))
	raw = binary.BigEndian.AppendUint16(raw, 0)
	raw = binary.BigEndian.AppendUint32(raw, uint32(timetable.FixedCoordinate(-73.5)))
	raw = binary.BigEndian.AppendUint32(raw, uint32(timetable.FixedCoordinate(-45.25)))

	st, err := timetable.NewBufferedStations(strs, raw)
	require.NoError(t, err)
	require.Equal(t, 2, st.Size())
	assert.Equal(t, "Genève", st.Name(0))
	assert.InDelta(t, 6.142296, st.Longitude(0), 1e-6)
	assert.InDelta(t, 46.210208, st.Latitude(0), 1e-6)
	assert.Equal(t, "Lausanne", st.Name(1))
	assert.InDelta(t, -73.5, st.Longitude(1), 1e-6)
	assert.InDelta(t, -45.25, st.Latitude(1), 1e-6)
}

func TestBufferedPlatformsAndRoutes(t *testing.T) {
	strs := timetable.StringTable{"1", "IR 15", "70"}

	var rawPlatforms []byte
	rawPlatforms = binary.BigEndian.AppendUint16(rawPlatforms, 0)
	rawPlatforms = binary.BigEndian.AppendUint16(rawPlatforms, 42)
	platforms, err := timetable.NewBufferedPlatforms(strs, rawPlatforms)
	require.NoError(t, err)
	assert.Equal(t, "1", platforms.Name(0))
	assert.Equal(t, 42, platforms.StationId(0))

	var rawRoutes []byte
	rawRoutes = binary.BigEndian.AppendUint16(rawRoutes, 1)
	rawRoutes = append(rawRoutes, byte(timetable.TRAIN))
	rawRoutes = binary.BigEndian.AppendUint16(rawRoutes, 2)
	rawRoutes = append(rawRoutes, byte(timetable.AERIAL_LIFT))
	rawRoutes = binary.BigEndian.AppendUint16(rawRoutes, 2)
	rawRoutes = append(rawRoutes, 99)
	routes, err := timetable.NewBufferedRoutes(strs, rawRoutes)
	require.NoError(t, err)
	require.Equal(t, 3, routes.Size())
	assert.Equal(t, "IR 15", routes.Name(0))
	assert.Equal(t, timetable.TRAIN, routes.Vehicle(0))
	assert.Equal(t, timetable.AERIAL_LIFT, routes.Vehicle(1))
	assert.Panics(t, func() { routes.Vehicle(2) })

	_, err = timetable.NewBufferedRoutes(strs, rawRoutes[:4])
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func encodeTransfers(ts ...[3]int) []byte {
	var raw []byte
	for _, tr := range ts {
		raw = binary.BigEndian.AppendUint16(raw, uint16(tr[0]))
		raw = binary.BigEndian.AppendUint16(raw, uint16(tr[1]))
		raw = append(raw, byte(tr[2]))
	}
	return raw
}

func TestBufferedTransfers(t *testing.T) {
	raw := encodeTransfers(
		[3]int{4, 1, 3},
		[3]int{1, 1, 2},
		[3]int{4, 3, 7},
		[3]int{2, 3, 9},
		[3]int{3, 3, 1},
	)
	tr, err := timetable.NewBufferedTransfers(raw)
	require.NoError(t, err)
	require.Equal(t, 5, tr.Size())

	r := tr.ArrivingAt(1)
	assert.Equal(t, 0, r.StartInclusive())
	assert.Equal(t, 2, r.EndExclusive())
	r = tr.ArrivingAt(3)
	assert.Equal(t, 2, r.StartInclusive())
	assert.Equal(t, 3, r.Length())
	assert.Equal(t, 0, tr.ArrivingAt(0).Length())
	assert.Equal(t, 0, tr.ArrivingAt(100).Length())

	testCases := []struct {
		dep, arr int
		want     int
		wantErr  bool
	}{
		{dep: 4, arr: 1, want: 3},
		{dep: 1, arr: 1, want: 2},
		{dep: 2, arr: 3, want: 9},
		{dep: 3, arr: 3, want: 1},
		{dep: 1, arr: 3, wantErr: true},
		{dep: 3, arr: 4, wantErr: true},
	}
	for _, tt := range testCases {
		got, err := tr.MinutesBetween(tt.dep, tt.arr)
		if tt.wantErr {
			assert.ErrorIs(t, err, util.ErrNotFound)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d -> %d", tt.dep, tt.arr)
	}
}

func TestBufferedTransfersNotGrouped(t *testing.T) {
	raw := encodeTransfers([3]int{0, 1, 3}, [3]int{0, 2, 3}, [3]int{2, 1, 3})
	_, err := timetable.NewBufferedTransfers(raw)
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func TestBufferedTripsAndAliases(t *testing.T) {
	strs := timetable.StringTable{"Losanna", "Lausanne", "Genève-Aéroport"}

	var rawTrips []byte
	rawTrips = binary.BigEndian.AppendUint16(rawTrips, 5)
	rawTrips = binary.BigEndian.AppendUint16(rawTrips, 2)
	trips, err := timetable.NewBufferedTrips(strs, rawTrips)
	require.NoError(t, err)
	assert.Equal(t, 5, trips.RouteId(0))
	assert.Equal(t, "Genève-Aéroport", trips.Destination(0))

	var rawAliases []byte
	rawAliases = binary.BigEndian.AppendUint16(rawAliases, 0)
	rawAliases = binary.BigEndian.AppendUint16(rawAliases, 1)
	aliases, err := timetable.NewBufferedStationAliases(strs, rawAliases)
	require.NoError(t, err)
	assert.Equal(t, "Losanna", aliases.Alias(0))
	assert.Equal(t, "Lausanne", aliases.StationName(0))
}

func TestStringTableLatin1(t *testing.T) {
	raw, err := timetable.EncodeStringTable([]string{"Genève", "Zürich HB", "", "Biel/Bienne"})
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Gen\xe8ve")

	st, err := timetable.DecodeStringTable(raw)
	require.NoError(t, err)
	assert.Equal(t, timetable.StringTable{"Genève", "Zürich HB", "", "Biel/Bienne"}, st)

	_, err = timetable.EncodeStringTable([]string{"東京"})
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func TestVehicle(t *testing.T) {
	for i, v := range timetable.AllVehicles {
		got, err := timetable.VehicleFromOrdinal(i)
		require.NoError(t, err)
		assert.Equal(t, v, got)

		text, err := v.MarshalText()
		require.NoError(t, err)
		var back timetable.Vehicle
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, v, back)
	}
	assert.Equal(t, "AERIAL_LIFT", timetable.AERIAL_LIFT.String())

	_, err := timetable.VehicleFromOrdinal(len(timetable.AllVehicles))
	assert.Error(t, err)
	_, err = timetable.ParseVehicle("zeppelin")
	assert.Error(t, err)
}
