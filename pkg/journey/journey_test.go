package journey

import (
	"testing"
	"time"

	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day      = time.Date(2025, time.March, 18, 0, 0, 0, 0, time.UTC)
	lausanne = Stop{Name: "Lausanne", Longitude: 6.629091, Latitude: 46.516792}
	pl1      = Stop{Name: "Lausanne", PlatformName: "1", Longitude: 6.629091, Latitude: 46.516792}
	morges   = Stop{Name: "Morges", Longitude: 6.494189, Latitude: 46.510743}
	geneve   = Stop{Name: "Genève", Longitude: 6.142296, Latitude: 46.210208}
)

func hm(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func mustFoot(t *testing.T, from Stop, dep time.Time, to Stop, arr time.Time) *FootLeg {
	t.Helper()
	l, err := NewFootLeg(from, dep, to, arr)
	require.NoError(t, err)
	return l
}

func mustRide(t *testing.T, from Stop, dep time.Time, to Stop, arr time.Time) *TransportLeg {
	t.Helper()
	l, err := NewTransportLeg(from, dep, to, arr, nil, timetable.TRAIN, "IR 15", "Genève-Aéroport")
	require.NoError(t, err)
	return l
}

func TestNewStop(t *testing.T) {
	s, err := NewStop("Lausanne", "1", 6.6, 46.5)
	require.NoError(t, err)
	assert.Equal(t, "Lausanne (pl. 1)", s.String())
	assert.Equal(t, "Morges", morges.String())

	_, err = NewStop("x", "", 0, 91)
	assert.ErrorIs(t, err, util.ErrBadParamInput)
	_, err = NewStop("x", "", -180.5, 0)
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func TestLegs(t *testing.T) {
	_, err := NewFootLeg(lausanne, hm(8, 5), pl1, hm(8, 0))
	assert.ErrorIs(t, err, util.ErrBadParamInput)

	walk := mustFoot(t, lausanne, hm(7, 55), pl1, hm(8, 0))
	assert.True(t, walk.IsTransfer())
	assert.Equal(t, FOOT, walk.Kind())
	assert.Equal(t, 5*time.Minute, walk.Duration())
	assert.Empty(t, walk.IntermediateStops())
	assert.False(t, mustFoot(t, pl1, hm(8, 0), morges, hm(9, 0)).IsTransfer())

	stop, err := NewIntermediateStop(morges, hm(8, 10), hm(8, 11))
	require.NoError(t, err)
	_, err = NewIntermediateStop(morges, hm(8, 11), hm(8, 10))
	assert.ErrorIs(t, err, util.ErrBadParamInput)

	stops := []IntermediateStop{stop}
	ride, err := NewTransportLeg(pl1, hm(8, 0), geneve, hm(8, 40), stops, timetable.TRAIN, "IR 15", "Genève-Aéroport")
	require.NoError(t, err)
	stops[0].Stop = lausanne
	assert.Equal(t, morges, ride.IntermediateStops()[0].Stop)
	assert.Equal(t, TRANSPORT, ride.Kind())
	assert.Equal(t, 40*time.Minute, ride.Duration())
}

func TestNewJourney(t *testing.T) {
	walk := mustFoot(t, lausanne, hm(7, 55), pl1, hm(8, 0))
	ride := mustRide(t, pl1, hm(8, 0), geneve, hm(8, 40))

	testCases := []struct {
		name    string
		legs    []Leg
		wantErr bool
	}{
		{name: "walk then ride", legs: []Leg{walk, ride}},
		{name: "single ride", legs: []Leg{ride}},
		{name: "no legs", wantErr: true},
		{name: "two walks", legs: []Leg{walk, mustFoot(t, pl1, hm(8, 0), morges, hm(9, 0))}, wantErr: true},
		{name: "two rides", legs: []Leg{ride, mustRide(t, geneve, hm(8, 50), morges, hm(9, 30))}, wantErr: true},
		{name: "stop mismatch", legs: []Leg{walk, mustRide(t, morges, hm(8, 0), geneve, hm(8, 40))}, wantErr: true},
		{name: "leaves before arrival", legs: []Leg{walk, mustRide(t, pl1, hm(7, 59), geneve, hm(8, 40))}, wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			j, err := NewJourney(tt.legs)
			if tt.wantErr {
				assert.ErrorIs(t, err, util.ErrBadParamInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.legs[0].DepStop(), j.DepStop())
			assert.Equal(t, tt.legs[len(tt.legs)-1].ArrTime(), j.ArrTime())
			assert.Equal(t, j.ArrTime().Sub(j.DepTime()), j.Duration())
			assert.Equal(t, 0, j.Changes())
		})
	}
}
