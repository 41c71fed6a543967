package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lintang-b-s/Transitx/pkg/engine"
	"github.com/lintang-b-s/Transitx/pkg/journey"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEngine struct {
	stations  map[string]int
	gotDate   time.Time
	gotDep    []int
	gotArr    int
	gotRadius float64
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{stations: map[string]int{"lausanne": 0, "renens vd": 1, "genève": 3}}
}

func (f *fakeEngine) StationByName(name string) (engine.Station, error) {
	id, ok := f.stations[strings.ToLower(name)]
	if !ok {
		return engine.Station{}, util.NewErrorf(util.ErrNotFound, "no station named %q", name)
	}
	return engine.Station{Id: id, Name: name}, nil
}

func (f *fakeEngine) Journeys(date time.Time, dep, arr int) ([]*journey.Journey, error) {
	f.gotDate, f.gotDep, f.gotArr = date, []int{dep}, arr
	return nil, nil
}

func (f *fakeEngine) JourneysFrom(date time.Time, deps []int, arr int) ([][]*journey.Journey, error) {
	f.gotDate, f.gotDep, f.gotArr = date, deps, arr
	return make([][]*journey.Journey, len(deps)), nil
}

func (f *fakeEngine) NearbyStations(lat, lon, radiusKM float64, limit int) []engine.NearbyStation {
	f.gotRadius = radiusKM
	return []engine.NearbyStation{{Station: engine.Station{Id: 0, Name: "Lausanne"}}}
}

func TestJourneysResolvesNamesAndDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Zurich")
	require.NoError(t, err)
	fe := newFakeEngine()
	svc := NewJourneyService(zap.NewNop(), fe, loc)

	_, err = svc.Journeys(context.Background(), "2025-03-18", "Lausanne", "Genève")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, fe.gotDep)
	assert.Equal(t, 3, fe.gotArr)
	assert.True(t, time.Date(2025, time.March, 18, 0, 0, 0, 0, loc).Equal(fe.gotDate))
	assert.Equal(t, "Europe/Zurich", fe.gotDate.Location().String())
}

func TestJourneysErrors(t *testing.T) {
	svc := NewJourneyService(zap.NewNop(), newFakeEngine(), time.UTC)

	testCases := []struct {
		name    string
		date    string
		from    string
		to      string
		wantErr error
	}{
		{name: "bad date", date: "18.03.2025", from: "Lausanne", to: "Genève", wantErr: util.ErrBadParamInput},
		{name: "unknown departure", date: "2025-03-18", from: "Bern", to: "Genève", wantErr: util.ErrNotFound},
		{name: "unknown arrival", date: "2025-03-18", from: "Lausanne", to: "Bern", wantErr: util.ErrNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Journeys(context.Background(), tt.date, tt.from, tt.to)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Journeys(ctx, "2025-03-18", "Lausanne", "Genève")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJourneysFrom(t *testing.T) {
	fe := newFakeEngine()
	svc := NewJourneyService(zap.NewNop(), fe, time.UTC)

	all, err := svc.JourneysFrom(context.Background(), "2025-03-18", []string{"renens vd", "Lausanne"}, "Genève")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, []int{1, 0}, fe.gotDep)

	_, err = svc.JourneysFrom(context.Background(), "2025-03-18", []string{"Lausanne", "Sion"}, "Genève")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestNearbyStations(t *testing.T) {
	fe := newFakeEngine()
	svc := NewStationService(zap.NewNop(), fe)

	nearby, err := svc.NearbyStations(context.Background(), 46.5, 6.6, 2, 10)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, 2.0, fe.gotRadius)

	_, err = svc.NearbyStations(context.Background(), 46.5, 6.6, 0, 10)
	assert.ErrorIs(t, err, util.ErrBadParamInput)

	s, err := svc.StationByName(context.Background(), "Genève")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Id)
}
