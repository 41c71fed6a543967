package engine

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/lintang-b-s/Transitx/pkg/datastructure"
	"github.com/lintang-b-s/Transitx/pkg/geo"
	"github.com/lintang-b-s/Transitx/pkg/journey"
	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/timetable/timetabletest"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func criteria(t *testing.T, depMins, arrMins, changes, connId, hops int) datastructure.PackedCriteria {
	t.Helper()
	payload, err := datastructure.Pack24_8(connId, hops)
	require.NoError(t, err)
	c, err := datastructure.MustPackCriteria(arrMins, changes, payload).WithDepMins(depMins)
	require.NoError(t, err)
	return c
}

// writeSampleProfile stores the profile towards Genève-Aéroport in profileDir.
func writeSampleProfile(t *testing.T, timetableDir, profileDir string, name string) {
	t.Helper()
	tt, err := timetable.Open(timetableDir, zap.NewNop())
	require.NoError(t, err)
	defer tt.Close()

	pb, err := journey.NewProfileBuilder(tt, timetabletest.SampleDate, timetabletest.GeneveAeroport)
	require.NoError(t, err)
	pb.StationBuilder(timetabletest.Lausanne).Add(criteria(t, 480, 545, 1, timetabletest.ConnIRLausanne, 1))
	pb.StationBuilder(timetabletest.Renens).Add(criteria(t, 440, 545, 1, timetabletest.ConnIRLausanne, 1))
	pb.StationBuilder(timetabletest.Morges).Add(criteria(t, 491, 545, 0, timetabletest.ConnIRMorges, 0))
	pb.StationBuilder(timetabletest.Geneve).Add(criteria(t, 530, 545, 0, timetabletest.ConnBusGeneve, 0))
	p, err := pb.Build()
	require.NoError(t, err)

	require.NoError(t, journey.WriteProfileFile(filepath.Join(profileDir, name), p))
}

func newSampleEngine(t *testing.T) *Engine {
	t.Helper()
	root := t.TempDir()
	timetableDir := filepath.Join(root, "timetable")
	profileDir := filepath.Join(root, "profiles")
	require.NoError(t, os.MkdirAll(profileDir, 0o755))
	require.NoError(t, timetabletest.Write(timetableDir, timetabletest.Sample()))
	writeSampleProfile(t, timetableDir, profileDir,
		ProfileFileName(timetabletest.SampleDate, timetabletest.GeneveAeroport)+".bz2")

	e, err := NewEngine(timetableDir, profileDir, 4, 2, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { e.Close() })
	return e
}

func TestProfileFileName(t *testing.T) {
	assert.Equal(t, "profile_2025-03-18_4.txt", ProfileFileName(timetabletest.SampleDate, 4))
}

func TestJourneys(t *testing.T) {
	e := newSampleEngine(t)

	js, err := e.Journeys(timetabletest.SampleDate, timetabletest.Lausanne, timetabletest.GeneveAeroport)
	require.NoError(t, err)
	require.Len(t, js, 1)
	assert.Equal(t, 8, js[0].DepTime().Hour())
	assert.Equal(t, 9, js[0].ArrTime().Hour())
	assert.Equal(t, 5, js[0].ArrTime().Minute())
	assert.Equal(t, 1, js[0].Changes())

	js, err = e.Journeys(timetabletest.SampleDate, timetabletest.GeneveAeroport, timetabletest.GeneveAeroport)
	require.NoError(t, err)
	assert.Empty(t, js)
}

func TestJourneysErrors(t *testing.T) {
	e := newSampleEngine(t)

	testCases := []struct {
		name    string
		dep     int
		arr     int
		wantErr error
	}{
		{name: "no profile for destination", dep: timetabletest.Lausanne, arr: timetabletest.Morges, wantErr: util.ErrNotFound},
		{name: "platform as departure", dep: timetabletest.LausannePl1, arr: timetabletest.GeneveAeroport, wantErr: util.ErrBadParamInput},
		{name: "negative destination", dep: timetabletest.Lausanne, arr: -1, wantErr: util.ErrBadParamInput},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Journeys(timetabletest.SampleDate, tt.dep, tt.arr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileIsCached(t *testing.T) {
	e := newSampleEngine(t)

	p1, err := e.Profile(timetabletest.SampleDate, timetabletest.GeneveAeroport)
	require.NoError(t, err)
	p2, err := e.Profile(timetabletest.SampleDate, timetabletest.GeneveAeroport)
	require.NoError(t, err)
	assert.Same(t, p1, p2)
	assert.Equal(t, 1, e.profiles.Len())
}

func TestPlainProfileFile(t *testing.T) {
	root := t.TempDir()
	timetableDir := filepath.Join(root, "timetable")
	require.NoError(t, timetabletest.Write(timetableDir, timetabletest.Sample()))
	writeSampleProfile(t, timetableDir, root, ProfileFileName(timetabletest.SampleDate, timetabletest.GeneveAeroport))

	e, err := NewEngine(timetableDir, root, 1, 1, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	js, err := e.Journeys(timetabletest.SampleDate, timetabletest.Geneve, timetabletest.GeneveAeroport)
	require.NoError(t, err)
	require.Len(t, js, 1)
	assert.Len(t, js[0].Legs(), 1)
}

func TestJourneysFrom(t *testing.T) {
	e := newSampleEngine(t)
	deps := []int{timetabletest.Lausanne, timetabletest.Renens, timetabletest.Morges, timetabletest.Geneve}

	all, err := e.JourneysFrom(timetabletest.SampleDate, deps, timetabletest.GeneveAeroport)
	require.NoError(t, err)
	require.Len(t, all, len(deps))

	wantFirst := []string{"Lausanne", "Renens VD", "Morges", "Genève"}
	wantLegs := []int{3, 4, 2, 1}
	for i, js := range all {
		require.Len(t, js, 1, "departure %d", deps[i])
		assert.Equal(t, wantFirst[i], js[0].DepStop().Name)
		assert.Len(t, js[0].Legs(), wantLegs[i])
	}

	_, err = e.JourneysFrom(timetabletest.SampleDate, []int{timetabletest.Lausanne, 99}, timetabletest.GeneveAeroport)
	assert.ErrorIs(t, err, util.ErrBadParamInput)

	none, err := e.JourneysFrom(timetabletest.SampleDate, nil, timetabletest.GeneveAeroport)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestJourneysFromUnknownConnection(t *testing.T) {
	root := t.TempDir()
	timetableDir := filepath.Join(root, "timetable")
	require.NoError(t, timetabletest.Write(timetableDir, timetabletest.Sample()))

	lines := make([]string, timetabletest.GeneveAeroport+1)
	lines[timetabletest.Lausanne] = strconv.FormatUint(uint64(criteria(t, 480, 545, 0, 9999, 0)), 16)
	path := filepath.Join(root, ProfileFileName(timetabletest.SampleDate, timetabletest.GeneveAeroport))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	e, err := NewEngine(timetableDir, root, 1, 2, zap.NewNop())
	require.NoError(t, err)
	defer e.Close()

	deps := []int{timetabletest.Lausanne, timetabletest.Renens}
	_, err = e.JourneysFrom(timetabletest.SampleDate, deps, timetabletest.GeneveAeroport)
	assert.ErrorIs(t, err, util.ErrBadParamInput)
}

func TestStationByName(t *testing.T) {
	e := newSampleEngine(t)

	testCases := []struct {
		name   string
		query  string
		wantId int
	}{
		{name: "exact", query: "Lausanne", wantId: timetabletest.Lausanne},
		{name: "case folded", query: "renens vd", wantId: timetabletest.Renens},
		{name: "alias", query: "Losanna", wantId: timetabletest.Lausanne},
		{name: "alias with spaces and case", query: "  GENF ", wantId: timetabletest.Geneve},
		{name: "accents kept", query: "genève-aéroport", wantId: timetabletest.GeneveAeroport},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			s, err := e.StationByName(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantId, s.Id)
		})
	}

	_, err := e.StationByName("Zürich HB")
	assert.ErrorIs(t, err, util.ErrNotFound)
	_, err = e.StationByName("Geneve")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestStation(t *testing.T) {
	e := newSampleEngine(t)

	s, err := e.Station(timetabletest.Morges)
	require.NoError(t, err)
	assert.Equal(t, "Morges", s.Name)
	assert.InDelta(t, 46.510743, s.Coord.Lat, 1e-6)
	assert.InDelta(t, 6.494189, s.Coord.Lon, 1e-6)

	_, err = e.Station(timetabletest.GenevePl2)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestNearbyStations(t *testing.T) {
	e := newSampleEngine(t)

	nearby := e.NearbyStations(46.516792, 6.629091, 5, 0)
	require.Len(t, nearby, 2)
	assert.Equal(t, "Lausanne", nearby[0].Name)
	assert.InDelta(t, 0, nearby[0].DistKM, 0.01)
	assert.Equal(t, "Renens VD", nearby[1].Name)
	assert.InDelta(t, 4.5, nearby[1].DistKM, 0.3)
	assert.LessOrEqual(t, nearby[0].WalkMins, 1)
	assert.Equal(t, geo.WalkingMinutes(nearby[1].DistKM), nearby[1].WalkMins)
	assert.InDelta(t, 54, nearby[1].WalkMins, 4)

	assert.Len(t, e.NearbyStations(46.516792, 6.629091, 5, 1), 1)
	assert.Empty(t, e.NearbyStations(47.3769, 8.5417, 5, 0))
}
