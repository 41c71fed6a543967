package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/Transitx/pkg/concurrent"
	"github.com/lintang-b-s/Transitx/pkg/geo"
	"github.com/lintang-b-s/Transitx/pkg/journey"
	"github.com/lintang-b-s/Transitx/pkg/spatialindex"
	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
)

type Station struct {
	Id    int
	Name  string
	Coord geo.Coordinate
}

type NearbyStation struct {
	Station
	DistKM   float64
	WalkMins int
}

type profileKey struct {
	date         string
	arrStationId int
}

/*
Engine answers journey queries from a timetable directory and the profiles precomputed for it.

profiles are read from the profile directory on first use and kept in an LRU cache. concurrent misses on the
same profile share a single read.
*/
type Engine struct {
	tt         *timetable.FileTimeTable
	profileDir string
	profiles   *lru.Cache[profileKey, *journey.Profile]
	loads      singleflight.Group
	stations   *spatialindex.Rtree
	byName     map[string]int
	workers    int
	log        *zap.Logger
}

func NewEngine(timetableDir, profileDir string, profileCacheSize, extractWorkers int, log *zap.Logger) (*Engine, error) {
	log.Info("Starting journey query engine...", zap.String("timetableDir", timetableDir),
		zap.String("profileDir", profileDir))

	tt, err := timetable.Open(timetableDir, log)
	if err != nil {
		return nil, err
	}

	profiles, err := lru.New[profileKey, *journey.Profile](profileCacheSize)
	if err != nil {
		tt.Close()
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "profile cache of size %d", profileCacheSize)
	}

	rt := spatialindex.NewRtree()
	rt.Build(tt.Stations(), log)

	e := &Engine{
		tt:         tt,
		profileDir: profileDir,
		profiles:   profiles,
		stations:   rt,
		workers:    extractWorkers,
		log:        log,
	}
	e.indexNames()
	return e, nil
}

// indexNames maps folded station names and aliases to station ids, a real name wins over an alias.
func (e *Engine) indexNames() {
	stations := e.tt.Stations()
	e.byName = make(map[string]int, stations.Size())
	for id := 0; id < stations.Size(); id++ {
		key := e.nameKey(stations.Name(id))
		if _, ok := e.byName[key]; !ok {
			e.byName[key] = id
		}
	}

	aliases := e.tt.StationAliases()
	for i := 0; i < aliases.Size(); i++ {
		id, ok := e.byName[e.nameKey(aliases.StationName(i))]
		if !ok {
			e.log.Warn("alias of unknown station", zap.String("alias", aliases.Alias(i)),
				zap.String("station", aliases.StationName(i)))
			continue
		}
		key := e.nameKey(aliases.Alias(i))
		if _, taken := e.byName[key]; !taken {
			e.byName[key] = id
		}
	}
}

// nameKey folds case, a Caser keeps state so each lookup takes its own.
func (e *Engine) nameKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func (e *Engine) TimeTable() timetable.TimeTable {
	return e.tt
}

func (e *Engine) Close() error {
	e.profiles.Purge()
	return e.tt.Close()
}

// ProfileFileName is the name of the profile towards arrStationId on date inside the profile directory.
func ProfileFileName(date time.Time, arrStationId int) string {
	return fmt.Sprintf("profile_%s_%d.txt", timetable.DateDir(date), arrStationId)
}

func (e *Engine) checkStation(stationId int) error {
	if stationId < 0 || stationId >= e.tt.Stations().Size() {
		return util.NewErrorf(util.ErrBadParamInput, "%d is not a station id", stationId)
	}
	return nil
}

// Profile returns the profile towards arrStationId on date, from the cache or the profile directory.
func (e *Engine) Profile(date time.Time, arrStationId int) (*journey.Profile, error) {
	if err := e.checkStation(arrStationId); err != nil {
		return nil, err
	}
	key := profileKey{date: timetable.DateDir(date), arrStationId: arrStationId}
	if p, ok := e.profiles.Get(key); ok {
		return p, nil
	}

	v, err, _ := e.loads.Do(fmt.Sprintf("%s/%d", key.date, key.arrStationId), func() (interface{}, error) {
		if p, ok := e.profiles.Get(key); ok {
			return p, nil
		}
		p, err := e.readProfile(date, arrStationId)
		if err != nil {
			return nil, err
		}
		e.profiles.Add(key, p)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*journey.Profile), nil
}

// readProfile prefers the bzip2 file when both variants exist.
func (e *Engine) readProfile(date time.Time, arrStationId int) (*journey.Profile, error) {
	name := filepath.Join(e.profileDir, ProfileFileName(date, arrStationId))
	for _, path := range []string{name + ".bz2", name} {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "stat %s", path)
		}

		start := time.Now()
		p, err := journey.ReadProfileFile(path, e.tt, date, arrStationId)
		if err != nil {
			return nil, err
		}
		e.log.Info("profile loaded", zap.String("path", path), zap.Duration("took", time.Since(start)))
		return p, nil
	}
	return nil, util.NewErrorf(util.ErrNotFound, "no profile towards station %d on %s", arrStationId,
		timetable.DateDir(date))
}

// Journeys returns the optimal journeys from depStationId to arrStationId on date.
func (e *Engine) Journeys(date time.Time, depStationId, arrStationId int) ([]*journey.Journey, error) {
	if err := e.checkStation(depStationId); err != nil {
		return nil, err
	}
	p, err := e.Profile(date, arrStationId)
	if err != nil {
		return nil, err
	}
	return journey.ExtractJourneys(p, depStationId, e.log), nil
}

// JourneysFrom extracts the journeys of several departure stations towards the same destination.
// result i holds the journeys of depStationIds[i].
func (e *Engine) JourneysFrom(date time.Time, depStationIds []int, arrStationId int) ([][]*journey.Journey, error) {
	for _, dep := range depStationIds {
		if err := e.checkStation(dep); err != nil {
			return nil, err
		}
	}
	p, err := e.Profile(date, arrStationId)
	if err != nil {
		return nil, err
	}
	return concurrent.Map(e.workers, depStationIds, func(dep int) []*journey.Journey {
		return journey.ExtractJourneys(p, dep, e.log)
	}), nil
}

func (e *Engine) Station(stationId int) (Station, error) {
	if err := e.checkStation(stationId); err != nil {
		return Station{}, util.WrapErrorf(err, util.ErrNotFound, "station %d", stationId)
	}
	stations := e.tt.Stations()
	return Station{
		Id:    stationId,
		Name:  stations.Name(stationId),
		Coord: geo.NewCoordinate(stations.Latitude(stationId), stations.Longitude(stationId)),
	}, nil
}

// StationByName resolves a station by its name or one of its aliases, ignoring case.
func (e *Engine) StationByName(name string) (Station, error) {
	id, ok := e.byName[e.nameKey(name)]
	if !ok {
		return Station{}, util.NewErrorf(util.ErrNotFound, "no station named %q", name)
	}
	return e.Station(id)
}

// NearbyStations returns the stations within radiusKM of (lat, lon), nearest first, with the walk to each estimated
// at walking speed along the great circle.
func (e *Engine) NearbyStations(lat, lon, radiusKM float64, limit int) []NearbyStation {
	found := e.stations.SearchWithinRadius(lat, lon, radiusKM, limit)
	stations := e.tt.Stations()
	nearby := make([]NearbyStation, 0, len(found))
	for _, s := range found {
		nearby = append(nearby, NearbyStation{
			Station:  Station{Id: s.StationId, Name: stations.Name(s.StationId), Coord: s.Coord},
			DistKM:   s.DistKM,
			WalkMins: geo.WalkingMinutes(s.DistKM),
		})
	}
	return nearby
}
