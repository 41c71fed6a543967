package timetable

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lintang-b-s/Transitx/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	StringsFile         = "strings.txt"
	StationsFile        = "stations.bin"
	StationAliasesFile  = "station-aliases.bin"
	PlatformsFile       = "platforms.bin"
	RoutesFile          = "routes.bin"
	TransfersFile       = "transfers.bin"
	TripsFile           = "trips.bin"
	ConnectionsFile     = "connections.bin"
	ConnectionsSuccFile = "connections-succ.bin"
)

type dayTables struct {
	trips       *BufferedTrips
	connections *BufferedConnections
}

/*
FileTimeTable. timetable directory with every table memory-mapped read-only.
the day tables are mapped on first use and stay mapped, like the static ones, until Close.
*/
type FileTimeTable struct {
	dir         string
	stringTable StringTable

	stations       *BufferedStations
	stationAliases *BufferedStationAliases
	platforms      *BufferedPlatforms
	routes         *BufferedRoutes
	transfers      *BufferedTransfers

	mu     sync.Mutex
	days   map[string]*dayTables
	mapped []*mappedFile
	closed bool

	log *zap.Logger
}

func Open(dir string, log *zap.Logger) (*FileTimeTable, error) {
	stringTable, err := ReadStringTable(filepath.Join(dir, StringsFile))
	if err != nil {
		return nil, err
	}

	tt := &FileTimeTable{
		dir:         dir,
		stringTable: stringTable,
		days:        make(map[string]*dayTables),
		log:         log,
	}

	names := []string{StationsFile, StationAliasesFile, PlatformsFile, RoutesFile, TransfersFile}
	files := make([]*mappedFile, len(names))
	g := new(errgroup.Group)
	for i, name := range names {
		g.Go(func() error {
			path := filepath.Join(dir, name)
			if name == StationAliasesFile {
				if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
					files[i] = &mappedFile{path: path, data: []byte{}}
					return nil
				}
			}
			f, err := mapFile(path)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	err = g.Wait()
	for _, f := range files {
		if f != nil {
			tt.mapped = append(tt.mapped, f)
		}
	}
	if err != nil {
		tt.Close()
		return nil, err
	}

	if err := tt.buildStatic(files); err != nil {
		tt.Close()
		return nil, err
	}

	log.Info("timetable opened", zap.String("dir", dir),
		zap.Int("stations", tt.stations.Size()),
		zap.Int("platforms", tt.platforms.Size()),
		zap.Int("routes", tt.routes.Size()),
		zap.Int("transfers", tt.transfers.Size()))
	return tt, nil
}

func (tt *FileTimeTable) buildStatic(files []*mappedFile) error {
	var err error
	if tt.stations, err = NewBufferedStations(tt.stringTable, files[0].Bytes()); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "%s", files[0].path)
	}
	if tt.stationAliases, err = NewBufferedStationAliases(tt.stringTable, files[1].Bytes()); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "%s", files[1].path)
	}
	if tt.platforms, err = NewBufferedPlatforms(tt.stringTable, files[2].Bytes()); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "%s", files[2].path)
	}
	if tt.routes, err = NewBufferedRoutes(tt.stringTable, files[3].Bytes()); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "%s", files[3].path)
	}
	if tt.transfers, err = NewBufferedTransfers(files[4].Bytes()); err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "%s", files[4].path)
	}
	return nil
}

func (tt *FileTimeTable) Dir() string {
	return tt.dir
}

func (tt *FileTimeTable) StringTable() StringTable {
	return tt.stringTable
}

func (tt *FileTimeTable) Stations() Stations {
	return tt.stations
}

func (tt *FileTimeTable) StationAliases() StationAliases {
	return tt.stationAliases
}

func (tt *FileTimeTable) Platforms() Platforms {
	return tt.platforms
}

func (tt *FileTimeTable) Routes() Routes {
	return tt.routes
}

func (tt *FileTimeTable) Transfers() Transfers {
	return tt.transfers
}

func (tt *FileTimeTable) TripsFor(date time.Time) (Trips, error) {
	d, err := tt.day(date)
	if err != nil {
		return nil, err
	}
	return d.trips, nil
}

func (tt *FileTimeTable) ConnectionsFor(date time.Time) (Connections, error) {
	d, err := tt.day(date)
	if err != nil {
		return nil, err
	}
	return d.connections, nil
}

func (tt *FileTimeTable) day(date time.Time) (*dayTables, error) {
	key := DateDir(date)

	tt.mu.Lock()
	defer tt.mu.Unlock()
	if tt.closed {
		return nil, util.NewErrorf(util.ErrInternalServerError, "timetable %s is closed", tt.dir)
	}
	if d, ok := tt.days[key]; ok {
		return d, nil
	}

	dayDir := filepath.Join(tt.dir, key)
	var opened []*mappedFile
	fail := func(err error) (*dayTables, error) {
		for _, f := range opened {
			f.Close()
		}
		return nil, err
	}
	for _, name := range []string{TripsFile, ConnectionsFile, ConnectionsSuccFile} {
		f, err := mapFile(filepath.Join(dayDir, name))
		if err != nil {
			return fail(util.WrapErrorf(err, util.ErrNotFound, "no timetable for %s", key))
		}
		opened = append(opened, f)
	}

	trips, err := NewBufferedTrips(tt.stringTable, opened[0].Bytes())
	if err != nil {
		return fail(util.WrapErrorf(err, util.ErrBadParamInput, "%s", opened[0].path))
	}
	connections, err := NewBufferedConnections(opened[1].Bytes(), opened[2].Bytes())
	if err != nil {
		return fail(util.WrapErrorf(err, util.ErrBadParamInput, "%s", opened[1].path))
	}

	d := &dayTables{trips: trips, connections: connections}
	tt.days[key] = d
	tt.mapped = append(tt.mapped, opened...)
	tt.log.Debug("day tables mapped", zap.String("date", key),
		zap.Int("trips", trips.Size()), zap.Int("connections", connections.Size()))
	return d, nil
}

// Close unmaps every table, none of them may be used afterwards.
func (tt *FileTimeTable) Close() error {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	if tt.closed {
		return nil
	}
	tt.closed = true

	var errs []error
	for _, f := range tt.mapped {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	tt.mapped = nil
	tt.days = nil
	return errors.Join(errs...)
}
