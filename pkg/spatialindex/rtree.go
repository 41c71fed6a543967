package spatialindex

import (
	"sort"

	"github.com/lintang-b-s/Transitx/pkg/geo"
	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// Rtree. point index over the stations of a timetable.
type Rtree struct {
	tr   *rtree.RTreeG[int]
	size int
}

type NearbyStation struct {
	StationId int
	Coord     geo.Coordinate
	DistKM    float64
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[int]
	return &Rtree{
		tr: &tr,
	}
}

// Build. insert every station as a degenerate box at its coordinate.
func (rt *Rtree) Build(stations timetable.Stations, log *zap.Logger) {
	log.Info("Building station R-tree spatial index...", zap.Int("stations", stations.Size()))
	for id := 0; id < stations.Size(); id++ {
		p := [2]float64{stations.Longitude(id), stations.Latitude(id)}
		rt.tr.Insert(p, p, id)
	}
	rt.size += stations.Size()
	log.Info("Station R-tree spatial index built.")
}

func (rt *Rtree) Size() int {
	return rt.size
}

// SearchWithinRadius returns the stations within radius km of (qLat, qLon), nearest first, at most limit of them
// (no limit when limit <= 0).
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64, limit int) []NearbyStation {
	query := geo.NewCoordinate(qLat, qLon)

	results := make([]NearbyStation, 0, 10)
	for _, box := range geo.BoundingBoxes(qLat, qLon, radius) {
		rt.tr.Search([2]float64{box.Lower.Lon, box.Lower.Lat}, [2]float64{box.Upper.Lon, box.Upper.Lat},
			func(min, max [2]float64, id int) bool {
				coord := geo.NewCoordinate(min[1], min[0])
				if dist := query.DistanceTo(coord); dist <= radius {
					results = append(results, NearbyStation{StationId: id, Coord: coord, DistKM: dist})
				}
				return true
			})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].DistKM != results[j].DistKM {
			return results[i].DistKM < results[j].DistKM
		}
		return results[i].StationId < results[j].StationId
	})
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
