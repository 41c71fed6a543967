package usecases

import (
	"time"

	"github.com/lintang-b-s/Transitx/pkg/engine"
	"github.com/lintang-b-s/Transitx/pkg/journey"
)

type JourneyEngine interface {
	Journeys(date time.Time, depStationId, arrStationId int) ([]*journey.Journey, error)
	JourneysFrom(date time.Time, depStationIds []int, arrStationId int) ([][]*journey.Journey, error)
	StationByName(name string) (engine.Station, error)
}

type StationEngine interface {
	StationByName(name string) (engine.Station, error)
	NearbyStations(lat, lon, radiusKM float64, limit int) []engine.NearbyStation
}
