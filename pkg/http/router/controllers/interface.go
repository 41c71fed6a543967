package controllers

import (
	"context"

	"github.com/lintang-b-s/Transitx/pkg/engine"
	"github.com/lintang-b-s/Transitx/pkg/journey"
)

type JourneyService interface {
	Journeys(ctx context.Context, date, from, to string) ([]*journey.Journey, error)
	JourneysFrom(ctx context.Context, date string, froms []string, to string) ([][]*journey.Journey, error)
}

type StationService interface {
	StationByName(ctx context.Context, name string) (engine.Station, error)
	NearbyStations(ctx context.Context, lat, lon, radiusKM float64, limit int) ([]engine.NearbyStation, error)
}
