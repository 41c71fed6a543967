package usecases

import (
	"context"

	"github.com/lintang-b-s/Transitx/pkg/engine"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"go.uber.org/zap"
)

type StationService struct {
	log    *zap.Logger
	engine StationEngine
}

func NewStationService(log *zap.Logger, engine StationEngine) *StationService {
	return &StationService{
		log:    log,
		engine: engine,
	}
}

func (ss *StationService) StationByName(ctx context.Context, name string) (engine.Station, error) {
	return ss.engine.StationByName(name)
}

func (ss *StationService) NearbyStations(ctx context.Context, lat, lon, radiusKM float64, limit int) ([]engine.NearbyStation, error) {
	if radiusKM <= 0 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "radius must be positive, got %v", radiusKM)
	}
	return ss.engine.NearbyStations(lat, lon, radiusKM, limit), nil
}
