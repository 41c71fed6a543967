package usecases

import (
	"context"
	"time"

	"github.com/lintang-b-s/Transitx/pkg/journey"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type JourneyService struct {
	log    *zap.Logger
	engine JourneyEngine
	loc    *time.Location
}

// NewJourneyService. dates of requests are service days in loc.
func NewJourneyService(log *zap.Logger, engine JourneyEngine, loc *time.Location) *JourneyService {
	return &JourneyService{
		log:    log,
		engine: engine,
		loc:    loc,
	}
}

func (js *JourneyService) parseDate(date string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, date, js.loc)
	if err != nil {
		return time.Time{}, util.WrapErrorf(err, util.ErrBadParamInput, "date %q is not YYYY-MM-DD", date)
	}
	return d, nil
}

func (js *JourneyService) stationId(name string) (int, error) {
	s, err := js.engine.StationByName(name)
	if err != nil {
		return 0, err
	}
	return s.Id, nil
}

// Journeys returns the optimal journeys between two stations given by name or alias.
func (js *JourneyService) Journeys(ctx context.Context, date, from, to string) ([]*journey.Journey, error) {
	d, err := js.parseDate(date)
	if err != nil {
		return nil, err
	}
	depId, err := js.stationId(from)
	if err != nil {
		return nil, err
	}
	arrId, err := js.stationId(to)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "journeys %s -> %s", from, to)
	}

	journeys, err := js.engine.Journeys(d, depId, arrId)
	if err != nil {
		return nil, err
	}
	js.log.Debug("journeys found", zap.String("from", from), zap.String("to", to), zap.String("date", date),
		zap.Int("count", len(journeys)))
	return journeys, nil
}

// JourneysFrom returns, for each departure station in froms, its journeys towards to.
func (js *JourneyService) JourneysFrom(ctx context.Context, date string, froms []string, to string) ([][]*journey.Journey, error) {
	d, err := js.parseDate(date)
	if err != nil {
		return nil, err
	}
	depIds := make([]int, 0, len(froms))
	for _, from := range froms {
		id, err := js.stationId(from)
		if err != nil {
			return nil, err
		}
		depIds = append(depIds, id)
	}
	arrId, err := js.stationId(to)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "journeys towards %s", to)
	}
	return js.engine.JourneysFrom(d, depIds, arrId)
}
