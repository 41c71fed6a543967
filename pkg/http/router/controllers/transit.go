package controllers

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	helper "github.com/lintang-b-s/Transitx/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type transitAPI struct {
	journeyService JourneyService
	stationService StationService
	validate       *validator.Validate
	trans          ut.Translator
	log            *zap.Logger
}

func New(journeyService JourneyService, stationService StationService, log *zap.Logger) *transitAPI {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	return &transitAPI{
		journeyService: journeyService,
		stationService: stationService,
		validate:       validate,
		trans:          trans,
		log:            log,
	}
}

func (api *transitAPI) Routes(group *helper.RouteGroup) {
	group.GET("/journeys", api.journeys)
	group.GET("/journeys/batch", api.journeysBatch)
	group.GET("/stations", api.stationByName)
	group.GET("/stations/nearby", api.nearbyStations)
}
