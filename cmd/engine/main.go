package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/lintang-b-s/Transitx/pkg/engine"
	"github.com/lintang-b-s/Transitx/pkg/http"
	"github.com/lintang-b-s/Transitx/pkg/http/usecases"
	"github.com/lintang-b-s/Transitx/pkg/logger"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	timetableDir = flag.String("timetable_dir", "", "timetable directory, overrides TIMETABLE_DIR")
	profileDir   = flag.String("profile_dir", "", "profile directory, overrides PROFILE_DIR")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	if *timetableDir != "" {
		viper.Set("TIMETABLE_DIR", *timetableDir)
	}
	if *profileDir != "" {
		viper.Set("PROFILE_DIR", *profileDir)
	}
	cfg, err := util.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		panic(err)
	}

	transitEngine, err := engine.NewEngine(cfg.TimetableDir, cfg.ProfileDir, cfg.ProfileCacheSize, cfg.ExtractWorkers,
		logger)
	if err != nil {
		panic(err)
	}
	defer transitEngine.Close()

	api := http.NewServer(logger)

	journeyService := usecases.NewJourneyService(logger, transitEngine, loc)
	stationService := usecases.NewStationService(logger, transitEngine)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, cfg, journeyService, stationService)

	signal := http.GracefulShutdown()

	logger.Info("Transitx Journey Planner Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("API stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
