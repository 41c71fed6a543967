package main

import (
	"github.com/lintang-b-s/Transitx/pkg/logger"
	"github.com/lintang-b-s/Transitx/pkg/timetable"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// loads the configured timetable, logs its table sizes and exits.
func main() {
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	tt, err := timetable.Open(viper.GetString("TIMETABLE_DIR"), log)
	if err != nil {
		panic(err)
	}
	defer tt.Close()

	log.Info("timetable loaded",
		zap.Int("stations", tt.Stations().Size()),
		zap.Int("aliases", tt.StationAliases().Size()),
		zap.Int("platforms", tt.Platforms().Size()),
		zap.Int("routes", tt.Routes().Size()),
		zap.Int("transfers", tt.Transfers().Size()))
}
