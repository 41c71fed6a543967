package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lintang-b-s/Transitx/pkg/engine"
	"github.com/lintang-b-s/Transitx/pkg/journey"
	"github.com/lintang-b-s/Transitx/pkg/logger"
	"github.com/lintang-b-s/Transitx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	timetableDir = flag.String("timetable_dir", "", "timetable directory, defaults to TIMETABLE_DIR")
	profileDir   = flag.String("profile_dir", "", "profile directory, defaults to PROFILE_DIR")
	date         = flag.String("date", "", "service day, YYYY-MM-DD")
	from         = flag.String("from", "", "departure station name or alias")
	to           = flag.String("to", "", "arrival station name or alias")
)

// prints the journeys of one precomputed profile, e.g.
//
//	extractor -date 2025-03-18 -from "Ecublens VD, EPFL" -to "Gruyères"
func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	if *timetableDir == "" {
		*timetableDir = viper.GetString("TIMETABLE_DIR")
	}
	if *profileDir == "" {
		*profileDir = viper.GetString("PROFILE_DIR")
	}

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	loc, err := time.LoadLocation(viper.GetString("TIMEZONE"))
	if err != nil {
		log.Fatal("invalid TIMEZONE", zap.Error(err))
	}
	day, err := time.ParseInLocation("2006-01-02", *date, loc)
	if err != nil {
		log.Fatal("invalid -date", zap.String("date", *date), zap.Error(err))
	}

	transitEngine, err := engine.NewEngine(*timetableDir, *profileDir, 1, viper.GetInt("EXTRACT_WORKERS"), log)
	if err != nil {
		log.Fatal("open engine", zap.Error(err))
	}
	defer transitEngine.Close()

	dep, err := transitEngine.StationByName(*from)
	if err != nil {
		log.Fatal("departure station", zap.Error(err))
	}
	arr, err := transitEngine.StationByName(*to)
	if err != nil {
		log.Fatal("arrival station", zap.Error(err))
	}

	journeys, err := transitEngine.Journeys(day, dep.Id, arr.Id)
	if err != nil {
		log.Fatal("extract journeys", zap.Error(err))
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	fmt.Fprintf(w, "%d journeys from %s to %s on %s\n", len(journeys), dep.Name, arr.Name, *date)
	for _, j := range journeys {
		writeJourney(w, j)
	}
}

func writeJourney(w io.Writer, j *journey.Journey) {
	changes := "changes"
	if j.Changes() == 1 {
		changes = "change"
	}
	fmt.Fprintf(w, "\n%s -> %s (%s, %d %s)\n", j.DepTime().Format("15:04"), j.ArrTime().Format("15:04"),
		j.Duration(), j.Changes(), changes)
	for _, l := range j.Legs() {
		fmt.Fprintf(w, "  %s\n", legLine(l))
	}
}

func legLine(l journey.Leg) string {
	ends := fmt.Sprintf("%s %s -> %s %s", l.DepStop(), l.DepTime().Format("15:04"), l.ArrStop(),
		l.ArrTime().Format("15:04"))
	t, ok := l.(*journey.TransportLeg)
	if !ok {
		return "walk  " + ends
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (to %s)  %s", t.Vehicle, t.Route, t.Destination, ends)
	if n := len(t.IntermediateStops()); n > 0 {
		fmt.Fprintf(&b, ", %d stops in between", n)
	}
	return b.String()
}
