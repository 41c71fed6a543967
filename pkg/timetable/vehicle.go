package timetable

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/Transitx/pkg/util"
)

type Vehicle uint8

const (
	TRAM Vehicle = iota
	METRO
	TRAIN
	BUS
	FERRY
	AERIAL_LIFT
	FUNICULAR
)

var vehicleNames = [...]string{"TRAM", "METRO", "TRAIN", "BUS", "FERRY", "AERIAL_LIFT", "FUNICULAR"}

var AllVehicles = []Vehicle{TRAM, METRO, TRAIN, BUS, FERRY, AERIAL_LIFT, FUNICULAR}

func VehicleFromOrdinal(ordinal int) (Vehicle, error) {
	if ordinal < 0 || ordinal >= len(vehicleNames) {
		return 0, util.NewErrorf(util.ErrBadParamInput, "unknown vehicle kind %d", ordinal)
	}
	return Vehicle(ordinal), nil
}

func ParseVehicle(s string) (Vehicle, error) {
	for i, name := range vehicleNames {
		if strings.EqualFold(name, s) {
			return Vehicle(i), nil
		}
	}
	return 0, util.NewErrorf(util.ErrBadParamInput, "unknown vehicle %q", s)
}

func (v Vehicle) String() string {
	if int(v) < len(vehicleNames) {
		return vehicleNames[v]
	}
	return fmt.Sprintf("Vehicle(%d)", uint8(v))
}

func (v Vehicle) MarshalText() ([]byte, error) {
	if int(v) >= len(vehicleNames) {
		return nil, util.NewErrorf(util.ErrBadParamInput, "unknown vehicle kind %d", uint8(v))
	}
	return []byte(vehicleNames[v]), nil
}

func (v *Vehicle) UnmarshalText(text []byte) error {
	parsed, err := ParseVehicle(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
