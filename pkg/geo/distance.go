package geo

import (
	"math"

	"github.com/lintang-b-s/Transitx/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

const (
	earthRadiusKM = 6371.0
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. great circle distance in km
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return earthRadiusKM * c
}

func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return CalculateHaversineDistance(c.Lat, c.Lon, other.Lat, other.Lon)
}

// walking speed used to estimate a walk when no transfer is known, km/h
const walkingSpeedKMH = 5.0

// WalkingMinutes estimates the minutes needed to walk distKM, rounded up.
func WalkingMinutes(distKM float64) int {
	return int(math.Ceil(distKM * 60 / walkingSpeedKMH))
}
