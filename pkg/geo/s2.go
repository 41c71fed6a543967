package geo

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Box. lat/lon rectangle with Lower.Lon <= Upper.Lon.
type Box struct {
	Lower, Upper Coordinate
}

// BoundingBoxes returns the lat/lon boxes around the circle of radiusKM centred on (lat, lon), two of them when the
// circle crosses the antimeridian.
func BoundingBoxes(lat, lon, radiusKM float64) []Box {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon))
	angle := s1.Angle(radiusKM / earthRadiusKM)
	rect := s2.CapFromCenterAngle(center, angle).RectBound()

	loLat, hiLat := rect.Lo().Lat.Degrees(), rect.Hi().Lat.Degrees()
	loLng, hiLng := rect.Lo().Lng.Degrees(), rect.Hi().Lng.Degrees()
	if !rect.Lng.IsInverted() {
		return []Box{{Lower: NewCoordinate(loLat, loLng), Upper: NewCoordinate(hiLat, hiLng)}}
	}
	return []Box{
		{Lower: NewCoordinate(loLat, loLng), Upper: NewCoordinate(hiLat, 180)},
		{Lower: NewCoordinate(loLat, -180), Upper: NewCoordinate(hiLat, hiLng)},
	}
}
