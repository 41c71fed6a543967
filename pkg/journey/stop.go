package journey

import (
	"fmt"

	"github.com/lintang-b-s/Transitx/pkg/util"
)

// Stop. a station, or a platform of it when PlatformName is set.
type Stop struct {
	Name         string  `json:"name"`
	PlatformName string  `json:"platform_name,omitempty"`
	Longitude    float64 `json:"lon"`
	Latitude     float64 `json:"lat"`
}

func NewStop(name, platformName string, lon, lat float64) (Stop, error) {
	if lat < -90 || lat > 90 {
		return Stop{}, util.NewErrorf(util.ErrBadParamInput, "latitude %f out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return Stop{}, util.NewErrorf(util.ErrBadParamInput, "longitude %f out of range", lon)
	}
	return Stop{Name: name, PlatformName: platformName, Longitude: lon, Latitude: lat}, nil
}

func (s Stop) String() string {
	if s.PlatformName == "" {
		return s.Name
	}
	return fmt.Sprintf("%s (pl. %s)", s.Name, s.PlatformName)
}
