package journey

import (
	"time"

	"github.com/lintang-b-s/Transitx/pkg/util"
)

// Journey. legs alternating between foot and transport, each starting where the previous one ended.
type Journey struct {
	legs []Leg
}

func NewJourney(legs []Leg) (*Journey, error) {
	if len(legs) == 0 {
		return nil, util.NewErrorf(util.ErrBadParamInput, "journey without legs")
	}
	for i := 1; i < len(legs); i++ {
		prev, cur := legs[i-1], legs[i]
		if cur.DepTime().Before(prev.ArrTime()) {
			return nil, util.NewErrorf(util.ErrBadParamInput, "leg %d leaves at %v before leg %d arrives at %v",
				i, cur.DepTime(), i-1, prev.ArrTime())
		}
		if cur.DepStop() != prev.ArrStop() {
			return nil, util.NewErrorf(util.ErrBadParamInput, "leg %d leaves from %s, leg %d ends at %s",
				i, cur.DepStop(), i-1, prev.ArrStop())
		}
		if cur.Kind() == prev.Kind() {
			return nil, util.NewErrorf(util.ErrBadParamInput, "legs %d and %d are both %s legs", i-1, i, cur.Kind())
		}
	}
	return &Journey{legs: append([]Leg{}, legs...)}, nil
}

func (j *Journey) Legs() []Leg {
	return j.legs
}

func (j *Journey) DepStop() Stop {
	return j.legs[0].DepStop()
}

func (j *Journey) ArrStop() Stop {
	return j.legs[len(j.legs)-1].ArrStop()
}

func (j *Journey) DepTime() time.Time {
	return j.legs[0].DepTime()
}

func (j *Journey) ArrTime() time.Time {
	return j.legs[len(j.legs)-1].ArrTime()
}

func (j *Journey) Duration() time.Duration {
	return j.ArrTime().Sub(j.DepTime())
}

// Changes counts the vehicles boarded after the first one.
func (j *Journey) Changes() int {
	rides := 0
	for _, l := range j.legs {
		if l.Kind() == TRANSPORT {
			rides++
		}
	}
	return util.Max(rides-1, 0)
}
