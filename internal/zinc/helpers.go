package zinc

import (
	"math"
	"time"
)

func inf(sign int) float64 {
	return math.Inf(sign)
}

func nan() float64 {
	return math.NaN()
}

func computeWallClock(y, mo, d, h, mi, s, nanos int, loc *time.Location) time.Time {
	return time.Date(y, time.Month(mo), d, h, mi, s, nanos, loc)
}
