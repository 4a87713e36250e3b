package core

import (
	"fmt"
	"math"
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat  float64
	Long float64
}

func NewCoordinate(lat, long float64) Coordinate {
	return Coordinate{Lat: lat, Long: long}
}

func (c Coordinate) Kind() Kind { return KindCoord }

// String renders the display form: lat/long rounded to 6 decimals, the
// precision Haystack uses for human-readable output. Full precision is
// preserved on the value itself (Lat/Long) and on the wire; see Wire.
func (c Coordinate) String() string {
	return fmt.Sprintf("C(%s,%s)", formatFloat(round6(c.Lat)), formatFloat(round6(c.Long)))
}

// Wire renders the full-precision form used by codecs, so a Coordinate
// round-trips exactly rather than losing precision to display rounding.
func (c Coordinate) Wire() string {
	return fmt.Sprintf("C(%s,%s)", formatFloat(c.Lat), formatFloat(c.Long))
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func (c Coordinate) Equal(o Val) bool {
	oc, ok := o.(Coordinate)
	return ok && oc == c
}
