package torosphere

import "math"

const (
	// MillimetresPerInch is millimetres per inch (25.4)
	MillimetresPerInch = 25.4
	// InchesPerMillimetre is inches per millimetre
	InchesPerMillimetre = 1.0 / MillimetresPerInch
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// tolerance is the relative tolerance used for geometric identities.
	tolerance = 1e-9
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}
