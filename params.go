package torosphere

import (
	"github.com/pkg/errors"
)

// Error kinds returned by the geometry and revolution stages. Returned errors
// wrap one of these and should be checked with errors.Is.
var (
	// ErrOutOfRange is returned when a scalar violates its sign constraint.
	ErrOutOfRange = errors.New("parameter out of range")
	// ErrInvalidProportions is returned when parameters are individually in
	// range but their pairwise ordering would self-intersect the shell.
	ErrInvalidProportions = errors.New("invalid head proportions")
	// ErrInfeasibleGeometry is returned when no tangent crown-sphere/knuckle-torus
	// construction exists for the parameters.
	ErrInfeasibleGeometry = errors.New("infeasible head geometry")
	// ErrInvalidInput is returned by the revolution stage when the profile
	// contains a negative radial coordinate.
	ErrInvalidInput = errors.New("invalid input")
)

// HeadParams are the five parameters that fully define a torospherical head.
// All lengths must share one unit system; no conversion is ever performed.
type HeadParams struct {
	// D is the inside diameter of the straight flange.
	D float64
	// Rc is the inner crown (dish) radius.
	Rc float64
	// Rk is the inner knuckle radius.
	Rk float64
	// T is the shell thickness.
	T float64
	// H is the straight flange height. May be zero.
	H float64
}

// Validate checks p against the constraints that guarantee a real,
// non-self-intersecting torospherical surface. Checks run in a fixed order
// and the first violation is returned.
func (p HeadParams) Validate() error {
	switch {
	case !(p.D > 0):
		return errors.Wrapf(ErrOutOfRange, "inside diameter D must be positive (got D=%g)", p.D)
	case !(p.T > 0):
		return errors.Wrapf(ErrOutOfRange, "shell thickness t must be positive (got t=%g)", p.T)
	case !(p.Rk > 0):
		return errors.Wrapf(ErrOutOfRange, "knuckle radius r_k must be positive (got r_k=%g)", p.Rk)
	case !(p.H >= 0):
		return errors.Wrapf(ErrOutOfRange, "straight flange height h must be non-negative (got h=%g)", p.H)
	case !(p.Rc >= p.D/2):
		return errors.Wrapf(ErrInvalidProportions, "crown radius R_c (%g) must be >= D/2 (%.4g)", p.Rc, p.D/2)
	case !(p.Rk < p.D/2):
		return errors.Wrapf(ErrInvalidProportions, "knuckle radius r_k (%g) must be < D/2 (%.4g)", p.Rk, p.D/2)
	case !(p.T < p.Rk):
		return errors.Wrapf(ErrInvalidProportions, "shell thickness t (%g) must be < knuckle radius r_k (%g), outer knuckle would self-intersect", p.T, p.Rk)
	}
	if ratio := p.ratio(); !(ratio < 1) {
		return errors.Wrapf(ErrInfeasibleGeometry, "(D/2 - r_k)/(R_c - r_k) = %.6f >= 1: crown sphere cannot span the knuckle, increase R_c or decrease r_k", ratio)
	}
	return nil
}

// Validate is shorthand for p.Validate().
func Validate(p HeadParams) error { return p.Validate() }

// ratio is the shared sine of the crown half-angle and cosine of the knuckle sweep.
func (p HeadParams) ratio() float64 {
	return (p.D/2 - p.Rk) / (p.Rc - p.Rk)
}

// knuckleCenter returns the radial coordinate of the knuckle torus center.
func (p HeadParams) knuckleCenter() float64 { return p.D/2 - p.Rk }

// Scale returns p with every length multiplied by k. Useful for unit changes
// performed by the caller, i.e. Scale(InchesPerMillimetre).
func (p HeadParams) Scale(k float64) HeadParams {
	return HeadParams{D: k * p.D, Rc: k * p.Rc, Rk: k * p.Rk, T: k * p.T, H: k * p.H}
}
