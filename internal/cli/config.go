package cli

import (
	"github.com/pkg/errors"
	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/cache"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Option keys shared by every subcommand. They double as flag names, config
// file keys and, upper cased with the TOROSPHERE_ prefix, environment
// variables.
const (
	keyDiameter         = "diameter"
	keyCrownRadius      = "crown_radius"
	keyKnuckleRadius    = "knuckle_radius"
	keyThickness        = "thickness"
	keyFlangeHeight     = "flange_height"
	keyArcResolution    = "arc_resolution"
	keyAzimuthDivisions = "azimuth_divisions"
	keyStride           = "stride"
	keyConfig           = "config"
)

// Config is the resolved head and mesh configuration of a command run.
type Config struct {
	Head             torosphere.HeadParams
	ArcResolution    int
	AzimuthDivisions int
	Stride           int
}

// Flange-and-dished head in millimetres.
var defaultConfig = Config{
	Head:             torosphere.HeadParams{D: 1524, Rc: 1524, Rk: 100, T: 10, H: 50},
	ArcResolution:    64,
	AzimuthDivisions: 60,
	Stride:           2,
}

func addHeadFlags(flags *pflag.FlagSet) {
	d := defaultConfig
	flags.Float64(keyDiameter, d.Head.D, "Inside diameter D of the straight flange.")
	flags.Float64(keyCrownRadius, d.Head.Rc, "Inner crown (dish) radius R_c. Must be >= D/2.")
	flags.Float64(keyKnuckleRadius, d.Head.Rk, "Inner knuckle radius r_k. Must be < D/2.")
	flags.Float64(keyThickness, d.Head.T, "Shell thickness t. Must be < r_k.")
	flags.Float64(keyFlangeHeight, d.Head.H, "Straight flange height h. May be zero.")
	flags.Int(keyArcResolution, d.ArcResolution, "Points sampled per arc segment.")
	flags.Int(keyAzimuthDivisions, d.AzimuthDivisions, "Azimuthal divisions of the revolved mesh.")
	flags.Int(keyStride, d.Stride, "Mesh subsampling stride for 3D views.")
	flags.String(keyConfig, "", "Configuration file. Takes precedence over default values, but is "+
		"overridden by environment variables and flags.")
}

// configFrom resolves and validates the configuration held by conf.
func configFrom(conf *viper.Viper) (Config, error) {
	c := Config{
		Head: torosphere.HeadParams{
			D:  conf.GetFloat64(keyDiameter),
			Rc: conf.GetFloat64(keyCrownRadius),
			Rk: conf.GetFloat64(keyKnuckleRadius),
			T:  conf.GetFloat64(keyThickness),
			H:  conf.GetFloat64(keyFlangeHeight),
		},
		ArcResolution:    conf.GetInt(keyArcResolution),
		AzimuthDivisions: conf.GetInt(keyAzimuthDivisions),
		Stride:           conf.GetInt(keyStride),
	}
	return c, c.Validate()
}

// Params returns the head parameters.
func (c Config) Params() torosphere.HeadParams { return c.Head }

// Key returns the mesh cache key of c.
func (c Config) Key() cache.Key {
	return cache.Key{Params: c.Head, ArcResolution: c.ArcResolution, AzimuthDivisions: c.AzimuthDivisions}
}

// Validate checks the head parameters and resolutions.
func (c Config) Validate() error {
	switch {
	case c.ArcResolution < 1:
		return errors.Wrapf(torosphere.ErrOutOfRange, "%s must be >= 1 (got %d)", keyArcResolution, c.ArcResolution)
	case c.AzimuthDivisions < 1:
		return errors.Wrapf(torosphere.ErrOutOfRange, "%s must be >= 1 (got %d)", keyAzimuthDivisions, c.AzimuthDivisions)
	case c.Stride < 1:
		return errors.Wrapf(torosphere.ErrOutOfRange, "%s must be >= 1 (got %d)", keyStride, c.Stride)
	}
	return c.Head.Validate()
}
