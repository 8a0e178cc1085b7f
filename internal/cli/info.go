package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/soypat/torosphere"
	"github.com/soypat/torosphere/cache"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const keyYAML = "yaml"

type point struct {
	R float64 `yaml:"r"`
	Z float64 `yaml:"z"`
}

// report is the derived geometry of a head as printed by info.
type report struct {
	Params struct {
		D  float64 `yaml:"diameter"`
		Rc float64 `yaml:"crown_radius"`
		Rk float64 `yaml:"knuckle_radius"`
		T  float64 `yaml:"thickness"`
		H  float64 `yaml:"flange_height"`
	} `yaml:"params"`
	Ratio         float64 `yaml:"ratio"`
	KnuckleSweep  float64 `yaml:"knuckle_sweep_deg"`
	CrownAngle    float64 `yaml:"crown_half_angle_deg"`
	SphereCenterZ float64 `yaml:"sphere_center_z"`
	KnuckleCenter point   `yaml:"knuckle_center"`
	InnerTangency point   `yaml:"inner_tangency"`
	OuterTangency point   `yaml:"outer_tangency"`
	ApexInner     float64 `yaml:"apex_inner"`
	ApexOuter     float64 `yaml:"apex_outer"`
	SectionArea   float64 `yaml:"section_area"`
	WallVolume    float64 `yaml:"wall_volume"`
	ProfilePoints int     `yaml:"profile_points"`
	MeshRows      int     `yaml:"mesh_rows"`
	MeshColumns   int     `yaml:"mesh_columns"`
}

func newReport(e *cache.Entry) report {
	g := e.Geometry
	var r report
	r.Params.D, r.Params.Rc, r.Params.Rk, r.Params.T, r.Params.H = g.Params.D, g.Params.Rc, g.Params.Rk, g.Params.T, g.Params.H
	r.Ratio = g.Ratio
	r.KnuckleSweep = torosphere.RtoD(g.Alpha)
	r.CrownAngle = torosphere.RtoD(g.Phi)
	r.SphereCenterZ = g.ZSphere
	r.KnuckleCenter = point{R: g.KnuckleCenter.X, Z: g.KnuckleCenter.Y}
	r.InnerTangency = point{R: g.InnerTangency.X, Z: g.InnerTangency.Y}
	r.OuterTangency = point{R: g.OuterTangency.X, Z: g.OuterTangency.Y}
	r.ApexInner, r.ApexOuter = g.ApexInner, g.ApexOuter
	r.SectionArea = e.Profile.Area()
	r.WallVolume = e.Profile.WallVolume()
	r.ProfilePoints = len(e.Profile)
	r.MeshRows, r.MeshColumns = e.Mesh.Shape()
	return r
}

func (r report) writeText(w io.Writer) error {
	p := r.Params
	_, err := fmt.Fprintf(w, `Head       D=%g  Rc=%g  rk=%g  t=%g  h=%g
Ratio      %.6f
Knuckle    sweep %.3f°  center (%.4f, %.4f)
Crown      half-angle %.3f°  sphere center z=%.4f
Tangency   inner (%.4f, %.4f)  outer (%.4f, %.4f)
Apex       inner z=%.4f  outer z=%.4f
Section    area %s  wall volume %s
Mesh       %s profile points, %s×%s grid
`,
		p.D, p.Rc, p.Rk, p.T, p.H,
		r.Ratio,
		r.KnuckleSweep, r.KnuckleCenter.R, r.KnuckleCenter.Z,
		r.CrownAngle, r.SphereCenterZ,
		r.InnerTangency.R, r.InnerTangency.Z, r.OuterTangency.R, r.OuterTangency.Z,
		r.ApexInner, r.ApexOuter,
		humanize.CommafWithDigits(r.SectionArea, 2), humanize.CommafWithDigits(r.WallVolume, 0),
		humanize.Comma(int64(r.ProfilePoints)), humanize.Comma(int64(r.MeshRows)), humanize.Comma(int64(r.MeshColumns)),
	)
	return err
}

func newInfo() *SubCommand {
	var sc *SubCommand
	sc = newSubCommand(&cobra.Command{
		Use:   "info",
		Short: "Validate a head and print its derived geometry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sc.config()
			if err != nil {
				return err
			}
			e, err := cache.Build(cfg.Key())
			if err != nil {
				return err
			}
			r := newReport(e)
			if !sc.Conf.GetBool(keyYAML) {
				return r.writeText(cmd.OutOrStdout())
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(r); err != nil {
				return err
			}
			return enc.Close()
		},
	})
	sc.Cmd.Flags().Bool(keyYAML, false, "Print the report as YAML.")
	return sc
}
