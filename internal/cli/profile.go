package cli

import (
	"bufio"
	"fmt"

	"github.com/soypat/torosphere"
	"github.com/spf13/cobra"
)

const keySegments = "segments"

func newProfile() *SubCommand {
	var sc *SubCommand
	sc = newSubCommand(&cobra.Command{
		Use:   "profile",
		Short: "Print the closed cross-section profile as r,z lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sc.config()
			if err != nil {
				return err
			}
			g := torosphere.Derive(cfg.Head)
			w := bufio.NewWriter(cmd.OutOrStdout())
			if sc.Conf.GetBool(keySegments) {
				for _, seg := range torosphere.Segments(g, cfg.ArcResolution) {
					for _, v := range seg.Points {
						fmt.Fprintf(w, "%s,%.9g,%.9g\n", seg.Zone, v.X, v.Y)
					}
				}
				return w.Flush()
			}
			for _, v := range torosphere.SampleProfile(g, cfg.ArcResolution) {
				fmt.Fprintf(w, "%.9g,%.9g\n", v.X, v.Y)
			}
			return w.Flush()
		},
	})
	sc.Cmd.Flags().Bool(keySegments, false, "Print each zone as its own point sequence, prefixed by the zone name.")
	return sc
}
