package cli

import (
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/soypat/torosphere/cache"
	"github.com/soypat/torosphere/render"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	keyView   = "view"
	keyOut    = "out"
	keyWidth  = "width"
	keyHeight = "height"
	viewAll   = "all"
)

func newView() *SubCommand {
	var sc *SubCommand
	sc = newSubCommand(&cobra.Command{
		Use:   "view",
		Short: "Render the cross-section figure or a 3D view of the head",
		Long: `
Render one of the head views to an image file:

  2d      annotated cross-section figure (png, svg or pdf by extension)
  simple  revolved surface in a single color
  zones   revolved surface colored by zone
  half    half section with the wall cross-section filled at the cut
  all     every view above, written to the --out directory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sc.config()
			if err != nil {
				return err
			}
			name := sc.GetStringP(keyView, render.ViewZones.String())
			var views []render.View
			if name == viewAll {
				views = []render.View{render.View2D, render.ViewSimple, render.ViewZones, render.ViewHalf}
			} else {
				v, err := render.ParseView(name)
				if err != nil {
					return err
				}
				views = []render.View{v}
			}
			out := sc.GetStringP(keyOut, "")
			paths := make([]string, len(views))
			for i, v := range views {
				switch {
				case name == viewAll:
					if out == "" {
						out = "."
					}
					paths[i] = filepath.Join(out, "torosphere-"+v.String()+".png")
				case out == "":
					paths[i] = "torosphere-" + v.String() + ".png"
				default:
					paths[i] = out
				}
			}
			if name == viewAll {
				if err := os.MkdirAll(out, 0o755); err != nil {
					return errors.Wrap(err, "creating output directory")
				}
			}
			meshes, err := cache.New(4)
			if err != nil {
				return err
			}
			defer meshes.Close()

			width, height := sc.GetIntP(keyWidth, 900), sc.GetIntP(keyHeight, 800)
			var eg errgroup.Group
			for i, v := range views {
				eg.Go(func() error {
					return renderView(meshes, cfg, v, width, height, paths[i])
				})
			}
			return eg.Wait()
		},
	})
	flags := sc.Cmd.Flags()
	flags.String(keyView, render.ViewZones.String(), "View to render: 2d, simple, zones, half or all.")
	flags.String(keyOut, "", "Output image file, or directory for --view=all.")
	flags.Int(keyWidth, 900, "Image width in pixels.")
	flags.Int(keyHeight, 800, "Image height in pixels.")
	return sc
}

// renderView draws v with the mesh cached in meshes. Concurrent views share
// a single mesh build.
func renderView(meshes *cache.Meshes, cfg Config, v render.View, width, height int, path string) error {
	glog.Infof("Rendering %v view of %+v", v, cfg.Head)
	e, err := meshes.Get(cfg.Key())
	if err != nil {
		return err
	}
	req := render.Request{
		Geometry:      e.Geometry,
		Mesh:          e.Mesh,
		ArcResolution: cfg.ArcResolution,
		Stride:        cfg.Stride,
		Width:         width,
		Height:        height,
	}
	if err := render.Render(v, req, path); err != nil {
		return errors.Wrapf(err, "rendering %v view", v)
	}
	logWritten(path)
	return nil
}

func logWritten(path string) {
	info, err := os.Stat(path)
	if err != nil {
		glog.Warningf("stat %s: %v", path, err)
		return
	}
	glog.Infof("Wrote %s (%s)", path, humanize.Bytes(uint64(info.Size())))
}
