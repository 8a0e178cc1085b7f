package cli

import (
	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/soypat/torosphere/cache"
	"github.com/soypat/torosphere/render"
	"github.com/soypat/torosphere/solid"
	"github.com/spf13/cobra"
)

const (
	keyCells  = "cells"
	keyNoCaps = "no_cut_faces"
	keyHalf   = "half"
)

func newSTL() *SubCommand {
	var sc *SubCommand
	sc = newSubCommand(&cobra.Command{
		Use:   "stl",
		Short: "Write the revolved shell surface mesh as binary STL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sc.config()
			if err != nil {
				return err
			}
			glog.Infof("Building mesh %d×%d", 4*cfg.ArcResolution+2, cfg.AzimuthDivisions+1)
			e, err := cache.Build(cfg.Key())
			if err != nil {
				return err
			}
			w := e.Mesh.FullWindow()
			half := sc.Conf.GetBool(keyHalf)
			if half {
				w = e.Mesh.HalfWindow()
			}
			model := render.Triangulate(e.Mesh, w)
			if half && !sc.Conf.GetBool(keyNoCaps) {
				end := e.Mesh.Theta()[e.Mesh.HalfColumns()-1]
				model = append(model, render.CutFace(e.Profile, cfg.ArcResolution, 0)...)
				model = append(model, render.CutFace(e.Profile, cfg.ArcResolution, end)...)
			}
			path := sc.GetStringP(keyOut, "torosphere.stl")
			glog.Infof("Writing %s triangles", humanize.Comma(int64(len(model))))
			if err := render.CreateSTL(path, model); err != nil {
				return err
			}
			logWritten(path)
			return nil
		},
	})
	flags := sc.Cmd.Flags()
	flags.String(keyOut, "torosphere.stl", "Output STL file.")
	flags.Bool(keyHalf, false, "Only export the half section θ∈[0,π].")
	flags.Bool(keyNoCaps, false, "Leave the half section open at the cut planes.")
	return sc
}

func newSolid() *SubCommand {
	var sc *SubCommand
	sc = newSubCommand(&cobra.Command{
		Use:   "solid",
		Short: "Write a marching cubes tessellation of the solid wall as binary STL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sc.config()
			if err != nil {
				return err
			}
			s, err := solid.New(cfg.Head, cfg.ArcResolution)
			if err != nil {
				return err
			}
			cells := sc.GetIntP(keyCells, 200)
			glog.Infof("Tessellating solid with %d cells", cells)
			model, err := s.Triangles(cells)
			if err != nil {
				return err
			}
			path := sc.GetStringP(keyOut, "torosphere-solid.stl")
			if err := render.CreateSTL(path, model); err != nil {
				return err
			}
			logWritten(path)
			return nil
		},
	})
	flags := sc.Cmd.Flags()
	flags.String(keyOut, "torosphere-solid.stl", "Output STL file.")
	flags.Int(keyCells, 200, "Marching cubes cells along the longest side. Cells must be smaller than the thickness.")
	return sc
}
