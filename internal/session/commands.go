package session

import (
	"fmt"
	"strconv"
	"strings"

	"scene-viewer/internal/assets"
	"scene-viewer/internal/commands"
)

// Register adds the viewer's console commands to reg.
func (s *Session) Register(reg *commands.Registry) {
	s.registerSet(reg)
	s.registerLoad(reg)

	reg.Register("get", "cmd get", nil, func() error {
		for _, v := range s.Panel.Values() {
			s.log.Logf("%s = %g [%g, %g]", v.Name, v.Value, v.Min, v.Max)
		}
		s.log.Logf("z = %g", s.Controller.Z())
		return nil
	})

	gridFS := commands.NewFlagSet("grid")
	on := gridFS.Bool("on", true, "show the reference grid")
	reg.Register("grid", "cmd grid -on=true|false", gridFS, func() error {
		s.Scene.SetGridVisible(*on)
		return nil
	})

	reg.Register("reset", "cmd reset", nil, func() error {
		s.Reset()
		s.log.Log("camera reset")
		return nil
	})

	reg.Register("objects", "cmd objects", nil, func() error {
		objs := s.Scene.Objects()
		if len(objs) == 0 {
			s.log.Log("no objects loaded")
			return nil
		}
		for _, o := range objs {
			s.log.Logf("%s at (%g, %g, %g) scale %g", o.Name, o.Position[0], o.Position[1], o.Position[2], o.Scale)
		}
		return nil
	})

	reg.Register("help", "cmd help", nil, func() error {
		for _, line := range reg.Help() {
			s.log.Log(line)
		}
		return nil
	})
}

func (s *Session) registerSet(reg *commands.Registry) {
	fs := commands.NewFlagSet("set")
	field := fs.String("field", "", "znear, zfar, radius, theta, phi, fov or aspect")
	var value requiredFloat
	fs.Var(&value, "value", "new value")
	reg.Register("set", "cmd set -field radius -value 20", fs, func() error {
		name := strings.ToLower(strings.TrimSpace(*field))
		if name == "" {
			return fmt.Errorf("set: -field is required")
		}
		if !value.set {
			return fmt.Errorf("set: -value is required")
		}
		if err := s.Panel.Edit(name, float32(value.v)); err != nil {
			return err
		}
		for _, v := range s.Panel.Values() {
			if v.Name == name {
				s.log.Logf("%s = %g", name, v.Value)
			}
		}
		return nil
	})
}

func (s *Session) registerLoad(reg *commands.Registry) {
	fs := commands.NewFlagSet("load")
	name := fs.String("name", "", "model directory name, e.g. eye")
	x := fs.Float64("x", 0, "position x")
	y := fs.Float64("y", 0, "position y")
	z := fs.Float64("z", 0, "position z")
	scale := fs.Float64("scale", 1, "uniform scale")
	reg.Register("load", "cmd load -name eye -x 0 -y 0 -z 0 -scale 1", fs, func() error {
		req := assets.Request{
			Name:     *name,
			Position: [3]float32{float32(*x), float32(*y), float32(*z)},
			Scale:    float32(*scale),
		}
		if err := s.Load(req); err != nil {
			return fmt.Errorf("load: %w", err)
		}
		s.log.Logf("loading %s", req.Name)
		return nil
	})
}

// requiredFloat is a float flag that records whether it was given on the current run.
type requiredFloat struct {
	v   float64
	set bool
}

func (f *requiredFloat) String() string {
	if f == nil {
		return "0"
	}
	return strconv.FormatFloat(f.v, 'g', -1, 64)
}

func (f *requiredFloat) Reset() { *f = requiredFloat{} }

func (f *requiredFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}
