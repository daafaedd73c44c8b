// Package scene loads the YAML scene files that sweepsim steps through.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jakecoffman/sweep"
)

// Scene is a set of moving boxes and how long to simulate them.
type Scene struct {
	DT     float64    `yaml:"dt"`
	Steps  int        `yaml:"steps"`
	Bodies []BodySpec `yaml:"bodies"`
}

// BodySpec describes one box. Vectors hold 2 or 3 components.
type BodySpec struct {
	Name        string    `yaml:"name"`
	Position    []float64 `yaml:"position"`
	HalfExtents []float64 `yaml:"half_extents"`
	Velocity    []float64 `yaml:"velocity"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

func Parse(raw []byte) (*Scene, error) {
	s := &Scene{DT: 1.0 / 60.0, Steps: 1}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) Validate() error {
	if s.DT <= 0 {
		return fmt.Errorf("dt must be positive, got %v", s.DT)
	}
	if s.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", s.Steps)
	}
	seen := make(map[string]bool, len(s.Bodies))
	for i, b := range s.Bodies {
		if b.Name == "" {
			return fmt.Errorf("body %d: missing name", i)
		}
		if seen[b.Name] {
			return fmt.Errorf("body %q: duplicate name", b.Name)
		}
		seen[b.Name] = true
		if _, err := vector(b.Position, true); err != nil {
			return fmt.Errorf("body %q position: %w", b.Name, err)
		}
		if _, err := vector(b.HalfExtents, true); err != nil {
			return fmt.Errorf("body %q half_extents: %w", b.Name, err)
		}
		if _, err := vector(b.Velocity, false); err != nil {
			return fmt.Errorf("body %q velocity: %w", b.Name, err)
		}
	}
	return nil
}

// Boxes builds a fresh box for every body, in file order.
func (s *Scene) Boxes() []*sweep.Box {
	boxes := make([]*sweep.Box, 0, len(s.Bodies))
	for _, b := range s.Bodies {
		p, _ := vector(b.Position, true)
		half, _ := vector(b.HalfExtents, true)
		v, _ := vector(b.Velocity, false)
		box := sweep.NewBox(b.Name, p, half)
		box.SetVelocity(v)
		boxes = append(boxes, box)
	}
	return boxes
}

func vector(c []float64, required bool) (sweep.Vector, error) {
	switch len(c) {
	case 0:
		if required {
			return sweep.Vector{}, fmt.Errorf("missing")
		}
		return sweep.Vector{}, nil
	case 2:
		return sweep.Vector{X: c[0], Y: c[1]}, nil
	case 3:
		return sweep.Vector{X: c[0], Y: c[1], Z: c[2]}, nil
	}
	return sweep.Vector{}, fmt.Errorf("want 2 or 3 components, got %d", len(c))
}
