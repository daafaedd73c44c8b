package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakecoffman/sweep"
)

const twoBoxes = `
dt: 0.5
steps: 4
bodies:
  - name: a
    position: [1, 1]
    half_extents: [1, 1]
    velocity: [1, 0]
  - name: b
    position: [2, 2, 0]
    half_extents: [1, 1, 1]
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoBoxes), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.DT)
	assert.Equal(t, 4, s.Steps)
	require.Len(t, s.Bodies, 2)

	boxes := s.Boxes()
	require.Len(t, boxes, 2)
	assert.Equal(t, "a", boxes[0].Name())
	assert.Equal(t, sweep.Vector{X: 1, Y: 1}, boxes[0].Position())
	assert.Equal(t, sweep.Vector{X: 1}, boxes[0].Velocity())
	assert.Equal(t, sweep.Vector{X: 1, Y: 1, Z: 1}, boxes[1].HalfExtents())
	assert.Equal(t, sweep.Vector{}, boxes[1].Velocity())
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte("bodies: []"))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/60.0, s.DT, 1e-12)
	assert.Equal(t, 1, s.Steps)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "bodies: [",
		"zero dt":        "dt: 0",
		"no name":        "bodies: [{position: [0, 0], half_extents: [1, 1]}]",
		"duplicate name": "bodies: [{name: a, position: [0, 0], half_extents: [1, 1]}, {name: a, position: [0, 0], half_extents: [1, 1]}]",
		"no position":    "bodies: [{name: a, half_extents: [1, 1]}]",
		"bad velocity":   "bodies: [{name: a, position: [0, 0], half_extents: [1, 1], velocity: [1]}]",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
