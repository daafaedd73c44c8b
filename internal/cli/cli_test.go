package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const crossingScene = `
dt: 1
steps: 3
bodies:
  - name: left
    position: [0, 0]
    half_extents: [1, 1]
    velocity: [2, 0]
  - name: right
    position: [6, 0]
    half_extents: [1, 1]
  - name: far
    position: [0, 50]
    half_extents: [1, 1]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_Text(t *testing.T) {
	scene := writeFile(t, "scene.yaml", crossingScene)

	out, err := execute(t, "run", "--scene", scene)
	require.NoError(t, err)
	// left spans [-1,1], [1,3], [3,5]; right spans [5,7]
	assert.Equal(t, "step 1: none\nstep 2: none\nstep 3: left-right\n", out)
}

func TestRun_JSON(t *testing.T) {
	scene := writeFile(t, "scene.yaml", crossingScene)

	out, err := execute(t, "--format", "json", "run", "--scene", scene, "--steps", "4")
	require.NoError(t, err)

	var results []StepResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 4)
	assert.Empty(t, results[0].Pairs)
	assert.Equal(t, []Pair{{"left", "right"}}, results[2].Pairs)
	assert.Equal(t, []Pair{{"left", "right"}}, results[3].Pairs)
}

func TestRun_SingleAxisConfig(t *testing.T) {
	scene := writeFile(t, "scene.yaml", crossingScene)
	config := writeFile(t, "sweep.toml", "axes = 1\nchannel = \"pairs\"\n\n[logging]\nlevel = \"error\"\n")

	out, err := execute(t, "--config", config, "run", "--scene", scene, "--steps", "1")
	require.NoError(t, err)
	// far only overlaps left on x
	assert.Equal(t, "step 1: far-left\n", out)
}

func TestCheck(t *testing.T) {
	scene := writeFile(t, "scene.yaml", crossingScene)

	out, err := execute(t, "check", "--scene", scene, "--steps", "6", "--dt", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "ok: 6 steps match\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)

	_, err = execute(t, "run", "--scene", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	scene := writeFile(t, "scene.yaml", crossingScene)
	_, err = execute(t, "--format", "xml", "run", "--scene", scene)
	assert.Error(t, err)

	config := writeFile(t, "sweep.toml", "axes = 9\n")
	_, err = execute(t, "--config", config, "run", "--scene", scene)
	assert.Error(t, err)
}

func TestDiffPairs(t *testing.T) {
	want := []Pair{{"a", "b"}, {"a", "c"}}
	got := []Pair{{"a", "b"}, {"b", "c"}, {"a", "b"}}

	missing, extra := diffPairs(want, got)
	assert.Equal(t, []Pair{{"a", "c"}}, missing)
	assert.Equal(t, []Pair{{"b", "c"}, {"a", "b"}}, extra)
}

func TestLoadSettings(t *testing.T) {
	s, err := loadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "warn", s.Logging.Level)
	assert.Equal(t, 2, s.BroadPhase.Axes)

	config := writeFile(t, "sweep.toml", "axes = 3\n\n[logging]\nformat = \"json\"\n")
	s, err = loadSettings(config)
	require.NoError(t, err)
	assert.Equal(t, 3, s.BroadPhase.Axes)
	assert.Equal(t, "json", s.Logging.Format)
	assert.Equal(t, "warn", s.Logging.Level)
}
