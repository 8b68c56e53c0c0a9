package level

import (
	"os"
	"path/filepath"
	"testing"

	"minigolf/internal/bound"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoLevels = `{
  "levels": [
    {
      "name": "Warm up",
      "ballStart": [0, 1, 20],
      "hole": [0, -20],
      "maxLaunches": 3
    },
    {
      "ballStart": [-5, 1, 25],
      "hole": [5, -25],
      "holeRadius": 2,
      "maxLaunches": 5,
      "course": [20, 60],
      "boxes": [
        {"dims": [6, 2, 1], "pos": [0, 1, 0], "rotation": 30, "color": "Red"}
      ],
      "ramps": [
        {"dims": [8, 2, 6], "pos": [0, 1, -10], "lowHeight": 0.5}
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	levels, err := Parse([]byte(twoLevels))
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, "Warm up", levels[0].Name)
	assert.Equal(t, rl.Vector3{X: 0, Y: 1, Z: 20}, levels[0].Start())
	assert.Equal(t, rl.Vector3{X: 0, Z: -20}, levels[0].Cup())
	assert.Equal(t, 3, levels[0].MaxLaunches)
	assert.Empty(t, levels[0].Obstacles())

	w, d := levels[0].CourseSize()
	assert.Equal(t, DefaultCourse, [2]float32{w, d})
	w, d = levels[1].CourseSize()
	assert.Equal(t, [2]float32{20, 60}, [2]float32{w, d})

	assert.Equal(t, float32(1.6), levels[0].CupRadius(1.6))
	assert.Equal(t, float32(2), levels[1].CupRadius(1.6))
}

func TestObstacleTable(t *testing.T) {
	levels, err := Parse([]byte(twoLevels))
	require.NoError(t, err)

	table := levels[1].Obstacles()
	require.Len(t, table, 2)

	box := table[0]
	assert.Equal(t, bound.Shape{Kind: bound.KindBox, Width: 6, Height: 2, Depth: 1}, box.Shape)
	assert.Equal(t, rl.Vector3{X: 0, Y: 1, Z: 0}, box.Placement.Position)
	assert.Equal(t, float32(30), box.Placement.Yaw)
	assert.Equal(t, "Red", box.Color)

	ramp := table[1]
	assert.Equal(t, bound.KindRamp, ramp.Shape.Kind)
	assert.Equal(t, float32(0.5), ramp.Shape.LowHeight)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`{"levels": []}`))
	assert.ErrorIs(t, err, ErrNoLevels)

	_, err = Parse([]byte(`{"levels": [`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"levels": [{"ballStart": [0,1,0], "hole": [0,5], "maxLaunches": 0}]}`))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte(`{"levels": [{"ballStart": [0,1,0], "hole": [0,5], "maxLaunches": 2,
		"boxes": [{"dims": [1, 0, 1], "pos": [0,0,0]}]}]}`))
	assert.ErrorIs(t, err, bound.ErrDegenerate)
}

func TestValidate(t *testing.T) {
	base := Level{BallStart: [3]float32{0, 1, 10}, Hole: [2]float32{0, -10}, MaxLaunches: 2}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Level)
	}{
		{"hole off course", func(l *Level) { l.Hole = [2]float32{100, 0} }},
		{"start off course", func(l *Level) { l.BallStart = [3]float32{0, 1, -40} }},
		{"negative hole radius", func(l *Level) { l.HoleRadius = -1 }},
		{"flat course", func(l *Level) { l.Course = [2]float32{10, 0} }},
		{"ramp low end", func(l *Level) {
			l.Ramps = []Obstacle{{Dims: [3]float32{4, 1, 4}, LowHeight: 2}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := base
			tt.mutate(&l)
			if err := l.Validate(); err == nil {
				t.Errorf("Expected %s to fail validation", tt.name)
			}
		})
	}
}

func TestCheckStart(t *testing.T) {
	l := Level{BallStart: [3]float32{0, 1, 3}, Hole: [2]float32{0, -10}, MaxLaunches: 2}
	l.Boxes = []Obstacle{{Dims: [3]float32{10, 2, 2}, Pos: [3]float32{0, 1, 0}}}

	assert.NoError(t, l.CheckStart(1.5), "half a unit of clearance")
	assert.ErrorIs(t, l.CheckStart(2.5), ErrInvalid)

	// Turned a quarter, the long side now reaches the start
	l.Boxes[0].Rotation = 90
	assert.ErrorIs(t, l.CheckStart(0.5), ErrInvalid)

	l.Boxes = nil
	l.Ramps = []Obstacle{{Dims: [3]float32{4, 2, 4}, Pos: [3]float32{0, 1, 4}, LowHeight: 0.5}}
	assert.ErrorIs(t, l.CheckStart(1), ErrInvalid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.json")
	require.NoError(t, os.WriteFile(path, []byte(twoLevels), 0o644))

	levels, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, levels, 2)

	_, err = Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
