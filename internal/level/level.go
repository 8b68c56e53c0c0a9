// Package level reads course layouts: where the ball starts, where the cup
// is, how many launches are allowed and which obstacles stand in the way.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"minigolf/internal/bound"
	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrNoLevels is returned for a level file without any levels.
	ErrNoLevels = errors.New("no levels")
	// ErrInvalid is returned for a level that cannot be played.
	ErrInvalid = errors.New("invalid level")
)

// DefaultCourse is the table size used when a level does not set its own.
var DefaultCourse = [2]float32{32, 62}

// --- JSON types ---

type File struct {
	Levels []Level `json:"levels"`
}

type Obstacle struct {
	Dims      [3]float32 `json:"dims"`
	Pos       [3]float32 `json:"pos"`
	Rotation  float32    `json:"rotation,omitempty"`  // degrees about +Y
	LowHeight float32    `json:"lowHeight,omitempty"` // ramps only
	Color     string     `json:"color,omitempty"`
}

type Level struct {
	Name        string     `json:"name,omitempty"`
	BallStart   [3]float32 `json:"ballStart"`
	Hole        [2]float32 `json:"hole"`
	HoleRadius  float32    `json:"holeRadius,omitempty"`
	MaxLaunches int        `json:"maxLaunches"`
	Course      [2]float32 `json:"course,omitempty"`
	Boxes       []Obstacle `json:"boxes,omitempty"`
	Ramps       []Obstacle `json:"ramps,omitempty"`
}

// --- Loading ---

func Load(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	levels, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return levels, nil
}

// Parse decodes and validates a level file.
func Parse(data []byte) ([]Level, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, ErrNoLevels
	}
	for i, l := range f.Levels {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return f.Levels, nil
}

// --- Queries ---

// CourseSize returns the table's width along X and depth along Z.
func (l Level) CourseSize() (width, depth float32) {
	if l.Course == [2]float32{} {
		return DefaultCourse[0], DefaultCourse[1]
	}
	return l.Course[0], l.Course[1]
}

// OnCourse reports whether (x, z) lies over the table.
func (l Level) OnCourse(x, z float32) bool {
	w, d := l.CourseSize()
	return x >= -w/2 && x <= w/2 && z >= -d/2 && z <= d/2
}

// CupRadius returns the level's hole radius, or fallback when it has none.
func (l Level) CupRadius(fallback float32) float32 {
	if l.HoleRadius > 0 {
		return l.HoleRadius
	}
	return fallback
}

func (l Level) Start() rl.Vector3 {
	return rl.Vector3{X: l.BallStart[0], Y: l.BallStart[1], Z: l.BallStart[2]}
}

// Cup returns the hole centre on the course plane.
func (l Level) Cup() rl.Vector3 {
	return rl.Vector3{X: l.Hole[0], Z: l.Hole[1]}
}

// Entry is one row of the obstacle table. Bounds refer back to it by index.
type Entry struct {
	Shape     bound.Shape
	Placement bound.Placement
	Color     string
}

// Obstacles flattens boxes then ramps into the level's obstacle table.
func (l Level) Obstacles() []Entry {
	entries := make([]Entry, 0, len(l.Boxes)+len(l.Ramps))
	for _, o := range l.Boxes {
		entries = append(entries, o.entry(bound.KindBox))
	}
	for _, o := range l.Ramps {
		entries = append(entries, o.entry(bound.KindRamp))
	}
	return entries
}

func (o Obstacle) entry(kind bound.Kind) Entry {
	shape := bound.Shape{
		Kind:   kind,
		Width:  o.Dims[0],
		Height: o.Dims[1],
		Depth:  o.Dims[2],
	}
	if kind == bound.KindRamp {
		shape.LowHeight = o.LowHeight
	}
	return Entry{
		Shape: shape,
		Placement: bound.Placement{
			Position: rl.Vector3{X: o.Pos[0], Y: o.Pos[1], Z: o.Pos[2]},
			Yaw:      o.Rotation,
		},
		Color: o.Color,
	}
}

// Box returns the obstacle's oriented bounding box in world space. Ramps
// get the box around their whole profile.
func (e Entry) Box() physics.OBB {
	size := rl.Vector3{X: e.Shape.Width, Y: e.Shape.Height, Z: e.Shape.Depth}
	return physics.NewOBB(e.Placement.Position, size, e.Placement.Yaw)
}

// CheckStart rejects a level whose ball, at the given radius, would start
// touching an obstacle.
func (l Level) CheckStart(radius float32) error {
	start := l.Start()
	for i, e := range l.Obstacles() {
		if e.Box().IntersectsSphere(start, radius) {
			return fmt.Errorf("%w: ball start overlaps obstacle %d (%s)", ErrInvalid, i, e.Shape.Kind)
		}
	}
	return nil
}

// Validate checks the parts of a level that do not depend on tuning. Bound
// construction still rejects shapes that only fail once inflated.
func (l Level) Validate() error {
	if l.MaxLaunches < 1 {
		return fmt.Errorf("%w: maxLaunches %d must be at least 1", ErrInvalid, l.MaxLaunches)
	}
	if l.HoleRadius < 0 {
		return fmt.Errorf("%w: holeRadius %g is negative", ErrInvalid, l.HoleRadius)
	}
	if l.Course != ([2]float32{}) && (!(l.Course[0] > 0) || !(l.Course[1] > 0)) {
		return fmt.Errorf("%w: course %gx%g must be positive", ErrInvalid, l.Course[0], l.Course[1])
	}
	if !l.OnCourse(l.Hole[0], l.Hole[1]) {
		return fmt.Errorf("%w: hole (%g, %g) is off the course", ErrInvalid, l.Hole[0], l.Hole[1])
	}
	if !l.OnCourse(l.BallStart[0], l.BallStart[2]) {
		return fmt.Errorf("%w: ball start (%g, %g) is off the course", ErrInvalid, l.BallStart[0], l.BallStart[2])
	}
	for i, e := range l.Obstacles() {
		if err := e.Shape.Validate(); err != nil {
			return fmt.Errorf("obstacle %d: %w", i, err)
		}
	}
	return nil
}
