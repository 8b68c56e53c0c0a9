// Package config holds the tuning knobs for the ball, the physics pipeline,
// the course and the launch controls.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned by Validate for values the simulation cannot run with.
var ErrInvalid = errors.New("invalid config")

type Ball struct {
	Radius float32 `toml:"radius"`
}

type Physics struct {
	Gravity          [3]float32 `toml:"gravity"`
	Friction         float32    `toml:"friction"`          // velocity kept per 1/60 s
	Restitution      float32    `toml:"restitution"`       // bounce off obstacle bounds
	FloorRestitution float32    `toml:"floor_restitution"` // bounce off the course plane
	MaxSpeed         float32    `toml:"max_speed"`
	MaxSubsteps      int        `toml:"max_substeps"`
	RestSpeed        float32    `toml:"rest_speed"`
}

type Course struct {
	Smoothness       int     `toml:"smoothness"`
	HoleRadius       float32 `toml:"hole_radius"`
	TableDepth       float32 `toml:"table_depth"`
	SinkDepth        float32 `toml:"sink_depth"`
	OutOfBoundsDepth float32 `toml:"out_of_bounds_depth"`
}

type Launch struct {
	MaxImpulse         float32 `toml:"max_impulse"`
	PowerRate          float32 `toml:"power_rate"` // radians of power phase per second
	AimSpeed           float32 `toml:"aim_speed"`  // radians per second
	LevelCompleteDelay float32 `toml:"level_complete_delay"`
}

type Config struct {
	Ball    Ball    `toml:"ball"`
	Physics Physics `toml:"physics"`
	Course  Course  `toml:"course"`
	Launch  Launch  `toml:"launch"`
}

// Default returns the tuning the shipped course was built around.
func Default() Config {
	return Config{
		Ball: Ball{Radius: 1},
		Physics: Physics{
			Gravity:          [3]float32{0, -30, 0},
			Friction:         0.99,
			Restitution:      0.7,
			FloorRestitution: 0.3,
			MaxSpeed:         60,
			MaxSubsteps:      8,
			RestSpeed:        0.5,
		},
		Course: Course{
			Smoothness:       2,
			HoleRadius:       1.6,
			TableDepth:       2,
			SinkDepth:        1.5,
			OutOfBoundsDepth: 20,
		},
		Launch: Launch{
			MaxImpulse:         50,
			PowerRate:          3,
			AimSpeed:           1.5,
			LevelCompleteDelay: 2,
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays TOML data onto cfg and validates the result.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return fmt.Errorf("parse config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks every value is in the range the simulation expects.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Ball.Radius > 0, "ball.radius %g must be positive", c.Ball.Radius)

	p := c.Physics
	check(p.Friction >= 0 && p.Friction <= 1, "physics.friction %g outside [0, 1]", p.Friction)
	check(p.Restitution >= 0 && p.Restitution <= 1, "physics.restitution %g outside [0, 1]", p.Restitution)
	check(p.FloorRestitution >= 0 && p.FloorRestitution <= 1,
		"physics.floor_restitution %g outside [0, 1]", p.FloorRestitution)
	check(p.MaxSpeed >= 0, "physics.max_speed %g is negative", p.MaxSpeed)
	check(p.MaxSubsteps >= 1, "physics.max_substeps %d must be at least 1", p.MaxSubsteps)
	check(p.RestSpeed >= 0, "physics.rest_speed %g is negative", p.RestSpeed)

	co := c.Course
	check(co.Smoothness >= 1, "course.smoothness %d must be at least 1", co.Smoothness)
	check(co.HoleRadius > c.Ball.Radius, "course.hole_radius %g must exceed ball.radius %g",
		co.HoleRadius, c.Ball.Radius)
	check(co.TableDepth > 0, "course.table_depth %g must be positive", co.TableDepth)
	check(co.SinkDepth >= 0, "course.sink_depth %g is negative", co.SinkDepth)
	check(co.OutOfBoundsDepth > co.SinkDepth, "course.out_of_bounds_depth %g must exceed sink_depth %g",
		co.OutOfBoundsDepth, co.SinkDepth)

	l := c.Launch
	check(l.MaxImpulse > 0, "launch.max_impulse %g must be positive", l.MaxImpulse)
	check(l.PowerRate > 0, "launch.power_rate %g must be positive", l.PowerRate)
	check(l.AimSpeed >= 0, "launch.aim_speed %g is negative", l.AimSpeed)
	check(l.LevelCompleteDelay >= 0, "launch.level_complete_delay %g is negative", l.LevelCompleteDelay)

	return errors.Join(errs...)
}
