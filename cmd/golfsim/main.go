// Headless playthrough of a level file: every shot is aimed at the cup with
// a power picked from the distance, and the collision pipeline is timed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"minigolf/internal/config"
	"minigolf/internal/golf"
	"minigolf/internal/level"
	"minigolf/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type levelStats struct {
	name     string
	frames   int
	launches int
	restarts int
	bounces  int
	sunk     bool
	stepTime time.Duration
	slowest  time.Duration
}

func main() {
	configPath := flag.String("config", "", "TOML tuning file (defaults when empty)")
	levelsPath := flag.String("levels", "assets/levels.json", "level file")
	fps := flag.Float64("fps", 60, "fixed step rate")
	budget := flag.Int("frames", 60*180, "frame budget per level")
	verbose := flag.Bool("v", false, "keep simulation logging")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Golfsim: %v", err)
		}
	}
	levels, err := level.Load(*levelsPath)
	if err != nil {
		log.Fatalf("Golfsim: %v", err)
	}

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	sim, err := golf.New(levels, cfg)
	if err != nil {
		log.Fatalf("Golfsim: %v", err)
	}

	stats := make([]levelStats, len(levels))
	for i, l := range levels {
		stats[i].name = l.Name
	}
	sim.OnBounce.AddListener(func(physics.Contact) { stats[sim.State().Level].bounces++ })
	sim.OnRestart.AddListener(func(i int) { stats[i].restarts++ })
	sim.OnLevelComplete.AddListener(func(i int) {
		stats[i].sunk = true
		stats[i].launches = sim.State().Launches
	})

	dt := float32(1 / *fps)
	total := time.Now()
	for sim.State().State != golf.AllComplete {
		st := sim.State()
		s := &stats[st.Level]
		if s.frames >= *budget {
			fmt.Printf("level %d: frame budget spent, giving up\n", st.Level+1)
			break
		}

		if st.State == golf.PreLaunch && st.Power >= shotPower(sim, cfg) {
			sim.RequestLaunch()
		}

		start := time.Now()
		if _, err := sim.Step(dt); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("Golfsim: %v", err)
		}
		elapsed := time.Since(start)

		s.frames++
		s.stepTime += elapsed
		s.slowest = max(s.slowest, elapsed)
	}
	report(stats, sim.State().Bonus, time.Since(total))
}

// shotPower estimates the meter reading that rolls the ball to the cup on a
// flat table, ignoring obstacles. Friction keeps `f` of the velocity every
// 1/60 s, so a ball launched at v travels about v / (60 (1 - f)).
func shotPower(sim *golf.Simulation, cfg config.Config) float32 {
	st := sim.State()
	toCup := rl.Vector3Subtract(sim.Level().Cup(), st.Ball.Position)
	toCup.Y = 0
	distance := rl.Vector3Length(toCup)

	loss := 60 * (1 - cfg.Physics.Friction)
	if loss <= 0 || cfg.Launch.MaxImpulse <= 0 {
		return 0.5
	}
	speed := distance * loss * 1.2 // overshoot a little so the ball reaches the rim
	return rl.Clamp(speed/cfg.Launch.MaxImpulse, 0.15, 0.98)
}

func report(stats []levelStats, bonus int, total time.Duration) {
	fmt.Printf("%-3s %-20s %7s %8s %8s %7s %12s %12s\n",
		"#", "name", "frames", "launches", "restarts", "bounces", "avg step", "slowest")
	for i, s := range stats {
		if s.frames == 0 {
			continue
		}
		result := fmt.Sprintf("%8d", s.launches)
		if !s.sunk {
			result = fmt.Sprintf("%8s", "-")
		}
		avg := s.stepTime / time.Duration(s.frames)
		fmt.Printf("%-3d %-20s %7d %s %8d %7d %12v %12v\n",
			i+1, s.name, s.frames, result, s.restarts, s.bounces,
			avg.Round(time.Microsecond/10), s.slowest.Round(time.Microsecond))
	}
	fmt.Printf("\nbonus %d, wall time %v\n", bonus, total.Round(time.Millisecond))
}
