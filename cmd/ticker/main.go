// Command ticker launches a projectile and prints its position after every
// tick until it hits the ground.
//
// Without -config it uses the built-in scenario: launched from (0, 1, 0)
// along the normalized (1, 1, 0), gravity -0.1 and wind -0.01.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	trtc "github.com/srufle/the-ray-tracer-challenge"
	"github.com/srufle/the-ray-tracer-challenge/internal/clilog"
	"github.com/srufle/the-ray-tracer-challenge/internal/projectile"
	"github.com/srufle/the-ray-tracer-challenge/internal/scenario"
)

func main() {
	var (
		config   = flag.String("config", "", "scenario file (TOML); built-in scenario when empty")
		maxTicks = flag.Int("max-ticks", 0, "override simulation.max_ticks when > 0")
		lang     = flag.String("lang", "en", "BCP 47 language tag used to format numbers")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger := clilog.New(os.Stderr, "ticker", *verbose)
	trtc.SetLogger(logger)

	if err := run(os.Stdout, logger, *config, *maxTicks, *lang); err != nil {
		logger.Error("ticker failed", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger, config string, maxTicks int, lang string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("invalid -lang %q: %w", lang, err)
	}
	pr := message.NewPrinter(tag)

	s := scenario.Default()
	if config != "" {
		if s, err = scenario.Load(config); err != nil {
			return err
		}
		logger.Debug("scenario loaded", "path", config)
	}
	if maxTicks > 0 {
		s.Simulation.MaxTicks = maxTicks
	}
	env, p := s.Build()

	pr.Fprintln(w)
	pr.Fprintln(w, "Running ticker")
	pr.Fprintln(w)
	pr.Fprintln(w, "Initial State:")
	pr.Fprintf(w, " projectile:  position=%v velocity=%v\n", p.Position, p.Velocity)
	pr.Fprintf(w, " environment: gravity=%v wind=%v\n", env.Gravity, env.Wind)
	pr.Fprintln(w)

	steps, err := projectile.Trajectory(env, p, s.Simulation.MaxTicks)
	for _, step := range steps {
		pos := step.Position
		pr.Fprintf(w, "%.5f, %.5f, %.5f\n", pos.X, pos.Y, pos.Z)
	}
	if err != nil {
		return err
	}

	last := p
	if len(steps) > 0 {
		last = steps[len(steps)-1]
	}
	logger.Info("landed", "ticks", len(steps), "x", last.Position.X)
	return nil
}
