package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/audio"
	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/config"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/data"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/input"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/render"
	"github.com/lixenwraith/rampage/sim"
	"github.com/lixenwraith/rampage/status"
	"github.com/lixenwraith/rampage/trace"
	"github.com/lixenwraith/rampage/vmath"
)

var (
	configFlag  = flag.String("config", "", "TOML config file")
	variantFlag = flag.String("variant", "", "Start directly as lizard, ape or blob")
	seedFlag    = flag.Uint64("seed", 0, "City seed, 0 for a random city")
	debugFlag   = flag.Bool("debug", false, "Write debug logs")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
	traceFlag   = flag.String("trace", "", "Append a YAML turn trace to this file")
	berserkFlag = flag.Duration("berserk", 0, "Delay between berserk steps")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rampage: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "rampage: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, then applies only the flags given on the command line
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Game.Variant = component.Variant(*variantFlag)
		case "seed":
			cfg.Game.Seed = *seedFlag
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "mute":
			cfg.Audio.Enabled = !*muteFlag
		case "trace":
			cfg.Trace.Path = *traceFlag
		case "berserk":
			cfg.Berserk.Interval = *berserkFlag
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	logger, logFile, err := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	defer logger.Sync()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	profiles := data.BuiltinProfiles()
	ctx := engine.NewContext(vmath.NewFastRand(seed), logger, profiles)
	registry := status.NewRegistry()

	hostCfg := sim.HostConfig{
		BerserkInterval: cfg.Berserk.Interval,
		Registry:        registry,
	}
	if cfg.Trace.Path != "" {
		tw, err := trace.Create(cfg.Trace.Path)
		if err != nil {
			return err
		}
		defer func() {
			if err := tw.Close(); err != nil {
				logger.Warn("trace close failed", zap.Error(err))
			}
		}()
		hostCfg.Tracer = tw
	}

	host := sim.NewHost(sim.NewEngine(ctx), hostCfg)
	host.Start()
	defer host.Close()

	player := audio.NewCuePlayer()
	if cfg.Audio.Enabled {
		if err := player.Init(); err != nil {
			// non-fatal, the game runs muted
			logger.Warn("audio unavailable", zap.Error(err))
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetResetHook(screen.Fini)
	defer func() {
		core.SetResetHook(nil)
		screen.Fini()
		printSummary(registry)
	}()

	var current engine.Snapshot
	if cfg.Game.Variant != "" {
		current, err = host.Submit(context.Background(), sim.NewGame(cfg.Game.Variant, cfg.Game.Seed))
		if err != nil {
			return err
		}
	}

	loop := &gameLoop{
		screen:   screen,
		host:     host,
		player:   player,
		renderer: render.NewRenderer(screen, profiles),
		machine:  input.NewMachine(profiles.Variants()),
		logger:   logger,
		current:  current,
	}
	err = loop.run()
	logSummary(logger, registry)
	return err
}

// gameLoop forwards terminal input to the host and redraws on a fixed cadence
type gameLoop struct {
	screen   tcell.Screen
	host     *sim.Host
	player   *audio.CuePlayer
	renderer *render.Renderer
	machine  *input.Machine
	logger   *zap.Logger
	current  engine.Snapshot
}

func (g *gameLoop) run() error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() { g.poll(events, done) })

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	dirty := true
	for {
		select {
		case ev := <-events:
			intent := g.machine.Process(ev, g.current)
			switch intent.Type {
			case input.IntentQuit:
				return nil
			case input.IntentResize:
				g.screen.Sync()
				dirty = true
				continue
			case input.IntentToggleMute:
				g.logger.Debug("mute toggled", zap.Bool("muted", g.player.ToggleMute()))
				continue
			}

			cmd, ok := intent.Command(0)
			if !ok {
				continue
			}
			snap, err := g.host.Submit(context.Background(), cmd)
			if errors.Is(err, sim.ErrHostClosed) {
				return nil
			}
			if err != nil {
				return err
			}
			g.current = snap
			dirty = true

		case snap := <-g.host.Updates():
			g.current = snap
			dirty = true

		case fx := <-g.host.Effects():
			g.player.Play(fx, g.current.Creature.Pos)

		case <-frameTicker.C:
			if dirty {
				g.renderer.Draw(g.current)
				dirty = false
			}
		}
	}
}

// poll forwards terminal events until the screen is finalized or done is closed
func (g *gameLoop) poll(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		// PollEvent returns nil once the screen is finalized
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func logSummary(logger *zap.Logger, r *status.Registry) {
	fields := make([]zap.Field, 0, r.TotalCount())
	r.Each(func(key, value string) {
		fields = append(fields, zap.String(key, value))
	})
	logger.Info("session summary", fields...)
}

func printSummary(r *status.Registry) {
	games := r.Ints.Get(status.KeyGames).Load()
	if games == 0 {
		return
	}
	fmt.Printf("%d game(s). Last: %s, score %d, kills %d, turns %d",
		games,
		r.Strings.Get(status.KeyVariant).Load(),
		r.Ints.Get(status.KeyScore).Load(),
		r.Ints.Get(status.KeyKills).Load(),
		r.Ints.Get(status.KeyTurn).Load(),
	)
	if cause := r.Strings.Get(status.KeyCause).Load(); cause != "" {
		fmt.Printf(" (%s)", cause)
	}
	fmt.Println()
}
