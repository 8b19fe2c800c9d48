package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/core"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/parameter"
	"github.com/lixenwraith/vi-racer/race"
	"github.com/lixenwraith/vi-racer/render"
	"github.com/lixenwraith/vi-racer/track"
)

// Game wires the terminal, simulation, renderer and sound
type Game struct {
	cfg      config.Config
	screen   tcell.Screen
	registry *track.Registry
	sim      *engine.Simulation
	clock    *engine.FrameClock
	renderer *render.Renderer
	sound    *audio.SoundManager
	keys     *input.KeyTable
	held     *input.Held
	muted    bool
}

func NewGame(cfg config.Config) (*Game, error) {
	registry := track.NewRegistry()
	if cfg.MapsDir != "" {
		ids, err := registry.LoadDir(cfg.MapsDir)
		if err != nil {
			return nil, fmt.Errorf("load maps: %w", err)
		}
		log.Printf("loaded maps %v from %s", ids, cfg.MapsDir)
	}

	keys := input.DefaultKeyTable()
	if cfg.Keymap != "" {
		kt, err := input.LoadKeyConfigFile(cfg.Keymap)
		if err != nil {
			return nil, err
		}
		keys = kt
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	core.SetCrashReset(screen.Fini)

	g := &Game{
		cfg:      cfg,
		screen:   screen,
		registry: registry,
		sim:      engine.NewSimulation(registry.Lookup(cfg.Map), cfg.Laps),
		clock:    engine.NewFrameClock(nil),
		renderer: render.NewRenderer(screen, cfg.Color),
		sound:    audio.NewSoundManager(),
		keys:     keys,
		held:     input.NewHeld(),
	}

	if cfg.Audio {
		// Non-fatal, the race runs silent
		if err := g.sound.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else if cfg.Engine {
			g.sound.StartEngine()
		}
	}
	return g, nil
}

// handleInput applies one terminal event, false quits
func (g *Game) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := g.keys.Resolve(ev)
		switch action {
		case input.ActionQuit:
			return false
		case input.ActionRestart:
			g.held.Clear()
			g.sim.Restart()
		case input.ActionPause:
			if g.clock.Toggle() {
				g.held.Clear()
			}
		case input.ActionNextMap:
			g.held.Clear()
			g.sim.SetMap(g.registry.Next(g.sim.Map().ID))
			g.renderer.Invalidate()
		case input.ActionToggleSound:
			g.muted = g.sound.ToggleMute()
		default:
			g.held.Press(action, now)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// update advances the simulation by one frame of wall time
func (g *Game) update(now time.Time) {
	dt := g.clock.Tick()
	if dt <= 0 {
		return
	}
	g.sim.SetInput(g.held.Input(now))
	g.sim.Step(dt)

	for _, e := range g.sim.Events() {
		switch e.Kind {
		case race.EventLapCompleted:
			g.sound.PlayLap()
		case race.EventRaceFinished:
			g.sound.PlayFinish()
			log.Print(g.raceReport())
		}
	}
}

// raceReport is the finish log line, pause time is wall time spent paused
func (g *Game) raceReport() string {
	return fmt.Sprintf("race finished on %s: %+v, paused %s",
		g.sim.Map().ID, g.sim.Tracker().Summary(), g.clock.TotalPauseDuration().Round(time.Millisecond))
}

func (g *Game) draw() {
	snap := g.sim.Snapshot()
	g.sound.SetEngine(snap.Speed / parameter.MaxSpeed)
	ctx := g.renderer.Frame(snap, g.sim.Map(), g.sim.Geometry(), g.clock.IsPaused(), g.muted)
	g.renderer.Draw(ctx)
}

func (g *Game) run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickHz))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			g.update(now)
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	g.sound.Cleanup()
	g.screen.Fini()
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Parse("vi-racer", os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-racer: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	game, err := NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
