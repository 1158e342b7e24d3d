package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-invaders/audio"
	"github.com/lixenwraith/vi-invaders/config"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/input"
	"github.com/lixenwraith/vi-invaders/render"
	"github.com/lixenwraith/vi-invaders/scene"
	"github.com/lixenwraith/vi-invaders/status"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML configuration file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/vi-invaders.log")
	seedFlag   = flag.Uint64("seed", 0, "Random seed for invader fire (0 = config or random)")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective configuration and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	if *dumpFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashTerminal(screen)

	if cfg.Input.Mouse {
		screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	}
	screen.HideCursor()

	// Audio failure degrades to silent play
	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("[AUDIO] initialization failed: %v (continuing without audio)", err)
		} else {
			defer sound.Cleanup()
		}
	}
	sound.SetMuted(*muteFlag)

	renderer := render.NewRenderer(screen, cfg.Scene.Width, cfg.Scene.Height)

	director := scene.NewDirector(scene.Deps{
		Config: cfg,
		Sound:  sound,
		Status: status.NewRegistry(),
		Rand:   engine.NewRand(cfg.Seed),
	}, nil)
	director.Start()

	handler := input.NewHandler(input.DefaultKeyTable(), cfg.Input, renderer, director)
	handler.OnResize(func() {
		renderer.Resize()
		screen.Sync()
	})

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	log.Printf("[GAME] started: seed=%d scene=%.0fx%.0f", cfg.Seed, cfg.Scene.Width, cfg.Scene.Height)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !handler.Handle(ev) {
				log.Printf("[GAME] quit")
				return
			}

		case <-frameTicker.C:
			director.Tick()
			director.Draw(renderer)
		}
	}
}
