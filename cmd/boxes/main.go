package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/boxes/audio"
	"github.com/lixenwraith/boxes/config"
	"github.com/lixenwraith/boxes/constants"
	"github.com/lixenwraith/boxes/core"
	"github.com/lixenwraith/boxes/engine"
	"github.com/lixenwraith/boxes/events"
	"github.com/lixenwraith/boxes/input"
	"github.com/lixenwraith/boxes/render"
	"github.com/lixenwraith/boxes/render/renderers"
	"github.com/lixenwraith/boxes/systems"
)

var (
	configFlag = pflag.String("config", "boxes.yaml", "config file path")
	colorFlag  = pflag.String("color", "auto", "color mode: auto, truecolor, 256")
	fpsFlag    = pflag.Int("fps", 0, "override the configured frame rate")
	debugFlag  = pflag.Bool("debug", false, "write a debug log to logs/boxes.log")
	watchFlag  = pflag.Bool("watch", false, "reload the config file on change")
	muteFlag   = pflag.Bool("mute", false, "start with audio muted")
)

func main() {
	// Panic recovery: restore the terminal before dying
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	pflag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "boxes: %v\n", err)
		os.Exit(1)
	}
	if *fpsFlag > 0 {
		cfg.Video.FrameRate = clampInt(*fpsFlag, constants.MinFrameRate, constants.MaxFrameRate)
	}

	logger, syncLogs := setupLogging(*debugFlag)
	defer syncLogs()

	// Color depth must be decided before the screen is created
	applyColorMode(*colorFlag, cfg.Video.TrueColor)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "boxes: terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "boxes: terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// Crashed goroutines restore the terminal through this hook
	core.RegisterCrashCleanup(func() {
		screen.Fini()
	})

	queue := events.NewEventQueue()

	width, height := screen.Size()
	cols := width
	rows := height - constants.HUDRows
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	world := engine.NewWorld(queue, cfg.Tuning(), float64(cols), float64(rows*2))
	ctx := engine.NewContext(world, queue, logger, width, height)
	ctx.SetPalette(cfg.PaletteColors())
	ctx.IsMuted.Store(cfg.Audio.Muted || *muteFlag)

	// Missing audio device degrades to a silent sandbox
	player := audio.NewPlayer(logger)
	defer player.Close()

	scheduler := engine.NewClockScheduler(ctx, constants.SimulationInterval)
	scheduler.RegisterSystems(
		systems.NewSpawnSystem(ctx),
		systems.NewDragSystem(ctx),
		systems.NewGravitySystem(ctx),
		systems.NewResetSystem(ctx),
		systems.NewTuningSystem(ctx),
		systems.NewCullSystem(ctx),
		systems.NewAudioSystem(ctx, player),
	)

	orchestrator := render.NewRenderOrchestrator(screen, width, height)

	type rendererDef struct {
		factory  func(*engine.Context) render.SystemRenderer
		priority render.RenderPriority
	}

	rendererList := []rendererDef{
		{func(c *engine.Context) render.SystemRenderer { return renderers.NewBoxesRenderer(c) }, render.PriorityBoxes},
		{func(c *engine.Context) render.SystemRenderer { return renderers.NewPointerRenderer(c) }, render.PriorityPointer},
		{func(c *engine.Context) render.SystemRenderer { return renderers.NewHUDRenderer(c) }, render.PriorityHUD},
		{func(c *engine.Context) render.SystemRenderer { return renderers.NewMenuRenderer(c) }, render.PriorityMenu},
		{func(c *engine.Context) render.SystemRenderer { return renderers.NewConfirmRenderer(c) }, render.PriorityConfirm},
		{func(c *engine.Context) render.SystemRenderer { return renderers.NewGuardRenderer(c) }, render.PriorityGuard},
	}

	for _, def := range rendererList {
		orchestrator.Register(def.factory(ctx), def.priority)
	}

	handler := input.NewHandler(ctx, orchestrator)

	if *watchFlag {
		watcher, err := config.NewWatcher(*configFlag, queue, logger)
		if err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		} else if err := watcher.Start(); err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		} else {
			defer watcher.Stop()
		}
	}

	scheduler.Start()
	defer scheduler.Stop()

	logger.Info("sandbox started",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("fps", cfg.Video.FrameRate),
		zap.Bool("audio", player != nil),
	)

	// Events are polled off the main goroutine; all handling happens on
	// the main loop so input and render never race on screen state
	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.Video.FrameRate))
	defer frameTicker.Stop()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !handler.HandleEvent(ev) {
				return
			}

		case <-frameTicker.C:
			ctx.IncrementFrameNumber()
			renderCtx := render.NewRenderContext(ctx, player != nil)
			orchestrator.RenderFrame(renderCtx, world)
		}
	}
}

// setupLogging builds the file logger for --debug runs. The sandbox
// owns the terminal, so logs never go to stderr while running
func setupLogging(debug bool) (*zap.Logger, func()) {
	if !debug {
		return zap.NewNop(), func() {}
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return zap.NewNop(), func() {}
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logCfg.OutputPaths = []string{filepath.Join("logs", "boxes.log")}
	logCfg.ErrorOutputPaths = logCfg.OutputPaths

	logger, err := logCfg.Build()
	if err != nil {
		return zap.NewNop(), func() {}
	}
	return logger, func() { _ = logger.Sync() }
}

// applyColorMode steers tcell's color depth before screen creation
func applyColorMode(mode string, cfgTrueColor bool) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	default:
		if !cfgTrueColor {
			os.Setenv("TCELL_TRUECOLOR", "disable")
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
