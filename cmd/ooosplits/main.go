// Command ooosplits is the desktop demo shell: an ebiten window driving a
// Timer through a Layout/Scene pipeline, with hotkeys feeding an
// eventsink.Sink, persisting to SQLite via the store package.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/hotkey"

	"github.com/nictuku/ooosplits/autosplit"
	"github.com/nictuku/ooosplits/editor"
	"github.com/nictuku/ooosplits/eventsink"
	"github.com/nictuku/ooosplits/internal/obslog"
	"github.com/nictuku/ooosplits/layout"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/scene"
	"github.com/nictuku/ooosplits/store"
	"github.com/nictuku/ooosplits/timer"
)

var (
	flagDB         = flag.String("db", "speedrun.db", "path to the SQLite run database")
	flagWindowW    = flag.Int("width", 600, "window width in pixels")
	flagWindowH    = flag.Int("height", 400, "window height in pixels")
	flagLogLevel   = flag.String("log-level", "info", "zerolog level (trace|debug|info|warn|error)")
	flagAutoSplit  = flag.String("autosplitter", "", "path to a compiled WebAssembly auto-splitter module")
	flagGameName   = flag.String("game", "New Speedrun", "game name for a freshly created run")
	flagCategory   = flag.String("category", "Any%", "category name for a freshly created run")
)

func main() {
	flag.Parse()
	log := obslog.New(*flagLogLevel)

	st, err := store.Open(*flagDB)
	if err != nil {
		log.Fatal().Err(err).Str("path", *flagDB).Msg("opening run database")
	}
	defer st.Close()

	r, err := loadOrCreateRun(st, *flagGameName, *flagCategory)
	if err != nil {
		log.Fatal().Err(err).Msg("loading run")
	}

	t := timer.NewShared(timer.New(r))
	sink := eventsink.NewValidatingSink(
		eventsink.NewTimerSink(t),
		t,
		func(message string) bool { return true }, // demo shell: never blocks a reset on confirmation
	)

	lay := defaultLayout()
	cache := layout.NewImageCache(64)
	alloc := newEbitenAllocator()
	builder := scene.NewBuilder(alloc, float64(*flagWindowW))

	game := &Game{
		log:     obslog.WithTopic(log, "game"),
		timer:   t,
		sink:    sink,
		layout:  lay,
		cache:   cache,
		builder: builder,
		alloc:   alloc,
		store:   st,
		width:   *flagWindowW,
		height:  *flagWindowH,
	}

	if *flagAutoSplit != "" {
		if err := game.loadAutoSplitter(*flagAutoSplit, t, obslog.WithTopic(log, "autosplit")); err != nil {
			log.Error().Err(err).Str("path", *flagAutoSplit).Msg("loading auto-splitter script")
		}
	}

	go registerHotkeys(sink, obslog.WithTopic(log, "hotkeys"))

	ebiten.SetWindowSize(*flagWindowW, *flagWindowH)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", r.GameName, r.CategoryName))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("ebiten run loop exited")
	}
}

// loadOrCreateRun opens the persisted run from st, or seeds a fresh
// four-segment run the first time the demo shell runs against an empty
// database.
func loadOrCreateRun(st *store.Store, gameName, category string) (*run.Run, error) {
	r, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("loading persisted run: %w", err)
	}
	if r != nil {
		return r, nil
	}

	r = run.New()
	r.GameName = gameName
	r.CategoryName = category
	r.NewRunID()

	e := editor.New(r)
	for _, name := range []string{"Level 1", "Level 2", "Level 3", "Final Boss"} {
		e.InsertSegmentBelow(len(r.Segments())-1, name)
	}
	closed, err := e.Close()
	if err != nil {
		return nil, fmt.Errorf("building default run: %w", err)
	}
	if err := st.Save(closed); err != nil {
		return nil, fmt.Errorf("saving default run: %w", err)
	}
	return closed, nil
}

func defaultLayout() *layout.Layout {
	return layout.NewLayout(
		layout.NewTitleComponent(),
		layout.NewSplitsComponent(8),
		layout.NewSeparatorComponent(),
		layout.NewTimerComponent(),
		layout.NewCurrentPaceComponent(),
		layout.NewPossibleTimeSaveComponent(),
		layout.NewPreviousSegmentComponent(),
		layout.NewSumOfBestComponent(),
	)
}

// Game implements ebiten.Game, the demo shell's render/update loop.
type Game struct {
	log     obslog.Logger
	timer   *timer.SharedTimer
	sink    eventsink.Sink
	layout  *layout.Layout
	cache   *layout.ImageCache
	builder *scene.Builder
	alloc   *ebitenAllocator
	store   *store.Store
	sched   *autosplit.Scheduler

	width, height int
}

// loadAutoSplitter compiles and loads a WebAssembly auto-splitter module,
// wiring its host callbacks to t through a separate TimerSink: the
// script's commands reach the Timer without the ValidatingSink's Reset
// confirmation step.
func (g *Game) loadAutoSplitter(path string, t *timer.SharedTimer, log obslog.Logger) error {
	scriptSink := eventsink.NewTimerSink(t)
	logCh := make(chan autosplit.LogRecord, 16)
	go func() {
		for rec := range logCh {
			ev := log.Info()
			if rec.Err != nil {
				ev = log.Error().Err(rec.Err)
			}
			ev.Str("script", rec.ScriptName).Msg(rec.Message)
		}
	}()

	sched, err := autosplit.LoadScriptFromFile(context.Background(), path, scriptSink, t, logCh)
	if err != nil {
		return err
	}
	g.sched = sched
	return nil
}

func (g *Game) Update() error {
	if g.sched != nil {
		if err := g.sched.RunOnce(context.Background()); err != nil {
			g.log.Warn().Err(err).Msg("auto-splitter tick failed, unloading")
			g.sched = nil
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.timer.Snapshot()
	g.layout.UpdateAll(snap, g.cache)
	g.cache.Collect()

	sc := g.builder.Build(g.layout)

	screen.Fill(backgroundColor(g.layout.General))
	drawLayer(screen, g.alloc, sc.Bottom)
	drawLayer(screen, g.alloc, sc.Top)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func backgroundColor(general layout.GeneralSettings) color.RGBA {
	return general.Background.Top
}

// registerHotkeys binds the global split/reset/undo/pause keys, driving
// them through the eventsink.Sink indirection instead of mutating a Game
// struct directly.
func registerHotkeys(sink eventsink.Sink, log obslog.Logger) {
	hkSplit := hotkey.New([]hotkey.Modifier{}, hotkey.Key(0x53)) // NumPad1
	hkReset := hotkey.New([]hotkey.Modifier{}, hotkey.Key(0x55)) // NumPad3
	hkUndo := hotkey.New([]hotkey.Modifier{}, hotkey.Key(0x5B))  // NumPad8
	hkPause := hotkey.New([]hotkey.Modifier{}, hotkey.Key(0x56)) // NumPad4

	for name, hk := range map[string]*hotkey.Hotkey{
		"split": hkSplit, "reset": hkReset, "undo": hkUndo, "pause": hkPause,
	} {
		if err := hk.Register(); err != nil {
			log.Error().Err(err).Str("hotkey", name).Msg("failed to register hotkey")
		}
	}

	for {
		select {
		case <-hkSplit.Keydown():
			sink.Split()
			log.Info().Msg("split")
		case <-hkUndo.Keydown():
			sink.UndoSplit()
			log.Info().Msg("undo split")
		case <-hkReset.Keydown():
			sink.Reset(true)
			log.Info().Msg("reset")
		case <-hkPause.Keydown():
			sink.TogglePauseOrStart()
			log.Info().Msg("toggle pause/start")
		}
	}
}
