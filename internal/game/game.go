package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/movement"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// reloadRequest is posted to the event loop when the config file changes.
type reloadRequest struct {
	err error
}

// Game holds the terminal and the running session.
type Game struct {
	screen     *ui.Screen
	renderer   *ui.Renderer
	session    *Session
	cfg        config.Config
	configPath string
	running    bool
}

// New creates a new game instance on the terminal.
func New(cfg config.Config, configPath string) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg, configPath), nil
}

func newGame(screen *ui.Screen, cfg config.Config, configPath string) *Game {
	return &Game{
		screen:     screen,
		renderer:   ui.NewRenderer(screen),
		cfg:        cfg,
		configPath: configPath,
		running:    true,
	}
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	session, err := NewSession(ctx, g.cfg, g.renderer)
	if err != nil {
		return err
	}
	g.session = session

	if g.configPath != "" {
		if watcher, err := config.NewWatcher(g.configPath); err == nil {
			defer watcher.Close()
			go g.forwardReloads(watcher)
		} else {
			g.session.SetMessage("config watch disabled: " + err.Error())
		}
	}

	// Draw the first frame
	g.session.Step(ctx, movement.DirNone)

	for g.running {
		g.handleEvent(ctx, g.screen.PollEvent())
	}
	return nil
}

// forwardReloads turns watcher notifications into interrupt events.
func (g *Game) forwardReloads(w *config.Watcher) {
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
			_ = g.screen.Interrupt(reloadRequest{})
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			_ = g.screen.Interrupt(reloadRequest{err: err})
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuit(ev) {
			g.running = false
			return
		}
		if dir := ui.DirectionForKey(ev); dir != movement.DirNone {
			g.session.Step(ctx, dir)
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.session.Step(ctx, movement.DirNone)
	case *tcell.EventInterrupt:
		if req, ok := ev.Data().(reloadRequest); ok {
			g.reload(ctx, req)
		}
	case nil:
		// Screen finalized
		g.running = false
	}
}

// reload regenerates the dungeon from the config file.
func (g *Game) reload(ctx context.Context, req reloadRequest) {
	if req.err != nil {
		g.session.SetMessage("config watch: " + req.err.Error())
		g.session.Step(ctx, movement.DirNone)
		return
	}

	cfg, err := config.Load(g.configPath)
	if err == nil {
		err = g.session.Reload(ctx, cfg)
	}
	if err != nil {
		g.session.SetMessage("reload failed: " + err.Error())
	} else {
		g.cfg = cfg
		g.session.SetMessage("config reloaded")
	}
	g.session.Step(ctx, movement.DirNone)
}
