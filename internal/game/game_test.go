package game

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/camera"
	"github.com/samdwyer/dungeoncrawl/internal/config"
	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/movement"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

var orc = &gamedata.EnemyDef{ID: "orc", Name: "Orc", Glyph: "o", Color: "#FF4040", SpawnWeight: 1}

// recorder is a Renderer that logs calls and what it saw.
type recorder struct {
	calls         []string
	enemiesAtDraw int
	playerAtDraw  world.Point
	lastMessage   string
}

func (r *recorder) Clear() { r.calls = append(r.calls, "clear") }

func (r *recorder) DrawMap(*world.Grid, *camera.Viewport) {
	r.calls = append(r.calls, "map")
}

func (r *recorder) DrawEntities(ents *entity.World, _ *camera.Viewport) {
	r.calls = append(r.calls, "entities")
	r.enemiesAtDraw = len(ents.Tagged(entity.TagEnemy))
	_, r.playerAtDraw, _ = ents.Player()
}

func (r *recorder) RenderMessage(msg string, _ int) {
	r.calls = append(r.calls, "message")
	r.lastMessage = msg
}

func (r *recorder) Show() { r.calls = append(r.calls, "show") }

// newTestState builds a 10x8 open room with a wall at (5,2) and the player at
// the given position.
func newTestState(t *testing.T, player world.Point, enemies ...world.Point) *State {
	t.Helper()
	grid, err := world.NewGrid(10, 8)
	if err != nil {
		t.Fatalf("NewGrid() error = %v", err)
	}
	grid.Fill(world.TileFloor)
	grid.Set(world.Pt(5, 2), world.TileWall)

	ents := entity.NewWorld()
	id := entity.SpawnPlayer(ents, player)
	for _, p := range enemies {
		entity.SpawnEnemy(ents, orc, p)
	}

	return &State{
		Dungeon:  &world.Dungeon{Grid: grid, Start: player},
		Entities: ents,
		Enemies:  gamedata.NewEnemyRegistry([]gamedata.EnemyDef{*orc}),
		Viewport: camera.New(player, 6, 4),
		Player:   id,
		Mode:     ModeExplore,
		Seed:     7,
	}
}

func TestScheduleOrder(t *testing.T) {
	tests := []struct {
		name     string
		renderer Renderer
		want     []string
	}{
		{"headless", nil, []string{PhaseInput, PhaseCollision, PhaseFlush}},
		{"with renderer", &recorder{}, []string{PhaseInput, PhaseCollision, PhaseFlush, PhaseMapRender, PhaseEntityRender}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSchedule(tt.renderer).Names()
			if !slices.Equal(got, tt.want) {
				t.Errorf("Names() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionRemovesBeforeRender(t *testing.T) {
	s := newTestState(t, world.Pt(2, 2), world.Pt(3, 2), world.Pt(8, 6))
	rec := &recorder{}

	tick := Tick{Number: 1, Input: movement.DirRight}
	buildSchedule(rec).Execute(context.Background(), s, &tick)

	if tick.Outcome != movement.OutcomeMoved {
		t.Fatalf("Outcome = %v, want moved", tick.Outcome)
	}
	if tick.Removed != 1 {
		t.Errorf("Removed = %d, want 1", tick.Removed)
	}
	if rec.enemiesAtDraw != 1 {
		t.Errorf("enemies seen by renderer = %d, want 1", rec.enemiesAtDraw)
	}
	if rec.playerAtDraw != world.Pt(3, 2) {
		t.Errorf("player seen by renderer = %v, want (3,2)", rec.playerAtDraw)
	}
	want := []string{"clear", "map", "entities", "message", "show"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("render calls = %v, want %v", rec.calls, want)
	}
	if s.Mode != ModeExplore {
		t.Errorf("Mode = %v, want explore", s.Mode)
	}
	if s.Message != "Caught the Orc!" {
		t.Errorf("Message = %q, want %q", s.Message, "Caught the Orc!")
	}
	if !strings.Contains(rec.lastMessage, "Caught the Orc!") {
		t.Errorf("status line = %q, want the catch reported", rec.lastMessage)
	}
	if s.Viewport.Center != world.Pt(3, 2) {
		t.Errorf("Viewport.Center = %v, want (3,2)", s.Viewport.Center)
	}
}

func TestLastCatchClearsDungeon(t *testing.T) {
	s := newTestState(t, world.Pt(2, 2), world.Pt(2, 3))

	tick := Tick{Number: 1, Input: movement.DirDown}
	buildSchedule(nil).Execute(context.Background(), s, &tick)

	if s.Mode != ModeCleared {
		t.Errorf("Mode = %v, want cleared", s.Mode)
	}
	if s.Message != "Dungeon cleared!" {
		t.Errorf("Message = %q, want %q", s.Message, "Dungeon cleared!")
	}
}

func TestBlockedMoveChangesNothing(t *testing.T) {
	s := newTestState(t, world.Pt(4, 2), world.Pt(8, 6))
	before := *s.Viewport

	tick := Tick{Number: 1, Input: movement.DirRight}
	buildSchedule(nil).Execute(context.Background(), s, &tick)

	if tick.Outcome != movement.OutcomeBlocked {
		t.Errorf("Outcome = %v, want blocked", tick.Outcome)
	}
	if pos, _ := s.Entities.Position(s.Player); pos != world.Pt(4, 2) {
		t.Errorf("player position = %v, want (4,2)", pos)
	}
	if *s.Viewport != before {
		t.Errorf("viewport = %+v, want unchanged %+v", *s.Viewport, before)
	}
	if tick.Removed != 0 {
		t.Errorf("Removed = %d, want 0", tick.Removed)
	}
}

func TestIdleTickSkipsCollision(t *testing.T) {
	s := newTestState(t, world.Pt(2, 2), world.Pt(2, 2))

	tick := Tick{Number: 1, Input: movement.DirNone}
	buildSchedule(nil).Execute(context.Background(), s, &tick)

	if tick.Removed != 0 {
		t.Errorf("Removed = %d, want 0", tick.Removed)
	}
	if got := len(s.Entities.Tagged(entity.TagEnemy)); got != 1 {
		t.Errorf("enemies = %d, want 1", got)
	}
}

func TestEnemyNameFallback(t *testing.T) {
	s := newTestState(t, world.Pt(2, 2))
	known := entity.SpawnEnemy(s.Entities, orc, world.Pt(3, 3))
	unknown := entity.SpawnEnemy(s.Entities, &gamedata.EnemyDef{ID: "troll", Glyph: "T"}, world.Pt(4, 4))
	bare := s.Entities.Create()

	tests := []struct {
		name string
		id   entity.ID
		want string
	}{
		{"registered kind", known, "Orc"},
		{"unregistered kind", unknown, "troll"},
		{"no kind", bare, "enemy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enemyName(s, tt.id); got != tt.want {
				t.Errorf("enemyName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeExplore, "explore"},
		{ModeCleared, "cleared"},
		{Mode(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	s := newTestState(t, world.Pt(2, 2), world.Pt(8, 6))
	tick := &Tick{Number: 3}

	want := "seed 7  enemies 1  turn 3  [arrows] move  [q] quit"
	if got := statusLine(s, tick); got != want {
		t.Errorf("statusLine() = %q, want %q", got, want)
	}

	s.Message = "hello"
	if got := statusLine(s, tick); got != want+"  hello" {
		t.Errorf("statusLine() = %q, want message appended", got)
	}
}

func seededConfig(seed int64) config.Config {
	cfg := config.Default()
	cfg.Seed = seed
	return cfg
}

func TestSessionDeterministic(t *testing.T) {
	ctx := context.Background()
	a, err := NewSession(ctx, seededConfig(42), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	b, err := NewSession(ctx, seededConfig(42), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	sa, sb := a.State(), b.State()
	if sa.Dungeon.Start != sb.Dungeon.Start {
		t.Errorf("start differs: %v != %v", sa.Dungeon.Start, sb.Dungeon.Start)
	}
	if !slices.Equal(sa.Dungeon.Rooms, sb.Dungeon.Rooms) {
		t.Error("rooms differ for the same seed")
	}
	if sa.Seed != 42 {
		t.Errorf("Seed = %d, want 42", sa.Seed)
	}

	pa, pb := sa.Entities.EnemyPositions(), sb.Entities.EnemyPositions()
	if len(pa) != len(sa.Dungeon.Rooms)-1 {
		t.Errorf("enemies = %d, want %d", len(pa), len(sa.Dungeon.Rooms)-1)
	}
	for id, p := range pa {
		if pb[id] != p {
			t.Errorf("enemy %v at %v, other session has %v", id, p, pb[id])
		}
	}

	if _, pos, _ := sa.Entities.Player(); pos != sa.Dungeon.Start {
		t.Errorf("player at %v, want start %v", pos, sa.Dungeon.Start)
	}
	if sa.Viewport.Center != sa.Dungeon.Start {
		t.Errorf("viewport center = %v, want start %v", sa.Viewport.Center, sa.Dungeon.Start)
	}
}

func TestSessionStep(t *testing.T) {
	s, err := NewSession(context.Background(), seededConfig(1), &recorder{})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}

	first := s.Step(context.Background(), movement.DirNone)
	if first.Number != 1 || first.Outcome != movement.OutcomeIdle {
		t.Errorf("first tick = %+v, want number 1 idle", first)
	}
	second := s.Step(context.Background(), movement.DirNone)
	if second.Number != 2 {
		t.Errorf("second tick number = %d, want 2", second.Number)
	}
}

func TestSessionReloadKeepsStateOnError(t *testing.T) {
	ctx := context.Background()
	s, err := NewSession(ctx, seededConfig(5), nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	before := s.State()

	bad := seededConfig(5)
	bad.Map.Width = 1
	if err := s.Reload(ctx, bad); err == nil {
		t.Fatal("Reload() with invalid config succeeded, want error")
	}
	if s.State() != before {
		t.Error("Reload() error replaced the state")
	}

	if err := s.Reload(ctx, seededConfig(6)); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if s.State() == before || s.State().Seed != 6 {
		t.Errorf("Reload() did not replace state, seed = %d", s.State().Seed)
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	sim.SetSize(60, 40)
	t.Cleanup(screen.Close)

	g := newGame(screen, seededConfig(42), "")
	g.session, err = NewSession(context.Background(), g.cfg, g.renderer)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return g
}

func TestHandleEventQuit(t *testing.T) {
	g := newTestGame(t)
	g.handleEvent(context.Background(), tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if g.running {
		t.Error("running = true after q, want false")
	}
}

func TestHandleEventReloadMissingFile(t *testing.T) {
	g := newTestGame(t)
	g.configPath = t.TempDir() + "/missing-dir/dungeoncrawl.yaml"

	g.handleEvent(context.Background(), tcell.NewEventInterrupt(reloadRequest{}))

	if !g.running {
		t.Error("running = false after reload, want true")
	}
	if got := g.session.State().Message; got != "config reloaded" {
		t.Errorf("Message = %q, want %q", got, "config reloaded")
	}
}
