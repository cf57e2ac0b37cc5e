package world

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Room placement parameters
	DefaultNumRooms    = 20
	DefaultMinRoomSize = 2  // Inclusive
	DefaultMaxRoomSize = 10 // Exclusive
	DefaultMargin      = 10 // Rooms start at least this far from the right and bottom edges
	DefaultMaxAttempts = 10000
)

var (
	// ErrInvalidParams is returned when generation parameters cannot produce a dungeon.
	ErrInvalidParams = errors.New("invalid generation parameters")
	// ErrPlacementExhausted is returned when the room placement cap is hit.
	ErrPlacementExhausted = errors.New("room placement attempts exhausted")
)

// Params controls dungeon generation.
type Params struct {
	Width, Height int
	NumRooms      int
	MinRoomSize   int // Smallest room side (inclusive)
	MaxRoomSize   int // Largest room side (exclusive)
	Margin        int
	MaxAttempts   int // Candidate rooms to try before giving up; 0 means no limit
}

// DefaultParams returns the reference generation parameters.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		NumRooms:    DefaultNumRooms,
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
		Margin:      DefaultMargin,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate checks that the parameters describe a placeable layout.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	case p.NumRooms <= 0:
		return fmt.Errorf("%w: room count %d", ErrInvalidParams, p.NumRooms)
	case p.MinRoomSize <= 0 || p.MaxRoomSize <= p.MinRoomSize:
		return fmt.Errorf("%w: room size range [%d,%d)", ErrInvalidParams, p.MinRoomSize, p.MaxRoomSize)
	case p.Margin < 0 || p.Width-p.Margin <= 1 || p.Height-p.Margin <= 1:
		return fmt.Errorf("%w: margin %d leaves no room positions", ErrInvalidParams, p.Margin)
	case p.Margin < p.MaxRoomSize-1:
		// The furthest cell a room can reach is W-Margin+MaxRoomSize-3,
		// which must stay inside the border at W-2.
		return fmt.Errorf("%w: margin %d cannot fit rooms up to %d cells", ErrInvalidParams, p.Margin, p.MaxRoomSize-1)
	case p.MaxAttempts < 0:
		return fmt.Errorf("%w: max attempts %d", ErrInvalidParams, p.MaxAttempts)
	}
	return nil
}

// Dungeon is the output of a generation run.
type Dungeon struct {
	Grid  *Grid
	Rooms []Rect // Insertion order
	Start Point  // Center of Rooms[0]
}

// RoomIndexAt returns the index of the room containing p, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(p Point) int {
	for i, room := range d.Rooms {
		if room.Contains(p) {
			return i
		}
	}
	return -1
}

// builder carries the state of one generation run.
type builder struct {
	params Params
	rng    RNG
	grid   *Grid
	rooms  []Rect
}

// Generate carves random non-overlapping rooms into a wall-filled grid and
// joins them with dog-leg corridors. The same params and RNG sequence always
// produce the same dungeon.
func Generate(ctx context.Context, params Params, rng RNG) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	if err := params.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid parameters")
		return nil, err
	}

	grid, err := NewGrid(params.Width, params.Height)
	if err != nil {
		return nil, err
	}

	b := &builder{
		params: params,
		rng:    rng,
		grid:   grid,
		rooms:  make([]Rect, 0, params.NumRooms),
	}

	attempts, err := b.buildRandomRooms()
	span.SetAttributes(attribute.Int("dungeon.attempts", attempts))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "room placement failed")
		return nil, err
	}

	b.buildCorridors()

	// The start room is the first one placed, not the westmost one used
	// to seed the corridor chain.
	d := &Dungeon{
		Grid:  b.grid,
		Rooms: b.rooms,
		Start: b.rooms[0].Center(),
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", params.Width),
		attribute.Int("dungeon.height", params.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.start_x", d.Start.X),
		attribute.Int("dungeon.start_y", d.Start.Y),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return d, nil
}

// buildRandomRooms places rooms until NumRooms are accepted, discarding any
// candidate that intersects an accepted room. It returns the number of
// candidates drawn.
func (b *builder) buildRandomRooms() (int, error) {
	attempts := 0
	for len(b.rooms) < b.params.NumRooms {
		if b.params.MaxAttempts > 0 && attempts >= b.params.MaxAttempts {
			return attempts, fmt.Errorf("%w: placed %d of %d rooms in %d attempts",
				ErrPlacementExhausted, len(b.rooms), b.params.NumRooms, attempts)
		}
		attempts++

		room := RectWithSize(
			b.rng.Range(1, b.params.Width-b.params.Margin),
			b.rng.Range(1, b.params.Height-b.params.Margin),
			b.rng.Range(b.params.MinRoomSize, b.params.MaxRoomSize),
			b.rng.Range(b.params.MinRoomSize, b.params.MaxRoomSize),
		)

		overlap := false
		for _, r := range b.rooms {
			if r.Intersect(room) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}

		b.carveRoom(room)
		b.rooms = append(b.rooms, room)
	}
	return attempts, nil
}

// carveRoom sets all tiles within the room to floor, leaving the outer border intact.
func (b *builder) carveRoom(room Rect) {
	room.ForEach(func(p Point) {
		if p.X > 0 && p.X < b.grid.Width-1 && p.Y > 0 && p.Y < b.grid.Height-1 {
			b.grid.Set(p, TileFloor)
		}
	})
}

// buildCorridors joins each pair of neighbouring rooms, ordered by center x.
func (b *builder) buildCorridors() {
	sorted := slices.Clone(b.rooms)
	slices.SortStableFunc(sorted, func(a, c Rect) int {
		return cmp.Compare(a.Center().X, c.Center().X)
	})

	for i := 1; i < len(sorted); i++ {
		b.carveCorridor(sorted[i-1].Center(), sorted[i].Center())
	}
}

// carveCorridor creates an L-shaped corridor between two points.
func (b *builder) carveCorridor(prev, next Point) {
	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if b.rng.Range(0, 2) == 1 {
		b.carveHorizontalTunnel(prev.X, next.X, prev.Y)
		b.carveVerticalTunnel(prev.Y, next.Y, next.X)
	} else {
		b.carveVerticalTunnel(prev.Y, next.Y, prev.X)
		b.carveHorizontalTunnel(prev.X, next.X, next.Y)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel, both ends included.
func (b *builder) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		b.grid.Set(Point{X: x, Y: y}, TileFloor)
	}
}

// carveVerticalTunnel carves a vertical tunnel, both ends included.
func (b *builder) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		b.grid.Set(Point{X: x, Y: y}, TileFloor)
	}
}
