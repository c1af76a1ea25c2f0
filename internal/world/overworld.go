package world

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/questfield/internal/gamedata"
	"github.com/samdwyer/questfield/internal/logger"
	"github.com/samdwyer/questfield/internal/rng"
	"github.com/samdwyer/questfield/internal/telemetry"
)

const (
	// Default overworld dimensions
	DefaultWidth  = 64
	DefaultHeight = 48

	// Generation parameters
	mountainRate     = 60 // 1 in N cells seeds a mountain blob
	mountainMinPaint = 10
	mountainMaxPaint = 60 // exclusive
	mountainJitter   = 3
	waterRate        = 12
	forestRate       = 6
)

// Normalized placement bands; each is mirrored to the far side of the map.
var (
	castleBand = [2]float64{0.05, 0.2}
	townBand   = [2]float64{0.05, 0.45}
)

// Start is the player's spawn coordinate.
var Start = Coord{X: 0, Y: 0}

// Map is the overworld. Every cell holds exactly one field; after
// generation only town visited flags change.
type Map struct {
	Width  int
	Height int

	fields    []Field
	collision map[Coord]struct{}
	blink     map[Coord]struct{}
	towns     []Coord
	castle    Coord
	dropped   []gamedata.Item
}

// NewMap creates a map of the given size covered in grass.
func NewMap(width, height int) *Map {
	fields := make([]Field, width*height)
	for i := range fields {
		fields[i] = Field{Kind: Grass}
	}
	return &Map{
		Width:     width,
		Height:    height,
		fields:    fields,
		collision: make(map[Coord]struct{}),
		blink:     make(map[Coord]struct{}),
	}
}

// Generate builds a fresh overworld. The same source stream always yields
// the same map.
func Generate(ctx context.Context, width, height int, catalog []gamedata.Item, src rng.Source) *Map {
	m := NewMap(width, height)
	m.Generate(ctx, catalog, src)
	return m
}

// Generate lays out terrain, the castle and one town per catalog item.
// Later paints overwrite earlier ones, so the pass order is part of the
// result.
func (m *Map) Generate(ctx context.Context, catalog []gamedata.Item, src rng.Source) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()

	m.paintMountains(src)
	m.paintInterior(src, waterRate, Water)
	m.paintInterior(src, forestRate, Forest)
	m.clearSpawn()
	m.placeCastle(src)
	m.placeTowns(catalog, src)
	m.derive()

	span.SetAttributes(
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.Int("map.towns", len(m.towns)),
		attribute.Int("map.dropped_items", len(m.dropped)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	entry := logger.Component("world").WithFields(logrus.Fields{
		"towns":    len(m.towns),
		"water":    len(m.collision),
		"castle_x": m.castle.X,
		"castle_y": m.castle.Y,
		"dropped":  len(m.dropped),
	})
	if len(m.dropped) > 0 {
		entry.Warn("town placement collided, items left off the map")
	} else {
		entry.Debug("map generated")
	}
}

// paintMountains seeds blobs of mountain around random cells.
func (m *Map) paintMountains(src rng.Source) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !rng.OneIn(src, mountainRate) {
				continue
			}
			count := rng.Range(src, mountainMinPaint, mountainMaxPaint)
			for i := 0; i < count; i++ {
				dx := rng.Range(src, -mountainJitter, mountainJitter+1)
				dy := rng.Range(src, -mountainJitter, mountainJitter+1)
				c := Coord{
					X: clamp(x+dx, 0, m.Width-1),
					Y: clamp(y+dy, 0, m.Height-1),
				}
				m.set(c, Field{Kind: Mountain})
			}
		}
	}
}

// paintInterior paints kind on 1 in rate cells off the outer ring.
func (m *Map) paintInterior(src rng.Source, rate int, kind FieldKind) {
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if rng.OneIn(src, rate) {
				m.set(Coord{X: x, Y: y}, Field{Kind: kind})
			}
		}
	}
}

// clearSpawn forces grass on the 3x3 block around Start, wrapping across
// the edges like movement does.
func (m *Map) clearSpawn() {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			m.set(m.Wrap(Start.Add(dx, dy)), Field{Kind: Grass})
		}
	}
}

func (m *Map) placeCastle(src rng.Source) {
	m.castle = m.bandCoord(src, castleBand)
	m.set(m.castle, Field{Kind: Castle})
}

// placeTowns places one town per item. A roll landing on an existing town
// or the castle drops that item; there is no reroll.
func (m *Map) placeTowns(catalog []gamedata.Item, src rng.Source) {
	for _, item := range catalog {
		c := m.bandCoord(src, townBand)
		switch m.At(c).Kind {
		case Town, Castle:
			m.dropped = append(m.dropped, item)
			continue
		}
		m.set(c, NewTown(item))
		m.towns = append(m.towns, c)
	}
}

// bandCoord picks a coordinate whose normalized x and y each fall in
// band or its mirror image.
func (m *Map) bandCoord(src rng.Source, band [2]float64) Coord {
	return Coord{
		X: bandValue(src, band, m.Width),
		Y: bandValue(src, band, m.Height),
	}
}

func bandValue(src rng.Source, band [2]float64, extent int) int {
	u := band[0] + src.Float64()*(band[1]-band[0])
	if src.Intn(2) == 1 {
		u = 1 - u
	}
	return clamp(int(u*float64(extent)), 0, extent-1)
}

// derive rebuilds the collision and blink sets from the fields.
func (m *Map) derive() {
	m.collision = make(map[Coord]struct{})
	m.blink = make(map[Coord]struct{})
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := Coord{X: x, Y: y}
			f := m.At(c)
			if !f.IsPassable() {
				m.collision[c] = struct{}{}
			}
			if f.Blinks() {
				m.blink[c] = struct{}{}
			}
		}
	}
}

func (m *Map) set(c Coord, f Field) {
	m.fields[c.Y*m.Width+c.X] = f
}

// Wrap maps any coordinate onto the map; the overworld is a torus.
func (m *Map) Wrap(c Coord) Coord {
	return Coord{X: wrap(c.X, m.Width), Y: wrap(c.Y, m.Height)}
}

// At returns the field at c, wrapping out-of-range coordinates.
func (m *Map) At(c Coord) Field {
	c = m.Wrap(c)
	return m.fields[c.Y*m.Width+c.X]
}

// Collides reports whether c is in the collision set.
func (m *Map) Collides(c Coord) bool {
	_, ok := m.collision[m.Wrap(c)]
	return ok
}

// Blinks reports whether c is in the blink set.
func (m *Map) Blinks(c Coord) bool {
	_, ok := m.blink[m.Wrap(c)]
	return ok
}

// CollisionSet returns a copy of the collision set.
func (m *Map) CollisionSet() map[Coord]struct{} {
	return copySet(m.collision)
}

// BlinkSet returns a copy of the blink set.
func (m *Map) BlinkSet() map[Coord]struct{} {
	return copySet(m.blink)
}

// Towns returns town coordinates in placement order.
func (m *Map) Towns() []Coord {
	return append([]Coord(nil), m.towns...)
}

// Castle returns the castle coordinate.
func (m *Map) Castle() Coord {
	return m.castle
}

// DroppedItems returns catalog items that found no free town cell.
func (m *Map) DroppedItems() []gamedata.Item {
	return append([]gamedata.Item(nil), m.dropped...)
}

// MarkVisited flips the town at c to visited. It returns false if c is not
// a town or was already visited.
func (m *Map) MarkVisited(c Coord) bool {
	c = m.Wrap(c)
	f := m.At(c)
	if f.Kind != Town || f.Visited {
		return false
	}
	f.Visited = true
	m.set(c, f)
	return true
}

func copySet(s map[Coord]struct{}) map[Coord]struct{} {
	out := make(map[Coord]struct{}, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}
