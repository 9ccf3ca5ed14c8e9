// pkg/render/terminal.go
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Glyphs used by the terminal renderer
const (
	glyphEmpty            = ' '
	glyphAsteroid         = '#'
	glyphProjectile       = '.'
	glyphShip             = 'A'
	glyphShipInvulnerable = 'a'
)

// clearSequence homes the cursor and clears the screen
const clearSequence = "\033[H\033[2J"

// TerminalRenderer provides a simple ASCII-based rendering of the whole
// toric space. Each cell covers a fixed patch of space; asteroid cells are
// found by testing the cell centre against the asteroid outline.
type TerminalRenderer struct {
	out     io.Writer
	columns int
	rows    int
	buffer  [][]rune
	cellW   float64
	cellH   float64
	status  string
	err     error

	// ClearScreen makes Present emit an ANSI clear sequence before the frame
	ClearScreen bool

	score      int
	multiplier int
}

// NewTerminalRenderer creates a terminal renderer drawing a columns x rows
// playfield to out
func NewTerminalRenderer(out io.Writer, columns, rows int) *TerminalRenderer {
	buffer := make([][]rune, rows)
	for i := range buffer {
		buffer[i] = make([]rune, columns)
	}

	r := &TerminalRenderer{
		out:        out,
		columns:    columns,
		rows:       rows,
		buffer:     buffer,
		cellW:      physics.SpaceWidth / float64(columns),
		cellH:      physics.SpaceHeight / float64(rows),
		multiplier: 1,
	}
	r.Clear()
	return r
}

// SetScore sets the score shown on the status line of the next frame
func (r *TerminalRenderer) SetScore(score, multiplier int) {
	r.score = score
	r.multiplier = multiplier
}

// Err returns the first write error met by Present
func (r *TerminalRenderer) Err() error {
	return r.err
}

// worldToCell converts a world position to cell coordinates. Positions
// outside space map outside the grid.
func (r *TerminalRenderer) worldToCell(pos physics.Vector2D) (int, int) {
	return int(math.Floor(pos.X / r.cellW)), int(math.Floor(pos.Y / r.cellH))
}

// cellCenter returns the world position of the centre of a cell
func (r *TerminalRenderer) cellCenter(x, y int) physics.Vector2D {
	return physics.Vector2D{
		X: (float64(x) + 0.5) * r.cellW,
		Y: (float64(y) + 0.5) * r.cellH,
	}
}

func (r *TerminalRenderer) inBounds(x, y int) bool {
	return x >= 0 && x < r.columns && y >= 0 && y < r.rows
}

// wrapCell maps a cell index to the grid, the way space wraps
func wrapCell(i, n int) int {
	return ((i % n) + n) % n
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = glyphEmpty
		}
	}
	r.status = ""
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	var sb strings.Builder
	if r.ClearScreen {
		sb.WriteString(clearSequence)
	}

	border := "+" + strings.Repeat("-", r.columns) + "+\n"
	sb.WriteString(border)
	for y := range r.buffer {
		sb.WriteByte('|')
		sb.WriteString(string(r.buffer[y]))
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	fmt.Fprintf(&sb, "score %d  x%d  %s\n", r.score, r.multiplier, r.status)

	if _, err := io.WriteString(r.out, sb.String()); err != nil && r.err == nil {
		r.err = err
	}
}

// RenderAsteroid implements entity.Renderer. Asteroids overlapping an edge
// of space show up on the opposite side too.
func (r *TerminalRenderer) RenderAsteroid(asteroid *entity.Asteroid) {
	outline := asteroid.ShapeInWorld()
	bounds := asteroid.BoundingCircle()
	minX, minY := r.worldToCell(bounds.Center.Sub(physics.Vector2D{X: bounds.Radius, Y: bounds.Radius}))
	maxX, maxY := r.worldToCell(bounds.Center.Add(physics.Vector2D{X: bounds.Radius, Y: bounds.Radius}))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if outline.Contains(r.cellCenter(x, y)) {
				r.buffer[wrapCell(y, r.rows)][wrapCell(x, r.columns)] = glyphAsteroid
			}
		}
	}
}

// RenderProjectile implements entity.Renderer. Projectiles that left space
// are not drawn.
func (r *TerminalRenderer) RenderProjectile(projectile *entity.Projectile) {
	x, y := r.worldToCell(projectile.Position)
	if r.inBounds(x, y) {
		r.buffer[y][x] = glyphProjectile
	}
}

// RenderShip implements entity.Renderer
func (r *TerminalRenderer) RenderShip(ship *entity.Spaceship) {
	x, y := r.worldToCell(ship.Position)
	if r.inBounds(x, y) {
		glyph := glyphShip
		if ship.IsInvulnerable() {
			glyph = glyphShipInvulnerable
		}
		r.buffer[y][x] = glyph
	}
	r.status = fmt.Sprintf("lives %d  fuel %3.0f%%  heading %4.0f",
		ship.Lives(), ship.FuelPercentage(), ship.DirectionAngle())
}
