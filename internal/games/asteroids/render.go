package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	PlayerBulletChar = '•'
	EnemyBulletChar  = '*'
	SparkChar        = '.'
	DebrisChar       = '+'
	ShieldChar       = '·'
)

// Render draws v onto dst. cellW and cellH are the world units covered by
// one terminal cell.
func Render(v View, dst *core.Screen, cellW, cellH float64) {
	r := renderer{dst: dst, cellW: cellW, cellH: cellH}

	for _, p := range v.Particles {
		ch, c := SparkChar, core.ColorOrange
		if p.Lifespan > 1 {
			ch, c = DebrisChar, core.ColorGray
		}
		r.point(p.Pos, ch, c)
	}

	for _, a := range v.Asteroids {
		r.wrapped(v.Bounds, a, core.ColorWhite)
	}
	for _, s := range v.Saucers {
		r.wrapped(v.Bounds, s, core.ColorBrightRed)
	}

	for _, p := range v.PlayerBullets {
		r.point(p, PlayerBulletChar, core.ColorBrightWhite)
	}
	for _, p := range v.EnemyBullets {
		r.point(p, EnemyBulletChar, core.ColorYellow)
	}

	if v.ShipVisible() {
		if v.Ship.Shielded && int(v.Now*4)%2 == 0 {
			r.circle(v.Ship.Pos, v.Ship.Radius*2.5, ShieldChar, core.ColorBrightCyan)
		}
		r.polygon(v.Ship.Pos, v.Ship.Rotation, v.Ship.Outline[:], core.ColorBrightCyan)
	}

	h := dst.Height()
	if v.State == StatePlaying {
		hud := v.HUD()
		dst.DrawTextColor(2, 0, hud[0], core.ColorBrightWhite)
		dst.DrawTextColor(2, 1, hud[1], core.ColorBrightWhite)
		dst.DrawTextColor(dst.Width()*3/4, 0, hud[2], core.ColorBrightWhite)
	}

	switch banners := v.Banners(); len(banners) {
	case 1:
		dst.DrawTextCentered(h/2, banners[0], core.ColorBrightYellow)
	case 2:
		dst.DrawTextCentered(h/2, banners[0], core.ColorBrightYellow)
		dst.DrawTextCentered(h-3, banners[1], core.ColorWhite)
	}
}

type renderer struct {
	dst          *core.Screen
	cellW, cellH float64
}

func (r renderer) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X / r.cellW)), int(math.Floor(p.Y / r.cellH))
}

func (r renderer) point(p core.Vec2, ch rune, c core.Color) {
	x, y := r.cell(p)
	r.dst.SetWithColor(x, y, ch, c)
}

// wrapped draws a body and, when it straddles an edge, its ghost on the
// opposite side.
func (r renderer) wrapped(b core.Bounds, body BodyView, c core.Color) {
	r.polygon(body.Pos, body.Rotation, body.Outline, c)

	switch {
	case body.Pos.X > b.W-body.Radius:
		r.polygon(core.V(body.Pos.X-b.W, body.Pos.Y), body.Rotation, body.Outline, c)
	case body.Pos.X < body.Radius:
		r.polygon(core.V(body.Pos.X+b.W, body.Pos.Y), body.Rotation, body.Outline, c)
	}
	switch {
	case body.Pos.Y > b.H-body.Radius:
		r.polygon(core.V(body.Pos.X, body.Pos.Y-b.H), body.Rotation, body.Outline, c)
	case body.Pos.Y < body.Radius:
		r.polygon(core.V(body.Pos.X, body.Pos.Y+b.H), body.Rotation, body.Outline, c)
	}
}

// polygon draws a closed outline.
func (r renderer) polygon(pos core.Vec2, rotation float64, outline []core.Vec2, c core.Color) {
	n := len(outline)
	for i := range n {
		x0, y0 := r.cell(pos.Add(outline[i].Rotate(rotation)))
		x1, y1 := r.cell(pos.Add(outline[(i+1)%n].Rotate(rotation)))
		r.dst.DrawLine(x0, y0, x1, y1, lineRune(x1-x0, y1-y0), c)
	}
}

func (r renderer) circle(center core.Vec2, radius float64, ch rune, c core.Color) {
	const steps = 24
	for i := range steps {
		r.point(center.Add(core.FromAngle(2*math.Pi*float64(i)/steps, radius)), ch, c)
	}
}

// lineRune picks a glyph that follows the slope of a segment.
func lineRune(dx, dy int) rune {
	ax, ay := max(dx, -dx), max(dy, -dy)
	switch {
	case ax == 0 && ay == 0:
		return '*'
	case ax > 2*ay:
		return '-'
	case ay > 2*ax:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}
