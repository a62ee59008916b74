package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// BulletOwner tells who fired a bullet.
type BulletOwner int

const (
	PlayerBullet BulletOwner = iota
	EnemyBullet
)

func (o BulletOwner) String() string {
	if o == EnemyBullet {
		return "enemy"
	}
	return "player"
}

const (
	BulletRadius = 2.0
	BulletDecay  = 0.01 // lifespan lost per tick
)

// lifeEpsilon absorbs float drift when a lifespan is counted down in
// fixed decrements, so 0.5 runs out after exactly 50 steps of 0.01.
const lifeEpsilon = 1e-9

// Bullet is a shot fired by the ship or a saucer.
type Bullet struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Lifespan float64
	Owner    BulletOwner
}

// NewBullet creates a bullet.
func NewBullet(pos, vel core.Vec2, lifespan float64, owner BulletOwner) *Bullet {
	return &Bullet{Pos: pos, Vel: vel, Lifespan: lifespan, Owner: owner}
}

// Advance moves the bullet and burns lifespan. Player bullets wrap; enemy
// bullets die as soon as they leave the playfield.
func (bl *Bullet) Advance(b core.Bounds) {
	bl.Pos = bl.Pos.Add(bl.Vel)
	bl.Lifespan -= BulletDecay

	if bl.Owner == PlayerBullet {
		bl.Pos = core.WrapVec(bl.Pos, b)
		return
	}
	if !b.Contains(bl.Pos) {
		bl.Lifespan = 0
	}
}

func (bl *Bullet) Alive() bool         { return bl.Lifespan > lifeEpsilon }
func (bl *Bullet) Destroy()            { bl.Lifespan = 0 }
func (bl *Bullet) Position() core.Vec2 { return bl.Pos }
func (bl *Bullet) Radius() float64     { return BulletRadius }
