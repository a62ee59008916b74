package asteroids

// resolveCollisions runs the collision pass for one tick. Each asteroid is
// tested against the ship, every saucer and every bullet; then saucers
// against the ship and player bullets; then enemy bullets against the
// ship. Fragments are held back until the pass is over.
//
// By default an entity destroyed earlier in the pass takes no further part
// in it, and the ship stops being tested once the game is over. With
// Rules.LegacyReevaluation set, destroyed entities keep colliding until the
// sweep, so one asteroid can be scored several times in a tick.
func (w *World) resolveCollisions() {
	legacy := w.cfg.Rules.LegacyReevaluation
	live := func(alive bool) bool { return legacy || alive }
	shipLive := func() bool { return legacy || w.state == StatePlaying }

	bonusBefore := w.score / w.cfg.Scoring.BonusLifeEvery
	var fragments []*Asteroid

	for _, a := range w.asteroids {
		if shipLive() && live(a.Alive()) && Colliding(w.ship, a, w.bounds, w.now) {
			w.shipHit()
		}

		for _, s := range w.saucers {
			if !live(s.Alive()) || !live(a.Alive()) {
				continue
			}
			if Colliding(s, a, w.bounds, w.now) {
				w.saucerDestroyed(s)
				w.particles = AppendRadial(w.particles, w.rng, a.Pos, 100)
				w.particles = AppendDebris(w.particles, w.rng, a.Pos, 50)
				a.Destroy()
			}
		}

		for _, bl := range w.bulletsOnAsteroids() {
			if !live(bl.Alive()) || !live(a.Alive()) {
				continue
			}
			if Colliding(bl, a, w.bounds, w.now) {
				fragments = w.asteroidShot(a, fragments)
				bl.Destroy()
			}
		}
	}

	w.asteroids = append(w.asteroids, fragments...)

	for _, s := range w.saucers {
		if !live(s.Alive()) {
			continue
		}
		if shipLive() && Colliding(w.ship, s, w.bounds, w.now) {
			w.saucerDestroyed(s)
			w.shipHit()
		}

		for _, bl := range w.playerBullets {
			if !live(bl.Alive()) || !live(s.Alive()) {
				continue
			}
			if Colliding(bl, s, w.bounds, w.now) {
				w.saucerDestroyed(s)
				bl.Destroy()
			}
		}
	}

	for _, bl := range w.enemyBullets {
		if !shipLive() || !live(bl.Alive()) {
			continue
		}
		if Colliding(bl, w.ship, w.bounds, w.now) {
			bl.Destroy()
			w.shipHit()
		}
	}

	if w.score/w.cfg.Scoring.BonusLifeEvery > bonusBefore {
		w.lives++
		w.logger.Info("bonus life", "score", w.score, "lives", w.lives)
	}
}

// bulletsOnAsteroids returns player and enemy bullets as one pool. Both
// kinds break asteroids and both score.
func (w *World) bulletsOnAsteroids() []*Bullet {
	pool := make([]*Bullet, 0, len(w.playerBullets)+len(w.enemyBullets))
	pool = append(pool, w.playerBullets...)
	return append(pool, w.enemyBullets...)
}

// shipHit bursts the ship and costs a life. With no spare lives left the
// game is over instead; lives never go below zero.
func (w *World) shipHit() {
	w.particles = AppendRadial(w.particles, w.rng, w.ship.Pos, 100)
	w.particles = AppendDebris(w.particles, w.rng, w.ship.Pos, 50)

	if w.lives == 0 {
		if w.state != StateGameOver {
			w.logger.Info("game over", "score", w.score, "wave", w.wave)
		}
		w.state = StateGameOver
		return
	}
	w.lives--
	w.ship.Respawn(w.now, w.bounds)
	w.logger.Info("life lost", "lives", w.lives)
}

// saucerDestroyed scores and bursts a saucer.
func (w *World) saucerDestroyed(s *Saucer) {
	switch s.Size {
	case SaucerSmall:
		w.score += w.cfg.Scoring.SaucerSmall
		w.particles = AppendRadial(w.particles, w.rng, s.Pos, 100)
		w.particles = AppendDebris(w.particles, w.rng, s.Pos, 50)
	default:
		w.score += w.cfg.Scoring.SaucerLarge
		w.particles = AppendRadial(w.particles, w.rng, s.Pos, 200)
		w.particles = AppendDebris(w.particles, w.rng, s.Pos, 100)
	}
	s.Destroy()
}

// asteroidShot scores a shot asteroid, appends its fragments and bursts it.
func (w *World) asteroidShot(a *Asteroid, fragments []*Asteroid) []*Asteroid {
	edge := w.bounds.MinEdge()
	size, n := a.Children()
	for range n {
		fragments = append(fragments, NewAsteroidAt(size, a.Pos, edge, w.rng))
	}

	switch a.Size {
	case AsteroidSmall:
		w.score += w.cfg.Scoring.AsteroidSmall
		w.particles = AppendRadial(w.particles, w.rng, a.Pos, 10)
	case AsteroidMedium:
		w.score += w.cfg.Scoring.AsteroidMedium
		w.particles = AppendRadial(w.particles, w.rng, a.Pos, 20)
		w.particles = AppendDebris(w.particles, w.rng, a.Pos, 5)
	case AsteroidLarge:
		w.score += w.cfg.Scoring.AsteroidLarge
		w.particles = AppendRadial(w.particles, w.rng, a.Pos, 30)
		w.particles = AppendDebris(w.particles, w.rng, a.Pos, 10)
	}

	a.Destroy()
	return fragments
}
