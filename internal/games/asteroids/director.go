package asteroids

// enterAttract fills the field with a random mix of asteroids and one
// large saucer. Collisions stay off until a game starts.
func (w *World) enterAttract() {
	w.asteroids = w.asteroids[:0]
	for range w.cfg.World.AttractAsteroids {
		size := AsteroidSize(w.rng.Intn(3))
		w.asteroids = append(w.asteroids, NewAsteroid(size, w.bounds, w.rng))
	}

	w.saucers = append(w.saucers[:0], NewSaucer(SaucerLarge, w.bounds, w.now, w.rng, w.cfg.Saucers))
	w.state = StateAttract
	w.logger.Debug("attract mode")
}

// start begins a new session.
func (w *World) start() {
	w.lives = w.cfg.Scoring.Lives
	w.score = 0
	w.ship.Reset(w.bounds)
	w.playerBullets = w.playerBullets[:0]
	w.enemyBullets = w.enemyBullets[:0]

	w.wave = 0
	w.nextWave()

	w.state = StatePlaying
	w.logger.Info("game started", "lives", w.lives)
}

// nextWave replaces the field with wave+base large asteroids.
func (w *World) nextWave() {
	w.wave++

	w.asteroids = w.asteroids[:0]
	for range w.wave + w.cfg.World.WaveBaseAsteroids {
		w.asteroids = append(w.asteroids, NewAsteroid(AsteroidLarge, w.bounds, w.rng))
	}

	w.saucers = w.saucers[:0]
	w.waveSpawnAt = w.now + w.cfg.World.WaveSpawnInterval
	w.logger.Info("wave started", "wave", w.wave, "asteroids", len(w.asteroids))
}

// bookkeeping advances the wave once the field is empty, and otherwise
// rolls for a saucer every spawn interval. It runs in every state.
func (w *World) bookkeeping() {
	if len(w.asteroids)+len(w.saucers) == 0 {
		w.nextWave()
		return
	}

	if !(w.waveSpawnAt < w.now) {
		return
	}
	w.waveSpawnAt = w.now + w.cfg.World.WaveSpawnInterval

	chance := w.difficulty.SaucerChance(w.cfg.Saucers.SpawnChance, w.score, w.wave)
	if !(w.rng.Float64() > 1-chance) {
		return
	}

	size := SaucerLarge
	if w.score >= w.cfg.Saucers.SmallScoreThreshold {
		size = SaucerSmall
	}
	w.saucers = append(w.saucers, NewSaucer(size, w.bounds, w.now, w.rng, w.cfg.Saucers))
	w.logger.Debug("saucer spawned", "size", size, "wave", w.wave)
}
