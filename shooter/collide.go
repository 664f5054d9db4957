package shooter

// resolveCollisions runs the two collision phases. Player bullets are
// resolved against enemies first so that kills and score land before the
// player's own hazards are checked.
func resolveCollisions(w *World) {
	for _, b := range w.Bullets {
		if b.Enemy || b.Removed() {
			continue
		}
		for _, e := range w.Enemies {
			if e.Removed() || !b.Rect().Intersects(e.Rect()) {
				continue
			}
			hitEnemy(w, b, e)
			// A bullet is spent on the first enemy it touches.
			break
		}
	}

	p := w.Player
	if p.Invulnerable > 0 {
		return
	}

	bulletBox := p.Rect().Inset(bulletHitInset)
	for _, b := range w.Bullets {
		if !b.Enemy || b.Removed() || !b.Rect().Intersects(bulletBox) {
			continue
		}
		b.MarkForDeletion()
		damagePlayer(w)
	}

	contactBox := p.Rect().Inset(contactHitInset)
	for _, e := range w.Enemies {
		if e.Removed() || !e.Rect().Intersects(contactBox) {
			continue
		}
		e.MarkForDeletion()
		damagePlayer(w)
	}
}

func hitEnemy(w *World, b *Bullet, e *Enemy) {
	b.MarkForDeletion()
	e.HP--
	w.spawnBurst(b.Pos, hitBurst)
	w.emit(Event{Kind: EventHit, Enemy: e.Kind, X: b.Pos.X, Y: b.Pos.Y})

	if e.HP > 0 {
		return
	}
	e.MarkForDeletion()
	w.Score += e.Kind.Score()
	w.addKill(e.Kind)
	c := e.Rect().Center()
	w.spawnBurst(c, explosionBurst)
	w.emit(Event{Kind: EventKill, Enemy: e.Kind, X: c.X, Y: c.Y})
}

// damagePlayer applies one point of damage. Hits in the same tick stack
// until the match is over; nothing lands after that.
func damagePlayer(w *World) {
	if w.GameOver {
		return
	}
	p := w.Player
	p.HP--
	p.Invulnerable = invulnerableFrames
	c := p.Rect().Center()
	w.spawnBurst(c, damageBurst)
	w.emit(Event{Kind: EventDamage, X: c.X, Y: c.Y})

	if p.HP <= 0 {
		w.GameOver = true
		w.emit(Event{Kind: EventGameOver, X: c.X, Y: c.Y})
	}
}
