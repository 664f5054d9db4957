package shooter

// cleanup drops every entity flagged during the tick and every particle
// that has burned out.
func cleanup(w *World) {
	w.Bullets = Compact(w.Bullets)
	w.Enemies = Compact(w.Enemies)
	w.Particles = Compact(w.Particles)
}
