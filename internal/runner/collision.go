package runner

// FirstCollision returns the index of the first obstacle whose rectangle
// overlaps the player, scanning in spawn order. Bounds are exact: touching
// edges do not collide.
func FirstCollision(p Player, obstacles []Obstacle) (int, bool) {
	pr := p.Rect()
	for i, o := range obstacles {
		if pr.Intersects(o.Rect()) {
			return i, true
		}
	}
	return -1, false
}
