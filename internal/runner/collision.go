package runner

// Scan returns the first entity, in registry order, whose box intersects the
// player's. While the player is invulnerable nothing is tested at all.
func Scan(p *Player, reg *Registry, bounds BoundsProvider) (Entity, bool) {
	if p.IsInvulnerable() {
		return Entity{}, false
	}

	pb := p.Bounds()
	var (
		hit   Entity
		found bool
	)
	reg.Each(func(e Entity) bool {
		if pb.Intersects(bounds.Bounds(e)) {
			hit, found = e, true
			return false
		}
		return true
	})
	return hit, found
}
