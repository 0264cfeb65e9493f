package rules

import "goban-local/types"

// reconcile re-derives the forbidden and ko markers of every point that is,
// or was, forbidden for some color.
//
// A marked point whose own placement would be captured while the opponent's
// recapture there would also capture something is a ko shape. The first time
// the shape is seen the ban is lifted and the opponent stone is armed as
// pending; when a pending point is captured into the shape again it becomes
// the ko point and the ban holds for one move. Plain suicide points keep (or
// regain) their mark; everything else lapses.
func (b *Board) reconcile() {
	for i := range b.points {
		p := &b.points[i]
		color := p.forbidden
		if color == types.Empty {
			color = p.wasForbidden
		}
		if color == types.Empty {
			continue
		}
		opposite := color.Opposite()

		own := b.captureGroup(i, color, nil, nil)
		var counter []int
		for _, n := range b.adj[i] {
			if b.points[n].stone != opposite {
				continue
			}
			seed := append(append(make([]int, 0, len(counter)+1), counter...), i)
			counter = append(counter, b.captureGroup(n, opposite, seed, nil)...)
		}

		switch {
		case len(own) == 0 || len(counter) > 0:
			if len(own) != 1 || len(counter) != 2 {
				p.forbidden = types.Empty
				continue
			}
			if p.pendingKo {
				b.ko = i
				p.pendingKo = false
				p.forbidden = color
				p.wasForbidden = color
				continue
			}
			if b.ko == i {
				b.ko = -1
			}
			p.forbidden = types.Empty
			// counter is [i, captured stone]
			b.points[counter[1]].pendingKo = true
		case p.wasForbidden != types.Empty && p.forbidden == types.Empty:
			p.forbidden = color
		}
	}
}
