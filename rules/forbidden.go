package rules

import "goban-local/types"

// checkForbidden reports whether point i would be illegal for current to
// play. color is the stone on i (Empty when i is the candidate point itself);
// occupied points are explored as members of a chain that could be
// self-captured through a shared last liberty. The returned index is the
// point to mark forbidden, which is not always i.
func (b *Board) checkForbidden(i int, color, current types.Color, checked []int) (int, bool) {
	var empty, allies []int
	for _, n := range b.adj[i] {
		switch stone := b.points[n].stone; {
		case stone == types.Empty:
			empty = append(empty, n)
		case stone == b.playing && !contains(checked, n):
			allies = append(allies, n)
		}
	}

	if color == types.Empty {
		if len(empty) == 0 && len(allies) == 0 {
			return i, true
		}
		if len(b.captureGroup(i, current, nil, nil)) > 0 {
			return i, true
		}
		return -1, false
	}

	// A chain stone with a single liberty: filling it may take the chain's last breath.
	if len(empty) == 1 && len(b.captureGroup(empty[0], current, checked, nil)) > 0 {
		return empty[0], true
	}

	if len(empty) == 0 {
		seen := append(append(make([]int, 0, len(checked)+1), checked...), i)
		for _, ally := range allies {
			if f, ok := b.checkForbidden(ally, current, current, seen); ok {
				return f, true
			}
			seen = append(seen, ally)
		}
	}
	return -1, false
}
