package rules

import "goban-local/types"

// marks is a visited set over board indices.
type marks []bool

func newMarks(area int, from ...[]int) marks {
	m := make(marks, area)
	for _, list := range from {
		for _, i := range list {
			m[i] = true
		}
	}
	return m
}

// captureGroup explores the color chain rooted at seed, treating seed itself
// as a color stone whether or not one is there. It returns nil as soon as the
// chain touches an empty point that is neither in checked nor in ignored.
// Otherwise it returns checked followed by every chain member in visit order.
//
// A member reached by two branches of the search is listed once per visit, so
// the result may contain duplicates; callers that count stones must dedupe.
// The ko shape test in reconcile relies on this exact length and order.
func (b *Board) captureGroup(seed int, color types.Color, checked, ignored []int) []int {
	if color == types.Empty {
		return nil
	}

	type frame struct {
		allies []int
		next   int
	}

	acc := append(make([]int, 0, len(checked)+4), checked...)
	inAcc := newMarks(len(b.points), checked)
	skip := newMarks(len(b.points), ignored)
	var stack []frame

	visit := func(i int) bool {
		var allies []int
		for _, n := range b.adj[i] {
			if inAcc[n] || skip[n] {
				continue
			}
			switch b.points[n].stone {
			case types.Empty:
				return false
			case color:
				allies = append(allies, n)
			}
		}
		acc = append(acc, i)
		inAcc[i] = true
		stack = append(stack, frame{allies: allies})
		return true
	}

	if !visit(seed) {
		return nil
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.allies) {
			stack = stack[:len(stack)-1]
			continue
		}
		ally := top.allies[top.next]
		top.next++
		if !visit(ally) {
			return nil
		}
	}
	return acc
}

// distinct returns the indices of list without repeats, keeping first-seen order.
func distinct(list []int) []int {
	seen := make(map[int]bool, len(list))
	result := make([]int, 0, len(list))
	for _, i := range list {
		if !seen[i] {
			seen[i] = true
			result = append(result, i)
		}
	}
	return result
}

func contains(list []int, i int) bool {
	for _, v := range list {
		if v == i {
			return true
		}
	}
	return false
}
