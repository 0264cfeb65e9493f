package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goban-local/types"
)

func TestReconcileReinstatesSuicideBan(t *testing.T) {
	b := fixture(t, 9, []xy{{1, 0}, {0, 1}}, nil)
	b.points[0].wasForbidden = types.White

	b.reconcile()
	assert.Equal(t, types.White, b.points[0].forbidden)

	b.reconcile()
	assert.Equal(t, types.White, b.points[0].forbidden)
	assert.Equal(t, types.White, b.points[0].wasForbidden)
}

func TestReconcileLiftsStaleBan(t *testing.T) {
	b := fixture(t, 9, []xy{{1, 0}}, nil)
	b.markForbidden(0, types.White)

	b.reconcile()
	assert.Equal(t, types.Empty, b.points[0].forbidden)
	assert.Equal(t, types.White, b.points[0].wasForbidden)
}

func koDiamond(t *testing.T) *Board {
	b := fixture(t, 9,
		[]xy{{4, 5}, {3, 4}, {4, 3}, {5, 4}},
		[]xy{{5, 5}, {6, 4}, {5, 3}},
	)
	b.markForbidden(at(b, 4, 4), types.White)
	return b
}

func TestReconcileArmsPendingKo(t *testing.T) {
	b := koDiamond(t)

	b.reconcile()

	assert.Equal(t, types.Empty, b.points[at(b, 4, 4)].forbidden)
	assert.True(t, b.points[at(b, 5, 4)].pendingKo)
	_, ok := b.KoPoint()
	assert.False(t, ok)
}

func TestReconcileSetsKo(t *testing.T) {
	b := koDiamond(t)
	b.points[at(b, 4, 4)].pendingKo = true
	b.ko = at(b, 0, 0)

	b.reconcile()

	p := b.points[at(b, 4, 4)]
	assert.Equal(t, types.White, p.forbidden)
	assert.False(t, p.pendingKo)

	ko, ok := b.KoPoint()
	assert.True(t, ok)
	assert.Equal(t, at(b, 4, 4), ko)

	koCount := 0
	for _, in := range b.Intersections() {
		if in.Ko {
			koCount++
		}
	}
	assert.Equal(t, 1, koCount)
}

func TestReconcileSkipsUnmarkedPoints(t *testing.T) {
	b := fixture(t, 9, []xy{{1, 0}, {0, 1}}, nil)

	b.reconcile()
	assert.Equal(t, types.Empty, b.points[0].forbidden)
}
