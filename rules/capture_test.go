package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goban-local/types"
)

func TestCaptureGroupWithLiberty(t *testing.T) {
	b := fixture(t, 9, []xy{{0, 0}}, []xy{{0, 1}})

	assert.Nil(t, b.captureGroup(at(b, 0, 0), types.Black, nil, nil))
}

func TestCaptureGroupEmptyColor(t *testing.T) {
	b := fixture(t, 9, []xy{{1, 0}, {0, 1}}, nil)

	assert.Nil(t, b.captureGroup(at(b, 0, 0), types.Empty, nil, nil))
}

func TestCaptureGroupHypotheticalStone(t *testing.T) {
	b := fixture(t, 9, []xy{{1, 0}, {0, 1}}, nil)

	// The empty corner is judged as if white stood on it.
	assert.Equal(t, []int{at(b, 0, 0)}, b.captureGroup(at(b, 0, 0), types.White, nil, nil))
}

func TestCaptureGroupCheckedIsNotALiberty(t *testing.T) {
	b := fixture(t, 9, []xy{{1, 0}, {0, 1}}, []xy{{1, 1}, {2, 0}})

	got := b.captureGroup(at(b, 1, 0), types.Black, []int{at(b, 0, 0)}, nil)
	assert.Equal(t, []int{at(b, 0, 0), at(b, 1, 0)}, got)
}

func TestCaptureGroupIgnored(t *testing.T) {
	b := fixture(t, 9, []xy{{0, 0}}, []xy{{0, 1}})

	got := b.captureGroup(at(b, 0, 0), types.Black, nil, []int{at(b, 1, 0)})
	assert.Equal(t, []int{at(b, 0, 0)}, got)
}

func TestCaptureGroupRevisits(t *testing.T) {
	b := fixture(t, 3,
		[]xy{{2, 0}, {2, 1}, {0, 2}, {1, 2}},
		[]xy{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	)

	got := b.captureGroup(at(b, 0, 0), types.White, nil, nil)
	assert.Equal(t, []int{0, 3, 4, 1, 1}, got)
	assert.Equal(t, []int{0, 3, 4, 1}, distinct(got))
}

func TestCaptureGroupLongChain(t *testing.T) {
	// A snake filling a 19x19 board except one point.
	b := newBoard(t, 19)
	for i := range b.points {
		b.points[i].stone = types.Black
	}
	b.points[0].stone = types.Empty

	assert.Nil(t, b.captureGroup(360, types.Black, nil, nil))

	b.points[0].stone = types.Black
	got := b.captureGroup(360, types.Black, nil, nil)
	assert.Len(t, distinct(got), 361)
}
