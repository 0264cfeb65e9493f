package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"goban-local/types"
)

func TestCheckForbiddenNoLiberties(t *testing.T) {
	b := fixture(t, 9, []xy{{1, 0}, {0, 1}}, nil)
	b.playing = types.White

	i, ok := b.checkForbidden(at(b, 0, 0), types.Empty, types.White, nil)
	assert.True(t, ok)
	assert.Equal(t, at(b, 0, 0), i)
}

func TestCheckForbiddenOpenPoint(t *testing.T) {
	b := fixture(t, 9, []xy{{3, 4}}, nil)
	b.playing = types.White

	_, ok := b.checkForbidden(at(b, 4, 4), types.Empty, types.White, nil)
	assert.False(t, ok)
}

func TestCheckForbiddenLastLiberty(t *testing.T) {
	b := fixture(t, 3, []xy{{0, 1}, {1, 1}, {2, 0}}, []xy{{0, 0}})
	b.playing = types.White

	// (1,0) is the only liberty of the white stone, filling it is suicide.
	i, ok := b.checkForbidden(at(b, 0, 0), types.White, types.White, nil)
	assert.True(t, ok)
	assert.Equal(t, at(b, 1, 0), i)
}

func TestCheckForbiddenThroughChain(t *testing.T) {
	b := fixture(t, 4,
		[]xy{{0, 1}, {1, 1}, {2, 1}, {3, 0}},
		[]xy{{0, 0}, {1, 0}},
	)
	b.playing = types.White

	// (0,0) has no liberty itself; the chain's last liberty is (2,0).
	i, ok := b.checkForbidden(at(b, 0, 0), types.White, types.White, nil)
	assert.True(t, ok)
	assert.Equal(t, at(b, 2, 0), i)
}

func TestCheckForbiddenChainWithRoom(t *testing.T) {
	b := fixture(t, 4,
		[]xy{{0, 1}, {1, 1}},
		[]xy{{0, 0}, {1, 0}},
	)
	b.playing = types.White

	_, ok := b.checkForbidden(at(b, 0, 0), types.White, types.White, nil)
	assert.False(t, ok)
}
