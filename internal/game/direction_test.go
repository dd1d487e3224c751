package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpposedPairs(t *testing.T) {
	tests := []struct {
		a, b Direction
		want bool
	}{
		{Up, Down, true},
		{Down, Up, true},
		{Left, Right, true},
		{Right, Left, true},
		{Up, Up, false},
		{Up, Left, false},
		{Right, Down, false},
		{None, Up, false},
		{None, None, false},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Opposed(tt.a, tt.b))
		})
	}
}

func TestCanTurnRejectsNone(t *testing.T) {
	assert.False(t, Up.CanTurn(None))
	assert.False(t, None.CanTurn(None))
	assert.True(t, None.CanTurn(Left))
	assert.True(t, Left.CanTurn(Left))
}

func TestDeltaAndAdd(t *testing.T) {
	c := Cell{X: 3, Y: 3}
	assert.Equal(t, Cell{X: 3, Y: 2}, c.Add(Up))
	assert.Equal(t, Cell{X: 3, Y: 4}, c.Add(Down))
	assert.Equal(t, Cell{X: 2, Y: 3}, c.Add(Left))
	assert.Equal(t, Cell{X: 4, Y: 3}, c.Add(Right))
	assert.Equal(t, c, c.Add(None))
}
