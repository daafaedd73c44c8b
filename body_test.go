package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxUpdatePosition(t *testing.T) {
	box := NewBox("a", Vector{10, 10, 0}, Vector{1, 1, 0})
	box.SetVelocity(Vector{2, -1, 0})

	for i := 0; i < 10; i++ {
		box.Update(0.1)
	}

	assert.InDelta(t, 12.0, box.Position().X, 1e-9)
	assert.InDelta(t, 9.0, box.Position().Y, 1e-9)
}

func TestBox_NegativeHalfExtents(t *testing.T) {
	box := NewBox("a", Vector{}, Vector{-2, 3, 0})
	assert.Equal(t, Vector{2, 3, 0}, box.HalfExtents())

	bb := box.BB()
	assert.Equal(t, Vector{-2, -3, 0}, bb.Min)
	assert.Equal(t, Vector{2, 3, 0}, bb.Max)
}

func TestNewBoxFromBB(t *testing.T) {
	box := NewBoxFromBB("a", NewBB(Vector{0, 0, 0}, Vector{2, 4, 0}))
	assert.Equal(t, Vector{1, 2, 0}, box.Position())
	assert.Equal(t, Vector{1, 2, 0}, box.HalfExtents())
}

func TestBB_Intersects(t *testing.T) {
	a := NewBB(Vector{0, 0, 0}, Vector{1, 1, 0})
	touching := NewBB(Vector{1, 0, 0}, Vector{2, 1, 0})
	apart := NewBB(Vector{1.5, 0, 0}, Vector{2, 1, 0})

	assert.True(t, a.Intersects(touching, 2))
	assert.False(t, a.Intersects(apart, 2))
	assert.True(t, a.Intersects(apart, 0))
}

func TestBB_Span(t *testing.T) {
	bb := NewBBForExtents(Vector{1, 2, 3}, Vector{1, 1, 1})
	min, max := bb.Span(AxisZ)
	assert.Equal(t, 2.0, min)
	assert.Equal(t, 4.0, max)
	assert.Equal(t, Vector{1, 2, 3}, bb.Center())
}
