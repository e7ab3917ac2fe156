package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigateWithinBounds(t *testing.T) {
	count := 10
	s := NewService(3, func() int { return count })

	s.Navigate(DirectionUp)
	assert.Equal(t, 0, s.Cursor())

	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	s.Navigate(DirectionDown)
	assert.Equal(t, 3, s.Cursor())
	assert.Equal(t, 1, s.ViewportOffset())

	s.Navigate(DirectionEnd)
	assert.Equal(t, 9, s.Cursor())
	assert.Equal(t, 7, s.ViewportOffset())

	s.Navigate(DirectionDown)
	assert.Equal(t, 9, s.Cursor())

	s.Navigate(DirectionHome)
	assert.Equal(t, State{Cursor: 0, ViewportOffset: 0, ViewportHeight: 3}, s.State())
}

func TestPaging(t *testing.T) {
	s := NewService(5, func() int { return 20 })

	s.Navigate(DirectionPageDown)
	assert.Equal(t, 4, s.Cursor())
	s.Navigate(DirectionPageDown)
	assert.Equal(t, 8, s.Cursor())
	assert.Equal(t, 4, s.ViewportOffset())

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 4, s.Cursor())
	assert.Equal(t, 0, s.ViewportOffset())

	s.Navigate(DirectionPageUp)
	assert.Equal(t, 0, s.Cursor())
}

func TestClampAfterListShrinks(t *testing.T) {
	count := 10
	s := NewService(4, func() int { return count })
	s.Navigate(DirectionEnd)
	assert.Equal(t, 9, s.Cursor())

	count = 2
	s.Clamp()
	assert.Equal(t, 1, s.Cursor())
	assert.Equal(t, 1, s.ViewportOffset())

	count = 0
	s.Clamp()
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 0, s.ViewportOffset())
}

func TestViewportHeight(t *testing.T) {
	s := NewService(0, nil)
	assert.Equal(t, 1, s.ViewportHeight())

	s.SetViewportHeight(6)
	assert.Equal(t, 6, s.ViewportHeight())
	s.Navigate(DirectionDown)
	assert.Equal(t, 0, s.Cursor())
}
