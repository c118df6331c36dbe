package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlistPushAndLen(t *testing.T) {
	s := NewSlist(4)
	assert.Equal(t, 0, s.Len())
	s.Push(1)
	s.Push(2)
	assert.Equal(t, 2, s.Len())
}

func TestSlistResetEmpties(t *testing.T) {
	s := NewSlist(4)
	s.Push(1)
	s.Reset()
	assert.Equal(t, 0, s.Len())
}

func TestSlistContains(t *testing.T) {
	s := NewSlist(4)
	s.Push(3)
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
}

func TestSlistInsertUniqueRejectsDuplicates(t *testing.T) {
	s := NewSlist(4)
	assert.True(t, s.InsertUnique(1))
	assert.False(t, s.InsertUnique(1))
	assert.Equal(t, 1, s.Len())
}

func TestSlistForEachVisitsInOrder(t *testing.T) {
	s := NewSlist(4)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	var visited []Point
	s.ForEach(func(p Point) { visited = append(visited, p) })
	assert.Equal(t, []Point{1, 2, 3}, visited)
}
