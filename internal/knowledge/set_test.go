package knowledge

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestSetClone(t *testing.T) {
	s := NewSet(Cell{0, 0}, Cell{0, 1})
	clone := s.Clone()
	clone.Add(Cell{1, 1})
	clone.Remove(Cell{0, 0})

	assert.True(t, s.Has(Cell{0, 0}))
	assert.False(t, s.Has(Cell{1, 1}))
	assert.Equal(t, 2, s.Len())
}

func TestSetEqual(t *testing.T) {
	assert.True(t, NewSet().Equal(NewSet()))
	assert.True(t, NewSet(Cell{1, 2}, Cell{3, 4}).Equal(NewSet(Cell{3, 4}, Cell{1, 2})))
	assert.False(t, NewSet(Cell{1, 2}).Equal(NewSet(Cell{2, 1})))
	assert.False(t, NewSet(Cell{1, 2}).Equal(NewSet(Cell{1, 2}, Cell{2, 1})))
}

func TestSetSubsetOf(t *testing.T) {
	var (
		small = NewSet(Cell{0, 0}, Cell{0, 1})
		big   = NewSet(Cell{0, 0}, Cell{0, 1}, Cell{1, 1})
	)
	assert.True(t, small.SubsetOf(big))
	assert.True(t, small.SubsetOf(small))
	assert.True(t, NewSet().SubsetOf(small))
	assert.False(t, big.SubsetOf(small))
}

func TestSetDiff(t *testing.T) {
	var (
		small = NewSet(Cell{0, 0}, Cell{0, 1})
		big   = NewSet(Cell{0, 0}, Cell{0, 1}, Cell{1, 1})
	)
	assert.True(t, big.Diff(small).Equal(NewSet(Cell{1, 1})))
	assert.True(t, small.Diff(big).Equal(NewSet()))
}

func TestSetCellsSorted(t *testing.T) {
	s := NewSet(Cell{2, 0}, Cell{0, 2}, Cell{0, 1}, Cell{1, 1})
	assert.Equal(t,
		[]Cell{{0, 1}, {0, 2}, {1, 1}, {2, 0}},
		s.Cells(),
	)
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "{}", NewSet().String())
	assert.Equal(t, "{(0, 1), (1, 0)}", NewSet(Cell{1, 0}, Cell{0, 1}).String())
}
