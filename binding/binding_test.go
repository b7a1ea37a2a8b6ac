package binding

import (
	"testing"

	"github.com/polysolve/polysolve/rational"
	"github.com/stretchr/testify/assert"
)

func TestStore_LatestWinsWithoutReordering(t *testing.T) {
	var s Store
	s.Set("a", rational.NewInt(1))
	s.Set("b", rational.NewInt(2))
	s.Set("a", rational.NewInt(9))

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.True(t, v.Equal(rational.NewInt(9)))

	assert.Equal(t, []string{"a", "b"}, s.Names())
}

func TestStore_GetMissingIsNotOK(t *testing.T) {
	var s Store
	_, ok := s.Get("z")
	assert.False(t, ok)
}

func TestStore_SnapshotIsIndependentCopy(t *testing.T) {
	var s Store
	s.Set("a", rational.NewInt(1))
	snap := s.Snapshot()
	s.Set("a", rational.NewInt(2))

	assert.True(t, snap["a"].Equal(rational.NewInt(1)))
	v, _ := s.Get("a")
	assert.True(t, v.Equal(rational.NewInt(2)))
}
