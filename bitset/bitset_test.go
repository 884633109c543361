package bitset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSet(t *testing.T) {
	t.Run("Set And IsSet Across Words", func(t *testing.T) {
		bs := NewBitSet(264)
		require.Len(t, bs, 5)

		for _, i := range []uint64{0, 63, 64, 127, 263} {
			bs.Set(i)
		}
		for _, i := range []uint64{0, 63, 64, 127, 263} {
			assert.True(t, bs.IsSet(i), "bit %d", i)
		}
		assert.False(t, bs.IsSet(1))
		assert.False(t, bs.IsSet(128))
		assert.Equal(t, 5, bs.Count())
	})

	t.Run("Out Of Range Panics", func(t *testing.T) {
		bs := NewBitSet(64)
		assert.Panics(t, func() { bs.IsSet(64) })
	})

	t.Run("Empty", func(t *testing.T) {
		bs := NewBitSet(0)
		assert.Len(t, bs, 0)
		assert.Equal(t, 0, bs.Count())
	})
}
