package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearVecReusesBackingArrayAcrossClear(t *testing.T) {
	var v ClearVec[int]
	v.Push(1)
	v.Push(2)
	v.Push(3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, v.Items())

	capBefore := cap(v.Items())
	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, capBefore, cap(v.Items()))

	v.Push(9)
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, 9, v.At(0))
}

func TestImageCacheCollectDropsOnlyUnvisitedBeyondFloor(t *testing.T) {
	c := NewImageCache(0)
	c.Insert(CachedImage{ID: "a", Data: []byte{1}})
	c.Insert(CachedImage{ID: "b", Data: []byte{2}})

	// "a" gets touched this frame, "b" doesn't.
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Collect()
	assert.Equal(t, 1, c.Len())
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestImageCacheRetentionFloorKeepsUnvisitedEntries(t *testing.T) {
	c := NewImageCache(2)
	c.Insert(CachedImage{ID: "a", Data: []byte{1}})
	c.Insert(CachedImage{ID: "b", Data: []byte{2}})

	// Nothing visited this frame; both entries fall within the retention
	// floor, so Collect must not evict either.
	c.Collect()
	assert.Equal(t, 2, c.Len())
}

func TestImageCacheCollectResetsVisitedMarkForNextFrame(t *testing.T) {
	c := NewImageCache(0)
	c.Insert(CachedImage{ID: "a", Data: []byte{1}})
	c.Get("a")
	c.Collect()
	assert.Equal(t, 1, c.Len())

	// A second Collect with no intervening Get should now evict "a" since
	// its visited mark was cleared by the first Collect.
	c.Collect()
	assert.Equal(t, 0, c.Len())
}
