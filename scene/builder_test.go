package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/ooosplits/layout"
	"github.com/nictuku/ooosplits/timer"
)

// fakePathBuilder ignores every path segment; actual geometry doesn't matter
// to the builder's layering/hash behavior under test.
type fakePathBuilder struct {
	alloc *fakeAllocator
}

func (b *fakePathBuilder) MoveTo(x, y float64)                          {}
func (b *fakePathBuilder) LineTo(x, y float64)                          {}
func (b *fakePathBuilder) QuadTo(cx, cy, x, y float64)                  {}
func (b *fakePathBuilder) CurveTo(x1, y1, x2, y2, x, y float64)         {}
func (b *fakePathBuilder) Close()                                      {}
func (b *fakePathBuilder) Finish() Path {
	b.alloc.nextPath++
	return NewPath(b.alloc.nextPath)
}

type fakeAllocator struct {
	nextPath  uint64
	nextImage uint64
}

func (a *fakeAllocator) PathBuilder() PathBuilder { return &fakePathBuilder{alloc: a} }

func (a *fakeAllocator) CreateImage(width, height int, rgba8 []byte) Image {
	a.nextImage++
	return NewImage(a.nextImage)
}

func buildTestLayout() *layout.Layout {
	return layout.NewLayout(
		layout.NewTextComponent("hello", "world"),
		layout.NewSeparatorComponent(),
		layout.NewBlankSpaceComponent(10),
	)
}

func TestBuildProducesBottomAndTopLayersInOrder(t *testing.T) {
	l := buildTestLayout()
	l.UpdateAll(timer.Snapshot{}, layout.NewImageCache(0))

	b := NewBuilder(&fakeAllocator{}, 300)
	sc := b.Build(l)

	// Background rect plus the two text lines and the separator stroke, all
	// infrequently-changing content, land on Bottom; nothing in this layout
	// is top-layer content.
	require.GreaterOrEqual(t, len(sc.Bottom), 4)
	assert.Equal(t, EntityFillPath, sc.Bottom[0].Kind)
	assert.Empty(t, sc.Top)
}

func TestBuildHashIsStableAcrossIdenticalFrames(t *testing.T) {
	l := buildTestLayout()
	cache := layout.NewImageCache(0)
	alloc := &fakeAllocator{}
	b := NewBuilder(alloc, 300)

	l.UpdateAll(timer.Snapshot{}, cache)
	first := b.Build(l)

	l.UpdateAll(timer.Snapshot{}, cache)
	second := b.Build(l)

	assert.Equal(t, first.BottomHash, second.BottomHash)
}

func TestBuildHashChangesWhenTextContentChanges(t *testing.T) {
	text := layout.NewTextComponent("hello", "world")
	l := layout.NewLayout(text, layout.NewSeparatorComponent())
	cache := layout.NewImageCache(0)
	alloc := &fakeAllocator{}
	b := NewBuilder(alloc, 300)

	l.UpdateAll(timer.Snapshot{}, cache)
	before := b.Build(l)

	text.Line1 = "goodbye"
	l.UpdateAll(timer.Snapshot{}, cache)
	after := b.Build(l)

	assert.NotEqual(t, before.BottomHash, after.BottomHash)
}

func TestBuildBottomLengthMatchesAcrossIdenticalFrames(t *testing.T) {
	l := buildTestLayout()
	cache := layout.NewImageCache(0)
	b := NewBuilder(&fakeAllocator{}, 300)

	l.UpdateAll(timer.Snapshot{}, cache)
	first := b.Build(l)
	l.UpdateAll(timer.Snapshot{}, cache)
	second := b.Build(l)

	// Both frames have matching content, and Build defensively copies its
	// internal accumulation slices out into the returned Scene so a later
	// Build doesn't mutate a previously returned one.
	assert.Equal(t, len(first.Bottom), len(second.Bottom))
}
