package main

import (
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/nictuku/ooosplits/scene"
)

// ebitenAllocator is the desktop shell's scene.ResourceAllocator: an ebiten
// backend for the renderer-agnostic scene graph. Paths and images are kept
// in handle-indexed tables so the scene graph can pass
// around lightweight opaque handles while this type holds the real pixels.
type ebitenAllocator struct {
	mu     sync.Mutex
	nextID uint64
	paths  map[uint64]*vector.Path
	images map[uint64]*ebiten.Image
}

func newEbitenAllocator() *ebitenAllocator {
	return &ebitenAllocator{
		paths:  make(map[uint64]*vector.Path),
		images: make(map[uint64]*ebiten.Image),
	}
}

func (a *ebitenAllocator) allocID() uint64 {
	return atomic.AddUint64(&a.nextID, 1)
}

type ebitenPathBuilder struct {
	alloc *ebitenAllocator
	path  vector.Path
}

func (b *ebitenPathBuilder) MoveTo(x, y float64) { b.path.MoveTo(float32(x), float32(y)) }
func (b *ebitenPathBuilder) LineTo(x, y float64) { b.path.LineTo(float32(x), float32(y)) }
func (b *ebitenPathBuilder) QuadTo(cx, cy, x, y float64) {
	b.path.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
}
func (b *ebitenPathBuilder) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.path.CubicTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
}
func (b *ebitenPathBuilder) Close() { b.path.Close() }

func (b *ebitenPathBuilder) Finish() scene.Path {
	id := b.alloc.allocID()
	p := b.path
	b.alloc.mu.Lock()
	b.alloc.paths[id] = &p
	b.alloc.mu.Unlock()
	return scene.NewPath(id)
}

// PathBuilder returns a fresh accumulator backed by a. The scene builder
// calls this once per path and discards the builder after Finish.
func (a *ebitenAllocator) PathBuilder() scene.PathBuilder {
	return &ebitenPathBuilder{alloc: a}
}

func (a *ebitenAllocator) CreateImage(width, height int, rgba8 []byte) scene.Image {
	src := &image.RGBA{
		Pix:    rgba8,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	img := ebiten.NewImageFromImage(src)
	id := a.allocID()
	a.mu.Lock()
	a.images[id] = img
	a.mu.Unlock()
	return scene.NewImage(id)
}

func (a *ebitenAllocator) pathFor(h scene.Path) (*vector.Path, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.paths[h.ID]
	return p, ok
}

func (a *ebitenAllocator) imageFor(h scene.Image) (*ebiten.Image, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	img, ok := a.images[h.ID]
	return img, ok
}

// whiteImage is a single opaque white pixel, the conventional "untextured"
// source ebiten's vector-fill recipe draws triangles against: vertex
// colors multiply against it, so filled paths come out as flat (or
// gradient-averaged) color with no texture sampling involved.
var whiteImage = newWhiteImage()

func newWhiteImage() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// drawLayer paints every entity of a layer onto screen, in order, the
// bottom layer first so the top layer's timer digits sit above it.
func drawLayer(screen *ebiten.Image, alloc *ebitenAllocator, layer scene.Layer) {
	for _, e := range layer {
		switch e.Kind {
		case scene.EntityFillPath:
			fillPath(screen, alloc, e)
		case scene.EntityStrokePath:
			strokePath(screen, alloc, e)
		case scene.EntityImage:
			drawImage(screen, alloc, e)
		case scene.EntityText:
			drawText(screen, e)
		}
	}
}

func fillPath(screen *ebiten.Image, alloc *ebitenAllocator, e scene.Entity) {
	p, ok := alloc.pathFor(e.Path)
	if !ok {
		return
	}
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	applyShader(vs, e.Shader)
	screen.DrawTriangles(vs, is, whiteImage, nil)
}

func strokePath(screen *ebiten.Image, alloc *ebitenAllocator, e scene.Entity) {
	p, ok := alloc.pathFor(e.Path)
	if !ok {
		return
	}
	op := &vector.StrokeOptions{Width: float32(e.StrokeThickness)}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	setVertexColor(vs, e.StrokeColor)
	screen.DrawTriangles(vs, is, whiteImage, nil)
}

func applyShader(vs []ebiten.Vertex, sh scene.Shader) {
	c := sh.Top
	if sh.Kind != scene.ShaderSolid {
		// Vertical/horizontal gradients interpolate by vertex position; a
		// flat average keeps this demo shell simple while still
		// distinguishing gradient components from solid ones visually.
		c = averageColor(sh.Top, sh.Bottom)
	}
	setVertexColor(vs, c)
}

func setVertexColor(vs []ebiten.Vertex, c color.RGBA) {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255
	a := float32(c.A) / 255
	for i := range vs {
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
}

func averageColor(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: uint8((int(a.A) + int(b.A)) / 2),
	}
}

func drawImage(screen *ebiten.Image, alloc *ebitenAllocator, e scene.Entity) {
	img, ok := alloc.imageFor(e.Image)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(e.Transform.ScaleX, e.Transform.ScaleY)
	op.GeoM.Translate(e.Transform.X, e.Transform.Y)
	screen.DrawImage(img, op)
}

func drawText(screen *ebiten.Image, e scene.Entity) {
	scale := int(e.FontSize / 13)
	if scale < 1 {
		scale = 1
	}
	face := scaledFace(scale)
	x := int(e.Transform.X)
	y := int(e.Transform.Y)
	text.Draw(screen, e.Text, face, x, y, e.TextColor)
}

var (
	scaledFaceCache = map[int]*basicfont.Face{1: basicfont.Face7x13}
	scaledFaceMu    sync.Mutex
)

// scaledFace rebuilds basicfont.Face7x13's glyph mask at an integer scale
// via nearest-neighbor upscaling, for the big timer digits. Cached per
// scale factor since building the mask walks every pixel of the source
// glyph sheet.
func scaledFace(scale int) *basicfont.Face {
	scaledFaceMu.Lock()
	defer scaledFaceMu.Unlock()
	if f, ok := scaledFaceCache[scale]; ok {
		return f
	}

	src := basicfont.Face7x13
	bounds := src.Mask.Bounds()
	mask := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := src.Mask.At(x, y).RGBA(); a > 0 {
				for sy := 0; sy < scale; sy++ {
					for sx := 0; sx < scale; sx++ {
						mask.Set((x-bounds.Min.X)*scale+sx, (y-bounds.Min.Y)*scale+sy, color.White)
					}
				}
			}
		}
	}

	f := &basicfont.Face{
		Advance: src.Advance * scale,
		Width:   src.Width * scale,
		Height:  src.Height * scale,
		Ascent:  src.Ascent * scale,
		Descent: src.Descent * scale,
		Left:    src.Left * scale,
		Mask:    mask,
		Ranges:  src.Ranges,
	}
	scaledFaceCache[scale] = f
	return f
}
