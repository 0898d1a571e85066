package scene

import (
	"hash/maphash"
	"image/color"

	"github.com/nictuku/ooosplits/layout"
)

// componentHeight is the nominal design-unit height of one row of the
// given component kind, used to lay components out top-to-bottom. The
// stack is not scaled to a target surface height.
func componentHeight(kind layout.ComponentKind, rows int) float64 {
	switch kind {
	case layout.KindTimer:
		return 60
	case layout.KindTitle:
		return 50
	case layout.KindGraph:
		return 80
	case layout.KindDetailedTimer:
		return 50
	case layout.KindSeparator:
		return 2
	case layout.KindBlankSpace:
		return 10
	case layout.KindSplits:
		if rows <= 0 {
			rows = 1
		}
		return float64(rows) * 24
	default:
		return 24
	}
}

// Builder builds a Scene from a layout's current component states against
// a ResourceAllocator. Each Scene carries its bottom layer's hash; the
// Builder stores no hash itself, so callers compare it with the previous
// frame's to skip redrawing an unchanged bottom layer. It reuses its
// internal slices across calls the way layout.ClearVec keeps its backing
// array.
type Builder struct {
	Alloc ResourceAllocator
	// Width is the target surface width in design units; the background
	// spans it and text columns sit at fixed fractions of it. Components
	// are not scaled to it.
	Width float64

	bottom Layer
	top    Layer
}

// NewBuilder creates a Builder targeting the given surface width.
func NewBuilder(alloc ResourceAllocator, width float64) *Builder {
	return &Builder{Alloc: alloc, Width: width}
}

// Build lays out l's current component states top-to-bottom and returns
// the resulting Scene.
func (b *Builder) Build(l *layout.Layout) Scene {
	b.bottom = b.bottom[:0]
	b.top = b.top[:0]

	y := 0.0
	states := l.States()
	for i := range l.Components {
		st := &states[i]
		h := componentHeight(st.Kind, st.Splits.Rows.Len())
		b.emit(st, l.General, y, h)
		y += h
	}

	bgShader := backgroundShader(l.General.Background)
	rect := b.Alloc.PathBuilder()
	rect.MoveTo(0, 0)
	rect.LineTo(b.Width, 0)
	rect.LineTo(b.Width, y)
	rect.LineTo(0, y)
	rect.Close()
	full := append(Layer{FillPathEntity(rect.Finish(), bgShader)}, b.bottom...)

	return Scene{
		Bottom:     append(Layer(nil), full...),
		Top:        append(Layer(nil), b.top...),
		BottomHash: hashLayer(full, l.General.Background),
	}
}

func backgroundShader(bg layout.Background) Shader {
	switch bg.Kind {
	case layout.BackgroundVerticalGradient, layout.BackgroundHorizontalGradient:
		kind := ShaderVerticalGradient
		if bg.Kind == layout.BackgroundHorizontalGradient {
			kind = ShaderHorizontalGradient
		}
		return Shader{Kind: kind, Top: bg.Top, Bottom: bg.Bottom}
	default:
		return SolidShader(bg.Top)
	}
}

// emit appends the entities for one component's state into the bottom or
// top layer: the Timer digits, the Detailed Timer's main clock, the current
// split row and the graph points go on top; everything else goes on bottom,
// including key-value values and the Detailed Timer's segment clock.
func (b *Builder) emit(st *layout.ComponentState, general layout.GeneralSettings, y, h float64) {
	switch st.Kind {
	case layout.KindTimer:
		b.top = append(b.top, TextEntity(st.Timer.Time+st.Timer.Fraction, "timer", h*0.8, st.Timer.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: 4, Y: y}))
	case layout.KindTitle:
		b.bottom = append(b.bottom, TextEntity(st.Title.GameName, "regular", h*0.4, general.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: 4, Y: y}))
		b.bottom = append(b.bottom, TextEntity(st.Title.CategoryName, "regular", h*0.3, general.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: 4, Y: y + h*0.4}))
	case layout.KindSplits:
		rowH := h / maxInt(st.Splits.Rows.Len(), 1)
		for i, row := range st.Splits.Rows.Items() {
			ry := y + float64(i)*rowH
			layer := &b.bottom
			if row.IsCurrent {
				layer = &b.top
			}
			*layer = append(*layer, TextEntity(row.Name, "regular", rowH*0.6, general.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: 4, Y: ry}))
			*layer = append(*layer, TextEntity(row.SplitTime, "regular", rowH*0.6, general.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: b.Width * 0.6, Y: ry}))
			if row.Delta != "" {
				*layer = append(*layer, TextEntity(row.Delta, "regular", rowH*0.5, row.DeltaColor, Transform{ScaleX: 1, ScaleY: 1, X: b.Width * 0.8, Y: ry}))
			}
		}
	case layout.KindGraph:
		for _, p := range st.Graph.Points.Items() {
			path := BuildCircle(b.Alloc, p.X*20, y+h/2+p.Y, 2)
			b.top = append(b.top, FillPathEntity(path, SolidShader(general.TextColor)))
		}
	case layout.KindDetailedTimer:
		b.top = append(b.top, TextEntity(st.DetailedTimer.MainTime, "timer", h*0.6, general.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: 4, Y: y}))
		b.bottom = append(b.bottom, TextEntity(st.DetailedTimer.SegmentTime, "regular", h*0.4, general.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: 4, Y: y + h*0.6}))
	case layout.KindKeyValue:
		b.bottom = append(b.bottom, TextEntity(st.KeyValue.Key, "regular", h*0.5, general.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: 4, Y: y}))
		b.bottom = append(b.bottom, TextEntity(st.KeyValue.Value, "regular", h*0.5, st.KeyValue.ValueColor, Transform{ScaleX: 1, ScaleY: 1, X: b.Width * 0.7, Y: y}))
	case layout.KindText:
		b.bottom = append(b.bottom, TextEntity(st.Text.Line1, "regular", h*0.5, general.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: 4, Y: y}))
		if st.Text.Line2 != "" {
			b.bottom = append(b.bottom, TextEntity(st.Text.Line2, "regular", h*0.4, general.TextColor, Transform{ScaleX: 1, ScaleY: 1, X: 4, Y: y + h*0.5}))
		}
	case layout.KindSeparator:
		path := b.Alloc.PathBuilder()
		path.MoveTo(0, y)
		path.LineTo(b.Width, y)
		b.bottom = append(b.bottom, StrokePathEntity(path.Finish(), general.SeparatorColor, 1))
	case layout.KindBlankSpace:
		// reserves vertical space only; no entity.
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var hashSeed = maphash.MakeSeed()

// hashLayer hashes a layer's ordered entity stream plus the background
// shader, so the caller can detect an unchanged bottom layer and skip
// redrawing it.
func hashLayer(l Layer, bg layout.Background) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	writeColor := func(c color.RGBA) {
		h.Write([]byte{c.R, c.G, c.B, c.A})
	}
	writeColor(bg.Top)
	writeColor(bg.Bottom)
	h.WriteByte(byte(bg.Kind))
	for _, e := range l {
		h.WriteByte(byte(e.Kind))
		h.WriteString(e.Text)
		h.WriteString(e.FontID)
		writeColor(e.TextColor)
		writeColor(e.Shader.Top)
		writeColor(e.Shader.Bottom)
		h.Write(uint64Bytes(e.Path.ID))
		h.Write(uint64Bytes(e.Image.ID))
	}
	return h.Sum64()
}

func uint64Bytes(v uint64) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24), byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56)}
}
