package scene

import "image/color"

// ShaderKind selects how a fill-path entity is painted.
type ShaderKind int

const (
	ShaderSolid ShaderKind = iota
	ShaderVerticalGradient
	ShaderHorizontalGradient
)

// Shader describes a fill's paint, either a flat color or a two-stop
// gradient along one axis.
type Shader struct {
	Kind   ShaderKind
	Top    color.RGBA
	Bottom color.RGBA
}

// SolidShader builds a flat-color Shader.
func SolidShader(c color.RGBA) Shader { return Shader{Kind: ShaderSolid, Top: c, Bottom: c} }

// Transform is a 2D scale and translation applied to an image or text
// entity before placement in the scene.
type Transform struct {
	ScaleX, ScaleY float64
	X, Y           float64
}

// Identity is the no-op Transform.
var Identity = Transform{ScaleX: 1, ScaleY: 1}

// EntityKind tags which variant of Entity is populated; Entity is a closed
// tagged union (struct-with-Kind-tag), not an interface hierarchy.
type EntityKind int

const (
	EntityFillPath EntityKind = iota
	EntityStrokePath
	EntityImage
	EntityText
)

// Entity is one drawable primitive in a Layer.
type Entity struct {
	Kind EntityKind

	// FillPath / StrokePath
	Path Path
	// FillPath only.
	Shader Shader
	// StrokePath only.
	StrokeColor     color.RGBA
	StrokeThickness float64

	// Image
	Image Image

	// Text
	FontID    string
	FontSize  float64
	TextColor color.RGBA
	Text      string

	// Image / Text
	Transform Transform
}

// FillPathEntity builds an Entity filling path with shader.
func FillPathEntity(path Path, shader Shader) Entity {
	return Entity{Kind: EntityFillPath, Path: path, Shader: shader}
}

// StrokePathEntity builds an Entity stroking path at the given thickness
// and color.
func StrokePathEntity(path Path, c color.RGBA, thickness float64) Entity {
	return Entity{Kind: EntityStrokePath, Path: path, StrokeColor: c, StrokeThickness: thickness}
}

// ImageEntity builds an Entity placing img under transform.
func ImageEntity(img Image, t Transform) Entity {
	return Entity{Kind: EntityImage, Image: img, Transform: t}
}

// TextEntity builds an Entity running text in font fontID at size, colored
// c, placed under transform.
func TextEntity(text, fontID string, size float64, c color.RGBA, t Transform) Entity {
	return Entity{Kind: EntityText, Text: text, FontID: fontID, FontSize: size, TextColor: c, Transform: t}
}

// Layer is an ordered sequence of Entities painted back to front.
type Layer []Entity

// Scene is the renderer-agnostic intermediate representation produced by
// the layout pipeline: a bottom layer (infrequently changing: split names,
// finished-split comparison times, icons) and a top layer (every-frame
// changing: timer digits, the progressing graph).
type Scene struct {
	Bottom Layer
	Top    Layer

	// BottomHash is the content hash of Bottom plus the background shader
	// as of the last Build call, letting the renderer skip redrawing
	// Bottom when it's unchanged from the previous frame.
	BottomHash uint64
}
