// Package render defines the narrow contracts the scene graph consumes: a
// render interface the Render pass issues draw calls through, a system
// interface for time, logging and translation, and an opaque font engine.
// Backends implement these; the core never queries window or GPU state.
package render

import (
	"image/color"

	"github.com/AYColumbia/quill/geom"
)

// TextureHandle identifies a texture owned by the render backend. Zero means
// no texture (untextured geometry).
type TextureHandle uint64

// Vertex is one corner of submitted geometry.
type Vertex struct {
	Position geom.Vec2
	Color    color.RGBA
	TexCoord geom.Vec2
}

// Interface receives draw calls during the Render pass.
type Interface interface {
	// RenderGeometry draws an indexed triangle list at the given translation.
	RenderGeometry(vertices []Vertex, indices []int, texture TextureHandle, translation geom.Vec2)

	// EnableScissorRegion toggles scissoring of subsequent geometry.
	EnableScissorRegion(enable bool)
	// SetScissorRegion sets the scissor rectangle in viewport coordinates.
	SetScissorRegion(x, y, width, height int)

	// LoadTexture loads a texture from an application-defined source name.
	// It returns the handle and texel dimensions, or ok == false.
	LoadTexture(source string) (handle TextureHandle, dimensions geom.Vec2, ok bool)
	// GenerateTexture creates a texture from raw RGBA bytes.
	GenerateTexture(source []byte, dimensions geom.Vec2) (TextureHandle, bool)
	// ReleaseTexture frees a texture when its reference count drops to zero.
	ReleaseTexture(texture TextureHandle)

	// SetTransform sets the transform applied to subsequent geometry. A nil
	// transform resets to the identity.
	SetTransform(transform *geom.Mat4)
}

// LogLevel classifies a log message.
type LogLevel int

const (
	LogError LogLevel = iota
	LogWarning
	LogInfo
	LogDebug
)

// SystemInterface supplies the ambient services of the host application.
type SystemInterface interface {
	// ElapsedTime returns seconds since application start; it drives
	// animation advancement.
	ElapsedTime() float64
	// LogMessage reports a message. The return value is false to request
	// that the caller abort (only meaningful for LogError in debug shells).
	LogMessage(level LogLevel, message string) bool
	// TranslateString translates input, returning the result and the number
	// of substitutions made.
	TranslateString(input string) (string, int)
}

// FontFaceHandle is an opaque, shared handle to a shaped font face. Elements
// reference it for metrics; shaping internals stay behind the interface.
type FontFaceHandle interface {
	LineHeight() float64
	Baseline() float64
	MeasureString(s string) float64
}

// FontEngine resolves font properties to face handles. Handles are shared
// across elements and reference-counted by the engine, never owned by a
// single element.
type FontEngine interface {
	FaceHandle(family, weight, style string, size float64) (FontFaceHandle, bool)
	ReleaseFaceHandle(handle FontFaceHandle)
}
