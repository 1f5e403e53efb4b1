package render

import (
	"image/color"

	"github.com/AYColumbia/quill/geom"
)

// DisplayCommand is a single recorded painting operation.
type DisplayCommand interface {
	Replay(target Interface)
}

// GeometryCommand records a RenderGeometry call.
type GeometryCommand struct {
	Vertices    []Vertex
	Indices     []int
	Texture     TextureHandle
	Translation geom.Vec2
}

// Replay re-issues the call against target.
func (c *GeometryCommand) Replay(target Interface) {
	target.RenderGeometry(c.Vertices, c.Indices, c.Texture, c.Translation)
}

// ScissorCommand records a scissor enable/region pair.
type ScissorCommand struct {
	Enable              bool
	X, Y, Width, Height int
}

// Replay re-issues the call against target.
func (c *ScissorCommand) Replay(target Interface) {
	target.EnableScissorRegion(c.Enable)
	if c.Enable {
		target.SetScissorRegion(c.X, c.Y, c.Width, c.Height)
	}
}

// TransformCommand records a SetTransform call.
type TransformCommand struct {
	Transform *geom.Mat4
}

// Replay re-issues the call against target.
func (c *TransformCommand) Replay(target Interface) {
	target.SetTransform(c.Transform)
}

// DisplayList is an Interface implementation that records draw calls instead
// of executing them. Software backends and tests replay or inspect the list.
type DisplayList struct {
	Commands []DisplayCommand

	nextTexture TextureHandle
	textures    map[TextureHandle]geom.Vec2
}

// NewDisplayList creates an empty display list.
func NewDisplayList() *DisplayList {
	return &DisplayList{textures: make(map[TextureHandle]geom.Vec2)}
}

// Reset clears the recorded commands, keeping loaded textures.
func (dl *DisplayList) Reset() {
	dl.Commands = dl.Commands[:0]
}

// Replay issues every recorded command against target in order.
func (dl *DisplayList) Replay(target Interface) {
	for _, cmd := range dl.Commands {
		cmd.Replay(target)
	}
}

// RenderGeometry implements Interface.
func (dl *DisplayList) RenderGeometry(vertices []Vertex, indices []int, texture TextureHandle, translation geom.Vec2) {
	dl.Commands = append(dl.Commands, &GeometryCommand{
		Vertices:    append([]Vertex(nil), vertices...),
		Indices:     append([]int(nil), indices...),
		Texture:     texture,
		Translation: translation,
	})
}

// EnableScissorRegion implements Interface.
func (dl *DisplayList) EnableScissorRegion(enable bool) {
	dl.Commands = append(dl.Commands, &ScissorCommand{Enable: enable})
}

// SetScissorRegion implements Interface.
func (dl *DisplayList) SetScissorRegion(x, y, width, height int) {
	dl.Commands = append(dl.Commands, &ScissorCommand{Enable: true, X: x, Y: y, Width: width, Height: height})
}

// LoadTexture implements Interface. The display list tracks handles but holds
// no texel data; sources always load with zero dimensions.
func (dl *DisplayList) LoadTexture(string) (TextureHandle, geom.Vec2, bool) {
	dl.nextTexture++
	dl.textures[dl.nextTexture] = geom.Vec2{}
	return dl.nextTexture, geom.Vec2{}, true
}

// GenerateTexture implements Interface.
func (dl *DisplayList) GenerateTexture(_ []byte, dimensions geom.Vec2) (TextureHandle, bool) {
	dl.nextTexture++
	dl.textures[dl.nextTexture] = dimensions
	return dl.nextTexture, true
}

// ReleaseTexture implements Interface.
func (dl *DisplayList) ReleaseTexture(texture TextureHandle) {
	delete(dl.textures, texture)
}

// SetTransform implements Interface.
func (dl *DisplayList) SetTransform(transform *geom.Mat4) {
	var copied *geom.Mat4
	if transform != nil {
		m := *transform
		copied = &m
	}
	dl.Commands = append(dl.Commands, &TransformCommand{Transform: copied})
}

// QuadVertices builds the four vertices and six indices of a solid-color
// rectangle with top-left corner at origin.
func QuadVertices(origin, size geom.Vec2, col color.RGBA) ([]Vertex, []int) {
	vertices := []Vertex{
		{Position: origin, Color: col},
		{Position: geom.Vec2{X: origin.X + size.X, Y: origin.Y}, Color: col, TexCoord: geom.Vec2{X: 1}},
		{Position: geom.Vec2{X: origin.X + size.X, Y: origin.Y + size.Y}, Color: col, TexCoord: geom.Vec2{X: 1, Y: 1}},
		{Position: geom.Vec2{X: origin.X, Y: origin.Y + size.Y}, Color: col, TexCoord: geom.Vec2{Y: 1}},
	}
	indices := []int{0, 1, 2, 0, 2, 3}
	return vertices, indices
}
