// Package softraster rasterizes draw commands into an in-memory image using
// fogleman/gg. It backs headless rendering, golden tests and the fyne
// backend's frame buffer.
package softraster

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/render"
)

// Renderer implements render.Interface on a software canvas.
type Renderer struct {
	ctx    *gg.Context
	width  int
	height int

	textures    map[render.TextureHandle]image.Image
	nextTexture render.TextureHandle

	scissorEnabled bool
	scissor        image.Rectangle

	transform *geom.Mat4
}

// New creates a renderer with a white canvas of the given pixel dimensions.
func New(width, height int) *Renderer {
	r := &Renderer{
		ctx:         gg.NewContext(width, height),
		width:       width,
		height:      height,
		textures:    make(map[render.TextureHandle]image.Image),
		nextTexture: 1,
	}
	r.Clear(color.White)
	return r
}

// Clear fills the whole canvas with one color.
func (r *Renderer) Clear(c color.Color) {
	r.ctx.SetColor(c)
	r.ctx.Push()
	r.ctx.ResetClip()
	r.ctx.DrawRectangle(0, 0, float64(r.width), float64(r.height))
	r.ctx.Fill()
	r.ctx.Pop()
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.ctx.Image()
}

// RenderGeometry rasterizes the indexed triangle list. Vertices are
// flat-shaded with their first vertex color; textured geometry draws the
// texture scaled into the triangle list's bounding box.
func (r *Renderer) RenderGeometry(vertices []render.Vertex, indices []int, texture render.TextureHandle, translation geom.Vec2) {
	if len(vertices) == 0 || len(indices) < 3 {
		return
	}

	r.applyScissor()
	defer r.ctx.ResetClip()

	if texture != 0 {
		if img, ok := r.textures[texture]; ok {
			r.drawTextured(vertices, img, translation)
			return
		}
	}

	// Runs of same-colored triangles fill as one path. Filling each triangle
	// separately would antialias the shared edges and leave blended seams
	// across quad diagonals.
	for start := 0; start+2 < len(indices); {
		col := vertices[indices[start]].Color
		end := start
		for end+2 < len(indices) && vertices[indices[end]].Color == col {
			end += 3
		}
		for i := start; i < end; i += 3 {
			v0 := r.mapVertex(vertices[indices[i]], translation)
			v1 := r.mapVertex(vertices[indices[i+1]], translation)
			v2 := r.mapVertex(vertices[indices[i+2]], translation)

			r.ctx.MoveTo(v0.X, v0.Y)
			r.ctx.LineTo(v1.X, v1.Y)
			r.ctx.LineTo(v2.X, v2.Y)
			r.ctx.ClosePath()
		}
		r.ctx.SetColor(col)
		r.ctx.Fill()
		start = end
	}
}

func (r *Renderer) drawTextured(vertices []render.Vertex, img image.Image, translation geom.Vec2) {
	min := r.mapVertex(vertices[0], translation)
	max := min
	for _, v := range vertices[1:] {
		p := r.mapVertex(v, translation)
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 || max.X <= min.X || max.Y <= min.Y {
		return
	}

	r.ctx.Push()
	r.ctx.Translate(min.X, min.Y)
	r.ctx.Scale((max.X-min.X)/float64(bounds.Dx()), (max.Y-min.Y)/float64(bounds.Dy()))
	r.ctx.DrawImage(img, 0, 0)
	r.ctx.Pop()
}

func (r *Renderer) mapVertex(v render.Vertex, translation geom.Vec2) geom.Vec2 {
	p := v.Position.Add(translation)
	if r.transform != nil {
		p = r.transform.TransformPoint(p)
	}
	return p
}

// EnableScissorRegion toggles scissor clipping.
func (r *Renderer) EnableScissorRegion(enable bool) {
	r.scissorEnabled = enable
}

// SetScissorRegion sets the scissor rectangle in canvas pixels.
func (r *Renderer) SetScissorRegion(x, y, width, height int) {
	r.scissor = image.Rect(x, y, x+width, y+height)
}

func (r *Renderer) applyScissor() {
	r.ctx.ResetClip()
	if !r.scissorEnabled {
		return
	}
	r.ctx.DrawRectangle(
		float64(r.scissor.Min.X), float64(r.scissor.Min.Y),
		float64(r.scissor.Dx()), float64(r.scissor.Dy()),
	)
	r.ctx.Clip()
}

// LoadTexture loads a texture from an image file on disk.
func (r *Renderer) LoadTexture(source string) (render.TextureHandle, geom.Vec2, bool) {
	img, err := gg.LoadImage(source)
	if err != nil {
		return 0, geom.Vec2{}, false
	}
	return r.registerTexture(img)
}

// GenerateTexture creates a texture from raw RGBA bytes.
func (r *Renderer) GenerateTexture(source []byte, dimensions geom.Vec2) (render.TextureHandle, bool) {
	w, h := int(dimensions.X), int(dimensions.Y)
	if w <= 0 || h <= 0 || len(source) < w*h*4 {
		return 0, false
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, source[:w*h*4])
	handle, _, ok := r.registerTexture(img)
	return handle, ok
}

func (r *Renderer) registerTexture(img image.Image) (render.TextureHandle, geom.Vec2, bool) {
	handle := r.nextTexture
	r.nextTexture++
	r.textures[handle] = img
	bounds := img.Bounds()
	return handle, geom.Vec2{X: float64(bounds.Dx()), Y: float64(bounds.Dy())}, true
}

// ReleaseTexture frees a texture.
func (r *Renderer) ReleaseTexture(texture render.TextureHandle) {
	delete(r.textures, texture)
}

// SetTransform sets the projection applied to subsequent geometry, or
// restores the identity when nil.
func (r *Renderer) SetTransform(transform *geom.Mat4) {
	r.transform = transform
}
