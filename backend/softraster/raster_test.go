package softraster

import (
	"image/color"
	"testing"

	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/render"
)

func pixelAt(t *testing.T, r *Renderer, x, y int) color.RGBA {
	t.Helper()
	c := color.RGBAModel.Convert(r.Image().At(x, y)).(color.RGBA)
	return c
}

func fillQuad(r *Renderer, x, y, w, h float64, c color.RGBA, translation geom.Vec2) {
	vertices, indices := render.QuadVertices(geom.Vec2{X: x, Y: y}, geom.Vec2{X: w, Y: h}, c)
	r.RenderGeometry(vertices, indices, 0, translation)
}

func TestNewCanvasIsWhite(t *testing.T) {
	r := New(20, 20)
	if got := pixelAt(t, r, 10, 10); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected a white canvas, got %v", got)
	}
}

func TestRenderGeometryFillsQuad(t *testing.T) {
	r := New(40, 40)
	red := color.RGBA{255, 0, 0, 255}
	fillQuad(r, 10, 10, 20, 20, red, geom.Vec2{})

	if got := pixelAt(t, r, 20, 20); got != red {
		t.Errorf("expected red inside the quad, got %v", got)
	}
	if got := pixelAt(t, r, 5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected white outside the quad, got %v", got)
	}
}

func TestQuadInteriorIsSolid(t *testing.T) {
	r := New(40, 40)
	red := color.RGBA{255, 0, 0, 255}
	fillQuad(r, 10, 10, 20, 20, red, geom.Vec2{})

	// Pixels along the diagonal shared by the quad's two triangles must be
	// fully covered, with no antialiased seam.
	for _, p := range []int{12, 15, 20, 25, 28} {
		if got := pixelAt(t, r, p, p); got != red {
			t.Errorf("expected solid red at %d,%d, got %v", p, p, got)
		}
	}
}

func TestRenderGeometryAppliesTranslation(t *testing.T) {
	r := New(40, 40)
	red := color.RGBA{255, 0, 0, 255}
	fillQuad(r, 0, 0, 10, 10, red, geom.Vec2{X: 20, Y: 20})

	if got := pixelAt(t, r, 25, 25); got != red {
		t.Errorf("expected translated quad at 25,25, got %v", got)
	}
	if got := pixelAt(t, r, 5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected untranslated position empty, got %v", got)
	}
}

func TestScissorClipsGeometry(t *testing.T) {
	r := New(40, 40)
	red := color.RGBA{255, 0, 0, 255}
	r.EnableScissorRegion(true)
	r.SetScissorRegion(0, 0, 15, 40)
	fillQuad(r, 0, 0, 40, 40, red, geom.Vec2{})

	if got := pixelAt(t, r, 5, 20); got != red {
		t.Errorf("expected red inside the scissor, got %v", got)
	}
	if got := pixelAt(t, r, 30, 20); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected geometry clipped outside the scissor, got %v", got)
	}

	r.EnableScissorRegion(false)
	fillQuad(r, 0, 0, 40, 40, red, geom.Vec2{})
	if got := pixelAt(t, r, 30, 20); got != red {
		t.Errorf("expected full coverage after disabling the scissor, got %v", got)
	}
}

func TestSetTransformMovesGeometry(t *testing.T) {
	r := New(40, 40)
	red := color.RGBA{255, 0, 0, 255}
	m := geom.Translate(15, 15, 0)
	r.SetTransform(&m)
	fillQuad(r, 0, 0, 10, 10, red, geom.Vec2{})
	r.SetTransform(nil)

	if got := pixelAt(t, r, 20, 20); got != red {
		t.Errorf("expected transformed quad at 20,20, got %v", got)
	}
	if got := pixelAt(t, r, 5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected original position empty, got %v", got)
	}
}

func TestClearResetsCanvas(t *testing.T) {
	r := New(20, 20)
	fillQuad(r, 0, 0, 20, 20, color.RGBA{255, 0, 0, 255}, geom.Vec2{})
	r.Clear(color.RGBA{0, 0, 255, 255})

	if got := pixelAt(t, r, 10, 10); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("expected the clear color, got %v", got)
	}
}

func TestGenerateTexture(t *testing.T) {
	r := New(20, 20)
	pixels := make([]byte, 2*2*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i] = 255
		pixels[i+3] = 255
	}

	handle, ok := r.GenerateTexture(pixels, geom.Vec2{X: 2, Y: 2})
	if !ok || handle == 0 {
		t.Fatalf("expected texture generation to succeed")
	}

	if _, ok := r.GenerateTexture(pixels[:3], geom.Vec2{X: 2, Y: 2}); ok {
		t.Errorf("expected short pixel data to be rejected")
	}

	r.ReleaseTexture(handle)
}

func TestTexturedQuadDrawsTexture(t *testing.T) {
	r := New(40, 40)
	pixels := make([]byte, 4*4*4)
	for i := 0; i < len(pixels); i += 4 {
		pixels[i+1] = 255
		pixels[i+3] = 255
	}
	handle, ok := r.GenerateTexture(pixels, geom.Vec2{X: 4, Y: 4})
	if !ok {
		t.Fatalf("expected texture generation to succeed")
	}

	vertices, indices := render.QuadVertices(geom.Vec2{X: 10, Y: 10}, geom.Vec2{X: 16, Y: 16}, color.RGBA{255, 255, 255, 255})
	r.RenderGeometry(vertices, indices, handle, geom.Vec2{})

	if got := pixelAt(t, r, 18, 18); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("expected the green texture scaled over the quad, got %v", got)
	}
}
