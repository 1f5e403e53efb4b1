// Package fyneui shows a document in a Fyne window and drives its frame
// loop. Geometry is rasterized through the softraster backend and blitted
// into a canvas image each frame.
package fyneui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/AYColumbia/quill/backend/softraster"
	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/render"
	"github.com/AYColumbia/quill/scene"
)

// Options configures a window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Background color.Color
	// FrameRate is frames per second; zero means 60.
	FrameRate int
}

// Window owns the Fyne shell, the raster target and the frame pump for one
// document. The embedded renderer is the document's render.Interface.
type Window struct {
	*softraster.Renderer

	app    fyne.App
	window fyne.Window
	image  *canvas.Image

	options  Options
	document *scene.Document
	stop     chan struct{}
}

// NewWindow creates a window and binds the document's render and viewport
// state to it.
func NewWindow(document *scene.Document, options Options) *Window {
	if options.Width <= 0 {
		options.Width = 1024
	}
	if options.Height <= 0 {
		options.Height = 768
	}
	if options.FrameRate <= 0 {
		options.FrameRate = 60
	}
	if options.Background == nil {
		options.Background = color.White
	}

	w := &Window{
		Renderer: softraster.New(options.Width, options.Height),
		app:      app.New(),
		options:  options,
		document: document,
		stop:     make(chan struct{}),
	}
	w.window = w.app.NewWindow(options.Title)

	w.image = canvas.NewImageFromImage(w.Renderer.Image())
	w.image.FillMode = canvas.ImageFillOriginal
	w.window.SetContent(w.image)
	w.window.Resize(fyne.NewSize(float32(options.Width), float32(options.Height)))

	document.SetRenderInterface(w)
	document.SetSystemInterface(render.NewDefaultSystem(nil))
	document.SetViewportDimensions(geom.Vec2{X: float64(options.Width), Y: float64(options.Height)})

	return w
}

// Run starts the frame pump and shows the window. It blocks until the
// window closes.
func (w *Window) Run() {
	interval := time.Second / time.Duration(w.options.FrameRate)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-w.stop:
				return
			case <-ticker.C:
				fyne.Do(w.frame)
			}
		}
	}()

	w.window.SetOnClosed(func() {
		close(w.stop)
	})
	w.window.ShowAndRun()
}

// frame runs one Update/Render cycle and refreshes the canvas. Must run on
// the Fyne event loop.
func (w *Window) frame() {
	w.document.Update()
	w.Renderer.Clear(w.options.Background)
	w.document.Render()
	w.image.Image = w.Renderer.Image()
	w.image.Refresh()
}
