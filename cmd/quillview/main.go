package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/AYColumbia/quill/backend/fyneui"
	"github.com/AYColumbia/quill/backend/softraster"
	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/markup"
	"github.com/AYColumbia/quill/render"
	"github.com/AYColumbia/quill/scene"
)

func main() {
	width := flag.Int("width", 1024, "viewport width in pixels")
	height := flag.Int("height", 768, "viewport height in pixels")
	out := flag.String("out", "", "render one frame to this PNG instead of opening a window")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: quillview [flags] <markup file>")
		os.Exit(2)
	}

	content, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	document := scene.NewDocument("body")
	if err := markup.LoadDocument(document, string(content)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *out != "" {
		if err := renderHeadless(document, *width, *height, *out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	window := fyneui.NewWindow(document, fyneui.Options{
		Title:  flag.Arg(0),
		Width:  *width,
		Height: *height,
	})
	window.Run()
}

func renderHeadless(document *scene.Document, width, height int, path string) error {
	renderer := softraster.New(width, height)
	document.SetRenderInterface(renderer)
	document.SetSystemInterface(render.NewDefaultSystem(nil))
	document.SetViewportDimensions(geom.Vec2{X: float64(width), Y: float64(height)})

	document.Update()
	document.Render()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, renderer.Image())
}
