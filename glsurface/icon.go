package glsurface

import (
	_ "embed"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/icon.svg
var iconSVG string

// windowIcons renders the embedded vector icon at the sizes GLFW wants
// for a multi-resolution window icon (taskbar, alt-tab, titlebar).
func windowIcons() []image.Image {
	sizes := []int{16, 32, 48, 128}
	icons := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		if img := renderSVG(size); img != nil {
			icons = append(icons, img)
		}
	}
	return icons
}

func renderSVG(size int) image.Image {
	icon, err := oksvg.ReadIconStream(strings.NewReader(iconSVG))
	if err != nil {
		return nil
	}
	icon.SetTarget(0, 0, float64(size), float64(size))
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	rasterizer := rasterx.NewDasher(size, size, scanner)
	icon.Draw(rasterizer, 1.0)
	return rgba
}
