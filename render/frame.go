// Package render paints one pixel per vertex into raster images.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Frame paints colors, given as 0x00RRGGBB per vertex in row-major
// order, into a width x height image. Optionally each vertex is drawn
// as a scale x scale block.
func Frame(width, height int, colors []uint32, scale int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || width*height != len(colors) {
		return nil, errors.Errorf("cannot paint %d vertices into %dx%d frame",
			len(colors), width, height)
	}

	if scale < 1 {
		scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	for v, c := range colors {
		x, y := (v%width)*scale, (v/width)*scale
		px := color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xFF}
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				img.SetRGBA(x+dx, y+dy, px)
			}
		}
	}

	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return errors.Wrap(err, "encoding png")
	}

	return bw.Flush()
}

// SaveFrame writes img to frame_<generation>.png within directory.
func SaveFrame(directory string, generation int, img image.Image) (string, error) {
	filename := filepath.Join(directory, fmt.Sprintf("frame_%08d.png", generation))
	glog.V(2).Infof("Saving frame for generation %d to %v", generation, filename)
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}

	if err := WritePNG(f, img); err != nil {
		f.Close()
		return "", err
	}

	return filename, f.Close()
}
