// SPDX-License-Identifier: MIT

package scan

import (
	"image"
	"image/color"
)

// Bitmap is the scanner's view of an image: its bounds and a brightness in
// [0,1] per pixel (0 black, 1 white).
type Bitmap struct {
	Bounds     image.Rectangle
	Brightness func(x, y int) float64
}

// FromImage samples img once into a luminance buffer.
// Complexity: O(W×H).
func FromImage(img image.Image) Bitmap {
	b := img.Bounds()
	w := b.Dx()
	lum := make([]float64, w*b.Dy())
	if g, ok := img.(*image.Gray); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				lum[(y-b.Min.Y)*w+x-b.Min.X] = float64(g.GrayAt(x, y).Y) / 255
			}
		}
	} else {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
				lum[(y-b.Min.Y)*w+x-b.Min.X] = float64(gray.Y) / 255
			}
		}
	}
	return Bitmap{
		Bounds: b,
		Brightness: func(x, y int) float64 {
			return lum[(y-b.Min.Y)*w+x-b.Min.X]
		},
	}
}
