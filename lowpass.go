package lowpass

import (
	"fmt"
	"image"
)

// channels is the number of samples stored for every pixel of a normalized buffer.
const channels = 4

// Lowpass is a 3-tap horizontal smoothing filter with the (1, 2, 1) / 4 kernel.
// Columns outside the image are replaced with the nearest edge column.
type Lowpass struct {
	// PreserveAlpha copies the alpha channel unchanged instead of smoothing it.
	// By default the alpha channel is filtered like any color channel, which is
	// not premultiplication aware and may bleed color around transparent edges.
	PreserveAlpha bool
}

// HorizontalLowpass returns a new image with the horizontal lowpass filter
// applied to all four channels of src. The source image is left untouched.
func HorizontalLowpass(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	Lowpass{}.Draw(dst, src)
	return dst
}

// Bounds returns the bounds of the filtered image, which are those of the source.
func (f Lowpass) Bounds(srcBounds image.Rectangle) image.Rectangle {
	return image.Rect(0, 0, srcBounds.Dx(), srcBounds.Dy())
}

// Draw writes the filtered src into dst. Both images must be normalized
// buffers (see ToNRGBA) of identical size.
func (f Lowpass) Draw(dst, src *image.NRGBA) {
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	checkBuffer("source", src, width, height)
	checkBuffer("destination", dst, width, height)

	last := width - 1
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			li := (row + Clamp(x-1, 0, last)) * channels
			ci := (row + x) * channels
			ri := (row + Clamp(x+1, 0, last)) * channels

			for c := 0; c < channels; c++ {
				if c == 3 && f.PreserveAlpha {
					dst.Pix[ci+c] = src.Pix[ci+c]
					continue
				}
				sum := int(src.Pix[li+c]) + 2*int(src.Pix[ci+c]) + int(src.Pix[ri+c])
				dst.Pix[ci+c] = uint8(sum / 4)
			}
		}
	}
}

// checkBuffer panics when img does not hold exactly width*height packed RGBA pixels.
func checkBuffer(name string, img *image.NRGBA, width, height int) {
	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		panic(fmt.Sprintf("lowpass: %s is %dx%d, want %dx%d", name, b.Dx(), b.Dy(), width, height))
	}
	if img.Stride != width*channels || len(img.Pix) != width*height*channels {
		panic(fmt.Sprintf("lowpass: %s buffer holds %d bytes with stride %d, want %d bytes with stride %d",
			name, len(img.Pix), img.Stride, width*height*channels, width*channels))
	}
}
