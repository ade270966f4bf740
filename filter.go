package lowpass

import (
	"image"
)

// Filter is an operation which can be applied to a normalized image.
type Filter interface {
	Draw(dst, src *image.NRGBA)
	// Bounds calculates the appropriate bounds of an image after applying the filter.
	Bounds(srcBounds image.Rectangle) (dstBounds image.Rectangle)
}

// Chain implements a list of filters that can be applied to an image at once.
type Chain struct {
	Filters []Filter
}

// NewChain creates a new filter chain and initializes it with the given list of filters.
func NewChain(filters ...Filter) *Chain {
	return &Chain{
		Filters: filters,
	}
}

// Repeat returns a chain which applies f n times in a row.
func Repeat(f Filter, n int) *Chain {
	filters := make([]Filter, 0, n)
	for i := 0; i < n; i++ {
		filters = append(filters, f)
	}
	return NewChain(filters...)
}

// Apply runs all the filters over src and returns the result in a newly allocated image.
// Every stage writes into its own buffer, so src is never modified.
func (c *Chain) Apply(src *image.NRGBA) *image.NRGBA {
	if len(c.Filters) == 0 {
		dst := image.NewNRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
		copy(dst.Pix, src.Pix)
		return dst
	}

	tmp := src
	for _, f := range c.Filters {
		out := createTempImage(f.Bounds(tmp.Bounds()))
		f.Draw(out, tmp)
		tmp = out
	}
	return tmp
}

// create default temp image
func createTempImage(r image.Rectangle) *image.NRGBA {
	return image.NewNRGBA(r)
}
