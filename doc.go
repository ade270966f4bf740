/*
Package lowpass smooths images with a 3-tap horizontal lowpass filter.

Every sample of the output is computed from the sample at the same position
and its left and right neighbours, weighted (1, 2, 1) and divided by 4 with
integer truncation. Columns outside the image are replaced with the nearest
edge column. All four channels, alpha included, are filtered the same way
unless Lowpass.PreserveAlpha is set.

Images are decoded and normalized to 8 bits per channel RGBA buffers before
filtering, and the result is always encoded as an 8 bits per channel RGBA PNG.

The package provides a command line utility:

	$ lowpass input.png output.png

Example to filter an image from Go code:

	package main

	import (
		"log"

		"github.com/esimov/lowpass"
	)

	func main() {
		p := &lowpass.Processor{Passes: 1}
		if _, err := p.Process("input.png", "output.png"); err != nil {
			log.Fatal(err)
		}
	}

The building blocks can also be used on their own:

	src, err := lowpass.ReadFile("input.png")
	if err != nil {
		// lowpass.IsKind(err, lowpass.IOError), lowpass.IsKind(err, lowpass.DecodeError)
	}
	dst := lowpass.HorizontalLowpass(src)
	err = lowpass.WriteFile("output.png", dst)
*/
package lowpass
