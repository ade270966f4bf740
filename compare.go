package lowpass

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const (
	comparePadding = 10
	captionHeight  = 20
)

// Compare renders original and filtered next to each other on a white sheet,
// each of them captioned underneath. The filtered caption is given by label.
func Compare(original, filtered *image.NRGBA, label string) image.Image {
	ow, oh := original.Bounds().Dx(), original.Bounds().Dy()
	fw, fh := filtered.Bounds().Dx(), filtered.Bounds().Dy()

	width := ow + fw + 3*comparePadding
	height := Max(oh, fh) + 2*comparePadding + captionHeight

	ctx := gg.NewContext(width, height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	ctx.DrawImage(original, comparePadding, comparePadding)
	ctx.DrawImage(filtered, ow+2*comparePadding, comparePadding)

	ctx.SetFontFace(basicfont.Face7x13)
	ctx.SetRGB(0, 0, 0)
	captionY := float64(Max(oh, fh) + comparePadding + captionHeight/2)
	ctx.DrawStringAnchored("original", float64(comparePadding+ow/2), captionY, 0.5, 0.5)
	ctx.DrawStringAnchored(label, float64(ow+2*comparePadding+fw/2), captionY, 0.5, 0.5)

	return ctx.Image()
}

// WriteCompare writes the comparison sheet of original and filtered as PNG to path.
func WriteCompare(path string, original, filtered *image.NRGBA, label string) error {
	sheet := Compare(original, filtered, label)
	return writeFile(path, func(w io.Writer) error {
		return encoder.Encode(w, sheet)
	})
}
