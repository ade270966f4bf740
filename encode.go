package lowpass

import (
	"image"
	"image/png"
	"io"
	"os"
)

var encoder = png.Encoder{CompressionLevel: png.DefaultCompression}

// rgbaView hides the opacity of the wrapped image from the PNG encoder,
// which would otherwise store a fully opaque image without its alpha channel.
// The encoder then reads pixels through At instead of copying NRGBA rows.
type rgbaView struct {
	*image.NRGBA
}

func (rgbaView) Opaque() bool { return false }

// Encode writes img to w as a non-interlaced PNG with 8 bits per channel and
// an alpha channel, whatever the content of the alpha samples.
func Encode(w io.Writer, img *image.NRGBA) error {
	if err := encodeRGBA(w, img); err != nil {
		return &Error{Kind: EncodeError, Err: err}
	}
	return nil
}

// WriteFile encodes img as PNG into the file found at path, creating or truncating it.
// A failure in the middle of the encoding may leave a partial file behind.
func WriteFile(path string, img *image.NRGBA) error {
	return writeFile(path, func(w io.Writer) error {
		return encodeRGBA(w, img)
	})
}

func encodeRGBA(w io.Writer, img *image.NRGBA) error {
	return encoder.Encode(w, rgbaView{img})
}

// writeFile creates path and hands it to encode. The file is closed exactly
// once on every return path; a close error is reported only when nothing failed before.
func writeFile(path string, encode func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &Error{Kind: IOError, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &Error{Kind: IOError, Path: path, Err: cerr}
		}
	}()

	if err = encode(f); err != nil {
		return &Error{Kind: EncodeError, Path: path, Err: err}
	}
	return nil
}
