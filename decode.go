package lowpass

import (
	"errors"
	"image"
	"io"
	"os"

	// Decoders for the accepted input formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an encoded image from r and returns it normalized to an
// 8 bits per channel RGBA buffer (see ToNRGBA).
func Decode(r io.Reader) (*image.NRGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, &Error{Kind: DecodeError, Err: err}
	}
	return ToNRGBA(src), nil
}

// ReadFile opens the image file found at path and decodes it.
// The file is closed before returning, on success and on failure.
func ReadFile(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Kind: IOError, Path: path, Err: err}
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		var derr *Error
		if errors.As(err, &derr) {
			derr.Path = path
		}
		return nil, err
	}
	return img, nil
}
