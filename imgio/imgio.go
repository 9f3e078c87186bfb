// Package imgio is the on-disk codec boundary for the normalization pipeline:
// it decodes grayscale rasters from local files or Google Storage objects and
// writes 8-bit and 16-bit grayscale PNGs.
package imgio

import (
	"bytes"
	"image"
	"io"
	"io/ioutil"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"cloud.google.com/go/storage"
	_ "golang.org/x/image/bmp"
)

// DecodeImageFromReader decodes an image from r. Must be PNG, GIF, BMP, or
// JPEG formatted (based on the decoders we have imported).
func DecodeImageFromReader(r io.Reader) (image.Image, error) {
	// The image decoder swallows errors, so we won't see i/o errors if they
	// happen during image decoding. To capture these, we read the full image
	// into memory here, and pass a byte reader to the image decoder.
	imgBytes, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(imgBytes))

	return img, err
}

// OpenImage pulls an image from a local path or, with the gs:// prefix, from
// Google Storage. client may be nil for local paths.
func OpenImage(path string, client *storage.Client) (image.Image, error) {
	f, err := MaybeOpenFromGoogleStorage(path, client)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeImageFromReader(f)
}
