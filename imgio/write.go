package imgio

import (
	"bufio"
	"image"
	"image/png"
	"os"
)

// SaveGrayPNG writes img to path as a PNG. An *image.Gray yields an 8-bit
// grayscale file and an *image.Gray16 yields a 16-bit grayscale file, which
// the standard encoder supports natively.
func SaveGrayPNG(img image.Image, path string) error {
	outFile, err := os.Create(path)
	if err != nil {
		return err
	}
	defer outFile.Close()

	bw := bufio.NewWriter(outFile)
	if err := png.Encode(bw, img); err != nil {
		return err
	}

	return bw.Flush()
}
