// Package thermnorm rescales 16-bit grayscale thermal imagery to 8-bit or
// 16-bit output using a linear min/max remap with per-camera calibration
// bounds.
package thermnorm

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// BitDepth is the number of bits per sample in the output image.
type BitDepth int

const (
	Bit8  BitDepth = 8
	Bit16 BitDepth = 16
)

// MaxValue is the largest sample value representable at this depth.
func (b BitDepth) MaxValue() float64 {
	return math.Pow(2, float64(b)) - 1
}

// InvalidBoundsError is returned when the scaling bounds are degenerate: a
// linear remap from [bottom, top] is undefined when bottom == top.
type InvalidBoundsError struct {
	Bottom uint16
	Top    uint16
}

func (e InvalidBoundsError) Error() string {
	return fmt.Sprintf("invalid scaling bounds: bottom and top are both %d", e.Bottom)
}

// GridBounds returns the observed minimum and maximum grayscale sample in img.
func GridBounds(img image.Image) ScalingBounds {
	min, max := uint16(math.MaxUint16), uint16(0)

	for x := 0; x < img.Bounds().Dx(); x++ {
		for y := 0; y < img.Bounds().Dy(); y++ {
			v := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	return ScalingBounds{Bottom: min, Top: max}
}

// Normalize linearly rescales img so that bounds.Bottom maps to 0 and
// bounds.Top maps to the top of the output range, clipping samples that fall
// outside the bounds. When bounds is nil, the observed min and max of img are
// used instead. The result is an *image.Gray for Bit8 and an *image.Gray16
// for Bit16.
func Normalize(img image.Image, depth BitDepth, bounds *ScalingBounds) (image.Image, error) {
	var b ScalingBounds
	if bounds == nil {
		b = GridBounds(img)
	} else {
		b = *bounds
	}

	if b.Top == b.Bottom {
		return nil, InvalidBoundsError{Bottom: b.Bottom, Top: b.Top}
	}

	bottom := float64(b.Bottom)
	span := float64(b.Top) - bottom
	maxValue := depth.MaxValue()

	rect := image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy())

	var out image.Image
	var set func(x, y int, quantized uint16)

	switch depth {
	case Bit8:
		gray := image.NewGray(rect)
		set = func(x, y int, quantized uint16) {
			gray.SetGray(x, y, color.Gray{Y: uint8(quantized)})
		}
		out = gray
	case Bit16:
		gray := image.NewGray16(rect)
		set = func(x, y int, quantized uint16) {
			gray.SetGray16(x, y, color.Gray16{Y: quantized})
		}
		out = gray
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d", depth)
	}

	for x := 0; x < rect.Dx(); x++ {
		for y := 0; y < rect.Dy(); y++ {
			v := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y

			scaled := (float64(v) - bottom) / span
			if scaled < 0 {
				scaled = 0
			}
			if scaled > 1 {
				scaled = 1
			}

			set(x, y, uint16(math.Floor(scaled*maxValue)))
		}
	}

	return out, nil
}
