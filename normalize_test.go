package thermnorm

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func gray16FromValues(values []uint16) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, len(values), 1))
	for x, v := range values {
		img.SetGray16(x, 0, color.Gray16{Y: v})
	}

	return img
}

func sampleAt(img image.Image, x, y int) uint16 {
	return color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y
}

func TestNormalizeBoundsMapping8Bit(t *testing.T) {
	// Camera P at 512 rows
	bounds := ScalingBounds{Bottom: 53500, Top: 56500}
	img := gray16FromValues([]uint16{53500, 56500, 53499, 60000, 0, 65535})

	out, err := Normalize(img, Bit8, &bounds)
	if err != nil {
		t.Fatal(err)
	}

	for i, expected := range []uint16{0, 255, 0, 255, 0, 255} {
		if got := sampleAt(out, i, 0); got != expected {
			t.Errorf("pixel %d: got %d, expected %d", i, got, expected)
		}
	}
}

func TestNormalizeMidpoint(t *testing.T) {
	// Camera C bounds; 54500 is the exact midpoint
	bounds := ScalingBounds{Bottom: 50500, Top: 58500}
	img := gray16FromValues([]uint16{54500})

	out8, err := Normalize(img, Bit8, &bounds)
	if err != nil {
		t.Fatal(err)
	}
	if got := sampleAt(out8, 0, 0); got != 127 {
		t.Errorf("8-bit midpoint: got %d, expected 127", got)
	}

	out16, err := Normalize(img, Bit16, &bounds)
	if err != nil {
		t.Fatal(err)
	}
	if got := out16.(*image.Gray16).Gray16At(0, 0).Y; got != 32767 {
		t.Errorf("16-bit midpoint: got %d, expected 32767", got)
	}
}

func TestNormalizeMonotonic(t *testing.T) {
	bounds := ScalingBounds{Bottom: 51000, Top: 57500}

	values := make([]uint16, 0, 66)
	for v := 0; v <= 65535; v += 1000 {
		values = append(values, uint16(v))
	}
	img := gray16FromValues(values)

	for _, depth := range []BitDepth{Bit8, Bit16} {
		out, err := Normalize(img, depth, &bounds)
		if err != nil {
			t.Fatal(err)
		}

		prev := uint16(0)
		for i := range values {
			got := sampleAt(out, i, 0)
			if depth == Bit8 {
				got = uint16(out.(*image.Gray).GrayAt(i, 0).Y)
			}

			if got < prev {
				t.Fatalf("depth %d: output decreased from %d to %d at input %d", depth, prev, got, values[i])
			}
			if max := uint16(depth.MaxValue()); got > max {
				t.Fatalf("depth %d: output %d exceeds %d", depth, got, max)
			}

			prev = got
		}
	}
}

func TestNormalizeDegenerateBounds(t *testing.T) {
	bounds := ScalingBounds{Bottom: 51000, Top: 51000}
	img := gray16FromValues([]uint16{51000, 52000})

	_, err := Normalize(img, Bit8, &bounds)

	var ibe InvalidBoundsError
	if !errors.As(err, &ibe) {
		t.Fatalf("got %v, expected InvalidBoundsError", err)
	}

	// The min/max fallback on a constant image degenerates the same way
	if _, err := Normalize(gray16FromValues([]uint16{42, 42, 42}), Bit8, nil); !errors.As(err, &ibe) {
		t.Fatalf("constant-image fallback: got %v, expected InvalidBoundsError", err)
	}
}

func TestNormalizeFallbackBounds(t *testing.T) {
	img := gray16FromValues([]uint16{100, 500, 900})

	out, err := Normalize(img, Bit8, nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := sampleAt(out, 0, 0); got != 0 {
		t.Errorf("observed minimum: got %d, expected 0", got)
	}
	if got := sampleAt(out, 2, 0); got != 255 {
		t.Errorf("observed maximum: got %d, expected 255", got)
	}
}

func TestGridBounds(t *testing.T) {
	img := gray16FromValues([]uint16{700, 100, 900, 300})

	if b := GridBounds(img); b.Bottom != 100 || b.Top != 900 {
		t.Errorf("got (%d, %d), expected (100, 900)", b.Bottom, b.Top)
	}
}
