package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// GetIcon returns the tray icon for the given indicator state.
func GetIcon(connected bool) []byte {
	if connected {
		return renderShieldIcon(color.NRGBA{R: 48, G: 118, B: 245, A: 255})
	}
	return renderShieldIcon(color.NRGBA{R: 150, G: 150, B: 150, A: 255})
}

// renderShieldIcon draws a 32x32 shield with a keyhole cutout and encodes
// it as PNG, the format systray expects on macOS and Linux.
func renderShieldIcon(c color.NRGBA) []byte {
	const size = 32
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	setPx := func(x, y int, a float64) {
		if x < 0 || x >= size || y < 0 || y >= size || a <= 0 {
			return
		}
		if a > 1 {
			a = 1
		}
		img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: byte(a * 255)})
	}

	const cx = 15.5

	// Shield body: flat shoulders, tapering to a point at the bottom.
	for y := 2; y <= 29; y++ {
		fy := float64(y)
		var halfW float64
		switch {
		case fy <= 6:
			// Top edge curls in slightly
			halfW = 9.0 + (fy-2.0)*0.75
		case fy <= 16:
			halfW = 12.0
		default:
			// Taper to the tip
			t := (fy - 16) / 13.0
			halfW = 12.0 * (1 - t*t)
		}
		if halfW < 0.5 {
			halfW = 0.5
		}

		for x := 0; x < size; x++ {
			d := float64(x) + 0.5 - cx
			if d < 0 {
				d = -d
			}
			if d <= halfW {
				a := 1.0
				if d > halfW-1.0 {
					a = halfW - d
				}
				setPx(x, y, a)
			}
		}
	}

	// Keyhole cutout: circle plus stem, punched transparent.
	punch := func(x, y int) {
		if x >= 0 && x < size && y >= 0 && y < size {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}
	for y := 9; y <= 15; y++ {
		for x := 12; x <= 19; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) - 12.0
			if dx*dx+dy*dy <= 9.0 {
				punch(x, y)
			}
		}
	}
	for y := 15; y <= 21; y++ {
		punch(15, y)
		punch(16, y)
	}

	var buf bytes.Buffer
	png.Encode(&buf, img)
	return buf.Bytes()
}
