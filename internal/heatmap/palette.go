package heatmap

import "image/color"

// ramp is a fixed-size colour palette built from an HSL sweep, cold blue
// for low values through to warm red for high ones.
type ramp struct {
	colors []color.Color
}

func (r ramp) Colors() []color.Color { return r.colors }

// rampPalette builds an n-colour palette for heatmap rendering.
func rampPalette(n int) ramp {
	if n < 2 {
		n = 2
	}
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		// sweep hue from 2/3 (blue) down to 0 (red)
		hue := (2.0 / 3.0) * (1 - float64(i)/float64(n-1))
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return ramp{colors: colors}
}

// hslToRGB converts HSL to RGB (0-255 range).
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
