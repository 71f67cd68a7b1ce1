package pigment

import "math"

// HSLToRGB maps hue (degrees), saturation and lightness (percent) to
// red, green and blue channels.  Hue wraps into [0,360); saturation
// and lightness are deliberately not clamped, so percentages above 100
// flow through and can push channels out of [0,1].  Callers that need
// gamut-safe values clamp on their side.
func HSLToRGB(hueDeg, satPct, lightPct float64) (r, g, b float64) {
	h := normalizeHue(hueDeg) / 360.0
	s := satPct / 100.0
	l := lightPct / 100.0

	c := (1 - math.Abs(2*l-1)) * s
	hp := h * 6
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	r1, g1, b1 := sectorRGB(hp, c, x)

	m := l - c/2
	return r1 + m, g1 + m, b1 + m
}

// HSBToRGB maps hue (degrees), saturation and brightness (percent) to
// red, green and blue channels.  Same wrapping and same deliberate
// absence of clamping as HSLToRGB.
func HSBToRGB(hueDeg, satPct, brightPct float64) (r, g, b float64) {
	hp := normalizeHue(hueDeg) / 60.0
	s := satPct / 100.0
	v := brightPct / 100.0

	c := v * s
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	r1, g1, b1 := sectorRGB(hp, c, x)

	m := v - c
	return r1 + m, g1 + m, b1 + m
}

// sectorRGB picks the base channel triple for one of the six 60 degree
// hue sectors.  hp 6 falls into the last sector.
func sectorRGB(hp, c, x float64) (r, g, b float64) {
	switch int(hp) {
	case 0:
		return c, x, 0
	case 1:
		return x, c, 0
	case 2:
		return 0, c, x
	case 3:
		return 0, x, c
	case 4:
		return x, 0, c
	default:
		return c, 0, x
	}
}

func normalizeHue(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	return h
}
