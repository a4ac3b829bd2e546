package imagepipe

import (
	"fmt"
	"image/color"
)

// ParseHexColor reads a #rgb or #rrggbb CSS color, the form format
// bundles carry border colors in.
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 255}

	hexDigit := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	if len(s) == 0 || s[0] != '#' {
		return c, fmt.Errorf("imagepipe: invalid hex color %q", s)
	}

	switch len(s) {
	case 7:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			hi, ok1 := hexDigit(s[1+2*i])
			lo, ok2 := hexDigit(s[2+2*i])
			if !ok1 || !ok2 {
				return c, fmt.Errorf("imagepipe: invalid hex color %q", s)
			}
			*dst = hi<<4 | lo
		}
	case 4:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			d, ok := hexDigit(s[1+i])
			if !ok {
				return c, fmt.Errorf("imagepipe: invalid hex color %q", s)
			}
			*dst = d<<4 | d
		}
	default:
		return c, fmt.Errorf("imagepipe: invalid hex color %q", s)
	}

	return c, nil
}
