// pkg/render/color.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrColor is returned for color strings that cannot be parsed.
var ErrColor = errors.New("invalid color")

var namedColors = map[string]color.NRGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"orange":      {255, 165, 0, 255},
	"purple":      {128, 0, 128, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"transparent": {0, 0, 0, 0},
}

// ParseColor understands the CSS forms used by shape records: "#rgb",
// "#rgba", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)", "rgba(r, g, b, a)" and a
// few color names. Channels are 0-255, alpha is 0-1.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
		}
		return hexColor(uint32(v), len(hex)), nil
	}

	var args string
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args = s[len("rgba(") : len(s)-1]
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args = s[len("rgb(") : len(s)-1]
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}

	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	var ch [4]uint8
	ch[3] = 255
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrColor, s)
		}
		if i == 3 {
			v *= 255
		}
		ch[i] = uint8(math.Round(math.Max(0, math.Min(255, v))))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// hexColor unpacks v holding n hex digits.
func hexColor(v uint32, n int) color.NRGBA {
	switch n {
	case 3:
		v = v<<4 | 0xf
		fallthrough
	case 4:
		r, g, b, a := v>>12&0xf, v>>8&0xf, v>>4&0xf, v&0xf
		return color.NRGBA{uint8(r * 17), uint8(g * 17), uint8(b * 17), uint8(a * 17)}
	case 6:
		v = v<<8 | 0xff
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// FormatColor is the inverse of ParseColor for the rgba() form.
func FormatColor(c color.NRGBA) string {
	a := strconv.FormatFloat(math.Round(float64(c.A)/255*1000)/1000, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, a)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
