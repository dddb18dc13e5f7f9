package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors covers the color words accepted in config color specs.
var namedColors = map[string]color.NRGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
}

// ParseColor converts a config color spec (a name like "black", or hex
// "#RRGGBB" / "#RRGGBBAA") into a color value.
func ParseColor(spec string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if hex == s {
		return color.NRGBA{}, fmt.Errorf("unknown color %q (use a name or #RRGGBB)", spec)
	}

	switch len(hex) {
	case 6:
		r, g, b, err := parseHexChannels(hex)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", spec, err)
		}
		return color.NRGBA{r, g, b, 0xff}, nil
	case 8:
		r, g, b, err := parseHexChannels(hex[:6])
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", spec, err)
		}
		a, err := strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", spec, err)
		}
		return color.NRGBA{r, g, b, uint8(a)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q (use #RRGGBB or #RRGGBBAA)", spec)
	}
}

func parseHexChannels(hex string) (r, g, b uint8, err error) {
	for i, dst := range []*uint8{&r, &g, &b} {
		v, perr := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if perr != nil {
			return 0, 0, 0, perr
		}
		*dst = uint8(v)
	}
	return r, g, b, nil
}
