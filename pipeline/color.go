package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseColor reads #RGB, #RRGGBB or 0xRRGGBB into a packed 0xRRGGBB value.
func ParseColor(s string) (uint32, error) {
	var r, g, b uint8
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 24)
		if err != nil {
			return 0, fmt.Errorf("could not read color %q: %w", s, err)
		}
		return uint32(v), nil
	case len(s) == 4 && s[0] == '#':
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return 0, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return 0, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}

		r |= r << 4
		g |= g << 4
		b |= b << 4
	case len(s) == 7 && s[0] == '#':
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &r, &g, &b)
		if err != nil {
			return 0, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return 0, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
	default:
		return 0, fmt.Errorf("invalid color %q, should be #RGB, #RRGGBB or 0xRRGGBB", s)
	}

	return uint32(r)<<16 | uint32(g)<<8 | uint32(b), nil
}
