package capture

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	DefaultPixelRatio = 2
	DefaultBackground = "#000000"
	DefaultWidth      = 360

	// MinWidth is the narrowest card that leaves room for the image panel
	// inside the padding.
	MinWidth = 2*padding + 1
)

// Options control the output geometry shared by every backend.
type Options struct {
	PixelRatio float64 // device pixels per layout pixel
	Background string  // #rrggbb
	Width      int     // card width in layout pixels
}

func (o Options) normalized() Options {
	if o.PixelRatio <= 0 {
		o.PixelRatio = DefaultPixelRatio
	}
	if o.Background == "" {
		o.Background = DefaultBackground
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	return o
}

// validate checks normalized options.
func (o Options) validate() error {
	if o.Width < MinWidth {
		return fmt.Errorf("card width %d is below the minimum of %d", o.Width, MinWidth)
	}
	if _, err := ParseHexColor(o.Background); err != nil {
		return err
	}
	return nil
}

// ParseHexColor parses #rgb or #rrggbb.
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
