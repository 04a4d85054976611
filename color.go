package tailwindcolor

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
)

var (
	// ErrInvalidFormat is returned when the input is not '#' followed by
	// six characters.
	ErrInvalidFormat = errors.New("invalid hex color format, want #RRGGBB")
	// ErrMalformedHexDigits is returned when the six characters after '#'
	// are not all hexadecimal digits.
	ErrMalformedHexDigits = errors.New("malformed hex digits")
	// ErrOpacityRange is returned for an opacity outside [0, 1].
	ErrOpacityRange = errors.New("opacity out of range [0, 1]")
)

// ParseError records a failed hex color parse.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse color %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RGBColor is an immutable color with normalized red, green, blue and
// opacity channels, each in [0, 1]. It implements color.Color.
type RGBColor struct {
	r, g, b, a float64
}

// ParseHex converts a "#RRGGBB" string into a fully opaque color.
func ParseHex(hex string) (RGBColor, error) {
	return ParseHexOpacity(hex, 1)
}

// ParseHexOpacity converts a "#RRGGBB" string into a color with the
// given opacity. Digits are case-insensitive. Shorthand (#RGB) and
// alpha (#RRGGBBAA) forms are rejected.
func ParseHexOpacity(hex string, opacity float64) (RGBColor, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGBColor{}, &ParseError{Input: hex, Err: ErrInvalidFormat}
	}
	// also rejects NaN
	if !(opacity >= 0 && opacity <= 1) {
		return RGBColor{}, &ParseError{Input: hex, Err: ErrOpacityRange}
	}
	n, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return RGBColor{}, &ParseError{Input: hex, Err: ErrMalformedHexDigits}
	}
	return RGBColor{
		r: float64((n>>16)&0xff) / 255,
		g: float64((n>>8)&0xff) / 255,
		b: float64(n&0xff) / 255,
		a: opacity,
	}, nil
}

// MustParseHex is like ParseHex but panics on error. It is meant for
// literals known to be valid.
func MustParseHex(hex string) RGBColor {
	c, err := ParseHex(hex)
	if err != nil {
		panic("tailwindcolor.MustParseHex: " + err.Error())
	}
	return c
}

func (c RGBColor) Red() float64     { return c.r }
func (c RGBColor) Green() float64   { return c.g }
func (c RGBColor) Blue() float64    { return c.b }
func (c RGBColor) Opacity() float64 { return c.a }

// Components returns the four normalized channels.
func (c RGBColor) Components() (r, g, b, a float64) {
	return c.r, c.g, c.b, c.a
}

// WithOpacity returns a copy of c with its opacity replaced. Values
// outside [0, 1] are clamped.
func (c RGBColor) WithOpacity(opacity float64) RGBColor {
	switch {
	case math.IsNaN(opacity) || opacity < 0:
		opacity = 0
	case opacity > 1:
		opacity = 1
	}
	c.a = opacity
	return c
}

// NRGBA returns the color with 8 bits per channel, not premultiplied.
func (c RGBColor) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.r), G: to8(c.g), B: to8(c.b), A: to8(c.a)}
}

// NRGBA64 returns the color with 16 bits per channel, not premultiplied.
func (c RGBColor) NRGBA64() color.NRGBA64 {
	return color.NRGBA64{R: to16(c.r), G: to16(c.g), B: to16(c.b), A: to16(c.a)}
}

// RGBA implements color.Color.
func (c RGBColor) RGBA() (r, g, b, a uint32) {
	return c.NRGBA64().RGBA()
}

// Hex formats the red, green and blue channels as "#rrggbb".
// Opacity is not included.
func (c RGBColor) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// String returns the hex form for opaque colors and a CSS rgb() form
// with an alpha component otherwise.
func (c RGBColor) String() string {
	if c.a == 1 {
		return c.Hex()
	}
	n := c.NRGBA()
	return fmt.Sprintf("rgb(%d %d %d / %s)", n.R, n.G, n.B, strconv.FormatFloat(c.a, 'f', -1, 64))
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 0xff))
}

func to16(v float64) uint16 {
	return uint16(math.Round(v * 0xffff))
}
