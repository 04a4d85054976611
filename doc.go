// Package tailwindcolor provides the Tailwind CSS color scale as
// ready-to-use color values.
//
// The palette has 22 hue families (slate through rose) of 11 shades
// each, from 50 (lightest) to 950 (darkest). Every entry is an
// [RGBColor], which implements [image/color.Color]:
//
//	c := tailwindcolor.Blue.Shade(tailwindcolor.Shade500)
//	c, err := tailwindcolor.LookupName("blue-500")
//
// Arbitrary "#RRGGBB" strings are converted with [ParseHex] and
// [ParseHexOpacity]. Both are pure and safe for concurrent use, as is
// the palette, which is built once at package initialization.
package tailwindcolor
