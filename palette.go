package tailwindcolor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownFamily is returned for a family name not in the palette.
	ErrUnknownFamily = errors.New("unknown color family")
	// ErrInvalidName is returned for a token that is not "<family>-<shade>".
	ErrInvalidName = errors.New("invalid color name")
)

// Family is one hue of the palette: a name and 11 colors in Shades order.
type Family struct {
	name   string
	hex    [numShades]string
	colors [numShades]RGBColor
}

// Entry is a single (family, shade) pair of the palette.
type Entry struct {
	Family string
	Shade  Shade
	Hex    string
	Color  RGBColor
}

var families = buildPalette()

// Families of the palette, in display order.
var (
	Slate   = mustFamily("slate")
	Gray    = mustFamily("gray")
	Zinc    = mustFamily("zinc")
	Neutral = mustFamily("neutral")
	Stone   = mustFamily("stone")
	Red     = mustFamily("red")
	Orange  = mustFamily("orange")
	Amber   = mustFamily("amber")
	Yellow  = mustFamily("yellow")
	Lime    = mustFamily("lime")
	Green   = mustFamily("green")
	Emerald = mustFamily("emerald")
	Teal    = mustFamily("teal")
	Cyan    = mustFamily("cyan")
	Sky     = mustFamily("sky")
	Blue    = mustFamily("blue")
	Indigo  = mustFamily("indigo")
	Violet  = mustFamily("violet")
	Purple  = mustFamily("purple")
	Fuchsia = mustFamily("fuchsia")
	Pink    = mustFamily("pink")
	Rose    = mustFamily("rose")
)

func buildPalette() []Family {
	fams := make([]Family, len(paletteTable))
	for i, row := range paletteTable {
		f := Family{name: row.name, hex: row.hex}
		for j, h := range row.hex {
			f.colors[j] = MustParseHex(h)
		}
		fams[i] = f
	}
	return fams
}

func mustFamily(name string) Family {
	f, ok := FamilyByName(name)
	if !ok {
		panic("tailwindcolor: missing family " + name)
	}
	return f
}

// Families returns a copy of every family in display order.
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}

// FamilyNames returns the family names in display order.
func FamilyNames() []string {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.name
	}
	return names
}

// FamilyByName finds a family by its case-insensitive name.
func FamilyByName(name string) (Family, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range families {
		if f.name == name {
			return f, true
		}
	}
	return Family{}, false
}

// Lookup returns the color for the given family name and shade.
func Lookup(family string, s Shade) (RGBColor, error) {
	f, ok := FamilyByName(family)
	if !ok {
		return RGBColor{}, fmt.Errorf("%w: %q", ErrUnknownFamily, family)
	}
	c, ok := f.Get(s)
	if !ok {
		return RGBColor{}, fmt.Errorf("%w: %d", ErrUnknownShade, int(s))
	}
	return c, nil
}

// Entries lists every palette entry, family by family.
func Entries() []Entry {
	out := make([]Entry, 0, len(families)*numShades)
	for _, f := range families {
		out = append(out, f.Entries()...)
	}
	return out
}

func (f Family) Name() string { return f.name }

// Len is always 11 for palette families and 0 for the zero Family.
func (f Family) Len() int {
	if f.name == "" {
		return 0
	}
	return numShades
}

// Shade returns the color at step s. It panics if s is not one of
// Shades; use Get when s is not known to be valid.
func (f Family) Shade(s Shade) RGBColor {
	i := s.Index()
	if i < 0 {
		panic(fmt.Sprintf("tailwindcolor: %s has no shade %d", f.name, int(s)))
	}
	return f.colors[i]
}

// Get returns the color at step s and whether s is a valid shade.
func (f Family) Get(s Shade) (RGBColor, bool) {
	i := s.Index()
	if i < 0 {
		return RGBColor{}, false
	}
	return f.colors[i], true
}

// At returns the i-th color, 0 being shade 50.
func (f Family) At(i int) RGBColor { return f.colors[i] }

// Hex returns the literal hex string the shade was built from, or ""
// for an invalid shade.
func (f Family) Hex(s Shade) string {
	i := s.Index()
	if i < 0 {
		return ""
	}
	return f.hex[i]
}

// Colors returns the 11 colors in Shades order.
func (f Family) Colors() []RGBColor {
	out := make([]RGBColor, numShades)
	copy(out, f.colors[:])
	return out
}

func (f Family) Entries() []Entry {
	out := make([]Entry, numShades)
	for i, s := range Shades {
		out[i] = Entry{Family: f.name, Shade: s, Hex: f.hex[i], Color: f.colors[i]}
	}
	return out
}

// Name formats a "<family>-<shade>" token such as "blue-500".
func Name(family string, s Shade) string {
	return strings.ToLower(family) + "-" + s.String()
}

// ParseName parses a "<family>-<shade>" token such as "blue-500".
// Examples: "slate-50", " Rose-950 ".
func ParseName(name string) (Family, Shade, error) {
	str := strings.TrimSpace(name)
	i := strings.LastIndexByte(str, '-')
	if i <= 0 || i == len(str)-1 {
		return Family{}, 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	f, ok := FamilyByName(str[:i])
	if !ok {
		return Family{}, 0, fmt.Errorf("%w: %q", ErrUnknownFamily, str[:i])
	}
	s, err := ParseShade(str[i+1:])
	if err != nil {
		return Family{}, 0, err
	}
	return f, s, nil
}

// LookupName returns the color for a "<family>-<shade>" token.
func LookupName(name string) (RGBColor, error) {
	f, s, err := ParseName(name)
	if err != nil {
		return RGBColor{}, err
	}
	return f.Shade(s), nil
}
