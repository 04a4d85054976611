package tailwindcolor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownShade is returned for a shade step outside the scale.
var ErrUnknownShade = errors.New("unknown shade")

// Shade is a lightness step within a family. Lower is lighter.
type Shade int

const (
	Shade50  Shade = 50
	Shade100 Shade = 100
	Shade200 Shade = 200
	Shade300 Shade = 300
	Shade400 Shade = 400
	Shade500 Shade = 500
	Shade600 Shade = 600
	Shade700 Shade = 700
	Shade800 Shade = 800
	Shade900 Shade = 900
	Shade950 Shade = 950
)

const numShades = 11

// Shades lists every step in ascending order.
var Shades = [numShades]Shade{
	Shade50, Shade100, Shade200, Shade300, Shade400, Shade500,
	Shade600, Shade700, Shade800, Shade900, Shade950,
}

// Index returns the position of s in Shades, or -1.
func (s Shade) Index() int {
	switch {
	case s == Shade50:
		return 0
	case s == Shade950:
		return numShades - 1
	case s >= Shade100 && s <= Shade900 && s%100 == 0:
		return int(s / 100)
	}
	return -1
}

// Valid reports whether s is one of Shades.
func (s Shade) Valid() bool { return s.Index() >= 0 }

func (s Shade) String() string { return strconv.Itoa(int(s)) }

// ParseShade parses a decimal shade step such as "500".
func ParseShade(str string) (Shade, error) {
	n, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil || !Shade(n).Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownShade, str)
	}
	return Shade(n), nil
}
