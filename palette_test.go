package tailwindcolor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wantFamilies = []string{
	"slate", "gray", "zinc", "neutral", "stone", "red", "orange", "amber",
	"yellow", "lime", "green", "emerald", "teal", "cyan", "sky", "blue",
	"indigo", "violet", "purple", "fuchsia", "pink", "rose",
}

func TestPaletteShape(t *testing.T) {
	fams := Families()
	require.Len(t, fams, 22)
	assert.Equal(t, wantFamilies, FamilyNames())
	for _, f := range fams {
		assert.Equal(t, 11, f.Len(), f.Name())
		assert.Len(t, f.Colors(), 11, f.Name())
	}
	assert.Len(t, Entries(), 22*11)
}

func TestPaletteMatchesParser(t *testing.T) {
	for _, row := range paletteTable {
		f, ok := FamilyByName(row.name)
		require.True(t, ok, row.name)
		for i, s := range Shades {
			want, err := ParseHex(row.hex[i])
			require.NoError(t, err)
			assert.Equal(t, want, f.Shade(s), "%s-%d", row.name, s)
			assert.Equal(t, row.hex[i], f.Hex(s))
			assert.Equal(t, 1.0, f.Shade(s).Opacity())
		}
	}
}

func TestPaletteKnownValues(t *testing.T) {
	tests := []struct {
		fam  Family
		s    Shade
		want string
	}{
		{Slate, Shade50, "#f8fafc"},
		{Slate, Shade950, "#020617"},
		{Blue, Shade500, "#3b82f6"},
		{Red, Shade600, "#dc2626"},
		{Emerald, Shade400, "#34d399"},
		{Neutral, Shade950, "#0a0a0a"},
		{Rose, Shade950, "#4c0519"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.fam.Shade(tt.s).Hex(), "%s-%d", tt.fam.Name(), tt.s)
	}
}

func TestFamilyVars(t *testing.T) {
	vars := []Family{
		Slate, Gray, Zinc, Neutral, Stone, Red, Orange, Amber, Yellow, Lime, Green,
		Emerald, Teal, Cyan, Sky, Blue, Indigo, Violet, Purple, Fuchsia, Pink, Rose,
	}
	fams := Families()
	require.Len(t, vars, len(fams))
	for i := range vars {
		assert.Equal(t, fams[i], vars[i])
	}
}

func TestFamilyOrdering(t *testing.T) {
	// shades darken from 50 to 950 for every family
	for _, f := range Families() {
		prev := 4.0
		for i := range Shades {
			r, g, b, _ := f.At(i).Components()
			sum := r + g + b
			assert.Less(t, sum, prev, "%s index %d", f.Name(), i)
			prev = sum
		}
	}
}

func TestFamilyGet(t *testing.T) {
	c, ok := Blue.Get(Shade500)
	assert.True(t, ok)
	assert.Equal(t, Blue.At(5), c)

	_, ok = Blue.Get(Shade(550))
	assert.False(t, ok)
	assert.Equal(t, "", Blue.Hex(Shade(0)))
	assert.Panics(t, func() { Blue.Shade(Shade(1000)) })
}

func TestFamilyByName(t *testing.T) {
	f, ok := FamilyByName(" Indigo ")
	require.True(t, ok)
	assert.Equal(t, Indigo, f)

	_, ok = FamilyByName("mauve")
	assert.False(t, ok)
	assert.Equal(t, 0, Family{}.Len())
}

func TestLookup(t *testing.T) {
	c, err := Lookup("teal", Shade700)
	require.NoError(t, err)
	assert.Equal(t, "#0f766e", c.Hex())

	_, err = Lookup("mauve", Shade700)
	assert.ErrorIs(t, err, ErrUnknownFamily)

	_, err = Lookup("teal", Shade(750))
	assert.ErrorIs(t, err, ErrUnknownShade)
}

func TestShadeIndex(t *testing.T) {
	for i, s := range Shades {
		assert.Equal(t, i, s.Index())
		assert.True(t, s.Valid())
	}
	for _, s := range []Shade{0, 1, 25, 150, 1000, 1100, -100} {
		assert.Equal(t, -1, s.Index(), "%d", s)
		assert.False(t, s.Valid())
	}
}

func TestParseShade(t *testing.T) {
	s, err := ParseShade(" 950")
	require.NoError(t, err)
	assert.Equal(t, Shade950, s)

	for _, in := range []string{"", "55", "abc", "1000"} {
		_, err := ParseShade(in)
		assert.ErrorIs(t, err, ErrUnknownShade, in)
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		in    string
		fam   Family
		shade Shade
	}{
		{"blue-500", Blue, Shade500},
		{" Rose-950 ", Rose, Shade950},
		{"SLATE-50", Slate, Shade50},
	}
	for _, tt := range tests {
		f, s, err := ParseName(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.fam, f)
		assert.Equal(t, tt.shade, s)
	}

	errTests := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidName},
		{"blue", ErrInvalidName},
		{"-500", ErrInvalidName},
		{"blue-", ErrInvalidName},
		{"mauve-500", ErrUnknownFamily},
		{"blue-550", ErrUnknownShade},
		{"blue-five", ErrUnknownShade},
	}
	for _, tt := range errTests {
		_, _, err := ParseName(tt.in)
		assert.ErrorIs(t, err, tt.want, tt.in)
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, e := range Entries() {
		c, err := LookupName(Name(e.Family, e.Shade))
		require.NoError(t, err)
		assert.Equal(t, e.Color, c)
	}
	assert.Equal(t, "blue-500", Name("Blue", Shade500))
}

func TestConcurrentReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range Entries() {
				c, err := Lookup(e.Family, e.Shade)
				if assert.NoError(t, err) {
					assert.Equal(t, e.Color, c)
				}
			}
		}()
	}
	wg.Wait()
}
