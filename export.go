package tailwindcolor

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an export format that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// Format selects the encoding used by Encode.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatCSV
	FormatCSS
)

var formatNames = [...]string{
	FormatYAML: "yaml",
	FormatTOML: "toml",
	FormatCSV:  "csv",
	FormatCSS:  "css",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formatNames[f]
}

// ParseFormat maps a format name ("yaml", "yml", "toml", "csv", "css")
// to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "csv":
		return FormatCSV, nil
	case "css":
		return FormatCSS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(formatNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return []byte(formatNames[f]), nil
}

// FormatForPath picks a Format from the extension of path.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: no extension in %q", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Encode writes families to w in the given format. Families and shades
// keep palette order wherever the format allows it.
func Encode(w io.Writer, f Format, fams []Family) error {
	switch f {
	case FormatYAML:
		return encodeYAML(w, fams)
	case FormatTOML:
		return encodeTOML(w, fams)
	case FormatCSV:
		return encodeCSV(w, fams)
	case FormatCSS:
		return encodeCSS(w, fams)
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
}

// encodeYAML builds the document as nodes so family and shade order
// survive; yaml.v3 sorts plain map keys.
func encodeYAML(w io.Writer, fams []Family) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, fam := range fams {
		shades := &yaml.Node{Kind: yaml.MappingNode}
		for i, s := range Shades {
			shades.Content = append(shades.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: s.String()},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fam.hex[i], Style: yaml.DoubleQuotedStyle},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: fam.name},
			shades,
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return err
	}
	return enc.Close()
}

func encodeTOML(w io.Writer, fams []Family) error {
	doc := make(map[string]map[string]string, len(fams))
	for _, fam := range fams {
		shades := make(map[string]string, numShades)
		for i, s := range Shades {
			shades[s.String()] = fam.hex[i]
		}
		doc[fam.name] = shades
	}
	return toml.NewEncoder(w).Encode(doc)
}

func encodeCSV(w io.Writer, fams []Family) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"family", "shade", "hex", "red", "green", "blue"}); err != nil {
		return err
	}
	for _, fam := range fams {
		for i, s := range Shades {
			n := fam.colors[i].NRGBA()
			row := []string{
				fam.name,
				s.String(),
				fam.hex[i],
				strconv.Itoa(int(n.R)),
				strconv.Itoa(int(n.G)),
				strconv.Itoa(int(n.B)),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func encodeCSS(w io.Writer, fams []Family) error {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, fam := range fams {
		for i, s := range Shades {
			fmt.Fprintf(&b, "  --color-%s: %s;\n", Name(fam.name, s), fam.hex[i])
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
