// Package styles maps semantic document tags to terminal style attributes.
//
// The catalog is total: every tag has an entry, many of them the empty
// attribute list (default terminal appearance). It is pure data and is
// consulted only by the renderer at leaf-emission time. A theme file can
// remap individual tags; the built-in catalog covers everything else.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/coinscribe/pkg/doc"
)

// Color is one of the standard 8-color terminal palette entries.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// AttrKind discriminates the attribute variants.
type AttrKind int

const (
	KindReset AttrKind = iota
	KindBold
	KindItalic
	KindForeground
)

// Attribute is a single SGR instruction: reset, intensity, italic, or a
// foreground color with a dull/vivid class.
type Attribute struct {
	Kind  AttrKind
	Color Color // foreground only
	Vivid bool  // foreground only
}

// Style is an ordered attribute list applied before a leaf's content.
type Style []Attribute

func Reset() Attribute        { return Attribute{Kind: KindReset} }
func Bold() Attribute         { return Attribute{Kind: KindBold} }
func Italic() Attribute       { return Attribute{Kind: KindItalic} }
func Fg(c Color) Attribute    { return Attribute{Kind: KindForeground, Color: c} }
func VividFg(c Color) Attribute {
	return Attribute{Kind: KindForeground, Color: c, Vivid: true}
}

// Sequence returns the SGR parameter list for the style, semicolon joined,
// without the CSI introducer or the trailing "m".
func (s Style) Sequence() string {
	params := make([]string, 0, len(s))
	for _, a := range s {
		params = append(params, a.sequence())
	}
	return strings.Join(params, ";")
}

func (a Attribute) sequence() string {
	switch a.Kind {
	case KindBold:
		return termenv.BoldSeq
	case KindItalic:
		return termenv.ItalicSeq
	case KindForeground:
		c := termenv.ANSIColor(a.Color)
		if a.Vivid {
			c = termenv.ANSIColor(int(a.Color) + 8)
		}
		return c.Sequence(false)
	default:
		return termenv.ResetSeq
	}
}

// catalog holds the active tag mapping. Mutated only during init and
// LoadTheme; rendering never writes to it.
var catalog map[doc.Tag]Style

//go:embed theme.yaml
var embeddedTheme []byte

func init() {
	catalog = defaultCatalog()

	// The embedded theme mirrors the defaults; loading it keeps the YAML
	// path exercised and honest.
	if len(embeddedTheme) > 0 {
		if err := applyThemeData(embeddedTheme); err != nil {
			fmt.Fprintf(os.Stderr, "coinscribe: bad embedded theme: %v\n", err)
		}
	}
}

// For returns the attribute list for a tag. Unknown tags get the default
// appearance.
func For(t doc.Tag) Style {
	return catalog[t]
}

// defaultCatalog is the built-in mapping from tag to attributes.
func defaultCatalog() map[doc.Tag]Style {
	return map[doc.Tag]Style{
		doc.TagTitle:           {Bold()},
		doc.TagStatic:          {},
		doc.TagAccount:         {Bold(), Fg(Cyan)},
		doc.TagPubKey:          {Fg(Magenta)},
		doc.TagFilePath:        {Italic(), Fg(White)},
		doc.TagKey:             {},
		doc.TagDeriv:           {},
		doc.TagMnemonic:        {Fg(Cyan)},
		doc.TagAddress:         {Bold(), Fg(Blue)},
		doc.TagInternalAddress: {VividFg(Black)},
		doc.TagTxHash:          {Fg(Magenta)},
		doc.TagPositiveAmount:  {Bold(), Fg(Green)},
		doc.TagNegativeAmount:  {Bold(), Fg(Red)},
		doc.TagFee:             {},
		doc.TagBooleanTrue:     {Fg(Green)},
		doc.TagBooleanFalse:    {Fg(Red)},
		doc.TagCashUnit:        {Fg(Green)},
		doc.TagBitcoinUnit:     {Fg(Yellow)},
		doc.TagTestnetMarker:   {VividFg(Yellow)},
		doc.TagError:           {Fg(Red)},
	}
}

// StyleDef is one tag's appearance in a theme file. A present entry
// replaces the tag's whole attribute list.
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Vivid      bool   `yaml:"vivid,omitempty"`
}

// Theme is the on-disk theme format.
type Theme struct {
	Styles map[string]StyleDef `yaml:"styles"`
}

// LoadTheme overlays the catalog with definitions from a YAML theme file.
// Tags absent from the file keep their current appearance.
func LoadTheme(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	if err := applyThemeData(data); err != nil {
		return fmt.Errorf("failed to load theme file %s: %w", path, err)
	}
	return nil
}

func applyThemeData(data []byte) error {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return fmt.Errorf("failed to parse theme: %w", err)
	}

	byName := make(map[string]doc.Tag, len(doc.Tags))
	for _, t := range doc.Tags {
		byName[t.String()] = t
	}

	for name, def := range theme.Styles {
		tag, ok := byName[name]
		if !ok {
			return fmt.Errorf("unknown style tag %q", name)
		}
		style, err := buildStyle(def)
		if err != nil {
			return fmt.Errorf("style %q: %w", name, err)
		}
		catalog[tag] = style
	}
	return nil
}

func buildStyle(def StyleDef) (Style, error) {
	var style Style
	if def.Bold {
		style = append(style, Bold())
	}
	if def.Italic {
		style = append(style, Italic())
	}
	if def.Foreground != "" {
		c, err := parseColor(def.Foreground)
		if err != nil {
			return nil, err
		}
		if def.Vivid {
			style = append(style, VividFg(c))
		} else {
			style = append(style, Fg(c))
		}
	}
	if style == nil {
		style = Style{}
	}
	return style, nil
}

func parseColor(name string) (Color, error) {
	switch strings.ToLower(name) {
	case "black":
		return Black, nil
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "yellow":
		return Yellow, nil
	case "blue":
		return Blue, nil
	case "magenta":
		return Magenta, nil
	case "cyan":
		return Cyan, nil
	case "white":
		return White, nil
	default:
		return Black, fmt.Errorf("unknown color %q", name)
	}
}
