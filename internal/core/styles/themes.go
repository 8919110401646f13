package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the semantic colors every style is built from.
type Palette struct {
	Primary    color.Color // active tab, keys, headings
	Secondary  color.Color // links, code, fuzzy matches
	Foreground color.Color
	Muted      color.Color // previews, help text
	Background color.Color // text on highlighted tabs and buttons
	Surface    color.Color // borders, dividers
	Success    color.Color
	Warning    color.Color // dirty marker, load warnings
	Error      color.Color

	// Light renders markdown with glamour's light base style.
	Light bool
	// Terminal keeps glamour's own colors so markdown follows the terminal's
	// 16 color scheme.
	Terminal bool
}

// DefaultTheme is used when the config names no theme.
const DefaultTheme = "tokyo-night"

type theme struct {
	name    string
	palette Palette
}

// themes lists the built-in palettes in the order they are offered.
var themes = []theme{
	{name: "tokyo-night", palette: Palette{
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	}},
	{name: "paper", palette: Palette{
		Primary:    lipgloss.Color("#3a6ea5"),
		Secondary:  lipgloss.Color("#2e8b7a"),
		Foreground: lipgloss.Color("#2b2b2b"),
		Muted:      lipgloss.Color("#8a8a8a"),
		Background: lipgloss.Color("#fafaf7"),
		Surface:    lipgloss.Color("#d8d8d0"),
		Success:    lipgloss.Color("#3f8f3f"),
		Warning:    lipgloss.Color("#b07d12"),
		Error:      lipgloss.Color("#c0392b"),
		Light:      true,
	}},
	{name: "ansi", palette: Palette{
		Primary:    lipgloss.Color("4"),
		Secondary:  lipgloss.Color("6"),
		Foreground: lipgloss.Color("7"),
		Muted:      lipgloss.Color("8"),
		Background: lipgloss.Color("0"),
		Surface:    lipgloss.Color("8"),
		Success:    lipgloss.Color("2"),
		Warning:    lipgloss.Color("3"),
		Error:      lipgloss.Color("1"),
		Terminal:   true,
	}},
}

// ThemeNames returns the built-in theme names, default first.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.name
	}
	return names
}

// GetPalette returns the palette for a theme name.
func GetPalette(name string) (Palette, bool) {
	for _, t := range themes {
		if t.name == name {
			return t.palette, true
		}
	}
	return Palette{}, false
}

func defaultPalette() Palette {
	p, _ := GetPalette(DefaultTheme)
	return p
}

func hex(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	h := cc.Hex()
	return &h
}

// GlamourStyle returns the markdown style for the about page, tinted with the
// active palette.
func GlamourStyle() glamouransi.StyleConfig {
	p := CurrentPalette
	cfg := glamourstyles.DarkStyleConfig
	if p.Light {
		cfg = glamourstyles.LightStyleConfig
	}
	if p.Terminal {
		return cfg
	}

	tint := map[*glamouransi.StylePrimitive]color.Color{
		&cfg.Document.StylePrimitive:   p.Foreground,
		&cfg.Paragraph.StylePrimitive:  p.Foreground,
		&cfg.Item:                      p.Foreground,
		&cfg.Table.StylePrimitive:      p.Foreground,
		&cfg.Heading.StylePrimitive:    p.Primary,
		&cfg.H1.StylePrimitive:         p.Primary,
		&cfg.H2.StylePrimitive:         p.Primary,
		&cfg.H3.StylePrimitive:         p.Secondary,
		&cfg.Link:                      p.Secondary,
		&cfg.LinkText:                  p.Secondary,
		&cfg.Code.StylePrimitive:       p.Secondary,
		&cfg.BlockQuote.StylePrimitive: p.Muted,
		&cfg.HorizontalRule:            p.Muted,
	}
	for prim, c := range tint {
		prim.Color = hex(c)
	}
	return cfg
}
