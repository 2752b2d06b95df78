// Package theme maps the configured accent choice to terminal colors.
// Palettes are plain values handed to the renderer; nothing here is global.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the accent color set used when rendering command output.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Tertiary  lipgloss.Color
}

const (
	green = lipgloss.Color("#1A8C59")
	gold  = lipgloss.Color("#F2CC66")
	beige = lipgloss.Color("#F7E5B8")
	blue  = lipgloss.Color("#3B82F6")
	pink  = lipgloss.Color("#EC4899")
)

// ForAccent returns the palette for an accent choice, falling back to green
// for anything unrecognized.
func ForAccent(accent string) Palette {
	p := Palette{Secondary: gold, Tertiary: beige}
	switch accent {
	case "gold":
		p.Primary = gold
		p.Secondary = green
	case "beige":
		p.Primary = beige
		p.Tertiary = green
	case "blue":
		p.Primary = blue
	case "pink":
		p.Primary = pink
	default:
		p.Primary = green
	}
	return p
}

// Styles bundles the lipgloss styles commands render with.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Bar    lipgloss.Style
	Muted  lipgloss.Style
	Need   lipgloss.Style
	Want   lipgloss.Style
	Middle lipgloss.Style
}

func NewStyles(p Palette) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(p.Secondary),
		Value:  lipgloss.NewStyle().Bold(true),
		Bar:    lipgloss.NewStyle().Foreground(p.Primary),
		Muted:  lipgloss.NewStyle().Faint(true),
		Need:   lipgloss.NewStyle().Foreground(green).Bold(true),
		Want:   lipgloss.NewStyle().Foreground(pink).Bold(true),
		Middle: lipgloss.NewStyle().Foreground(gold).Bold(true),
	}
}
