package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color scheme for a rendered page.
type Theme struct {
	Name string

	Title    lipgloss.Color
	Status   lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Hint     lipgloss.Color
	Tag      lipgloss.Color
	TagBg    lipgloss.Color
	Border   lipgloss.Color
	Link     lipgloss.Color
	Disabled lipgloss.Color
	Star     lipgloss.Color

	// Starfield enables the animated background in the interactive UI.
	Starfield bool
}

// ClassicTheme is the plain light-on-dark layout.
var ClassicTheme = Theme{
	Name:     "classic",
	Title:    lipgloss.Color("#5FAFD7"), // light blue
	Status:   lipgloss.Color("#5FAFD7"),
	Success:  lipgloss.Color("#00D787"), // green
	Error:    lipgloss.Color("#FF005F"), // red
	Hint:     lipgloss.Color("#6C6C6C"), // dim gray
	Tag:      lipgloss.Color("#FFFFFF"),
	TagBg:    lipgloss.Color("#3A3A3A"), // dark gray
	Border:   lipgloss.Color("#585858"),
	Link:     lipgloss.Color("#87AFFF"),
	Disabled: lipgloss.Color("#4E4E4E"),
	Star:     lipgloss.Color("#4E4E4E"),
}

// NeonTheme is the high-contrast layout drawn over a star field.
var NeonTheme = Theme{
	Name:      "neon",
	Title:     lipgloss.Color("#FF00FF"), // magenta
	Status:    lipgloss.Color("#00FFFF"), // cyan
	Success:   lipgloss.Color("#39FF14"),
	Error:     lipgloss.Color("#FF3131"),
	Hint:      lipgloss.Color("#8A8AFF"),
	Tag:       lipgloss.Color("#000000"),
	TagBg:     lipgloss.Color("#00FFFF"),
	Border:    lipgloss.Color("#FF00FF"),
	Link:      lipgloss.Color("#FFFF00"),
	Disabled:  lipgloss.Color("#5F005F"),
	Star:      lipgloss.Color("#AFAFFF"),
	Starfield: true,
}

// ThemeNames lists the accepted theme names.
var ThemeNames = []string{ClassicTheme.Name, NeonTheme.Name}

// ThemeByName looks up a theme, case-insensitively.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ClassicTheme.Name:
		return ClassicTheme, nil
	case NeonTheme.Name:
		return NeonTheme, nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (valid: %s)", name, strings.Join(ThemeNames, ", "))
	}
}

// Style functions for dynamic theming

func (t Theme) titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Title).Bold(true)
}

func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) successStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

func (t Theme) tagStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Tag).Background(t.TagBg).Padding(0, 1)
}

func (t Theme) actionStyle(enabled bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	if enabled {
		return s.Foreground(t.Tag).Background(t.TagBg)
	}
	return s.Foreground(t.Disabled).Strikethrough(true)
}

func (t Theme) linkStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Link).Underline(true)
}

func (t Theme) disabledStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Disabled)
}

func (t Theme) panelStyle(width int) lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	if width > 0 {
		s = s.Width(width)
	}
	return s
}

// StarStyle styles star field cells.
func (t Theme) StarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Star)
}

// HintStyle styles secondary text such as key help.
func (t Theme) HintStyle() lipgloss.Style {
	return t.hintStyle()
}
