package render

import (
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// Built-in markdown style names
const (
	ThemeDark       = "dark"
	ThemeLight      = "light"
	ThemeTokyoNight = "tokyonight"
	ThemeCatppuccin = "catppuccin"
	ThemeDracula    = "dracula"
	ThemeNoTTY      = "notty"
	ThemeASCII      = "ascii"
)

func strPtr(s string) *string { return &s }

// catppuccinStyle recolors the dark style with the Catppuccin Mocha palette
func catppuccinStyle() ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	cfg.Document.Color = strPtr("#cdd6f4")
	cfg.Heading.Color = strPtr("#89b4fa")
	cfg.H1.Color = strPtr("#1e1e2e")
	cfg.H1.BackgroundColor = strPtr("#cba6f7")
	cfg.Link.Color = strPtr("#89dceb")
	cfg.LinkText.Color = strPtr("#a6e3a1")
	cfg.Code.Color = strPtr("#fab387")
	cfg.Code.BackgroundColor = strPtr("#313244")
	return cfg
}

// BuiltinStyle returns the glamour style config for a built-in name.
// Returns false for anything else, which is then treated as a file path.
func BuiltinStyle(name string) (ansi.StyleConfig, bool) {
	switch name {
	case ThemeDark:
		return styles.DarkStyleConfig, true
	case ThemeLight:
		return styles.LightStyleConfig, true
	case ThemeTokyoNight, "tokyo-night":
		return styles.TokyoNightStyleConfig, true
	case ThemeCatppuccin:
		return catppuccinStyle(), true
	case ThemeDracula:
		return styles.DraculaStyleConfig, true
	case ThemeNoTTY:
		return styles.NoTTYStyleConfig, true
	case ThemeASCII:
		return styles.ASCIIStyleConfig, true
	default:
		return ansi.StyleConfig{}, false
	}
}

// IsBuiltinStyle returns true if the style needs no file on disk.
func IsBuiltinStyle(style string) bool {
	_, ok := BuiltinStyle(style)
	return ok
}

// ThemeInfo contains information about a theme for display purposes.
type ThemeInfo struct {
	Name        string
	Description string
}

// AvailableThemes lists the built-in markdown styles.
func AvailableThemes() []ThemeInfo {
	return []ThemeInfo{
		{Name: ThemeDark, Description: "Dark theme (default)"},
		{Name: ThemeTokyoNight, Description: "Tokyo Night color scheme"},
		{Name: ThemeCatppuccin, Description: "Catppuccin Mocha color scheme"},
		{Name: ThemeLight, Description: "Light theme for bright terminals"},
		{Name: ThemeDracula, Description: "Dracula color scheme"},
		{Name: ThemeNoTTY, Description: "Plain text (no styling)"},
		{Name: ThemeASCII, Description: "ASCII-only output"},
	}
}

// ThemeNames returns just the theme names.
func ThemeNames() []string {
	themes := AvailableThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
