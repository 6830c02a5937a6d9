package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Color1  string // INVOKED
	Color2  string // HELP
	Color3  string // DENIED-KIND
	Color4  string // DENIED-PERM
	Color5  string // NO-COMMAND
	Color6  string // EMPTY
	Color7  string // ERROR

	// Interactive UI colors (panels, selections, key hints).
	UIActive string
	UIDim    string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"contrast",
}

// ThemeNames lists all themes with explicit dark/light variants.
var ThemeNames = []string{
	"default-dark", "default-light",
	"mono-dark", "mono-light",
	"contrast-dark", "contrast-light",
}

// Themes contains the built-in color themes.
// Dark themes use BRIGHT colors (high contrast on dark backgrounds).
// Light themes use DARK colors (high contrast on light/white backgrounds).
var Themes = map[string]ColorConfig{
	// Classic dark - traditional bright terminal colors for dark backgrounds.
	// Uses the standard 16-color palette for maximum compatibility.
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
		Color1:  "10",  // INVOKED (bright green)
		Color2:  "14",  // HELP (bright cyan)
		Color3:  "11",  // DENIED-KIND (bright yellow)
		Color4:  "13",  // DENIED-PERM (bright magenta)
		Color5:  "9",   // NO-COMMAND (bright red)
		Color6:  "8",   // EMPTY (dark gray)
		Color7:  "196", // ERROR (pure red)

		UIActive: "14",  // bright cyan
		UIDim:    "240", // dark gray
	},

	// Classic light - dark saturated colors for light/white backgrounds.
	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243", // medium-dark gray
		Header:  "bold",
		Color1:  "28",  // INVOKED (dark green)
		Color2:  "30",  // HELP (dark cyan)
		Color3:  "130", // DENIED-KIND (dark orange)
		Color4:  "90",  // DENIED-PERM (dark magenta)
		Color5:  "124", // NO-COMMAND (dark red)
		Color6:  "240", // EMPTY (dark gray)
		Color7:  "88",  // ERROR (deep red)

		UIActive: "27",  // dark blue
		UIDim:    "250", // light gray
	},

	// Mono dark - minimalist grayscale with cyan accent.
	"mono-dark": {
		Success: "50",  // cyan (the one accent)
		Warning: "229", // pale yellow
		Error:   "210", // light red
		Info:    "50",  // cyan
		Muted:   "245", // gray
		Header:  "bold",
		Color1:  "50",  // INVOKED (cyan)
		Color2:  "251", // HELP (light gray)
		Color3:  "248", // DENIED-KIND (gray)
		Color4:  "243", // DENIED-PERM (dim gray)
		Color5:  "229", // NO-COMMAND (pale yellow)
		Color6:  "240", // EMPTY (dark gray)
		Color7:  "210", // ERROR (light red)

		UIActive: "50",  // cyan
		UIDim:    "240", // dark gray
	},

	// Mono light - minimalist grayscale with teal accent.
	"mono-light": {
		Success: "30",  // dark teal (the one accent)
		Warning: "136", // amber
		Error:   "124", // dark red
		Info:    "30",  // dark teal
		Muted:   "244", // gray
		Header:  "bold",
		Color1:  "30",  // INVOKED (teal)
		Color2:  "241", // HELP (dark gray)
		Color3:  "244", // DENIED-KIND (gray)
		Color4:  "247", // DENIED-PERM (light gray)
		Color5:  "136", // NO-COMMAND (amber)
		Color6:  "250", // EMPTY (lighter gray)
		Color7:  "124", // ERROR (dark red)

		UIActive: "30",  // dark teal
		UIDim:    "250", // light gray
	},

	// Contrast dark - maximum readability with pure primaries.
	"contrast-dark": {
		Success: "46",  // pure bright green
		Warning: "226", // pure bright yellow
		Error:   "196", // pure bright red
		Info:    "51",  // pure bright cyan
		Muted:   "250", // bright gray
		Header:  "bold",
		Color1:  "46",  // INVOKED (green)
		Color2:  "51",  // HELP (cyan)
		Color3:  "226", // DENIED-KIND (yellow)
		Color4:  "201", // DENIED-PERM (magenta)
		Color5:  "196", // NO-COMMAND (red)
		Color6:  "245", // EMPTY (gray)
		Color7:  "231", // ERROR (white)

		UIActive: "51",  // pure bright cyan
		UIDim:    "245", // bright gray
	},

	// Contrast light - maximum readability for light backgrounds.
	"contrast-light": {
		Success: "22",  // dark green
		Warning: "130", // dark orange (yellow hard to read on white)
		Error:   "124", // dark red
		Info:    "21",  // dark blue
		Muted:   "240", // dark gray
		Header:  "bold",
		Color1:  "22",  // INVOKED (dark green)
		Color2:  "30",  // HELP (dark cyan)
		Color3:  "130", // DENIED-KIND (dark orange)
		Color4:  "90",  // DENIED-PERM (dark magenta)
		Color5:  "124", // NO-COMMAND (dark red)
		Color6:  "243", // EMPTY (gray)
		Color7:  "232", // ERROR (near black)

		UIActive: "21",  // dark blue
		UIDim:    "248", // light gray
	},
}

// colorConfigKeys maps config/env key names to ColorConfig field names.
var colorConfigKeys = map[string]string{
	"color_success": "Success",
	"color_warning": "Warning",
	"color_error":   "Error",
	"color_info":    "Info",
	"color_muted":   "Muted",
	"color_header":  "Header",
	"color_1":       "Color1",
	"color_2":       "Color2",
	"color_3":       "Color3",
	"color_4":       "Color4",
	"color_5":       "Color5",
	"color_6":       "Color6",
	"color_7":       "Color7",

	"color_ui_active": "UIActive",
	"color_ui_dim":    "UIDim",
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName takes a theme name and returns the full theme name.
// If the name doesn't have a -dark/-light suffix, it appends one based
// on terminal background detection.
func ResolveThemeName(name string) string {
	// If already has suffix, return as-is
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	// Auto-detect and append suffix
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
// 1. Environment variable (CHATMUX_COLOR_*)
// 2. Config file value
// 3. Theme value (from theme config)
// 4. Default theme (auto-detected based on terminal background)
func LoadColorConfig(cfg map[string]string) ColorConfig {
	// Start with auto-detected default
	themeName := ResolveThemeName("default")

	// Check env for theme override
	if envTheme := os.Getenv("CHATMUX_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	// Get base theme (fall back to default-dark if unknown)
	theme, ok := Themes[themeName]
	if !ok {
		theme = Themes["default-dark"]
	}

	// Apply overrides from config and env
	result := theme

	for configKey, fieldName := range colorConfigKeys {
		// Check env first (highest priority)
		envKey := "CHATMUX_" + toUpperSnake(configKey)
		if envVal := os.Getenv(envKey); envVal != "" {
			setColorField(&result, fieldName, envVal)
			continue
		}

		// Check config file
		if cfgVal, ok := cfg[configKey]; ok && cfgVal != "" {
			setColorField(&result, fieldName, cfgVal)
		}
	}

	return result
}

// setColorField sets a field on ColorConfig by name.
func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Warning":
		c.Warning = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Header":
		c.Header = value
	case "Color1":
		c.Color1 = value
	case "Color2":
		c.Color2 = value
	case "Color3":
		c.Color3 = value
	case "Color4":
		c.Color4 = value
	case "Color5":
		c.Color5 = value
	case "Color6":
		c.Color6 = value
	case "Color7":
		c.Color7 = value
	case "UIActive":
		c.UIActive = value
	case "UIDim":
		c.UIDim = value
	}
}

// toUpperSnake converts "color_success" to "COLOR_SUCCESS".
func toUpperSnake(s string) string {
	result := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			result[i] = c - 'a' + 'A'
		} else {
			result[i] = c
		}
	}
	return string(result)
}
