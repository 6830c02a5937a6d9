package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `chatmux config list`
	Hidden      bool   // Hidden keys are not shown in help or config list
	HideIfEmpty bool   // Hidden from config list while unset
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
// Order determines display order in `chatmux config list`.
var ConfigKeys = []ConfigKey{
	// Display
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager command for long output",
		Section:     "Display",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, contrast",
		Section:     "Display",
	},
	{
		Name:        "display_date",
		Default:     "2006-01-02",
		Description: "Date format for audit listings: yyyy-mm-dd, dd/mm/yyyy, mm/dd/yyyy, or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format for audit listings: 12h, 24h",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum level written to the log: debug, info, warn, error",
		Section:     "Logging",
	},
	// Sandbox
	{
		Name:        "default_scenario",
		Default:     "",
		Description: "Scenario file used when none is given",
		Section:     "Sandbox",
	},
	{
		Name:        "history_limit",
		Default:     "500",
		Description: "Maximum transcript lines kept by the play shell",
		Section:     "Sandbox",
	},
	{
		Name:        "audit_limit",
		Default:     "20",
		Description: "Default number of events shown by `chatmux audit`",
		Section:     "Sandbox",
	},
	// Color Overrides - override specific colors from the current theme (ANSI 0-255)
	{
		Name:        "color_success",
		Description: "Override success color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Override warning color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Override error color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Override info color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Override muted text color from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Description: "Override header style from current theme (ANSI 0-255 or 'bold')",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_1",
		Description: "Override markup accent 1 from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_2",
		Description: "Override markup accent 2 from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_3",
		Description: "Override markup accent 3 from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_4",
		Description: "Override markup accent 4 from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_5",
		Description: "Override markup accent 5 from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_6",
		Description: "Override markup accent 6 from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_7",
		Description: "Override markup accent 7 from current theme (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_ui_active",
		Description: "Override active pane highlight in the play shell (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
	{
		Name:        "color_ui_dim",
		Description: "Override dim borders and hints in the play shell (ANSI 0-255)",
		Section:     "Color Overrides",
		HideIfEmpty: true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Display", "Logging", "Sandbox", "Color Overrides"}
}

// ConfigKeysBySection returns visible config keys grouped by section.
func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		if !key.Hidden {
			result[key.Section] = append(result[key.Section], key)
		}
	}
	return result
}
