package domain

// Theme is the persisted look of the dictionary view
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme falls back to light for anything unknown
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Icon returns the toggle button icon for the current theme
func (t Theme) Icon() string {
	if t == ThemeDark {
		return "☀️"
	}
	return "🌙"
}

// Bullet returns the card marker used by the theme
func (t Theme) Bullet() string {
	if t == ThemeDark {
		return "▪️"
	}
	return "▫️"
}
