package session

// Theme is the dark/light flag.
type Theme struct {
	dark bool
}

// NewTheme creates a Theme starting in the given mode.
func NewTheme(dark bool) *Theme {
	return &Theme{dark: dark}
}

// Toggle flips the mode and returns the new value.
func (t *Theme) Toggle() bool {
	t.dark = !t.dark
	return t.dark
}

// IsDark reports whether dark mode is on.
func (t *Theme) IsDark() bool {
	return t.dark
}
