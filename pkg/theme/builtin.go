package theme

// thRegisterBuiltins registers all built-in themes in the registry.
func thRegisterBuiltins() {
	for _, t := range []Theme{
		thDarkTheme(),
		thLightTheme(),
	} {
		thRegister(t)
	}
}

// thDarkTheme returns the slate dark theme, the startup default.
func thDarkTheme() Theme {
	return Theme{
		Name:          Dark,
		Background:    "#0f172a",
		Surface:       "#1e293b",
		Foreground:    "#f1f5f9",
		TextSecondary: "#94a3b8",
		Accent:        "#3b82f6",

		Border:      "#334155",
		BorderFocus: "#3b82f6",

		Positive: "#10b981",
		Negative: "#ef4444",

		HelpKey:  "#3b82f6",
		HelpDesc: "#64748b",
	}
}

// thLightTheme returns the light counterpart of the dark theme.
func thLightTheme() Theme {
	return Theme{
		Name:          Light,
		Background:    "#f8fafc",
		Surface:       "#ffffff",
		Foreground:    "#0f172a",
		TextSecondary: "#64748b",
		Accent:        "#2563eb",

		Border:      "#e2e8f0",
		BorderFocus: "#2563eb",

		Positive: "#059669",
		Negative: "#dc2626",

		HelpKey:  "#2563eb",
		HelpDesc: "#94a3b8",
	}
}
