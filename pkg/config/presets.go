package config

// WidgetPreset returns the widget kinds of a named starting set.
// If the name is not recognized, the "default" preset is returned.
func WidgetPreset(name string) []string {
	switch name {
	case "empty":
		return nil
	case "charts":
		return []string{"line", "bar", "pie"}
	case "full":
		return []string{"line", "bar", "pie", "metric"}
	case "default":
		return defaultPreset()
	default:
		return defaultPreset()
	}
}

// PresetNames lists the recognized preset names.
func PresetNames() []string {
	return []string{"charts", "default", "empty", "full"}
}

// defaultPreset is the startup layout: a line chart, a bar chart and a
// metric tile.
func defaultPreset() []string {
	return []string{"line", "bar", "metric"}
}
