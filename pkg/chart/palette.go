package chart

// Fixed chart colors. Only grid and label colors follow the theme.
const (
	LineColor      = "#3b82f6"
	BarTopColor    = "#3b82f6"
	BarBottomColor = "#8b5cf6"
	PieLabelColor  = "#ffffff"
)

// PieColors is the cyclic slice palette; slice i uses PieColors[i%5].
var PieColors = []string{"#3b82f6", "#8b5cf6", "#ec4899", "#f59e0b", "#10b981"}

// Palette carries the theme-dependent colors the renderer queries.
type Palette struct {
	Grid       string // gridlines (theme border color)
	Text       string // axis/category labels (theme secondary text)
	Background string // surface background for raster output
}

// PieColor returns the palette color for slice index i.
func PieColor(i int) string {
	if i < 0 {
		i = -i
	}
	return PieColors[i%len(PieColors)]
}
