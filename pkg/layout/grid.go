package layout

// Grid places count equally sized cells of height cellHeight on as many
// columns of at least minWidth as fit in area.Width, row by row. Cells
// past the bottom of area are still returned; callers scroll or clip.
func Grid(area Rect, count, minWidth, cellHeight, gap int) []Rect {
	if count <= 0 || area.Width <= 0 {
		return nil
	}
	cols := Columns(area.Width, minWidth, gap)
	row := make([]Constraint, cols)
	for i := range row {
		row[i] = Fill{Weight: 1}
	}

	cells := make([]Rect, 0, count)
	for y := area.Y; len(cells) < count; y += cellHeight + gap {
		line := Split(Rect{X: area.X, Y: y, Width: area.Width, Height: cellHeight}, Horizontal, gap, row...)
		for _, r := range line {
			if len(cells) == count {
				break
			}
			cells = append(cells, r)
		}
	}
	return cells
}

// Columns returns how many columns of at least minWidth, separated by gap,
// fit in width. It is never less than one.
func Columns(width, minWidth, gap int) int {
	if minWidth <= 0 {
		return 1
	}
	return max((width+gap)/(minWidth+gap), 1)
}
