// Package layout splits the terminal into the header, the tile grid and
// the footer, and places tiles on an auto-fill grid.
package layout

// Rect is a rectangular area in terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether r has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the X coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether the cell (px, py) lies within r.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Direction is the axis Split divides along.
type Direction int

const (
	// Horizontal splits left-to-right (constraints control width).
	Horizontal Direction = iota
	// Vertical splits top-to-bottom (constraints control height).
	Vertical
)

// Constraint is one of Length, Min or Fill.
type Constraint interface {
	constraint()
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

func (Length) constraint() {}

// Min allocates at least Value cells and shares surplus like Fill{1}.
type Min struct{ Value int }

func (Min) constraint() {}

// Fill shares the remaining space by Weight. A Weight of 0 counts as 1.
type Fill struct{ Weight int }

func (Fill) constraint() {}

// Split divides area into one Rect per constraint along dir, leaving
// spacing cells between neighbours. When fixed sizes exceed the area the
// trailing regions are clipped to zero.
func Split(area Rect, dir Direction, spacing int, constraints ...Constraint) []Rect {
	n := len(constraints)
	if n == 0 {
		return nil
	}
	total := area.Width
	if dir == Vertical {
		total = area.Height
	}
	available := max(total-max(spacing, 0)*(n-1), 0)

	allocs := make([]int, n)
	weights := make([]int, n)
	used, totalWeight := 0, 0
	for i, c := range constraints {
		switch v := c.(type) {
		case Length:
			allocs[i] = max(v.Value, 0)
		case Min:
			allocs[i] = max(v.Value, 0)
			weights[i] = 1
		case Fill:
			weights[i] = max(v.Weight, 1)
		}
		used += allocs[i]
		totalWeight += weights[i]
	}

	if surplus := available - used; surplus > 0 && totalWeight > 0 {
		last := -1
		for i := range n {
			if weights[i] > 0 {
				last = i
			}
		}
		given := 0
		for i := range n {
			if weights[i] == 0 {
				continue
			}
			share := surplus * weights[i] / totalWeight
			if i == last {
				share = surplus - given
			}
			allocs[i] += share
			given += share
		}
	}

	rects := make([]Rect, n)
	offset := 0
	for i := range n {
		size := max(min(allocs[i], total-offset), 0)
		switch dir {
		case Horizontal:
			rects[i] = Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
		case Vertical:
			rects[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
		}
		offset = min(offset+size+max(spacing, 0), total)
	}
	return rects
}
