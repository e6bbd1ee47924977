package chart

// OpKind names a recorded Surface call.
type OpKind int

// OpKind values, one per Surface method.
const (
	OpClear OpKind = iota
	OpLine
	OpPolyline
	OpCircle
	OpRect
	OpWedge
	OpText
)

// String returns the Surface method name for k.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "Clear"
	case OpLine:
		return "StrokeLine"
	case OpPolyline:
		return "StrokePolyline"
	case OpCircle:
		return "FillCircle"
	case OpRect:
		return "FillRect"
	case OpWedge:
		return "FillWedge"
	case OpText:
		return "FillText"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Points []Point
	Rect   Rect
	Paint  Paint
	Color  string
	Width  float64
	Radius float64
	Start  float64
	Sweep  float64
	Text   string
	Font   Font
	Align  Align
}

// Recorder is a Surface that stores every call since the last Clear. It
// also counts how many times it has been cleared, which equals the number
// of renders it has received.
type Recorder struct {
	Width, Height float64

	ops    []Op
	clears int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear drops recorded operations and records the new logical size.
func (r *Recorder) Clear(width, height float64) {
	r.Width, r.Height = width, height
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
	r.clears++
}

// StrokeLine records a line.
func (r *Recorder) StrokeLine(from, to Point, color string, width float64) {
	r.ops = append(r.ops, Op{Kind: OpLine, Points: []Point{from, to}, Color: color, Width: width})
}

// StrokePolyline records a polyline.
func (r *Recorder) StrokePolyline(pts []Point, color string, width float64) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.ops = append(r.ops, Op{Kind: OpPolyline, Points: cp, Color: color, Width: width})
}

// FillCircle records a disc.
func (r *Recorder) FillCircle(center Point, radius float64, color string) {
	r.ops = append(r.ops, Op{Kind: OpCircle, Points: []Point{center}, Radius: radius, Color: color})
}

// FillRect records a rectangle.
func (r *Recorder) FillRect(rect Rect, paint Paint) {
	r.ops = append(r.ops, Op{Kind: OpRect, Rect: rect, Paint: paint})
}

// FillWedge records a pie sector.
func (r *Recorder) FillWedge(center Point, radius, start, sweep float64, color string) {
	r.ops = append(r.ops, Op{
		Kind: OpWedge, Points: []Point{center}, Radius: radius,
		Start: start, Sweep: sweep, Color: color,
	})
}

// FillText records a text draw.
func (r *Recorder) FillText(text string, at Point, color string, font Font, align Align) {
	r.ops = append(r.ops, Op{Kind: OpText, Points: []Point{at}, Text: text, Color: color, Font: font, Align: align})
}

// Ops returns the operations recorded since the last Clear, starting with
// the Clear itself.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Count returns how many operations of kind were recorded since the last
// Clear.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the text of every FillText call since the last Clear.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Renders returns how many times the surface has been cleared.
func (r *Recorder) Renders() int {
	return r.clears
}
