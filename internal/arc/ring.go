package arc

import "strconv"

// RingView is what the skills template needs to draw one ring.
type RingView struct {
	Label      string
	Level      int
	Radius     float64
	Center     int
	ViewBox    string
	Stroke     int
	DashArray  string
	DashOffset string
}

// Ring builds the template values for a labelled ring. Dash values are
// formatted with three decimals, enough for a 100-unit viewBox.
func Ring(label string, level int) RingView {
	p := ForLevel(level)
	return RingView{
		Label:      label,
		Level:      Clamp(level),
		Radius:     Radius,
		Center:     Center,
		ViewBox:    "0 0 " + strconv.Itoa(ViewBox) + " " + strconv.Itoa(ViewBox),
		Stroke:     StrokeWidth,
		DashArray:  formatLength(p.Circumference),
		DashOffset: formatLength(p.DashOffset),
	}
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
