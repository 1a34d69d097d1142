package render

// Line is one row of a list screen.
type Line struct {
	Text string
	Dim  bool
}

// Menu is a full-screen list with an optional cursor. Cursor < 0 draws
// no highlight.
type Menu struct {
	Title  string
	Lines  []Line
	Cursor int
	Footer string
	Status string
}

// DrawMenu clears the screen and renders m, scrolling to keep the cursor
// visible.
func (r *Renderer) DrawMenu(m Menu) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.drawText(max(0, (w-len(m.Title))/2), 0, m.Title, styleYellow)
	r.drawHLine(1, styleGray)

	rows := max(1, h-5)
	top := 0
	if m.Cursor >= rows {
		top = m.Cursor - rows + 1
	}
	if len(m.Lines) == 0 {
		r.drawText(2, 2, "(empty)", styleGray)
	}
	for i := top; i < len(m.Lines) && i-top < rows; i++ {
		ln := m.Lines[i]
		y := 2 + i - top
		switch {
		case i == m.Cursor:
			r.drawText(0, y, "► "+ln.Text, styleHighlight)
		case ln.Dim:
			r.drawText(2, y, ln.Text, styleGray)
		default:
			r.drawText(2, y, ln.Text, styleWhite)
		}
	}

	r.drawHLine(h-3, styleGray)
	if m.Status != "" {
		r.drawText(0, h-2, m.Status, styleLog)
	}
	r.drawText(0, h-1, m.Footer, styleGray)
}
