package game

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"termrpg/internal/render"
)

// listScreen describes a blocking full-screen list.
//
// status, if set, supplies the status line for the current row. onKey
// handles keys the list does not use for navigation and returns a status
// message and whether to close; its cursor may be past the end of an
// empty list.
type listScreen struct {
	title  string
	footer string
	close  rune // extra key that closes the screen, besides Esc and q
	lines  func() []render.Line
	status func(cursor int) string
	onKey  func(ev *tcell.EventKey, cursor int) (string, bool)
}

// runList blocks until the screen is closed.
func (g *Game) runList(ctx context.Context, ls *listScreen) error {
	prev := g.state
	g.state = StateMenu
	defer func() { g.state = prev }()

	cursor, status := 0, ""
	for {
		lines := ls.lines()
		cursor = max(0, min(cursor, len(lines)-1))
		st := status
		if st == "" && ls.status != nil && len(lines) > 0 {
			st = ls.status(cursor)
		}
		g.renderer.DrawMenu(render.Menu{
			Title:  ls.title,
			Lines:  lines,
			Cursor: cursor,
			Footer: ls.footer,
			Status: st,
		})
		g.renderer.Show()

		ev, err := g.nextKey(ctx)
		if err != nil {
			return err
		}
		if ev == nil {
			continue
		}
		status = ""
		_, h := g.screen.Size()
		page := max(1, h-5)
		switch ev.Key() {
		case tcell.KeyEscape:
			return nil
		case tcell.KeyUp:
			cursor--
			continue
		case tcell.KeyDown:
			cursor++
			continue
		case tcell.KeyPgUp:
			cursor -= page
			continue
		case tcell.KeyPgDn:
			cursor += page
			continue
		case tcell.KeyRune:
			switch r := ev.Rune(); {
			case r == 'k' || r == 'K':
				cursor--
				continue
			case r == 'j' || r == 'J':
				cursor++
				continue
			case r == 'q' || r == 'Q' || (ls.close != 0 && unicode.ToLower(r) == ls.close):
				return nil
			}
		}
		if ls.onKey != nil {
			msg, done := ls.onKey(ev, cursor)
			if done {
				return nil
			}
			status = msg
		}
	}
}

// sentence capitalises an error for display.
func sentence(err error) string {
	s := err.Error()
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
