package golf

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-golf/internal/core"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/match"
	"github.com/vovakirdan/tui-golf/internal/games/golf/surface"
)

const ballRune = '●'

// Render draws the current screen of the match.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.dirty = false
	g.manager.Painted()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	m := g.manager
	switch m.State() {
	case match.StateShowIntro:
		g.renderHole(dst, false)
		g.renderPanel(dst, g.introLines())
		g.renderHint(dst, "click or press enter to start")
	case match.StatePlaceBall:
		g.renderHole(dst, m.TeeHighlighted())
		line1, line2 := m.PlacePrompt()
		g.renderHUD(dst, line1, core.ColorBrightWhite, line2, core.ColorWhite)
	case match.StatePlay:
		g.renderHole(dst, false)
		g.renderBall(dst)
		g.renderPlayHUD(dst)
	case match.StateShowStandings:
		g.renderPanel(dst, g.standingsLines())
		g.renderHint(dst, "click or press enter to continue")
	case match.StateShowWinner:
		g.renderPanel(dst, g.winnerLines())
		g.renderHint(dst, "click to return - r plays again")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minCols, minRows), core.ColorGray)
}

// renderHole samples the painted surface at the center of every cell.
func (g *Game) renderHole(dst *core.Screen, teeHighlight bool) {
	s := g.manager.Surface()
	h := g.manager.CurrentHole()
	for row := 0; row < g.view.rows; row++ {
		for col := 0; col < g.view.cols; col++ {
			x, y := g.view.toCourse(col, row)
			r, c := cellFor(s.ClassAt(x, y), h, x, y, teeHighlight)
			dst.SetColored(col, row, r, c)
		}
	}
}

func cellFor(class surface.Class, h *course.Hole, x, y int, teeHighlight bool) (rune, core.Color) {
	switch class {
	case surface.ClassLawn:
		return '░', core.ColorDarkGreen
	case surface.ClassFairway:
		return '·', core.ColorGreen
	case surface.ClassDown:
		return forceRune(h, x, y, course.SurfaceDown), core.ColorCyan
	case surface.ClassUp:
		return forceRune(h, x, y, course.SurfaceUp), core.ColorBlue
	case surface.ClassCup:
		return 'O', core.ColorBrightWhite
	case surface.ClassTee:
		if teeHighlight {
			return '■', core.ColorBrightYellow
		}
		return '▫', core.ColorBrightGreen
	case surface.ClassWall:
		return '█', core.ColorYellow
	default:
		return ' ', core.ColorDefault
	}
}

// forceRune points along the dominant axis of the force zone at (x, y).
func forceRune(h *course.Hole, x, y int, t course.SurfaceType) rune {
	z, ok := h.ForceAt(x, y, t)
	if !ok {
		return '~'
	}
	f := z.Force
	if math.Abs(f.X) > math.Abs(f.Y) {
		if f.X > 0 {
			return '→'
		}
		return '←'
	}
	if f.Y > 0 {
		return '↓'
	}
	return '↑'
}

func (g *Game) renderBall(dst *core.Screen) {
	b := g.manager.Ball()
	if b.Holed {
		return
	}
	col, row := g.view.toScreen(b.Pos.X, b.Pos.Y)
	if col >= 0 && col < g.view.cols && row >= 0 && row < g.view.rows {
		dst.SetColored(col, row, ballRune, core.ColorBrightWhite)
	}
}

func (g *Game) renderPlayHUD(dst *core.Screen) {
	m := g.manager
	p := m.CurrentPlayer()
	status := fmt.Sprintf("hole %d/%d  par %d  %s  strokes %d  total %d",
		m.HoleIndex()+1, len(m.Course().Holes), m.CurrentHole().Par,
		p.Name, p.Strokes[m.HoleIndex()], p.Total())

	if msg := m.Message(); msg != "" {
		g.renderHUD(dst, status, core.ColorWhite, msg, core.ColorBrightYellow)
		return
	}
	g.renderHUD(dst, status, core.ColorWhite, "swipe through the ball to putt - esc leaves", core.ColorGray)
}

// renderHUD draws the two status lines below the playfield.
func (g *Game) renderHUD(dst *core.Screen, line1 string, c1 core.Color, line2 string, c2 core.Color) {
	y := g.screenH - hudRows
	dst.DrawHLine(0, y-1, g.screenW, '─', core.ColorGray)
	dst.DrawTextCentered(y, line1, c1)
	dst.DrawTextCentered(y+1, line2, c2)
}

func (g *Game) renderHint(dst *core.Screen, hint string) {
	dst.DrawTextCentered(g.screenH-1, hint, core.ColorGray)
}

// renderPanel draws a bordered box with centered lines in the middle of
// the playfield.
func (g *Game) renderPanel(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2
	x0 := (g.screenW - width) / 2
	y0 := (g.screenH - hudRows - height) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := ' '
			switch {
			case y == 0 && x == 0:
				r = '┌'
			case y == 0 && x == width-1:
				r = '┐'
			case y == height-1 && x == 0:
				r = '└'
			case y == height-1 && x == width-1:
				r = '┘'
			case y == 0 || y == height-1:
				r = '─'
			case x == 0 || x == width-1:
				r = '│'
			}
			dst.SetColored(x0+x, y0+y, r, core.ColorWhite)
		}
	}
	for i, l := range lines {
		pad := (width - 2 - len([]rune(l))) / 2
		dst.DrawTextColored(x0+1+pad, y0+1+i, l, core.ColorBrightWhite)
	}
}

func (g *Game) introLines() []string {
	c := g.manager.Course()
	players := "1 player"
	if n := len(g.manager.Players()); n > 1 {
		players = fmt.Sprintf("%d players", n)
	}
	return []string{
		c.Name,
		"",
		fmt.Sprintf("%d holes - par %d", len(c.Holes), c.Par()),
		players,
	}
}

// winnerLines announces the winner and, with more than one player, the
// final ranking.
func (g *Game) winnerLines() []string {
	m := g.manager
	ranking := m.Standings()
	headline, detail := match.Summary(ranking[0], m.Course().Par())
	lines := []string{headline, "", detail}
	if len(ranking) < 2 {
		return lines
	}
	lines = append(lines, "")
	for i, s := range ranking {
		lines = append(lines, fmt.Sprintf("%d. %-9s %4d", i+1, s.Player.Name, s.Total))
	}
	return lines
}

// standingsLines lays out the strokes table for the holes around the
// current one, followed by the totals.
func (g *Game) standingsLines() []string {
	m := g.manager
	start, end := match.Window(m.HoleIndex())

	var head strings.Builder
	fmt.Fprintf(&head, "%-9s", "")
	for i := start; i < end; i++ {
		fmt.Fprintf(&head, "%3d", i+1)
	}
	fmt.Fprintf(&head, "%6s", "total")

	var par strings.Builder
	fmt.Fprintf(&par, "%-9s", "par")
	for i := start; i < end; i++ {
		fmt.Fprintf(&par, "%3d", m.Course().Holes[i].Par)
	}
	fmt.Fprintf(&par, "%6d", m.Course().Par())

	lines := []string{fmt.Sprintf("standings after hole %d", m.HoleIndex()+1), "", head.String(), par.String()}
	for _, p := range m.Players() {
		var row strings.Builder
		fmt.Fprintf(&row, "%-9s", p.Name)
		for i := start; i < end; i++ {
			fmt.Fprintf(&row, "%3s", match.FormatStrokes(p.Strokes[i]))
		}
		fmt.Fprintf(&row, "%6d", p.Total())
		lines = append(lines, row.String())
	}
	return lines
}
