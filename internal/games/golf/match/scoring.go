package match

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
)

// Player is a participant and their strokes per hole.
type Player struct {
	Ordinal int
	Name    string
	Strokes [course.HoleCount]int
}

func newPlayer(ordinal int) Player {
	return Player{Ordinal: ordinal, Name: fmt.Sprintf("player %d", ordinal+1)}
}

// Total returns the strokes over all holes.
func (p Player) Total() int {
	total := 0
	for _, s := range p.Strokes {
		total += s
	}
	return total
}

// Category is the par-relative result of a hole.
type Category int

const (
	CategoryPar Category = iota
	CategoryBirdie
	CategoryEagle
	CategoryBogey
	CategoryDoubleBogey
	CategoryExcellent
	CategoryHoleInOne
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryPar:
		return "par"
	case CategoryBirdie:
		return "birdie"
	case CategoryEagle:
		return "eagle"
	case CategoryBogey:
		return "bogey"
	case CategoryDoubleBogey:
		return "double bogey"
	case CategoryExcellent:
		return "excellent"
	case CategoryHoleInOne:
		return "hole in one"
	default:
		return "unknown"
	}
}

// Classify maps a holed ball to its category. A single stroke is always
// a hole in one; otherwise diff = par - strokes decides.
func Classify(par, strokes int) Category {
	if strokes == 1 {
		return CategoryHoleInOne
	}
	switch diff := par - strokes; {
	case diff <= -2:
		return CategoryDoubleBogey
	case diff == -1:
		return CategoryBogey
	case diff == 0:
		return CategoryPar
	case diff == 1:
		return CategoryBirdie
	case diff == 2:
		return CategoryEagle
	default:
		return CategoryExcellent
	}
}

var phrases = map[Category][]string{
	CategoryPar:         {"well done!", "par..."},
	CategoryBirdie:      {"it is a birdie!", "birdie", "1-under-par"},
	CategoryEagle:       {"eagle!", "an eagle..."},
	CategoryBogey:       {"bogey...", "oh - a bogey!"},
	CategoryDoubleBogey: {"double bogey!", "man! double bogey..."},
	CategoryExcellent:   {"excellent!", "fantastic!"},
	CategoryHoleInOne:   {"hole in one!"},
}

// phraseBook hands out category messages, rotating through synonyms.
type phraseBook struct {
	counter int
}

func (b *phraseBook) next(c Category) string {
	list := phrases[c]
	if len(list) == 1 {
		return list[0]
	}
	s := list[b.counter%len(list)]
	b.counter++
	return s
}

// Standing is a player's position in the match.
type Standing struct {
	Player Player
	Total  int
}

// rank orders players by total strokes. Ties keep player order.
func rank(players []Player) []Standing {
	out := make([]Standing, len(players))
	for i, p := range players {
		out[i] = Standing{Player: p, Total: p.Total()}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total < out[j].Total })
	return out
}

// StandingsWindow is the number of holes shown in the standings table.
const StandingsWindow = 8

// Window returns the range of hole indexes shown in the standings table:
// up to StandingsWindow holes ending at the current hole.
func Window(holeIndex int) (start, end int) {
	start = holeIndex - (StandingsWindow - 1)
	if start < 0 {
		start = 0
	}
	return start, start + StandingsWindow
}

// FormatStrokes renders a stroke count for the standings table:
// "-" for an unplayed hole and "x" for ten or more strokes.
func FormatStrokes(s int) string {
	switch {
	case s <= 0:
		return "-"
	case s >= 10:
		return "x"
	}
	return strconv.Itoa(s)
}

// Summary describes the winner against the course par.
func Summary(winner Standing, coursePar int) (headline, detail string) {
	headline = winner.Player.Name + " wins"
	switch {
	case winner.Total < coursePar:
		detail = fmt.Sprintf("%d strokes under par!", coursePar-winner.Total)
	case winner.Total == coursePar:
		detail = fmt.Sprintf("on par! (%d strokes)", coursePar)
	default:
		detail = fmt.Sprintf("...with %d strokes", winner.Total)
	}
	return headline, detail
}
