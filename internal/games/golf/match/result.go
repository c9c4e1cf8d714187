package match

// Result is the outcome of a finished match.
type Result struct {
	MatchID string
	Course  string
	Par     int
	Players []Player
}

// ResultSaver persists finished matches.
type ResultSaver interface {
	SaveResult(Result) error
}

// Result returns the outcome of the match so far under the given id.
func (m *Manager) Result(matchID string) Result {
	return Result{
		MatchID: matchID,
		Course:  m.course.Name,
		Par:     m.course.Par(),
		Players: m.Players(),
	}
}
