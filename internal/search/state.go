package search

// State is the step a search session is in.
type State int

const (
	Idle State = iota
	Searching
	ResultsShown
	DetailRequested
	DetailShown
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Searching:
		return "searching"
	case ResultsShown:
		return "results-shown"
	case DetailRequested:
		return "detail-requested"
	case DetailShown:
		return "detail-shown"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
