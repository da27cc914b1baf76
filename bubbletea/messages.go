package bubbletea

// searchDoneMsg is sent when a Session search returns. Stale is set when a
// later search overtook it and its outcome was discarded.
type searchDoneMsg struct {
	stale bool
	err   error
}

// coachDoneMsg is sent when a Session.Coach call returns.
type coachDoneMsg struct {
	err error
}
