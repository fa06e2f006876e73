package tui

import (
	"time"

	"github.com/MKhiriev/keeper-reveal/models"
)

type boardLoadedMsg struct {
	board models.Board
	err   error
}

// pushMsg carries a websocket push into the program.
type pushMsg struct {
	push models.Push
}

// connectionMsg reports the watcher state. err is nil once the watcher is
// connected again.
type connectionMsg struct {
	connected bool
	err       error
}

type tickMsg time.Time

type outcomeMsg struct {
	action  string
	outcome models.OutcomeResponse
	auto    bool
	err     error
}

type revealDoneMsg struct {
	sub models.Submission
	err error
}

type revealAllDoneMsg struct {
	report models.RevealReport
	err    error
}

type loginDoneMsg struct {
	err error
}

type submitDoneMsg struct {
	sub models.Submission
	err error
}

type copiedMsg struct {
	team string
	err  error
}

type clearStatusMsg struct{}

type versionMsg struct {
	version string
	err     error
}
