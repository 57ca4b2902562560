package session

import (
	"errors"
	"fmt"
	"sync"

	"studyshare/internal/notes"
)

// State is the screen a session is on
type State int

const (
	Browsing State = iota
	Authoring
)

func (s State) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Authoring:
		return "authoring"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Event is a user intent that may move the session between screens
type Event int

const (
	ShareNotes Event = iota
	BrowseNotes
	SubmissionSucceeded
)

var ErrInvalidTransition = errors.New("invalid transition")

// Transition returns the state reached from s on e. Navigating to the
// current screen is a no-op.
func Transition(s State, e Event) (State, error) {
	switch e {
	case ShareNotes:
		return Authoring, nil
	case BrowseNotes:
		return Browsing, nil
	case SubmissionSucceeded:
		if s == Authoring {
			return Browsing, nil
		}
		return s, fmt.Errorf("%w: submission succeeded while %s", ErrInvalidTransition, s)
	}
	return s, fmt.Errorf("%w: unknown event %d", ErrInvalidTransition, int(e))
}

// Source says where a dismiss intent for the detail overlay came from
type Source int

const (
	SourceInside Source = iota
	SourceOutside
	SourceCloseButton
)

// ParseSource maps a wire name to a Source; anything unrecognised is
// treated as coming from inside the overlay.
func ParseSource(s string) Source {
	switch s {
	case "outside":
		return SourceOutside
	case "close":
		return SourceCloseButton
	}
	return SourceInside
}

// Lookup resolves note ids against the catalog
type Lookup interface {
	Lookup(id int64) (notes.Note, bool)
}

// Submitter validates and stores drafts
type Submitter interface {
	Submit(d notes.Draft) (notes.Note, error)
}

// Controller tracks one user's screen, selected note, search query and
// share form. It never inspects note content.
type Controller struct {
	mu sync.Mutex

	lookup Lookup
	state  State

	selected    int64
	hasSelected bool

	query     string
	draft     notes.Draft
	draftErrs *notes.ValidationError
}

func NewController(lookup Lookup) *Controller {
	return &Controller{lookup: lookup, state: Browsing}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Fire applies e to the current state
func (c *Controller) Fire(e Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fire(e)
}

func (c *Controller) fire(e Event) error {
	next, err := Transition(c.state, e)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// Select opens n in the detail overlay, replacing any previous selection
func (c *Controller) Select(n notes.Note) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = n.ID
	c.hasSelected = true
}

// Clear closes the detail overlay
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear()
}

func (c *Controller) clear() {
	c.selected = 0
	c.hasSelected = false
}

// Dismiss routes a close intent. Only the close button and clicks outside
// the overlay clear the selection.
func (c *Controller) Dismiss(src Source) {
	switch src {
	case SourceOutside, SourceCloseButton:
		c.Clear()
	}
}

// Selection returns the note under detailed view, if any
func (c *Controller) Selection() (notes.Note, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasSelected {
		return notes.Note{}, false
	}
	n, ok := c.lookup.Lookup(c.selected)
	if !ok {
		c.clear()
		return notes.Note{}, false
	}
	return n, true
}

func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = q
}

// Draft returns the share form contents and the errors of the last
// failed submission
func (c *Controller) Draft() (notes.Draft, *notes.ValidationError) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft, c.draftErrs
}

func (c *Controller) SetDraft(d notes.Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = d
}

// Submit hands the draft to s. On success the form resets and the session
// returns to browsing; on a validation failure the draft is kept. Only an
// authoring session may submit, so s is never called while browsing.
func (c *Controller) Submit(s Submitter) (notes.Note, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := Transition(c.state, SubmissionSucceeded); err != nil {
		return notes.Note{}, err
	}

	note, err := s.Submit(c.draft)
	if err != nil {
		var verr *notes.ValidationError
		if errors.As(err, &verr) {
			c.draftErrs = verr
		}
		return notes.Note{}, err
	}

	if err := c.fire(SubmissionSucceeded); err != nil {
		return note, err
	}
	c.draft = notes.Draft{}
	c.draftErrs = nil
	return note, nil
}
