package booking

import (
	"context"
	"errors"
	"strconv"
	"time"

	"schedlink/internal/domain"
)

// State identifies the current step of the booking flow. The flow is strictly
// linear: exactly one step is active at a time, with a single back transition
// per step. Registered and NotFound are terminal.
type State int

const (
	StateLoading State = iota
	StateSelectingDate
	StateSelectingTime
	StateCollectingDetails
	StateRegistered
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSelectingDate:
		return "selecting_date"
	case StateSelectingTime:
		return "selecting_time"
	case StateCollectingDetails:
		return "collecting_details"
	case StateRegistered:
		return "registered"
	case StateNotFound:
		return "not_found"
	}
	return "unknown"
}

// Selection is the transient booking selection owned by the flow. It is
// created on start, mutated by calendar and slot choices, and never persisted.
type Selection struct {
	Day      int // 0 when no day is selected
	Month    time.Month
	Year     int
	Time     string // "HH:MM", empty when no time is confirmed
	Timezone Timezone
}

// EventSource fetches event type details for the public booking page.
type EventSource interface {
	FetchEventType(ctx context.Context, id int64) (*domain.EventType, error)
}

// ContactCreator submits the invitee's details. Implementations report a
// duplicate email with domain.ErrDuplicateEmail.
type ContactCreator interface {
	CreateContact(ctx context.Context, name, email string) (*domain.Contact, error)
}

// Flow is the page-level booking state machine. It owns the step sequence,
// the selection, and the network calls; hosts subscribe to state changes
// instead of relying on a rendering runtime.
type Flow struct {
	state State
	event *domain.EventType

	Calendar *Calendar
	Slots    *SlotPicker
	Form     *GuestForm

	// Message is the user-visible message for the current step, set when a
	// submit fails. It never causes a state transition.
	Message string

	events   EventSource
	contacts ContactCreator
	subs     []func(State)

	submitting bool
}

// NewFlow returns a flow in the Loading state. The calendar starts at now's
// month with the timezone catalog computed against now.
func NewFlow(events EventSource, contacts ContactCreator, now time.Time) *Flow {
	return &Flow{
		state:    StateLoading,
		Calendar: NewCalendar(now),
		Slots:    &SlotPicker{},
		Form:     NewGuestForm(),
		events:   events,
		contacts: contacts,
	}
}

// Subscribe registers fn to be called after every state transition.
func (f *Flow) Subscribe(fn func(State)) {
	f.subs = append(f.subs, fn)
}

// State returns the active step.
func (f *Flow) State() State { return f.state }

// Event returns the loaded event type, or nil before Load succeeds.
func (f *Flow) Event() *domain.EventType { return f.event }

// Selection returns a snapshot of the current booking selection.
func (f *Flow) Selection() Selection {
	return Selection{
		Day:      f.Calendar.SelectedDay,
		Month:    f.Calendar.Month,
		Year:     f.Calendar.Year,
		Time:     f.Slots.Active,
		Timezone: f.Calendar.Zone,
	}
}

func (f *Flow) transition(to State) {
	f.state = to
	for _, fn := range f.subs {
		fn(to)
	}
}

// Load fetches the event type named by the route id and enters SelectingDate.
// A malformed (non-numeric) id enters NotFound without any network call, as
// does a fetch failure or a missing event.
func (f *Flow) Load(ctx context.Context, rawID string) {
	if f.state != StateLoading {
		return
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		f.transition(StateNotFound)
		return
	}
	event, err := f.events.FetchEventType(ctx, id)
	if err != nil {
		f.transition(StateNotFound)
		return
	}
	f.event = event
	f.transition(StateSelectingDate)
}

// SelectDay picks the candidate day and advances to SelectingTime.
func (f *Flow) SelectDay(day int) bool {
	if f.state != StateSelectingDate {
		return false
	}
	if !f.Calendar.SelectDay(day) {
		return false
	}
	f.transition(StateSelectingTime)
	return true
}

// SelectSlot marks a slot active; confirming the active slot (a second
// select) advances to CollectingDetails.
func (f *Flow) SelectSlot(slot string) {
	if f.state != StateSelectingTime {
		return
	}
	if f.Slots.Select(slot) {
		f.transition(StateCollectingDetails)
	}
}

// Back performs the single backward transition of the active step. The
// selected day survives going back from the time step; it is owned here, not
// by the slot list.
func (f *Flow) Back() {
	switch f.state {
	case StateSelectingTime:
		f.Slots.Clear()
		f.transition(StateSelectingDate)
	case StateCollectingDetails:
		f.transition(StateSelectingTime)
	}
}

// Submit validates the guest form and performs exactly one contact-creation
// call. Success enters the terminal Registered state and clears the form.
// A duplicate email keeps the form editable with an "already registered"
// message; any other failure keeps the submitted data with a retry-safe
// message. No state transition happens on failure.
func (f *Flow) Submit(ctx context.Context) error {
	if f.state != StateCollectingDetails || f.submitting {
		return nil
	}
	f.Message = ""
	if !f.Form.Validate() {
		return nil
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	_, err := f.contacts.CreateContact(ctx, f.Form.Name, f.Form.Email)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			f.Message = "This email is already registered for this event."
			return err
		}
		f.Message = "Something went wrong. Please try again."
		return err
	}

	f.Form.Reset()
	f.transition(StateRegistered)
	return nil
}

// Submitting reports whether a contact-creation call is in flight.
func (f *Flow) Submitting() bool { return f.submitting }
