// Package booking implements the table-booking wizard: a strictly linear
// four-step flow (venue → table → details → confirm) with back transitions
// to the immediately preceding step only.
package booking

import (
	"errors"
	"fmt"

	"github.com/lookdine/lookdine/internal/client/cart"
	"github.com/lookdine/lookdine/internal/client/models"
)

// Step identifies one wizard state.
type Step string

const (
	StepVenue   Step = "venue"
	StepTable   Step = "table"
	StepDetails Step = "details"
	StepConfirm Step = "confirm"
)

// Date and time slots offered on the details step.
var (
	Dates = []string{"Today", "Tomorrow", "Sat, 22", "Sun, 23", "Mon, 24"}
	Times = []string{"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM", "8:00 PM", "8:30 PM", "9:00 PM"}
)

const (
	defaultDate     = "Today"
	defaultTime     = "7:00 PM"
	defaultGuests   = 2
	maxGuestsNoSeat = 8
)

var (
	ErrNoVenueSelected = errors.New("no venue selected")
	ErrNoTableSelected = errors.New("no table selected")
	ErrTableOccupied   = errors.New("table is occupied")
	ErrNotConfirmStep  = errors.New("booking not at confirmation step")
)

// Summary is the outcome of a confirmed booking.
type Summary struct {
	Venue       models.Venue
	Table       models.Table
	Date        string
	Time        string
	Guests      int
	Decorations []cart.Line
	Total       int
}

// Wizard drives the booking flow over fixed venue and table lists.
// Not safe for concurrent use.
type Wizard struct {
	venues []models.Venue
	tables []models.Table

	step     Step
	venueID  string
	tableID  string
	date     string
	timeSlot string
	guests   int

	decorations []cart.Line
	decoTotal   int
}

// New starts a wizard over the given venues and tables. When venueID names a
// known venue (arriving via navigation parameters) the venue step is skipped
// and the flow starts at table selection.
func New(venues []models.Venue, tables []models.Table, venueID string) *Wizard {
	w := &Wizard{
		venues:   venues,
		tables:   tables,
		step:     StepVenue,
		date:     defaultDate,
		timeSlot: defaultTime,
		guests:   defaultGuests,
	}
	if venueID != "" && w.findVenue(venueID) != nil {
		w.venueID = venueID
		w.step = StepTable
	}
	return w
}

func (w *Wizard) findVenue(id string) *models.Venue {
	for i := range w.venues {
		if w.venues[i].ID == id {
			return &w.venues[i]
		}
	}
	return nil
}

func (w *Wizard) findTable(id string) *models.Table {
	for i := range w.tables {
		if w.tables[i].ID == id {
			return &w.tables[i]
		}
	}
	return nil
}

func (w *Wizard) Step() Step { return w.step }

// SelectVenue picks a venue and resets any previously selected table.
func (w *Wizard) SelectVenue(id string) error {
	if w.findVenue(id) == nil {
		return fmt.Errorf("unknown venue %q", id)
	}
	if w.venueID != id {
		w.tableID = ""
	}
	w.venueID = id
	return nil
}

// SelectTable picks an available table.
func (w *Wizard) SelectTable(id string) error {
	table := w.findTable(id)
	if table == nil {
		return fmt.Errorf("unknown table %q", id)
	}
	if !table.Available {
		return ErrTableOccupied
	}
	w.tableID = id
	return nil
}

func (w *Wizard) SelectedVenue() *models.Venue {
	if w.venueID == "" {
		return nil
	}
	return w.findVenue(w.venueID)
}

func (w *Wizard) SelectedTable() *models.Table {
	if w.tableID == "" {
		return nil
	}
	return w.findTable(w.tableID)
}

// SetDate picks one of the offered dates; unknown values are rejected.
func (w *Wizard) SetDate(date string) error {
	for _, d := range Dates {
		if d == date {
			w.date = date
			return nil
		}
	}
	return fmt.Errorf("unknown date %q", date)
}

// SetTime picks one of the offered time slots.
func (w *Wizard) SetTime(slot string) error {
	for _, t := range Times {
		if t == slot {
			w.timeSlot = slot
			return nil
		}
	}
	return fmt.Errorf("unknown time %q", slot)
}

// SetGuests clamps the guest count to [1, seats of the selected table].
func (w *Wizard) SetGuests(n int) {
	max := maxGuestsNoSeat
	if t := w.SelectedTable(); t != nil {
		max = t.Seats
	}
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	w.guests = n
}

func (w *Wizard) Guests() int      { return w.guests }
func (w *Wizard) Date() string     { return w.date }
func (w *Wizard) TimeSlot() string { return w.timeSlot }

// AttachDecorations stores the decoration cart contents on the booking.
func (w *Wizard) AttachDecorations(lines []cart.Line, total int) {
	w.decorations = lines
	w.decoTotal = total
}

// Next advances one step. Guard conditions: venue requires a selected venue,
// table requires a selected table. On a rejected advance the state is left
// unchanged.
func (w *Wizard) Next() error {
	switch w.step {
	case StepVenue:
		if w.venueID == "" {
			return ErrNoVenueSelected
		}
		w.step = StepTable
	case StepTable:
		if w.tableID == "" {
			return ErrNoTableSelected
		}
		w.step = StepDetails
	case StepDetails:
		w.step = StepConfirm
	case StepConfirm:
		// Next from the last step is Confirm's job.
	}
	return nil
}

// Back returns to the immediately preceding step, keeping all selections.
func (w *Wizard) Back() {
	switch w.step {
	case StepTable:
		w.step = StepVenue
	case StepDetails:
		w.step = StepTable
	case StepConfirm:
		w.step = StepDetails
	}
}

// Confirm finalizes the booking and returns its summary. Only valid on the
// confirm step.
func (w *Wizard) Confirm() (*Summary, error) {
	if w.step != StepConfirm {
		return nil, ErrNotConfirmStep
	}

	venue := w.SelectedVenue()
	table := w.SelectedTable()
	if venue == nil {
		return nil, ErrNoVenueSelected
	}
	if table == nil {
		return nil, ErrNoTableSelected
	}

	return &Summary{
		Venue:       *venue,
		Table:       *table,
		Date:        w.date,
		Time:        w.timeSlot,
		Guests:      w.guests,
		Decorations: w.decorations,
		Total:       w.decoTotal,
	}, nil
}
