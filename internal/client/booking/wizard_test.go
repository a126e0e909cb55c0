package booking

import (
	"testing"

	"github.com/lookdine/lookdine/internal/client/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWizard(venueID string) *Wizard {
	return New(catalog.FeaturedVenues, catalog.SampleTables, venueID)
}

func TestNext_RejectedWithoutVenueSelection(t *testing.T) {
	w := newWizard("")

	err := w.Next()
	require.ErrorIs(t, err, ErrNoVenueSelected)
	assert.Equal(t, StepVenue, w.Step())
}

func TestNext_RejectedWithoutTableSelection(t *testing.T) {
	w := newWizard("")
	require.NoError(t, w.SelectVenue("1"))
	require.NoError(t, w.Next())

	err := w.Next()
	require.ErrorIs(t, err, ErrNoTableSelected)
	assert.Equal(t, StepTable, w.Step())
}

func TestPreseededVenueStartsAtTableStep(t *testing.T) {
	w := newWizard("2")
	assert.Equal(t, StepTable, w.Step())
	require.NotNil(t, w.SelectedVenue())
	assert.Equal(t, "Sakura Sushi", w.SelectedVenue().Name)
}

func TestPreseedWithUnknownVenueStartsAtVenueStep(t *testing.T) {
	w := newWizard("999")
	assert.Equal(t, StepVenue, w.Step())
}

func TestSelectTable_OccupiedRejected(t *testing.T) {
	w := newWizard("1")
	require.ErrorIs(t, w.SelectTable("t3"), ErrTableOccupied)
	assert.Nil(t, w.SelectedTable())
}

func TestBackFromDetailsKeepsTableSelection(t *testing.T) {
	w := newWizard("1")
	require.NoError(t, w.SelectTable("t4"))
	require.NoError(t, w.Next())
	require.Equal(t, StepDetails, w.Step())

	w.Back()
	assert.Equal(t, StepTable, w.Step())
	require.NotNil(t, w.SelectedTable())
	assert.Equal(t, "t4", w.SelectedTable().ID)
}

func TestSelectVenue_ChangeResetsTable(t *testing.T) {
	w := newWizard("1")
	require.NoError(t, w.SelectTable("t4"))

	require.NoError(t, w.SelectVenue("2"))
	assert.Nil(t, w.SelectedTable())
}

func TestSetGuests_ClampedToTableSeats(t *testing.T) {
	w := newWizard("1")
	require.NoError(t, w.SelectTable("t5")) // 2 seats

	w.SetGuests(10)
	assert.Equal(t, 2, w.Guests())

	w.SetGuests(0)
	assert.Equal(t, 1, w.Guests())
}

func TestConfirm_OnlyOnConfirmStep(t *testing.T) {
	w := newWizard("1")
	_, err := w.Confirm()
	require.ErrorIs(t, err, ErrNotConfirmStep)
}

func TestFullFlowProducesSummary(t *testing.T) {
	w := newWizard("")
	require.NoError(t, w.SelectVenue("1"))
	require.NoError(t, w.Next())
	require.NoError(t, w.SelectTable("t6"))
	require.NoError(t, w.Next())

	require.NoError(t, w.SetDate("Tomorrow"))
	require.NoError(t, w.SetTime("8:00 PM"))
	w.SetGuests(4)
	require.NoError(t, w.Next())
	require.Equal(t, StepConfirm, w.Step())

	summary, err := w.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "La Trattoria", summary.Venue.Name)
	assert.Equal(t, 6, summary.Table.Seats)
	assert.Equal(t, "Tomorrow", summary.Date)
	assert.Equal(t, "8:00 PM", summary.Time)
	assert.Equal(t, 4, summary.Guests)
}

func TestDefaults(t *testing.T) {
	w := newWizard("")
	assert.Equal(t, "Today", w.Date())
	assert.Equal(t, "7:00 PM", w.TimeSlot())
	assert.Equal(t, 2, w.Guests())
}
