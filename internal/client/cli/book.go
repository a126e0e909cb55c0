package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lookdine/lookdine/internal/client/booking"
	"github.com/lookdine/lookdine/internal/client/catalog"
)

// Book runs the four-step booking wizard interactively. Passing a venue ID
// skips straight to table selection. The decoration cart, if non-empty, is
// attached before confirmation. Typing "back" returns to the previous step,
// "cancel" abandons the booking.
func (a *App) Book(ctx context.Context, venueID string) error {
	w := booking.New(catalog.NearbyVenues, catalog.SampleTables, venueID)

	for {
		switch w.Step() {
		case booking.StepVenue:
			printlnFn("Select a venue:")
			for _, v := range catalog.NearbyVenues {
				printlnFn(fmt.Sprintf("  [%s] %s — %s, %.1f★", v.ID, v.Name, v.Cuisine, v.Rating))
			}
			input, err := getSimpleText(a.reader, "Venue id (or back/cancel)", os.Stdout)
			if err != nil {
				return err
			}
			if strings.EqualFold(input, "cancel") {
				printlnFn("Booking cancelled")
				return nil
			}
			if strings.EqualFold(input, "back") {
				w.Back()
				continue
			}
			if input != "" {
				if err := w.SelectVenue(input); err != nil {
					log.Printf("%s", err.Error())
					continue
				}
			}
			if err := w.Next(); err != nil {
				log.Printf("%s", err.Error())
			}

		case booking.StepTable:
			printlnFn("Select a table:")
			for _, t := range catalog.SampleTables {
				status := "free"
				if !t.Available {
					status = "occupied"
				}
				printlnFn(fmt.Sprintf("  [%s] table %d, %d seats, %s (%s)", t.ID, t.Number, t.Seats, t.Type, status))
			}
			input, err := getSimpleText(a.reader, "Table id (or back/cancel)", os.Stdout)
			if err != nil {
				return err
			}
			if strings.EqualFold(input, "cancel") {
				printlnFn("Booking cancelled")
				return nil
			}
			if strings.EqualFold(input, "back") {
				w.Back()
				continue
			}
			if input != "" {
				if err := w.SelectTable(input); err != nil {
					log.Printf("%s", err.Error())
					continue
				}
			}
			if err := w.Next(); err != nil {
				log.Printf("%s", err.Error())
			}

		case booking.StepDetails:
			date, err := getSimpleText(a.reader,
				fmt.Sprintf("Date %v [%s]", booking.Dates, w.Date()), os.Stdout)
			if err != nil {
				return err
			}
			if strings.EqualFold(date, "cancel") {
				printlnFn("Booking cancelled")
				return nil
			}
			if strings.EqualFold(date, "back") {
				w.Back()
				continue
			}
			if date != "" {
				if err := w.SetDate(date); err != nil {
					log.Printf("%s", err.Error())
					continue
				}
			}

			slot, err := getSimpleText(a.reader,
				fmt.Sprintf("Time %v [%s]", booking.Times, w.TimeSlot()), os.Stdout)
			if err != nil {
				return err
			}
			if slot != "" {
				if err := w.SetTime(slot); err != nil {
					log.Printf("%s", err.Error())
					continue
				}
			}

			guests, err := GetInt(a.reader, "Guests", w.Guests(), os.Stdout)
			if err != nil {
				log.Printf("%s", err.Error())
				continue
			}
			w.SetGuests(guests)

			if err := w.Next(); err != nil {
				log.Printf("%s", err.Error())
			}

		case booking.StepConfirm:
			if !a.cart.Empty() {
				w.AttachDecorations(a.cart.Lines(), a.cart.Total())
			}

			venue := w.SelectedVenue()
			table := w.SelectedTable()
			printlnFn(fmt.Sprintf("Booking: %s, table %d, %s at %s, %d guests",
				venue.Name, table.Number, w.Date(), w.TimeSlot(), w.Guests()))
			if !a.cart.Empty() {
				printlnFn(fmt.Sprintf("Decorations: %d item(s), ₹%d", a.cart.Count(), a.cart.Total()))
			}

			input, err := getSimpleText(a.reader, "Confirm? (yes/back/cancel)", os.Stdout)
			if err != nil {
				return err
			}
			if strings.EqualFold(input, "cancel") {
				printlnFn("Booking cancelled")
				return nil
			}
			if strings.EqualFold(input, "back") {
				w.Back()
				continue
			}
			if !strings.EqualFold(input, "yes") && !strings.EqualFold(input, "y") {
				continue
			}

			summary, err := w.Confirm()
			if err != nil {
				return err
			}
			printlnFn(fmt.Sprintf("Booked %s for %s at %s. Enjoy!",
				summary.Venue.Name, summary.Date, summary.Time))
			a.cart.Clear()
			return nil
		}
	}
}
