package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lookdine/lookdine/internal/client/catalog"
)

// Decorate browses the decoration catalog and edits the cart. The cart
// persists across invocations and is attached to the next confirmed booking.
//
// Commands inside the loop: add <id>, remove <id>, cart, done.
func (a *App) Decorate(_ context.Context) error {
	for _, cat := range catalog.DecorationCategories() {
		printlnFn(cat + ":")
		for _, d := range catalog.DecorationsInCategory(cat) {
			qty := ""
			if n := a.cart.Quantity(d.ID); n > 0 {
				qty = fmt.Sprintf(" (in cart: %d)", n)
			}
			printlnFn(fmt.Sprintf("  [%s] %s — ₹%d%s", d.ID, d.Name, d.Price, qty))
		}
	}

	for {
		input, err := getSimpleText(a.reader, "add <id> / remove <id> / cart / done", os.Stdout)
		if err != nil {
			return err
		}
		parts := strings.Fields(input)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "add":
			if len(parts) < 2 {
				printlnFn("Usage: add <id>")
				continue
			}
			if !a.cart.Add(parts[1]) {
				log.Printf("Unknown decoration: %s", parts[1])
				continue
			}
			printlnFn(fmt.Sprintf("Added. Cart total: ₹%d", a.cart.Total()))

		case "remove":
			if len(parts) < 2 {
				printlnFn("Usage: remove <id>")
				continue
			}
			a.cart.Remove(parts[1])
			printlnFn(fmt.Sprintf("Removed. Cart total: ₹%d", a.cart.Total()))

		case "cart":
			if a.cart.Empty() {
				printlnFn("Cart is empty")
				continue
			}
			for _, line := range a.cart.Lines() {
				printlnFn(fmt.Sprintf("  %s x%d — ₹%d", line.Item.Name, line.Quantity, line.Item.Price*line.Quantity))
			}
			printlnFn(fmt.Sprintf("Total: ₹%d", a.cart.Total()))

		case "done":
			return nil

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}
