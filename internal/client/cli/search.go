package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/lookdine/lookdine/internal/client/models"
)

// Search queries the backend for venues matching the text; when the server
// is unreachable the searcher filters the built-in venue list instead.
func (a *App) Search(ctx context.Context, query string) error {
	results, err := a.searcher.Search(ctx, models.SearchQuery{Query: query, Category: "all"})
	if err != nil {
		log.Printf("Search failed: %s", err.Error())
		return err
	}

	if len(results) == 0 {
		printlnFn("No venues found")
		return nil
	}
	for _, v := range results {
		printlnFn(fmt.Sprintf("  [%s] %s — %s, %.1f★, %s", v.ID, v.Name, v.Cuisine, v.Rating, v.PriceLevel))
	}
	return nil
}
