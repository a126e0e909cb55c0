package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/lookdine/lookdine/internal/client/api"
	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/logging"
)

// Searcher performs venue searches against the remote endpoint and falls
// back to scanning the in-memory catalog when the server is unreachable.
type Searcher struct {
	client api.Client
	log    logging.Logger
}

func NewSearcher(client api.Client, log logging.Logger) *Searcher {
	return &Searcher{client: client, log: log}
}

// Search queries the remote search endpoint. On transport failure the local
// catalog is substituted; definitive server errors are propagated so the
// caller can surface them.
func (s *Searcher) Search(ctx context.Context, q models.SearchQuery) ([]models.Venue, error) {
	results, err := s.client.Search(ctx, q)
	if err != nil {
		if !errors.Is(err, api.ErrUnavailable) {
			return nil, err
		}
		s.log.Warn(ctx, "search endpoint unreachable, using local catalog", "query", q.Query)
		return FilterVenues(NearbyVenues, q), nil
	}
	return results, nil
}

// FilterVenues applies the search parameters to a venue list: q matches
// name or cuisine case-insensitively, category matches cuisine, price
// matches the price level exactly, and rating is a lower bound.
func FilterVenues(venues []models.Venue, q models.SearchQuery) []models.Venue {
	needle := strings.ToLower(strings.TrimSpace(q.Query))

	var out []models.Venue
	for _, v := range venues {
		if needle != "" &&
			!strings.Contains(strings.ToLower(v.Name), needle) &&
			!strings.Contains(strings.ToLower(v.Cuisine), needle) {
			continue
		}
		if q.Category != "" && q.Category != "all" &&
			!strings.EqualFold(v.Cuisine, q.Category) {
			continue
		}
		if q.Price != "" && v.PriceLevel != q.Price {
			continue
		}
		if q.Rating > 0 && v.Rating < q.Rating {
			continue
		}
		out = append(out, v)
	}
	return out
}
