// Package search serves the venue search endpoint. The reference backend
// answers from a fixed venue list mirroring the client's offline catalog.
package search

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	resp "github.com/lookdine/lookdine/internal/server/lib/api/response"
)

type Venue struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Distance    string  `json:"distance"`
	Rating      float64 `json:"rating"`
	PriceLevel  string  `json:"priceLevel"`
	CrowdStatus string  `json:"crowdStatus"`
	Cuisine     string  `json:"cuisine"`
	PeopleNow   int     `json:"peopleNow"`
}

// DefaultVenues is the demo dataset served when no real venue source is
// configured.
var DefaultVenues = []Venue{
	{ID: "1", Name: "La Trattoria", Distance: "0.3 km", Rating: 4.8, PriceLevel: "₹₹₹", CrowdStatus: "chill", Cuisine: "Italian", PeopleNow: 12},
	{ID: "2", Name: "Sakura Sushi", Distance: "0.8 km", Rating: 4.9, PriceLevel: "₹₹₹₹", CrowdStatus: "busy", Cuisine: "Japanese", PeopleNow: 28},
	{ID: "3", Name: "Sky Lounge", Distance: "1.2 km", Rating: 4.7, PriceLevel: "₹₹₹", CrowdStatus: "chill", Cuisine: "Continental", PeopleNow: 18},
	{ID: "4", Name: "Casa Mexicana", Distance: "0.5 km", Rating: 4.6, PriceLevel: "₹₹", CrowdStatus: "quiet", Cuisine: "Mexican", PeopleNow: 6},
	{ID: "5", Name: "The Brew House", Distance: "0.2 km", Rating: 4.5, PriceLevel: "₹₹", CrowdStatus: "busy", Cuisine: "Café & Brewery", PeopleNow: 15},
}

type data struct {
	Results []Venue `json:"results"`
}

// New serves GET /api/search. Query parameters: q matches name or cuisine
// case-insensitively, category matches cuisine ("all" disables the filter),
// price matches the price level exactly, rating is a lower bound.
func New(log *slog.Logger, venues []Venue) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.search.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		q := r.URL.Query()
		needle := strings.ToLower(strings.TrimSpace(q.Get("q")))
		category := q.Get("category")
		price := q.Get("price")
		rating, _ := strconv.ParseFloat(q.Get("rating"), 64)

		results := make([]Venue, 0, len(venues))
		for _, v := range venues {
			if needle != "" &&
				!strings.Contains(strings.ToLower(v.Name), needle) &&
				!strings.Contains(strings.ToLower(v.Cuisine), needle) {
				continue
			}
			if category != "" && category != "all" &&
				!strings.EqualFold(v.Cuisine, category) {
				continue
			}
			if price != "" && v.PriceLevel != price {
				continue
			}
			if rating > 0 && v.Rating < rating {
				continue
			}
			results = append(results, v)
		}

		log.Info("search served", slog.String("q", needle), slog.Int("results", len(results)))

		render.JSON(w, r, resp.OKWithData(data{Results: results}))
	}
}
