package health

import (
	"net/http"

	"github.com/go-chi/render"

	resp "github.com/lookdine/lookdine/internal/server/lib/api/response"
)

// New serves GET /api/health, the connectivity probe used by clients.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, resp.OK())
	}
}
